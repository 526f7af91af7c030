// Package dataset holds the in-memory table the console operates on.
package dataset

import (
	"fmt"
	"math"

	"statistician/internal/errors"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ColumnKind classifies the values held by a column
type ColumnKind string

const (
	KindNumeric ColumnKind = "numeric"
	KindText    ColumnKind = "text"
)

// Dataset is an ordered set of named columns sharing one row count.
// A Dataset returned by New always has at least one row.
type Dataset struct {
	Source string
	frame  dataframe.DataFrame
}

// New wraps a loaded data frame. Frames carrying a load error or no rows
// are rejected.
func New(source string, frame dataframe.DataFrame) (*Dataset, error) {
	if frame.Err != nil {
		return nil, errors.Wrap(frame.Err, "invalid data frame")
	}
	if frame.Nrow() == 0 || frame.Ncol() == 0 {
		return nil, ErrEmptyDataset
	}
	return &Dataset{Source: source, frame: frame}, nil
}

// ColumnCount returns the number of columns
func (d *Dataset) ColumnCount() int {
	return d.frame.Ncol()
}

// RowCount returns the number of data rows
func (d *Dataset) RowCount() int {
	return d.frame.Nrow()
}

// ColumnNames returns the header names in file order
func (d *Dataset) ColumnNames() []string {
	return d.frame.Names()
}

// ColumnName returns the name of the zero-based column i
func (d *Dataset) ColumnName(i int) (string, error) {
	names := d.frame.Names()
	if i < 0 || i >= len(names) {
		return "", errors.InvalidInput(fmt.Sprintf("column index %d out of range [0, %d)", i, len(names)))
	}
	return names[i], nil
}

// Column returns the zero-based column i
func (d *Dataset) Column(i int) (Column, error) {
	name, err := d.ColumnName(i)
	if err != nil {
		return Column{}, err
	}
	s := d.frame.Col(name)
	if s.Err != nil {
		return Column{}, errors.Wrapf(s.Err, "column %s", name)
	}
	return newColumn(name, s), nil
}

// NumericColumns returns the columns holding numbers, in file order
func (d *Dataset) NumericColumns() []Column {
	var cols []Column
	for i := 0; i < d.ColumnCount(); i++ {
		col, err := d.Column(i)
		if err != nil || col.Kind != KindNumeric {
			continue
		}
		cols = append(cols, col)
	}
	return cols
}

// Column is a single named series within a Dataset
type Column struct {
	Name   string
	Kind   ColumnKind
	series series.Series
}

func newColumn(name string, s series.Series) Column {
	kind := KindText
	switch s.Type() {
	case series.Int, series.Float, series.Bool:
		kind = KindNumeric
	}
	return Column{Name: name, Kind: kind, series: s}
}

// Len returns the raw number of cells, missing ones included
func (c Column) Len() int {
	return c.series.Len()
}

// Floats returns every cell as a float64, NaN marking missing cells.
// Text columns fail with ErrNotNumeric.
func (c Column) Floats() ([]float64, error) {
	if c.Kind != KindNumeric {
		return nil, errors.Wrapf(ErrNotNumeric, "column %s", c.Name)
	}
	return c.series.Float(), nil
}

// Present returns the non-missing numeric cells
func (c Column) Present() ([]float64, error) {
	all, err := c.Floats()
	if err != nil {
		return nil, err
	}
	present := make([]float64, 0, len(all))
	for _, v := range all {
		if !math.IsNaN(v) {
			present = append(present, v)
		}
	}
	return present, nil
}
