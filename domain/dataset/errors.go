package dataset

import "statistician/internal/errors"

var (
	// ErrEmptyDataset is returned when a file holds a header but no rows
	ErrEmptyDataset = errors.New(errors.CodeDatasetEmpty, "dataset is empty")

	// ErrNoDataset is returned when an action needs a dataset and none is loaded
	ErrNoDataset = errors.New(errors.CodeDatasetMissing, "no dataset loaded")

	ErrNotNumeric    = errors.New(errors.CodeNotNumeric, "column is not numeric")
	ErrNoNumericData = errors.New(errors.CodeNoNumericData, "no numeric data to plot")
)
