package dataset

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ChartKind is the kind of chart to draw
type ChartKind string

const (
	ChartLine ChartKind = "line"
	ChartBar  ChartKind = "bar"
	ChartBox  ChartKind = "box"
)

// ChartKinds lists the selectable kinds in menu order
var ChartKinds = []ChartKind{ChartLine, ChartBar, ChartBox}

// Layouts lists the selectable layouts in menu order; index 0 is the
// single overlaid plot, index 1 the faceted subplots.
var Layouts = []string{"Single plot", "Subplots"}

// ChartChoice is the pair of selections made in the visualisation menus
type ChartChoice struct {
	Kind    ChartKind
	Faceted bool
}

// Title returns the chart heading, pluralised for faceted layouts
func (c ChartChoice) Title() string {
	label := Capitalize(string(c.Kind))
	if c.Faceted {
		return fmt.Sprintf("%s Plots for DataFrame", label)
	}
	return fmt.Sprintf("%s Plot for DataFrame", label)
}

// LayoutName is a short token for file names
func (c ChartChoice) LayoutName() string {
	if c.Faceted {
		return "subplots"
	}
	return "single"
}

// Capitalize upper-cases the first letter and lower-cases the rest
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
