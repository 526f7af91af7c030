// Package stats defines the descriptive statistics reported for a column.
package stats

// Summary is the statistical report for one column. Values are rounded
// to two decimal places; NaN means the statistic is undefined.
type Summary struct {
	Name   string
	Count  int
	Mean   float64
	StdDev float64
	StdErr float64
}
