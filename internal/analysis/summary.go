package analysis

import (
	"math"
	"strconv"

	"statistician/domain/dataset"
	"statistician/domain/stats"
	"statistician/internal"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// reportPlaces is the number of decimals kept in a report
const reportPlaces = 2

// SummaryComputer derives the descriptive statistics of a column
type SummaryComputer struct {
	logger *internal.Logger
}

// NewSummaryComputer creates a new summary computer
func NewSummaryComputer(logger *internal.Logger) *SummaryComputer {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &SummaryComputer{logger: logger}
}

// Summarize computes count, mean, sample standard deviation and standard
// error of the mean for col. Count is the raw row count; the other
// statistics skip missing cells. Text columns fail with
// dataset.ErrNotNumeric.
func (c *SummaryComputer) Summarize(col dataset.Column) (*stats.Summary, error) {
	values, err := col.Present()
	if err != nil {
		return nil, err
	}

	mean := math.NaN()
	if m, err := mstats.Mean(values); err == nil {
		mean = m
	}

	stdDev := math.NaN()
	if len(values) > 1 {
		if sd, err := mstats.StandardDeviationSample(values); err == nil {
			stdDev = sd
		}
	}

	stdErr := math.NaN()
	if len(values) > 0 {
		stdErr = stat.StdErr(stdDev, float64(len(values)))
	}

	c.logger.Debug("summarized column %s: n=%d present=%d", col.Name, col.Len(), len(values))

	return &stats.Summary{
		Name:   col.Name,
		Count:  col.Len(),
		Mean:   round(mean),
		StdDev: round(stdDev),
		StdErr: round(stdErr),
	}, nil
}

// Summarize is a convenience wrapper using the default logger
func Summarize(col dataset.Column) (*stats.Summary, error) {
	return NewSummaryComputer(nil).Summarize(col)
}

// round keeps reportPlaces decimals of the exact binary value, ties to
// even, so 0.125 reports as 0.12
func round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', reportPlaces, 64), 64)
	if err != nil {
		return v
	}
	return r
}
