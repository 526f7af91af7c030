package console

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"statistician/domain/dataset"
	"statistician/domain/stats"
	"statistician/internal/errors"
)

func (s *Session) analyse(ds *dataset.Dataset) error {
	fmt.Fprintln(s.out, "\nWhich Metric do you want to analyse?")
	names := ds.ColumnNames()
	for i, name := range names {
		fmt.Fprintf(s.out, "%d - %s\n", i+1, name)
	}

	selection, err := s.prompter.Select("METRIC", len(names))
	if err != nil {
		return err
	}

	col, err := ds.Column(selection - 1)
	if err != nil {
		printRuntimeError(s.out, err)
		return nil
	}

	summary, err := s.summarizer.Summarize(col)
	if err != nil {
		s.logger.Warn("summarize %s: %v", col.Name, err)
		if errors.Is(err, dataset.ErrNotNumeric) {
			fmt.Fprintf(s.out, "\n%s Column [%s] is not numeric.\n\n", errorMark(), col.Name)
		} else {
			printRuntimeError(s.out, err)
		}
		return nil
	}

	writeReport(s.out, summary)
	return nil
}

// writeReport prints the statistical report of one column
func writeReport(w io.Writer, summary *stats.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, dataset.Capitalize(summary.Name))
	fmt.Fprintln(w, strings.Repeat("-", utf8.RuneCountInString(summary.Name)))
	fmt.Fprintln(w, center(fmt.Sprintf("Number of values(n): %d", summary.Count), reportWidth))
	fmt.Fprintln(w, center(fmt.Sprintf("Mean: %.2f", summary.Mean), reportWidth))
	fmt.Fprintln(w, center(fmt.Sprintf("Standard Deviation: %.2f", summary.StdDev), reportWidth))
	fmt.Fprintln(w, center(fmt.Sprintf("Std.Err of Mean: %.2f", summary.StdErr), reportWidth))
	fmt.Fprintln(w, center(strings.Repeat("-", 20), reportWidth))
}
