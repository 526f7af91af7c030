package console

import (
	"fmt"
	"strings"

	"statistician/domain/dataset"
	"statistician/internal/errors"
)

func (s *Session) load() error {
	fmt.Fprintln(s.out, " "+rule)
	fmt.Fprintln(s.out, "   Load from a CSV file! \t\t\t")
	fmt.Fprintln(s.out, " "+rule)

	name, err := s.prompter.ReadLine("Input the filename: ")
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)

	ds, err := s.reader.Read(name)
	switch {
	case err == nil:
		s.current = ds
		fmt.Fprintln(s.out, "\n"+rule)
		fmt.Fprintf(s.out, "File [%s] has been successfully loaded.\n", name)
		fmt.Fprintln(s.out, rule)
		fmt.Fprintln(s.out)
	case errors.Is(err, dataset.ErrEmptyDataset):
		s.current = nil
		s.logger.Warn("%v", err)
		fmt.Fprintf(s.out, "\n%s File [%s] is empty.\n\n", errorMark(), name)
	default:
		s.logger.Warn("load %s failed: %v", name, err)
		fmt.Fprintf(s.out, "%s cannot open file: [%s].\n", errorMark(), name)
		printRuntimeError(s.out, err)
	}
	return nil
}
