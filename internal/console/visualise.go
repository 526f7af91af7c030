package console

import (
	"fmt"

	"statistician/domain/dataset"
)

func (s *Session) visualise(ds *dataset.Dataset) error {
	fmt.Fprintln(s.out, center("DATA VISUALIZATION", reportWidth))
	fmt.Fprintln(s.out, center("--------------------", reportWidth))

	kinds := make([]string, len(dataset.ChartKinds))
	for i, kind := range dataset.ChartKinds {
		kinds[i] = string(kind)
	}
	kindChoice, err := s.chooseOption("GRAPH", kinds)
	if err != nil {
		return err
	}
	kind := dataset.ChartKinds[kindChoice-1]
	fmt.Fprintln(s.out, "Set to Plot:", dataset.Capitalize(string(kind)))
	fmt.Fprintln(s.out, rule)

	layoutChoice, err := s.chooseOption("PLOT", dataset.Layouts)
	if err != nil {
		return err
	}

	choice := dataset.ChartChoice{Kind: kind, Faceted: layoutChoice == 2}
	path, err := s.renderer.Render(ds, choice)
	if err != nil {
		s.logger.Warn("render %s: %v", choice.Title(), err)
		fmt.Fprintf(s.out, "\n%s Cannot draw %s.\n", errorMark(), choice.Title())
		printRuntimeError(s.out, err)
		return nil
	}

	if err := s.viewer.Show(path); err != nil {
		printRuntimeError(s.out, err)
		return nil
	}

	_, err = s.prompter.ReadLine("Close the chart window and press Enter to continue...")
	fmt.Fprintln(s.out)
	return err
}

// chooseOption lists options with 1-based indices and returns the
// validated selection
func (s *Session) chooseOption(label string, options []string) (int, error) {
	fmt.Fprintf(s.out, "Choose from the following %s options: \n", label)
	for i, option := range options {
		fmt.Fprintf(s.out, "\t %d - %s\n", i+1, dataset.Capitalize(option))
	}
	return s.prompter.Select(label, len(options))
}
