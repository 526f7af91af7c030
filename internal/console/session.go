package console

import (
	"fmt"
	"io"

	"statistician/domain/dataset"
	"statistician/internal"
	"statistician/internal/analysis"
	"statistician/internal/errors"
	"statistician/ports"
)

// Main menu options
const (
	optionLoad = iota + 1
	optionAnalyse
	optionVisualise
	optionQuit
)

// Options carries the collaborators of a Session
type Options struct {
	Reader     ports.DatasetReader
	Renderer   ports.ChartRenderer
	Viewer     ports.ChartViewer
	Summarizer *analysis.SummaryComputer
	Logger     *internal.Logger
}

// Session is one interactive run of the menu loop. It owns the current
// dataset, which is nil until a load succeeds.
type Session struct {
	prompter   *Prompter
	out        io.Writer
	reader     ports.DatasetReader
	renderer   ports.ChartRenderer
	viewer     ports.ChartViewer
	summarizer *analysis.SummaryComputer
	logger     *internal.Logger

	current *dataset.Dataset
}

// NewSession creates a session reading user input from in and writing
// the console to out
func NewSession(in io.Reader, out io.Writer, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = internal.DefaultLogger
	}
	summarizer := opts.Summarizer
	if summarizer == nil {
		summarizer = analysis.NewSummaryComputer(logger)
	}
	return &Session{
		prompter:   NewPrompter(in, out),
		out:        out,
		reader:     opts.Reader,
		renderer:   opts.Renderer,
		viewer:     opts.Viewer,
		summarizer: summarizer,
		logger:     logger,
	}
}

// Dataset returns the currently loaded dataset, or nil
func (s *Session) Dataset() *dataset.Dataset {
	return s.current
}

// Run shows the main menu until the user quits. It returns nil after
// Quit and the read error (io.EOF once input is exhausted) otherwise.
func (s *Session) Run() error {
	for {
		s.displayMenu()
		selection, err := s.prompter.Select("MAIN MENU", optionQuit)
		if err != nil {
			return err
		}
		s.logger.Debug("main menu selection %d", selection)

		if selection == optionQuit {
			fmt.Fprintln(s.out, "\nGoodbye!")
			return nil
		}
		if err := s.requireDataset(selection); err != nil {
			s.printMissingDataset(err)
			continue
		}

		if err := s.dispatch(selection); err != nil {
			return err
		}
	}
}

// requireDataset fails with dataset.ErrNoDataset when selection needs a
// loaded dataset and there is none
func (s *Session) requireDataset(selection int) error {
	if selection == optionLoad || s.current != nil {
		return nil
	}
	return dataset.ErrNoDataset
}

func (s *Session) dispatch(selection int) error {
	switch selection {
	case optionLoad:
		return s.guard("load", s.load)
	case optionAnalyse:
		return s.guard("analyse", func() error { return s.analyse(s.current) })
	case optionVisualise:
		return s.guard("visualise", func() error { return s.visualise(s.current) })
	}
	return nil
}

// guard runs action, converting a panic into a printed run-time error.
// Only input read failures are returned.
func (s *Session) guard(name string, action func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("%s action panicked: %v", name, r)
			printRuntimeError(s.out, errors.InternalError(fmt.Sprint(r)))
			err = nil
		}
	}()
	return action()
}

func (s *Session) displayMenu() {
	fmt.Fprintln(s.out, " "+rule)
	fmt.Fprintln(s.out, " Welcome to the DataFrame Statistician!")
	fmt.Fprintln(s.out, " "+rule)
	fmt.Fprintln(s.out, " Please choose from the following options:\t\t ")
	fmt.Fprintln(s.out, " \t1 - Load from a CSV file\t\t ")
	fmt.Fprintln(s.out, " \t2 - Analyse\t\t ")
	fmt.Fprintln(s.out, " \t3 - Visualize\t\t ")
	fmt.Fprintln(s.out, " \t4 - Quit\t\t ")
	fmt.Fprintln(s.out, " "+rule)
}

func (s *Session) printMissingDataset(err error) {
	s.logger.Debug("action refused: %v", err)
	fmt.Fprintf(s.out, "\n%s Dataset [None] is empty.\n", errorMark())
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, "Please load data from a CSV file (Menu Option 1)!")
	fmt.Fprintln(s.out, rule)
}
