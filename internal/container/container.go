package container

import (
	"fmt"
	"io"
	"os"

	"statistician/adapters/chart"
	"statistician/adapters/tabular"
	"statistician/internal"
	"statistician/internal/analysis"
	"statistician/internal/config"
	"statistician/internal/console"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	Reader     *tabular.DataReader
	Renderer   *chart.Renderer
	Summarizer *analysis.SummaryComputer

	out io.Writer
}

// New creates a new dependency injection container writing diagnostics
// to logOut and console output to out
func New(cfg *config.Config, out, logOut io.Writer) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if out == nil {
		out = os.Stdout
	}

	logger := internal.NewLogger(cfg.Log.Level, logOut)

	c := &Container{
		Config:     cfg,
		Logger:     logger,
		Reader:     tabular.NewDataReader(cfg.Data.Delimiter, logger),
		Summarizer: analysis.NewSummaryComputer(logger),
		Renderer: chart.NewRenderer(chart.Config{
			Dir:      cfg.Chart.Dir,
			WidthCM:  cfg.Chart.WidthCM,
			HeightCM: cfg.Chart.HeightCM,
		}, logger),
		out: out,
	}

	logger.Debug("container ready: chart dir %s, viewer %t", cfg.Chart.Dir, cfg.Chart.OpenViewer)
	return c, nil
}

// NewSession builds an interactive session reading user input from in
func (c *Container) NewSession(in io.Reader) *console.Session {
	return console.NewSession(in, c.out, console.Options{
		Reader:     c.Reader,
		Renderer:   c.Renderer,
		Viewer:     chart.NewViewer(c.Config.Chart.OpenViewer, c.out, c.Logger),
		Summarizer: c.Summarizer,
		Logger:     c.Logger,
	})
}
