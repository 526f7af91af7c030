package chart

import (
	"fmt"
	"io"

	"statistician/internal"
	"statistician/internal/errors"

	"github.com/skratchdot/open-golang/open"
)

// Viewer opens rendered charts in the desktop image viewer
type Viewer struct {
	enabled bool
	out     io.Writer
	logger  *internal.Logger
	opener  func(string) error
}

// NewViewer creates a viewer. When enabled is false, or the desktop
// viewer cannot be launched, the chart path is printed to out instead.
func NewViewer(enabled bool, out io.Writer, logger *internal.Logger) *Viewer {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Viewer{enabled: enabled, out: out, logger: logger, opener: open.Start}
}

// Show presents the chart at path
func (v *Viewer) Show(path string) error {
	fmt.Fprintf(v.out, "Chart saved to [%s].\n", path)
	if !v.enabled {
		return nil
	}
	if err := v.opener(path); err != nil {
		v.logger.Warn("could not launch image viewer for %s: %v", path, err)
		return errors.WithCode(errors.CodeViewerFailed, err)
	}
	v.logger.Debug("opened %s in image viewer", path)
	return nil
}
