package chart

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"statistician/domain/dataset"
	"statistician/internal"
	"statistician/internal/errors"

	"github.com/google/uuid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Rainbow hue range, red through magenta
const (
	hueStart = 0.0
	hueEnd   = 5.0 / 6.0
)

// Config controls where and how large charts are rendered
type Config struct {
	Dir      string
	WidthCM  float64
	HeightCM float64
}

// Renderer draws datasets as PNG charts with gonum/plot
type Renderer struct {
	config Config
	logger *internal.Logger
}

// NewRenderer creates a renderer writing into config.Dir
func NewRenderer(config Config, logger *internal.Logger) *Renderer {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Renderer{config: config, logger: logger}
}

// Render draws every numeric column of ds as choice.Kind, overlaid on one
// axes or faceted into one axes per column in a single row. It returns
// the path of the written PNG.
func (r *Renderer) Render(ds *dataset.Dataset, choice dataset.ChartChoice) (string, error) {
	cols := ds.NumericColumns()
	if len(cols) == 0 {
		return "", dataset.ErrNoNumericData
	}

	if err := os.MkdirAll(r.config.Dir, 0o755); err != nil {
		return "", errors.RenderFailed(err)
	}
	path := filepath.Join(r.config.Dir,
		fmt.Sprintf("%s-%s-%s.png", choice.Kind, choice.LayoutName(), uuid.NewString()))

	colors := palette.Rainbow(len(cols), hueStart, hueEnd, 1, 1, 1).Colors()
	width := vg.Length(r.config.WidthCM) * vg.Centimeter
	height := vg.Length(r.config.HeightCM) * vg.Centimeter

	var err error
	if choice.Faceted {
		err = r.renderFaceted(path, ds, cols, colors, choice, width, height)
	} else {
		err = r.renderSingle(path, ds, cols, colors, choice, width, height)
	}
	if err != nil {
		return "", errors.RenderFailed(err)
	}

	r.logger.Info("rendered %s (%d columns) to %s", choice.Title(), len(cols), path)
	return path, nil
}

func (r *Renderer) renderSingle(path string, ds *dataset.Dataset, cols []dataset.Column, colors []color.Color, choice dataset.ChartChoice, width, height vg.Length) error {
	p := plot.New()
	p.Title.Text = choice.Title()
	p.Legend.Top = true
	if err := addSeries(p, ds, cols, colors, choice.Kind); err != nil {
		return err
	}
	return p.Save(width, height, path)
}

func (r *Renderer) renderFaceted(path string, ds *dataset.Dataset, cols []dataset.Column, colors []color.Color, choice dataset.ChartChoice, width, height vg.Length) error {
	row := make([]*plot.Plot, len(cols))
	for i, col := range cols {
		p := plot.New()
		p.Legend.Top = true
		if err := addSeries(p, ds, []dataset.Column{col}, colors[i:i+1], choice.Kind); err != nil {
			return err
		}
		row[i] = p
	}

	img := vgimg.New(width, height)
	dc := draw.New(img)

	titleStyle := plot.New().Title.TextStyle
	titleStyle.XAlign = text.XCenter
	titleStyle.YAlign = text.YTop
	titleHeight := titleStyle.Height(choice.Title()) + vg.Points(8)

	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(cols),
		PadX:      vg.Millimeter * 4,
		PadTop:    titleHeight,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align([][]*plot.Plot{row}, tiles, dc)
	for i, p := range row {
		p.Draw(canvases[0][i])
	}
	dc.FillText(titleStyle, vg.Point{X: width / 2, Y: height - vg.Points(4)}, choice.Title())

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// addSeries adds one plotter per column to p
func addSeries(p *plot.Plot, ds *dataset.Dataset, cols []dataset.Column, colors []color.Color, kind dataset.ChartKind) error {
	switch kind {
	case dataset.ChartLine:
		return addLines(p, cols, colors)
	case dataset.ChartBar:
		return addBars(p, ds, cols, colors)
	case dataset.ChartBox:
		return addBoxes(p, cols, colors)
	}
	return errors.InvalidInput(fmt.Sprintf("unknown chart kind %q", kind))
}

func addLines(p *plot.Plot, cols []dataset.Column, colors []color.Color) error {
	p.X.Label.Text = "row"
	for i, col := range cols {
		values, err := col.Floats()
		if err != nil {
			return err
		}
		xys := make(plotter.XYs, 0, len(values))
		for x, y := range values {
			if math.IsNaN(y) {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(x), Y: y})
		}
		if len(xys) == 0 {
			continue
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return errors.Wrapf(err, "line for %s", col.Name)
		}
		line.Color = colors[i]
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(col.Name, line)
	}
	return nil
}

func addBars(p *plot.Plot, ds *dataset.Dataset, cols []dataset.Column, colors []color.Color) error {
	groupWidth := vg.Points(48)
	barWidth := groupWidth / vg.Length(len(cols))
	for i, col := range cols {
		values, err := col.Floats()
		if err != nil {
			return err
		}
		heights := make(plotter.Values, len(values))
		for j, v := range values {
			if !math.IsNaN(v) {
				heights[j] = v
			}
		}
		bars, err := plotter.NewBarChart(heights, barWidth)
		if err != nil {
			return errors.Wrapf(err, "bars for %s", col.Name)
		}
		bars.Color = colors[i]
		bars.LineStyle.Width = 0
		bars.Offset = barWidth * (vg.Length(i) - vg.Length(len(cols)-1)/2)
		p.Add(bars)
		p.Legend.Add(col.Name, bars)
	}
	labels := make([]string, ds.RowCount())
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	p.NominalX(labels...)
	return nil
}

func addBoxes(p *plot.Plot, cols []dataset.Column, colors []color.Color) error {
	names := make([]string, len(cols))
	for i, col := range cols {
		values, err := col.Present()
		if err != nil {
			return err
		}
		names[i] = col.Name
		if len(values) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(30), float64(i), plotter.Values(values))
		if err != nil {
			return errors.Wrapf(err, "box for %s", col.Name)
		}
		box.FillColor = colors[i]
		p.Add(box)
	}
	p.NominalX(names...)
	return nil
}
