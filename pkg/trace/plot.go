package trace

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SavePlot renders the trace as a PNG spectrum plot. xLabel is the unit the
// instrument was queried in (normally "nm"); the Y axis is always dB.
func SavePlot(path string, t Trace, xLabel string) error {
	p := plot.New()
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "dB"

	pts := make(plotter.XYs, len(t))
	for i, sample := range t {
		pts[i].X = sample.Wavelength
		pts[i].Y = sample.Power
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("trace: build plot line: %w", err)
	}
	p.Add(line)
	p.Add(plotter.NewGrid())

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("trace: save plot %s: %w", path, err)
	}
	return nil
}
