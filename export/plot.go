package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Series is one named curve against time.
type Series struct {
	Name   string
	Values []float64
}

// Chart is a titled set of curves sharing a y axis.
type Chart struct {
	File   string // file name without extension
	Title  string
	YLabel string
	Series []Series
}

// Charts returns the standard charts of a run.
func Charts(run Run) []Chart {
	r := run.Result
	return []Chart{
		{File: "temperature", Title: "Process temperature", YLabel: "Temperature (°C)",
			Series: []Series{{Name: "temperature", Values: r.Temperatures}}},
		{File: "moisture", Title: "Moisture fraction", YLabel: "Moisture (%)",
			Series: []Series{{Name: "moisture", Values: r.MoistureFraction}}},
		{File: "solids", Title: "Solids", YLabel: "Mass (kg)",
			Series: []Series{{Name: "solids", Values: r.Solids}, {Name: "biodegradable", Values: r.Biodegradable}}},
		{File: "exhaust", Title: "Exhaust gas volume", YLabel: "Volume (m³)",
			Series: []Series{{Name: "exhaust gas", Values: r.ExhaustGasVolume}}},
		{File: "humidity", Title: "Exhaust relative humidity", YLabel: "Relative humidity (%)",
			Series: []Series{{Name: "relative humidity", Values: r.RelativeHumidity}}},
		{File: "gases", Title: "Cumulative gaseous byproducts", YLabel: "Mass (kg)",
			Series: []Series{
				{Name: "CO2", Values: Cumulative(r.CO2)},
				{Name: "O2", Values: Cumulative(r.O2)},
				{Name: "NH3", Values: Cumulative(r.NH3)},
			}},
	}
}

// Cumulative returns the running total of an hourly series.
func Cumulative(values []float64) []float64 {
	return floats.CumSum(make([]float64, len(values)), values)
}

// WriteChart renders a chart against times as a PNG.
func WriteChart(w io.Writer, times []float64, c Chart) error {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = "Time (h)"
	p.Y.Label.Text = c.YLabel

	var lines []interface{}
	for _, s := range c.Series {
		if len(s.Values) != len(times) {
			return fmt.Errorf("export: series %q has %d values for %d times", s.Name, len(s.Values), len(times))
		}
		xy := make(plotter.XYs, len(times))
		for i, t := range times {
			xy[i].X = t
			xy[i].Y = s.Values[i]
		}
		lines = append(lines, s.Name, xy)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("export: writing chart: %w", err)
	}
	return nil
}

// WriteCharts writes every chart of a run as <dir>/<run name>_<chart>.png
// and returns the written paths.
func WriteCharts(dir string, run Run) ([]string, error) {
	if err := ValidateName(run.Name); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	var paths []string
	for _, c := range Charts(run) {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", run.Name, c.File))
		f, err := os.Create(path)
		if err != nil {
			return paths, fmt.Errorf("export: %w", err)
		}
		err = WriteChart(f, run.Result.Times, c)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
