// Package sweep runs a bio-drying scenario over a range of airflows and picks
// the airflow that best satisfies an optimization criterion.
package sweep

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"biodrying"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Airflows expands [min, max] in increments of step. Both bounds must be
// ordered and step positive.
func Airflows(min, max, step float64) ([]float64, error) {
	if min >= max {
		return nil, fmt.Errorf("sweep: minimum airflow %g must be below maximum %g", min, max)
	}
	if step <= 0.0 {
		return nil, fmt.Errorf("sweep: airflow step %g must be positive", step)
	}

	n := int((max-min)/step) + 1
	flows := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		q := min + float64(i)*step
		if q > max {
			break
		}
		flows = append(flows, q)
	}
	return flows, nil
}

// Point is one run of a sweep.
type Point struct {
	Airflow        float64 // m3/h
	Value          float64 // criterion value
	MaxTemperature float64 // degree C
	SolidsDegraded float64 // kg
	FinalMoisture  float64 // %
	FinalCNRatio   float64
	Result         biodrying.Result
}

// Report is the outcome of a sweep.
type Report struct {
	Criterion Criterion
	Points    []Point
	Optimal   int // index into Points
}

// Best returns the optimal point.
func (r Report) Best() Point {
	return r.Points[r.Optimal]
}

// Options configures a sweep.
type Options struct {
	// Workers bounds the number of concurrent runs; 0 means GOMAXPROCS.
	Workers int
	Log     logrus.FieldLogger
}

/*
Run the scenario once per airflow.

	Args:
	    ctx: cancels outstanding runs
	    base: configuration shared by every run; its Airflow is replaced
	    airflows: airflows to evaluate, m3/h
	    c: criterion
	    opts: sweep options

	Returns:
	    report with one point per airflow, in the order given
*/
func Run(ctx context.Context, base biodrying.ProcessConfig, airflows []float64, c Criterion, opts Options) (Report, error) {
	if len(airflows) == 0 {
		return Report{}, fmt.Errorf("sweep: no airflows to evaluate")
	}
	if c < MaxTemperature || c > FinalCNRatio {
		return Report{}, fmt.Errorf("sweep: invalid criterion %v", c)
	}

	log := opts.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	points := make([]Point, len(airflows))
	comps := compositions(base)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, q := range airflows {
		i, q := i, q
		eg.Go(func() error {
			cfg := base
			cfg.Airflow = q

			r, err := biodrying.Run(egCtx, cfg)
			if err != nil {
				return fmt.Errorf("sweep: airflow %g: %w", q, err)
			}

			last := r.Len() - 1
			cn := CNRatio(r.Solids, comps)
			points[i] = Point{
				Airflow:        q,
				Value:          c.Evaluate(r, cfg, q),
				MaxTemperature: MaxTemperature.Evaluate(r, cfg, q),
				SolidsDegraded: r.Solids[0] - r.Solids[last],
				FinalMoisture:  r.MoistureFraction[last],
				FinalCNRatio:   cn[len(cn)-1],
				Result:         r,
			}
			log.WithFields(logrus.Fields{"airflow": q, c.String(): points[i].Value}).Info("sweep point calculated")
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Report{}, err
	}

	optimal := 0
	for i := 1; i < len(points); i++ {
		if c.better(points[i].Value, points[optimal].Value) {
			optimal = i
		}
	}

	return Report{Criterion: c, Points: points, Optimal: optimal}, nil
}
