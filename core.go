package biodrying

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

type runOptions struct {
	log logrus.FieldLogger
}

// Option configures a run.
type Option func(*runOptions)

// WithLogger sends run progress to log. Runs are silent by default.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *runOptions) {
		o.log = log
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

/*
Simulate a bio-drying run.

	Args:
	    ctx: checked between hourly steps
	    cfg: normalized configuration
	    opts: run options

	Returns:
	    hourly result with HRT+1 rows

	Notes:
	    Run is deterministic and shares no state between calls.
*/
func Run(ctx context.Context, cfg ProcessConfig, opts ...Option) (Result, error) {
	if len(cfg.Substrates) == 0 {
		return Result{}, &ConfigError{Kind: MissingSubstrates, Field: "substrates"}
	}
	if cfg.HRT < 1 || cfg.HRT > MaxHRT {
		return Result{}, &ConfigError{Kind: InvalidRange, Field: "hrt", Value: cfg.HRT}
	}

	o := runOptions{log: discardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log.WithFields(logrus.Fields{"hrt": cfg.HRT, "substrates": len(cfg.Substrates)})

	log.Info("simulation started")

	scd := NewSchedule(cfg)
	recorder := NewRecorder(cfg.HRT)
	sqc := NewSequence(cfg, scd, log)

	c := initializeConditions(cfg.Substrates)
	recorder.recordState(c, scd.RelativeHumidity(0))
	processVolume := getProcessVolume(c.State.Solids, c.State.Moisture, cfg.BulkDensity)

	m := 1
	for n := 0; n < cfg.HRT; n++ {
		if err := ctx.Err(); err != nil {
			return Result{}, &SimulationError{Step: n, Err: err}
		}

		c = sqc.RunTick(c, recorder)

		if n == int(float64(cfg.HRT)/12*float64(m)) {
			log.Infof("%d / 12 calculated.", m)
			m++
		}
	}

	log.WithFields(logrus.Fields{
		"temperature": c.State.Temperature,
		"solids":      c.State.Solids,
		"moisture":    c.State.MoistureFraction,
	}).Info("simulation finished")

	r := recorder.Result()
	r.ProcessVolume = processVolume
	return r, nil
}

// getProcessVolume returns the pile volume in m3, or 0 without a density.
func getProcessVolume(solids, moisture, bulkDensity float64) float64 {
	if bulkDensity <= 0.0 {
		return 0.0
	}
	return (solids + moisture) / bulkDensity
}
