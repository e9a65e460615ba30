package sweep

import (
	"fmt"
	"math"
	"strings"

	"biodrying"

	"gonum.org/v1/gonum/floats"
)

// Criterion selects the quantity a sweep optimizes.
type Criterion int

const (
	MaxTemperature Criterion = iota + 1
	SolidsDegraded
	FinalMoisture
	DegradationPerEnergy
	FinalCNRatio
)

// Targets of the closest-to criteria.
const (
	IdealMoistureFraction = 60.0 // %
	IdealCNRatio          = 25.0
)

var criterionNames = [...]string{"max-temperature", "solids-degraded", "final-moisture", "degradation-per-energy", "final-cn-ratio"}

// Criteria lists every criterion.
func Criteria() []Criterion {
	return []Criterion{MaxTemperature, SolidsDegraded, FinalMoisture, DegradationPerEnergy, FinalCNRatio}
}

// String returns the name of the criterion.
func (c Criterion) String() string {
	if c < MaxTemperature || c > FinalCNRatio {
		return fmt.Sprintf("Criterion(%d)", int(c))
	}
	return criterionNames[c-1]
}

// ParseCriterion returns the criterion with the given name.
func ParseCriterion(s string) (Criterion, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range criterionNames {
		if s == name {
			return Criterion(i + 1), nil
		}
	}
	return 0, fmt.Errorf("sweep: unknown criterion %q (want one of %s)", s, strings.Join(criterionNames[:], ", "))
}

/*
Evaluate the criterion on a run.

	Args:
	    r: run result
	    cfg: configuration of the run
	    airflow: airflow of the run, m3/h

	Returns:
	    criterion value
*/
func (c Criterion) Evaluate(r biodrying.Result, cfg biodrying.ProcessConfig, airflow float64) float64 {
	if r.Len() == 0 {
		return 0.0
	}
	last := r.Len() - 1

	switch c {
	case MaxTemperature:
		return floats.Max(r.Temperatures)
	case SolidsDegraded:
		return r.Solids[0] - r.Solids[last]
	case FinalMoisture:
		return r.MoistureFraction[last]
	case DegradationPerEnergy:
		energy := airflow * float64(cfg.HRT)
		if energy <= 0.0 {
			return 0.0
		}
		return (r.Solids[0] - r.Solids[last]) / energy
	case FinalCNRatio:
		cn := CNRatio(r.Solids, compositions(cfg))
		return cn[len(cn)-1]
	default:
		return 0.0
	}
}

// better reports whether a beats b. Ties keep the earlier point.
func (c Criterion) better(a, b float64) bool {
	switch c {
	case FinalMoisture:
		return math.Abs(a-IdealMoistureFraction) < math.Abs(b-IdealMoistureFraction)
	case FinalCNRatio:
		return math.Abs(a-IdealCNRatio) < math.Abs(b-IdealCNRatio)
	default:
		return a > b
	}
}

func compositions(cfg biodrying.ProcessConfig) []biodrying.Composition {
	comps := make([]biodrying.Composition, len(cfg.Substrates))
	for i, s := range cfg.Substrates {
		comps[i] = s.Composition
	}
	return comps
}
