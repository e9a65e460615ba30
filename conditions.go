package biodrying

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SubstratePool is the solids inventory of one substrate, kg.
type SubstratePool struct {
	Ash              float64
	NonBiodegradable float64 // non-biodegradable volatile solids
	Fast             float64 // fast biodegradable volatile solids
	Slow             float64 // slow biodegradable volatile solids
}

// Biodegradable returns the fast plus slow pools.
func (p SubstratePool) Biodegradable() float64 {
	return p.Fast + p.Slow
}

// Solids returns the total solids of the substrate.
func (p SubstratePool) Solids() float64 {
	return p.Ash + p.NonBiodegradable + p.Fast + p.Slow
}

/*
Split a substrate feed into its pools.

	Args:
	    s: substrate

	Returns:
	    (1) solids pools, kg
	    (2) moisture, kg
*/
func newSubstratePool(s SubstrateSpec) (SubstratePool, float64) {
	solids := s.MassFlow * s.SolidsFraction / 100.0
	moisture := s.MassFlow * s.MoistureFraction() / 100.0

	vs := solids * s.VolatileSolidsFraction / 100.0
	bvs := vs * s.BiodegradableFraction / 100.0
	fast := bvs * s.FastFraction / 100.0

	return SubstratePool{
		Ash:              solids - vs,
		NonBiodegradable: vs - bvs,
		Fast:             fast,
		Slow:             bvs - fast,
	}, moisture
}

// SystemState is the aggregate state of the pile at a step boundary.
type SystemState struct {
	Step                   int
	Solids                 float64 // kg
	Moisture               float64 // kg
	Temperature            float64 // degree C
	SolidsFraction         float64 // %
	MoistureFraction       float64 // %
	VolatileSolidsFraction float64 // %
}

/*
Derive the aggregate fractions of the pile.

	Args:
	    solids: total solids, kg
	    moisture: total moisture, kg
	    ash: total ash, kg

	Returns:
	    (1) solids fraction, %
	    (2) moisture fraction, %
	    (3) volatile share of solids, %

	Notes:
	    Zero totals give zero fractions.
*/
func fractions(solids, moisture, ash float64) (float64, float64, float64) {
	var fs, fh, fvs float64
	if total := solids + moisture; total > 0.0 {
		fs = solids / total * 100.0
		fh = moisture / total * 100.0
	}
	if solids > 0.0 {
		fvs = (solids - ash) / solids * 100.0
	}
	return fs, fh, fvs
}

// Conditions is everything carried from one step to the next.
type Conditions struct {
	Pools []SubstratePool
	State SystemState
}

// NewConditions aggregates the pools into a system state.
func NewConditions(step int, pools []SubstratePool, moisture, theta float64) *Conditions {
	solids := make([]float64, len(pools))
	ash := make([]float64, len(pools))
	for i, p := range pools {
		solids[i] = p.Solids()
		ash[i] = p.Ash
	}

	s := floats.Sum(solids)
	fs, fh, fvs := fractions(s, moisture, floats.Sum(ash))
	return &Conditions{
		Pools: pools,
		State: SystemState{
			Step:                   step,
			Solids:                 s,
			Moisture:               moisture,
			Temperature:            theta,
			SolidsFraction:         fs,
			MoistureFraction:       fh,
			VolatileSolidsFraction: fvs,
		},
	}
}

// Biodegradable returns the biodegradable volatile solids over all pools, kg.
func (c *Conditions) Biodegradable() float64 {
	var m float64
	for _, p := range c.Pools {
		m += p.Biodegradable()
	}
	return m
}

// initializeConditions builds the state at step 0. The pile starts at the
// mean substrate temperature.
func initializeConditions(substrates []SubstrateSpec) *Conditions {
	pools := make([]SubstratePool, len(substrates))
	moisture := make([]float64, len(substrates))
	theta := make([]float64, len(substrates))
	for i, s := range substrates {
		pools[i], moisture[i] = newSubstratePool(s)
		theta[i] = s.Temperature
	}

	return NewConditions(0, pools, floats.Sum(moisture), stat.Mean(theta, nil))
}
