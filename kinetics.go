package biodrying

import "math"

/*
Correct a first-order rate constant for temperature.

	Args:
	    k20: rate constant at 20 degree C, 1/d
	    theta: process temperature, degree C

	Returns:
	    rate constant at theta, 1/d

	Notes:
	    Activity rises by 6.6 %/K and collapses above ~60 degree C; the result
	    is never negative.
*/
func RateAtTemperature(k20, theta float64) float64 {
	return math.Max(0.0, k20*(math.Pow(1.066, theta-20.0)-math.Pow(1.21, theta-60.0)))
}

// Inhibition holds the multiplicative rate factors of one step.
type Inhibition struct {
	Moisture     float64 // F1, -
	FreeAirSpace float64 // F2, -
	Oxygen       float64 // FO2, -
}

/*
Compute the inhibition factors from the aggregate state of the pile.

	Args:
	    fs: solids fraction, %
	    fh: moisture fraction, %
	    fvs: volatile share of solids, %

	Returns:
	    inhibition factors
*/
func NewInhibition(fs, fh, fvs float64) Inhibition {
	f1 := 1.0 / (math.Exp(-17.684*(1.0-fs/100.0)+7.0622) + 1.0)
	f2 := 1.0 / (math.Exp(-23.675*FreeAirSpace(fs, fh, fvs)+3.4945) + 1.0)
	return Inhibition{
		Moisture:     f1,
		FreeAirSpace: f2,
		Oxygen:       o2Air / (o2Air + o2HalfSaturation),
	}
}

// Factor returns F1·F2·FO2.
func (f Inhibition) Factor() float64 {
	return f.Moisture * f.FreeAirSpace * f.Oxygen
}

/*
Compute the free air space of the pile.

	Args:
	    fs: solids fraction, %
	    fh: moisture fraction, %
	    fvs: volatile share of solids, %

	Returns:
	    free air space, -

	Notes:
	    Gm is the specific gravity of the solids, volatile matter at 1.0 and
	    ash at 2.5.
*/
func FreeAirSpace(fs, fh, fvs float64) float64 {
	gm := 1.0 / ((fvs/100.0)/1.0 + (1.0-fvs/100.0)/2.5)
	return 1.0 - ((particleDensity*fs/100.0)/(gm*waterDensity) - (particleDensity * (fh / 100.0) / waterDensity))
}

// Decay advances a pool by one hour with the implicit first-order update
// pool/(1 + k/24), k in 1/d.
func Decay(pool, k float64) float64 {
	return pool / (1.0 + k/24.0)
}

// Degradation is the outcome of one hour of kinetics over all substrates.
type Degradation struct {
	Degraded []float64 // per substrate, kg
	Total    float64   // kg
	Yields            // system byproducts, kg
}

// degrade advances every substrate pool by one hour at temperature theta.
// The returned pools are a new slice; the input is not modified.
func degrade(pools []SubstratePool, specs []SubstrateSpec, theta float64, inh Inhibition) ([]SubstratePool, Degradation) {
	f := inh.Factor()
	next := make([]SubstratePool, len(pools))
	d := Degradation{Degraded: make([]float64, len(pools))}

	for i, p := range pools {
		kFast := RateAtTemperature(specs[i].FastRate20, theta) * f
		kSlow := RateAtTemperature(specs[i].SlowRate20, theta) * f

		next[i] = SubstratePool{
			Ash:              p.Ash,
			NonBiodegradable: p.NonBiodegradable,
			Fast:             Decay(p.Fast, kFast),
			Slow:             Decay(p.Slow, kSlow),
		}

		degraded := p.Biodegradable() - next[i].Biodegradable()
		d.Degraded[i] = degraded
		d.Total += degraded
		d.Yields = d.Yields.Add(YieldsFor(specs[i].Composition).Scale(degraded))
	}

	return next, d
}
