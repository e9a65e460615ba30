package biodrying

import "math"

// Phase is one band of the process-phase heat multiplier table.
type Phase struct {
	Name       string
	UpperBound float64 // exclusive upper bound of t/HRT
	Multiplier float64
}

// PhaseTable maps the elapsed fraction of the run to a heat multiplier. The
// last row covers everything past the previous bound.
var PhaseTable = []Phase{
	{Name: "lag", UpperBound: 0.10, Multiplier: 0.8},
	{Name: "mesophilic", UpperBound: 0.20, Multiplier: 1.5},
	{Name: "early thermophilic", UpperBound: 0.35, Multiplier: 1.2},
	{Name: "thermophilic", UpperBound: 0.65, Multiplier: 0.7},
	{Name: "cooling", UpperBound: 0.85, Multiplier: 0.5},
	{Name: "maturation", UpperBound: math.Inf(1), Multiplier: 0.3},
}

// PhaseAt returns the phase for the elapsed fraction of the run.
func PhaseAt(progress float64) Phase {
	for _, p := range PhaseTable {
		if progress < p.UpperBound {
			return p
		}
	}
	return PhaseTable[len(PhaseTable)-1]
}

// TemperatureHeatFactor damps heat release outside the active range:
// linearly down to 0.2 between 65 and 85 degree C and down to 0.5 below
// 15 degree C.
func TemperatureHeatFactor(theta float64) float64 {
	switch {
	case theta > 65.0:
		return math.Max(0.2, 1.0-(theta-65.0)/20.0)
	case theta < 15.0:
		return math.Max(0.5, theta/15.0)
	default:
		return 1.0
	}
}

// MoistureHeatFactor peaks at 50 % moisture and never drops below 0.3.
func MoistureHeatFactor(fh float64) float64 {
	return math.Max(0.3, 1.0-math.Abs(fh-50.0)/70.0)
}

/*
Compute the heat release multiplier of a step.

	Args:
	    n: step
	    hrt: number of steps
	    theta: process temperature at the start of the step, degree C
	    fh: moisture fraction after the step's moisture balance, %

	Returns:
	    heat factor, -
*/
func HeatFactor(n, hrt int, theta, fh float64) float64 {
	progress := float64(n) / float64(hrt)
	return PhaseAt(progress).Multiplier * TemperatureHeatFactor(theta) * MoistureHeatFactor(fh)
}
