package sweep

import (
	"math"

	"biodrying"
)

// atomic masses, g/mol
const (
	atomicMassC = 12.011
	atomicMassN = 14.007
)

// minNitrogen keeps the ratio finite once nitrogen is exhausted, kg.
const minNitrogen = 0.001

// nitrogenLossRatio is the share of the solids loss fraction applied to
// nitrogen; carbon follows the solids loss one to one.
const nitrogenLossRatio = 0.03

/*
Estimate the carbon to nitrogen ratio over a run.

	Args:
	    solids: total solids series, kg
	    comps: substrate compositions

	Returns:
	    C/N mass ratio per row of solids

	Notes:
	    Each substrate's carbon and nitrogen shares of its C+N mass are applied
	    to the initial solids of the pile. A substrate without nitrogen counts
	    as pure carbon.
*/
func CNRatio(solids []float64, comps []biodrying.Composition) []float64 {
	if len(solids) == 0 {
		return nil
	}
	s0 := solids[0]

	var c0, n0 float64
	for _, comp := range comps {
		cMass := comp.C * atomicMassC
		nMass := comp.N * atomicMassN
		total := cMass + nMass
		if total <= 0.0 {
			continue
		}
		c0 += s0 * cMass / total
		n0 += s0 * nMass / total
	}
	if n0 <= 0.0 {
		n0 = minNitrogen
	}

	ratios := make([]float64, len(solids))
	for i, s := range solids {
		var loss float64
		if s0 > 0.0 {
			loss = (s0 - s) / s0
		}
		c := c0 * (1.0 - loss)
		n := math.Max(n0*(1.0-loss*nitrogenLossRatio), minNitrogen)
		ratios[i] = c / n
	}
	return ratios
}
