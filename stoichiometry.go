package biodrying

// Yields are byproduct masses. From YieldsFor they are per kg of degraded
// biodegradable volatile solids; after Scale they are kg.
type Yields struct {
	CO2 float64
	O2  float64 // consumed
	NH3 float64
	H2O float64
}

/*
Compute the stoichiometric yields of aerobic oxidation of C_a H_b O_c N_d.

	Args:
	    c: elemental composition

	Returns:
	    CO2, O2, NH3 and H2O per kg degraded, kg/kg

	Notes:
	    C_a H_b O_c N_d + (4a+b-3d-2c)/4 O2 -> a CO2 + d NH3 + (b-3d)/2 H2O.
	    A formula with zero molar mass yields nothing.
*/
func YieldsFor(c Composition) Yields {
	denom := c.Denominator()
	if denom <= 0.0 {
		return Yields{}
	}
	return Yields{
		CO2: 44.0 * c.C / denom,
		O2:  (4.0*c.C + c.H - 3.0*c.N - 2.0*c.O) / 4.0 * 32.0 / denom,
		NH3: 17.0 * c.N / denom,
		H2O: (c.H - 3.0*c.N) / 2.0 * 18.0 / denom,
	}
}

// Scale multiplies every yield by m.
func (y Yields) Scale(m float64) Yields {
	return Yields{CO2: y.CO2 * m, O2: y.O2 * m, NH3: y.NH3 * m, H2O: y.H2O * m}
}

// Add sums two sets of yields.
func (y Yields) Add(o Yields) Yields {
	return Yields{CO2: y.CO2 + o.CO2, O2: y.O2 + o.O2, NH3: y.NH3 + o.NH3, H2O: y.H2O + o.H2O}
}
