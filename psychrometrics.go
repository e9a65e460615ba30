package biodrying

import "math"

/*
Compute the saturation vapor pressure.

	Args:
	    theta: air temperature, degree C

	Returns:
	    saturation vapor pressure, Pa

	Notes:
	    Antoine-type correlation in bar, converted to Pa.
*/
func SaturationVaporPressure(theta float64) float64 {
	return math.Exp(11.9-3990.0/(234.0+theta)) * 1e5
}

/*
Compute the vapor pressure of moist air.

	Args:
	    theta: air temperature, degree C
	    rh: relative humidity, %

	Returns:
	    vapor pressure, Pa
*/
func VaporPressure(theta, rh float64) float64 {
	return SaturationVaporPressure(theta) * rh / 100.0
}

/*
Compute the barometric pressure at the given altitude.

	Args:
	    z: altitude above sea level, m
	    theta: ambient temperature, degree C

	Returns:
	    barometric pressure, Pa
*/
func BarometricPressure(z, theta float64) float64 {
	return atmosphericPressure * math.Exp(-molarMassAir*gravity*z/(gasConstant*(theta+kelvinOffset)))
}

/*
Compute the latent heat of vaporization of water.

	Args:
	    theta: water temperature, degree C

	Returns:
	    latent heat, kJ/kg
*/
func LatentHeat(theta float64) float64 {
	return (1033.7 - 0.5683*theta) * 2.326
}

// RelativeHumidity returns p_v / p_vs in %, or 0 when p_vs is not positive.
func RelativeHumidity(pv, pvs float64) float64 {
	if pvs <= 0.0 {
		return 0.0
	}
	return pv / pvs * 100.0
}

/*
Compute the mass flow of dry air carried by an air stream.

	Args:
	    p: barometric pressure, Pa
	    pv: vapor pressure, Pa
	    q: volumetric airflow, m3/h
	    theta: air temperature, degree C

	Returns:
	    dry air mass flow, kg/h
*/
func dryAirMassFlow(p, pv, q, theta float64) float64 {
	if q <= 0.0 {
		return 0.0
	}
	return molarMassAir * (p - pv) * q / (gasConstant * (theta + kelvinOffset))
}

/*
Compute the mass flow of water vapor carried by an air stream.

	Args:
	    pv: vapor pressure, Pa
	    q: volumetric airflow, m3/h
	    theta: air temperature, degree C

	Returns:
	    vapor mass flow, kg/h
*/
func vaporMassFlow(pv, q, theta float64) float64 {
	if q <= 0.0 {
		return 0.0
	}
	return molarMassWater * pv * q / (gasConstant * (theta + kelvinOffset))
}

// outletVaporPressure moves the inlet vapor pressure toward saturation at the
// process temperature by the moisture factor f1, never exceeding saturation.
func outletVaporPressure(pvIn, pvsOut, f1 float64) float64 {
	return math.Min(pvIn+(pvsOut-pvIn)*f1, pvsOut)
}
