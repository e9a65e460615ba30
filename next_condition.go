package biodrying

import "math"

/*
Compute the moisture of the pile after one step.

	Args:
	    mws: moisture at the start of the step, kg
	    produced: metabolic water, kg
	    added: water added, kg
	    vaporIn: vapor carried in by the air, kg
	    vaporOut: vapor carried out by the exhaust, kg

	Returns:
	    moisture, kg (never negative)
*/
func getMoistureNext(mws, produced, added, vaporIn, vaporOut float64) float64 {
	return math.Max(0.0, mws+produced+added+vaporIn-vaporOut)
}

/*
Compute the heat lost through the walls and by convection.

	Args:
	    q: airflow, m3/h
	    theta: process temperature, degree C
	    thetaAmb: inlet air temperature, degree C

	Returns:
	    heat loss, kJ
*/
func getHeatLoss(q, theta, thetaAmb float64) float64 {
	u := wallLossCoefficient * insulationFactor
	if q > 0.0 {
		u += q * aerationLossCoefficient
	}
	return u * (theta - thetaAmb)
}

/*
Compute the heat capacity of the pile contents.

	Args:
	    pools: solids pools, kg, [i]
	    specs: substrates, [i]
	    moisture: water, kg
	    gas: exhaust gas, kg

	Returns:
	    heat capacity, kJ/K
*/
func getHeatCapacity(pools []SubstratePool, specs []SubstrateSpec, moisture, gas float64) float64 {
	var cp float64
	for i, p := range pools {
		cp += p.Solids() * specs[i].HeatCapacity
	}
	return cp + moisture*specificHeatWater + gas*specificHeatAir
}

/*
Compute the temperature after one step.

	Args:
	    theta: temperature at the start of the step, degree C
	    h: available heat, kJ
	    cp: heat capacity, kJ/K

	Returns:
	    temperature, degree C

	Notes:
	    The thermal inertia of the pile passes only (1 - 0.85) of the heating
	    and (1 - 0.85*1.1) of the cooling through in one hour. Without heat
	    capacity the temperature is held.
*/
func getTemperatureNext(theta, h, cp float64) float64 {
	if cp <= 0.0 {
		return theta
	}
	dTheta := h / cp
	if dTheta > 0.0 {
		return theta + dTheta*(1.0-thermalInertia)
	}
	return theta + dTheta*(1.0-thermalInertia*coolingInertiaRatio)
}

/*
Compute the mass of exhaust gas.

	Args:
	    q: airflow, m3/h
	    air: dry air in, kg
	    y: byproducts, kg

	Returns:
	    exhaust gas, kg; zero without airflow
*/
func getExhaustGasMass(q, air float64, y Yields) float64 {
	if q <= 0.0 {
		return 0.0
	}
	return math.Max(0.0, air+y.CO2+y.NH3-y.O2)
}

/*
Compute the volume of exhaust gas at the outlet.

	Args:
	    q: airflow, m3/h
	    p: barometric pressure, Pa
	    pvo: outlet vapor pressure, Pa
	    theta: outlet temperature, degree C
	    air: dry air in, kg
	    y: byproducts, kg

	Returns:
	    exhaust gas, m3; zero without airflow or when the vapor pressure
	    reaches the barometric pressure
*/
func getExhaustGasVolume(q, p, pvo, theta, air float64, y Yields) float64 {
	if q <= 0.0 || p <= pvo {
		return 0.0
	}
	mol := air/molarMassAir + y.CO2/molarMassCO2 + y.NH3/molarMassNH3 - y.O2/molarMassO2
	return math.Max(0.0, gasConstant*(theta+kelvinOffset)/(p-pvo)*mol)
}
