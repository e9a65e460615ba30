package biodrying

const (
	// standard atmospheric pressure at sea level, Pa
	atmosphericPressure = 101325.0

	// universal gas constant, J/mol K
	gasConstant = 8.314

	// gravitational acceleration, m/s2
	gravity = 9.81

	// molar mass of dry air, kg/mol
	molarMassAir = 0.02896

	// molar mass of water, kg/mol
	molarMassWater = 0.018015

	// molar masses of the gaseous byproducts, kg/mol
	molarMassCO2 = 0.044
	molarMassNH3 = 0.017
	molarMassO2  = 0.032

	// offset between degree C and K
	kelvinOffset = 273.0

	// specific heat of liquid water, kJ/kg K
	specificHeatWater = 4.196

	// specific heat of dry air, kJ/kg K
	specificHeatAir = 1.005

	// density of the solid particles and of water, kg/m3
	particleDensity = 1000.0
	waterDensity    = 1000.0

	// oxygen fraction of air, % (O2 inhibition factor is o2Air/(o2Air+o2HalfSaturation))
	o2Air            = 21.0
	o2HalfSaturation = 2.0

	// wall heat loss: base coefficient, kJ/h K, and insulation factor, -
	wallLossCoefficient = 15.0
	insulationFactor    = 0.6

	// additional convective loss per unit airflow, kJ/h K per m3/h
	aerationLossCoefficient = 0.06

	// thermal inertia of the pile, -
	thermalInertia = 0.85

	// cooling is damped harder than heating by this factor, -
	coolingInertiaRatio = 1.1
)
