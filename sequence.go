package biodrying

import "github.com/sirupsen/logrus"

// Sequence advances the pile state hour by hour for one configuration.
type Sequence struct {
	cfg   ProcessConfig
	scd   *Schedule
	nStep int
	log   logrus.FieldLogger
}

// NewSequence binds a configuration to its schedule.
func NewSequence(cfg ProcessConfig, scd *Schedule, log logrus.FieldLogger) *Sequence {
	return &Sequence{
		cfg:   cfg,
		scd:   scd,
		nStep: scd.Len(),
		log:   log,
	}
}

// RunTick computes the state at step n+1 from the state c at step n and
// records it.
func (s *Sequence) RunTick(c *Conditions, recorder *Recorder) *Conditions {
	n := c.State.Step

	q := s.scd.Airflow(n)
	thetaAmb := s.scd.AmbientTemperature(n)
	theta := c.State.Temperature

	// ----------- inlet air -----------

	// barometric pressure, Pa
	p := BarometricPressure(s.cfg.Altitude, thetaAmb)

	// inlet vapor pressure, Pa
	pv := VaporPressure(thetaAmb, s.scd.RelativeHumidity(n))

	// dry air and vapor carried in, kg
	air := dryAirMassFlow(p, pv, q, thetaAmb)
	vaporIn := vaporMassFlow(pv, q, thetaAmb)

	// ----------- degradation -----------

	inh := NewInhibition(c.State.SolidsFraction, c.State.MoistureFraction, c.State.VolatileSolidsFraction)
	pools, d := degrade(c.Pools, s.cfg.Substrates, theta, inh)

	// ----------- exhaust vapor -----------

	// saturation and outlet vapor pressure at the process temperature, Pa
	pvso := SaturationVaporPressure(theta)
	pvo := outletVaporPressure(pv, pvso, inh.Moisture)

	// vapor carried out, kg
	vaporOut := vaporMassFlow(pvo, q, theta)

	// ----------- moisture -----------

	moisture := getMoistureNext(c.State.Moisture, d.H2O, s.scd.WaterFlow(n), vaporIn, vaporOut)
	next := NewConditions(n+1, pools, moisture, theta)

	// ----------- energy -----------

	// heat released by degradation, kJ
	hOrg := s.cfg.HeatOfDegradation * d.Total * HeatFactor(n, s.nStep, theta, next.State.MoistureFraction)

	// heat spent on net evaporation, kJ
	hEvap := (vaporOut - vaporIn) * LatentHeat(theta)

	// heat lost to the surroundings, kJ
	hLoss := getHeatLoss(q, theta, thetaAmb)

	gasMass := getExhaustGasMass(q, air, d.Yields)
	cp := getHeatCapacity(pools, s.cfg.Substrates, moisture, gasMass)
	next.State.Temperature = getTemperatureNext(theta, hOrg-hEvap-hLoss, cp)

	gasVolume := getExhaustGasVolume(q, p, pvo, next.State.Temperature, air, d.Yields)

	recorder.recordState(next, RelativeHumidity(pvo, pvso))
	recorder.recordExhaust(n+1, gasMass, gasVolume, d.Yields)

	s.log.WithFields(logrus.Fields{
		"step":        n + 1,
		"temperature": next.State.Temperature,
		"moisture":    next.State.MoistureFraction,
		"degraded":    d.Total,
	}).Debug("step calculated")

	return next
}
