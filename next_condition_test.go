package biodrying

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMoistureNext(t *testing.T) {
	assert.Equal(t, 105.0, getMoistureNext(100.0, 2.0, 3.0, 1.0, 1.0))
	assert.Zero(t, getMoistureNext(1.0, 0.0, 0.0, 0.0, 5.0))
}

func TestGetHeatLoss(t *testing.T) {
	assert.InDelta(t, 9.0*10.0, getHeatLoss(0.0, 30.0, 20.0), 1e-12)
	assert.InDelta(t, (9.0+0.6)*10.0, getHeatLoss(10.0, 30.0, 20.0), 1e-12)
	assert.Less(t, getHeatLoss(10.0, 10.0, 20.0), 0.0)
}

func TestGetTemperatureNext(t *testing.T) {
	assert.InDelta(t, 20.0+10.0*0.15, getTemperatureNext(20.0, 1000.0, 100.0), 1e-12)
	assert.InDelta(t, 20.0-10.0*(1.0-0.935), getTemperatureNext(20.0, -1000.0, 100.0), 1e-12)
	assert.Equal(t, 20.0, getTemperatureNext(20.0, 1000.0, 0.0))
}

func TestGetHeatCapacity(t *testing.T) {
	pools := []SubstratePool{{Ash: 10, NonBiodegradable: 20, Fast: 30, Slow: 40}}
	specs := []SubstrateSpec{{HeatCapacity: 0.9}}
	assert.InDelta(t, 100*0.9+50*4.196+10*1.005, getHeatCapacity(pools, specs, 50.0, 10.0), 1e-9)
}

func TestGetExhaustGas(t *testing.T) {
	y := Yields{CO2: 0.44, O2: 0.32, NH3: 0.017}
	assert.InDelta(t, 12.0+0.44+0.017-0.32, getExhaustGasMass(10.0, 12.0, y), 1e-12)
	assert.Zero(t, getExhaustGasMass(0.0, 12.0, y))

	v := getExhaustGasVolume(10.0, 101325.0, 2000.0, 20.0, 12.0, y)
	assert.InEpsilon(t, 8.314*293.0/99325.0*(12.0/0.02896+10.0+1.0-10.0), v, 1e-9)
	assert.Zero(t, getExhaustGasVolume(10.0, 2000.0, 2000.0, 20.0, 12.0, y))
	assert.Zero(t, getExhaustGasVolume(0.0, 101325.0, 2000.0, 20.0, 12.0, y))
}

func TestFractions(t *testing.T) {
	fs, fh, fvs := fractions(400.0, 600.0, 100.0)
	assert.InDelta(t, 40.0, fs, 1e-12)
	assert.InDelta(t, 60.0, fh, 1e-12)
	assert.InDelta(t, 75.0, fvs, 1e-12)

	fs, fh, fvs = fractions(0.0, 0.0, 0.0)
	assert.Zero(t, fs)
	assert.Zero(t, fh)
	assert.Zero(t, fvs)
}

func TestInitializeConditions(t *testing.T) {
	a := scenarioSubstrate()
	b := scenarioSubstrate()
	b.Temperature = 30.0

	c := initializeConditions([]SubstrateSpec{a, b})
	assert.Equal(t, 0, c.State.Step)
	assert.Equal(t, 25.0, c.State.Temperature)
	assert.InDelta(t, 1000.0, c.State.Solids, 1e-9)
	assert.InDelta(t, 1000.0, c.State.Moisture, 1e-9)
	assert.InDelta(t, 50.0, c.State.SolidsFraction, 1e-9)
	assert.InDelta(t, 80.0, c.State.VolatileSolidsFraction, 1e-9)
	assert.InDelta(t, 2*280.0, c.Biodegradable(), 1e-9)

	p := c.Pools[0]
	assert.InDelta(t, 100.0, p.Ash, 1e-9)
	assert.InDelta(t, 120.0, p.NonBiodegradable, 1e-9)
	assert.InDelta(t, 168.0, p.Fast, 1e-9)
	assert.InDelta(t, 112.0, p.Slow, 1e-9)
}
