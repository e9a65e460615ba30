package sweep

import (
	"context"
	"testing"

	"biodrying"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func baseConfig() biodrying.ProcessConfig {
	return biodrying.ProcessConfig{
		Substrates: []biodrying.SubstrateSpec{{
			Name:                   "sludge",
			MassFlow:               1000.0,
			SolidsFraction:         50.0,
			VolatileSolidsFraction: 80.0,
			BiodegradableFraction:  70.0,
			FastFraction:           60.0,
			FastRate20:             0.05,
			SlowRate20:             0.005,
			HeatCapacity:           1.0,
			Composition:            biodrying.DefaultComposition,
			Temperature:            20.0,
		}},
		HRT:                48,
		Airflow:            10.0,
		AmbientTemperature: 20.0,
		RelativeHumidity:   60.0,
		HeatOfDegradation:  biodrying.DefaultHeatOfDegradation,
		BulkDensity:        biodrying.DefaultBulkDensity,
	}
}

func TestAirflows(t *testing.T) {
	flows, err := Airflows(10, 100, 10)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, flows)

	flows, err = Airflows(0, 1, 0.4)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.4, 0.8}, flows, 1e-12)

	_, err = Airflows(10, 10, 1)
	assert.Error(t, err)
	_, err = Airflows(20, 10, 1)
	assert.Error(t, err)
	_, err = Airflows(0, 10, 0)
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	flows := []float64{0, 5, 20, 60}
	rep, err := Run(context.Background(), baseConfig(), flows, SolidsDegraded, Options{Workers: 2})
	require.NoError(t, err)

	require.Len(t, rep.Points, len(flows))
	assert.Equal(t, SolidsDegraded, rep.Criterion)
	for i, p := range rep.Points {
		assert.Equal(t, flows[i], p.Airflow, "points keep the airflow order")
		assert.Equal(t, 49, p.Result.Len())
		assert.Equal(t, p.SolidsDegraded, p.Value)
		assert.Greater(t, p.SolidsDegraded, 0.0)
	}

	best := rep.Best()
	for _, p := range rep.Points {
		assert.GreaterOrEqual(t, best.Value, p.Value)
	}
}

func TestRunMatchesSingleRuns(t *testing.T) {
	base := baseConfig()
	rep, err := Run(context.Background(), base, []float64{15, 30}, MaxTemperature, Options{})
	require.NoError(t, err)

	for _, p := range rep.Points {
		cfg := base
		cfg.Airflow = p.Airflow
		r, err := biodrying.Run(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, r, p.Result)
		assert.Equal(t, p.MaxTemperature, p.Value)
	}
}

func TestRunClosestToTarget(t *testing.T) {
	rep, err := Run(context.Background(), baseConfig(), []float64{0, 10, 40}, FinalMoisture, Options{Workers: 1})
	require.NoError(t, err)

	best := rep.Best()
	for _, p := range rep.Points {
		assert.LessOrEqual(t, abs(best.FinalMoisture-IdealMoistureFraction), abs(p.FinalMoisture-IdealMoistureFraction))
	}
}

func TestRunErrors(t *testing.T) {
	_, err := Run(context.Background(), baseConfig(), nil, MaxTemperature, Options{})
	assert.Error(t, err)

	_, err = Run(context.Background(), baseConfig(), []float64{10}, Criterion(0), Options{})
	assert.Error(t, err)

	cfg := baseConfig()
	cfg.Substrates = nil
	_, err = Run(context.Background(), cfg, []float64{10, 20}, MaxTemperature, Options{})
	assert.ErrorIs(t, err, biodrying.ErrNoSubstrates)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, baseConfig(), []float64{10, 20, 30}, MaxTemperature, Options{Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
