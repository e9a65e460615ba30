package sweep

import (
	"testing"

	"biodrying"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCriterion(t *testing.T) {
	for _, c := range Criteria() {
		got, err := ParseCriterion(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCriterion(" Final-CN-Ratio ")
	require.NoError(t, err)
	assert.Equal(t, FinalCNRatio, got)

	_, err = ParseCriterion("fastest")
	assert.Error(t, err)
	assert.Equal(t, "Criterion(9)", Criterion(9).String())
}

func TestEvaluate(t *testing.T) {
	r := biodrying.Result{
		Times:            []float64{0, 1, 2},
		Temperatures:     []float64{20, 45, 40},
		Solids:           []float64{500, 480, 470},
		MoistureFraction: []float64{50, 55, 58},
	}
	cfg := biodrying.ProcessConfig{
		HRT:        2,
		Substrates: []biodrying.SubstrateSpec{{Composition: biodrying.DefaultComposition}},
	}

	assert.Equal(t, 45.0, MaxTemperature.Evaluate(r, cfg, 10))
	assert.Equal(t, 30.0, SolidsDegraded.Evaluate(r, cfg, 10))
	assert.Equal(t, 58.0, FinalMoisture.Evaluate(r, cfg, 10))
	assert.Equal(t, 1.5, DegradationPerEnergy.Evaluate(r, cfg, 10))
	assert.Zero(t, DegradationPerEnergy.Evaluate(r, cfg, 0))

	cn := CNRatio(r.Solids, []biodrying.Composition{biodrying.DefaultComposition})
	assert.Equal(t, cn[2], FinalCNRatio.Evaluate(r, cfg, 10))

	assert.Zero(t, MaxTemperature.Evaluate(biodrying.Result{}, cfg, 10))
}

func TestBetter(t *testing.T) {
	assert.True(t, MaxTemperature.better(60, 55))
	assert.False(t, SolidsDegraded.better(10, 10), "ties keep the earlier point")
	assert.True(t, FinalMoisture.better(62, 50))
	assert.False(t, FinalMoisture.better(45, 70))
	assert.True(t, FinalCNRatio.better(24, 30))
}
