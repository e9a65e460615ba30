package biodrying

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScheduleConstant(t *testing.T) {
	cfg := scenarioConfig()
	cfg.HRT = 5
	cfg.WaterFlow = 2.0

	scd := NewSchedule(cfg)
	assert.Equal(t, 5, scd.Len())
	assert.Equal(t, []float64{10, 10, 10, 10, 10}, scd.Column(AirflowColumn))
	assert.Equal(t, []float64{20, 20, 20, 20, 20}, scd.Column(AmbientTemperatureColumn))
	assert.Equal(t, []float64{60, 60, 60, 60, 60}, scd.Column(RelativeHumidityColumn))
	assert.Equal(t, []float64{2, 2, 2, 2, 2}, scd.Column(WaterFlowColumn))
	assert.Equal(t, 20.0, scd.WaterTemperature(4))
}

func TestNewScheduleAlternating(t *testing.T) {
	tests := []struct {
		name    string
		hrt     int
		on, off float64
		want    []float64
	}{
		{name: "one hour on, one hour off", hrt: 4, on: 1, off: 1, want: []float64{10, 0, 10, 0}},
		{name: "fractional cycle", hrt: 5, on: 0.5, off: 1, want: []float64{10, 0, 0, 10, 0}},
		{name: "default cycle", hrt: 4, on: 1, off: 0.5, want: []float64{10, 0, 10, 10}},
		{name: "always off", hrt: 3, on: 0, off: 1, want: []float64{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := scenarioConfig()
			cfg.HRT = tt.hrt
			cfg.Alternating = true
			cfg.OnTime, cfg.OffTime = tt.on, tt.off

			assert.Equal(t, tt.want, NewSchedule(cfg).Column(AirflowColumn))
		})
	}
}

func TestNewScheduleAmbientProfile(t *testing.T) {
	cfg := scenarioConfig()
	cfg.HRT = 4
	cfg.AmbientProfile = []AmbientPoint{
		{Hour: 0, AmbientTemperature: 10, RelativeHumidity: 90},
		{Hour: 1, AmbientTemperature: 12, RelativeHumidity: 85},
	}

	scd := NewSchedule(cfg)
	assert.Equal(t, []float64{10, 12, 12, 12}, scd.Column(AmbientTemperatureColumn))
	assert.Equal(t, []float64{90, 85, 85, 85}, scd.Column(RelativeHumidityColumn))
}

func TestScheduleColumnString(t *testing.T) {
	assert.Equal(t, "airflow", AirflowColumn.String())
	assert.Equal(t, "water_temperature", WaterTemperatureColumn.String())
}

func TestAerationMode(t *testing.T) {
	cfg := scenarioConfig()
	assert.Equal(t, Continuous, cfg.AerationMode())

	cfg.Alternating = true
	assert.Equal(t, Intermittent, cfg.AerationMode())
	assert.Equal(t, "intermittent", cfg.AerationMode().String())

	cfg.OnTime, cfg.OffTime = 0, 0
	assert.Equal(t, Continuous, cfg.AerationMode())

	assert.True(t, Continuous.IsOn(3, 1, 1))
	assert.False(t, Intermittent.IsOn(3, 1, 1))
	assert.True(t, Intermittent.IsOn(4, 1, 1))
}
