package biodrying

import (
	"gonum.org/v1/gonum/mat"
)

// ScheduleColumn indexes the hourly series held by a Schedule.
type ScheduleColumn int

const (
	AirflowColumn ScheduleColumn = iota
	AmbientTemperatureColumn
	RelativeHumidityColumn
	WaterFlowColumn
	WaterTemperatureColumn
	numScheduleColumns
)

// String returns the column name.
func (c ScheduleColumn) String() string {
	return [...]string{"airflow", "ambient_temperature", "relative_humidity", "water_flow", "water_temperature"}[c]
}

// Schedule holds the hourly boundary conditions of a run.
type Schedule struct {
	table *mat.Dense // step n, column c, [n, c]
	nStep int
}

/*
Build the hourly schedule of a run.

	Args:
	    cfg: normalized configuration

	Returns:
	    schedule with HRT rows

	Notes:
	    With alternating aeration the airflow is on while (n mod (on+off)) < on,
	    using real-valued modulo so fractional on/off times are honored.
*/
func NewSchedule(cfg ProcessConfig) *Schedule {
	nStep := cfg.HRT
	if nStep < 1 {
		nStep = 1
	}

	table := mat.NewDense(nStep, int(numScheduleColumns), nil)
	mode := cfg.AerationMode()
	for n := 0; n < nStep; n++ {
		q := cfg.Airflow
		if !mode.IsOn(n, cfg.OnTime, cfg.OffTime) {
			q = 0.0
		}

		thetaAmb, rh := cfg.AmbientTemperature, cfg.RelativeHumidity
		if len(cfg.AmbientProfile) > 0 {
			p := ambientAt(cfg.AmbientProfile, n)
			thetaAmb, rh = p.AmbientTemperature, p.RelativeHumidity
		}

		table.Set(n, int(AirflowColumn), q)
		table.Set(n, int(AmbientTemperatureColumn), thetaAmb)
		table.Set(n, int(RelativeHumidityColumn), rh)
		table.Set(n, int(WaterFlowColumn), cfg.WaterFlow)
		table.Set(n, int(WaterTemperatureColumn), cfg.WaterTemperature)
	}

	return &Schedule{table: table, nStep: nStep}
}

// Len returns the number of hourly steps.
func (s *Schedule) Len() int { return s.nStep }

// Airflow returns the airflow at step n, m3/h.
func (s *Schedule) Airflow(n int) float64 { return s.table.At(n, int(AirflowColumn)) }

// AmbientTemperature returns the inlet air temperature at step n, degree C.
func (s *Schedule) AmbientTemperature(n int) float64 {
	return s.table.At(n, int(AmbientTemperatureColumn))
}

// RelativeHumidity returns the inlet air relative humidity at step n, %.
func (s *Schedule) RelativeHumidity(n int) float64 {
	return s.table.At(n, int(RelativeHumidityColumn))
}

// WaterFlow returns the added water at step n, kg/h.
func (s *Schedule) WaterFlow(n int) float64 { return s.table.At(n, int(WaterFlowColumn)) }

// WaterTemperature returns the added water temperature at step n, degree C.
func (s *Schedule) WaterTemperature(n int) float64 {
	return s.table.At(n, int(WaterTemperatureColumn))
}

// Column returns a copy of one hourly series.
func (s *Schedule) Column(c ScheduleColumn) []float64 {
	return mat.Col(nil, int(c), s.table)
}
