package export

import (
	"fmt"
	"io"

	"biodrying"
	"biodrying/sweep"

	"github.com/gocarina/gocsv"
)

// Row is one hour of a result as written to CSV.
type Row struct {
	Time             float64 `csv:"time_h"`
	Temperature      float64 `csv:"temperature_c"`
	Moisture         float64 `csv:"moisture_kg"`
	MoistureFraction float64 `csv:"moisture_fraction_pct"`
	Solids           float64 `csv:"solids_kg"`
	Biodegradable    float64 `csv:"biodegradable_kg"`
	ExhaustGasMass   float64 `csv:"exhaust_gas_kg"`
	ExhaustGasVolume float64 `csv:"exhaust_gas_m3"`
	RelativeHumidity float64 `csv:"relative_humidity_pct"`
	CO2              float64 `csv:"co2_kg"`
	O2               float64 `csv:"o2_kg"`
	NH3              float64 `csv:"nh3_kg"`
}

// Rows transposes a result into rows.
func Rows(r biodrying.Result) []*Row {
	rows := make([]*Row, r.Len())
	for n := range rows {
		rows[n] = &Row{
			Time:             r.Times[n],
			Temperature:      r.Temperatures[n],
			Moisture:         r.Moisture[n],
			MoistureFraction: r.MoistureFraction[n],
			Solids:           r.Solids[n],
			Biodegradable:    r.Biodegradable[n],
			ExhaustGasMass:   r.ExhaustGasMass[n],
			ExhaustGasVolume: r.ExhaustGasVolume[n],
			RelativeHumidity: r.RelativeHumidity[n],
			CO2:              r.CO2[n],
			O2:               r.O2[n],
			NH3:              r.NH3[n],
		}
	}
	return rows
}

// WriteCSV writes the hourly rows of a result.
func WriteCSV(w io.Writer, r biodrying.Result) error {
	if err := gocsv.Marshal(Rows(r), w); err != nil {
		return fmt.Errorf("export: writing result csv: %w", err)
	}
	return nil
}

// SweepRow is one airflow of a sweep as written to CSV.
type SweepRow struct {
	Airflow        float64 `csv:"airflow_m3h"`
	Value          float64 `csv:"criterion_value"`
	MaxTemperature float64 `csv:"max_temperature_c"`
	SolidsDegraded float64 `csv:"solids_degraded_kg"`
	FinalMoisture  float64 `csv:"final_moisture_pct"`
	FinalCNRatio   float64 `csv:"final_cn_ratio"`
	Optimal        bool    `csv:"optimal"`
}

// WriteSweepCSV writes one row per airflow of a sweep report.
func WriteSweepCSV(w io.Writer, rep sweep.Report) error {
	rows := make([]*SweepRow, len(rep.Points))
	for i, p := range rep.Points {
		rows[i] = &SweepRow{
			Airflow:        p.Airflow,
			Value:          p.Value,
			MaxTemperature: p.MaxTemperature,
			SolidsDegraded: p.SolidsDegraded,
			FinalMoisture:  p.FinalMoisture,
			FinalCNRatio:   p.FinalCNRatio,
			Optimal:        i == rep.Optimal,
		}
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("export: writing sweep csv: %w", err)
	}
	return nil
}
