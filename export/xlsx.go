package export

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx"
)

// Sheet names of a run workbook.
const (
	ParametersSheet = "Parameters"
	SubstratesSheet = "Substrates"
	ResultsSheet    = "Results"
)

var resultHeader = []string{
	"time_h", "temperature_c", "moisture_kg", "moisture_fraction_pct", "solids_kg", "biodegradable_kg",
	"exhaust_gas_kg", "exhaust_gas_m3", "relative_humidity_pct", "co2_kg", "o2_kg", "nh3_kg",
}

func addStringRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}

func addFloatRow(sheet *xlsx.Sheet, values ...float64) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetFloat(v)
	}
}

func addParameter(sheet *xlsx.Sheet, name string, value any) {
	row := sheet.AddRow()
	row.AddCell().SetString(name)
	cell := row.AddCell()
	switch v := value.(type) {
	case float64:
		cell.SetFloat(v)
	case int:
		cell.SetInt(v)
	case bool:
		cell.SetBool(v)
	default:
		cell.SetString(fmt.Sprint(v))
	}
}

// Workbook builds a spreadsheet holding the parameters, the substrates and
// the hourly results of a run.
func Workbook(run Run) (*xlsx.File, error) {
	file := xlsx.NewFile()

	params, err := file.AddSheet(ParametersSheet)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	cfg := run.Config
	addParameter(params, "id", run.ID)
	addParameter(params, "name", run.Name)
	addParameter(params, "hrt_h", cfg.HRT)
	addParameter(params, "airflow_m3h", cfg.Airflow)
	addParameter(params, "alternating", cfg.Alternating)
	addParameter(params, "aeration_mode", cfg.AerationMode().String())
	addParameter(params, "on_time_h", cfg.OnTime)
	addParameter(params, "off_time_h", cfg.OffTime)
	addParameter(params, "ambient_temperature_c", cfg.AmbientTemperature)
	addParameter(params, "relative_humidity_pct", cfg.RelativeHumidity)
	addParameter(params, "water_flow_kgh", cfg.WaterFlow)
	addParameter(params, "water_temperature_c", cfg.WaterTemperature)
	addParameter(params, "altitude_m", cfg.Altitude)
	addParameter(params, "heat_of_degradation_kjkg", cfg.HeatOfDegradation)
	addParameter(params, "bulk_density_kgm3", cfg.BulkDensity)
	addParameter(params, "process_volume_m3", run.Result.ProcessVolume)

	subs, err := file.AddSheet(SubstratesSheet)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	addStringRow(subs, "name", "mass_flow_kgh", "solids_pct", "volatile_solids_pct", "biodegradable_pct",
		"fast_pct", "fast_rate_1d", "slow_rate_1d", "heat_capacity_kjkgk", "temperature_c", "c", "h", "o", "n")
	for _, s := range cfg.Substrates {
		row := subs.AddRow()
		row.AddCell().SetString(s.Name)
		for _, v := range []float64{
			s.MassFlow, s.SolidsFraction, s.VolatileSolidsFraction, s.BiodegradableFraction,
			s.FastFraction, s.FastRate20, s.SlowRate20, s.HeatCapacity, s.Temperature,
			s.Composition.C, s.Composition.H, s.Composition.O, s.Composition.N,
		} {
			row.AddCell().SetFloat(v)
		}
	}

	results, err := file.AddSheet(ResultsSheet)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	addStringRow(results, resultHeader...)
	for _, r := range Rows(run.Result) {
		addFloatRow(results, r.Time, r.Temperature, r.Moisture, r.MoistureFraction, r.Solids, r.Biodegradable,
			r.ExhaustGasMass, r.ExhaustGasVolume, r.RelativeHumidity, r.CO2, r.O2, r.NH3)
	}

	return file, nil
}

// WriteXLSX writes the workbook of a run.
func WriteXLSX(w io.Writer, run Run) error {
	file, err := Workbook(run)
	if err != nil {
		return err
	}
	if err := file.Write(w); err != nil {
		return fmt.Errorf("export: writing xlsx: %w", err)
	}
	return nil
}
