package biodrying

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Defaults substituted by Normalize for missing or unparseable fields.
const (
	DefaultHRT                = 1080
	DefaultAirflow            = 10.0
	DefaultOnTime             = 1.0
	DefaultOffTime            = 0.5
	DefaultAmbientTemperature = 20.0
	DefaultRelativeHumidity   = 60.0
	DefaultWaterFlow          = 0.0
	DefaultWaterTemperature   = 20.0
	DefaultAltitude           = 0.0
	DefaultHeatOfDegradation  = 16000.0
	DefaultBulkDensity        = 1000.0

	DefaultMassFlow              = 1000.0
	DefaultSolidsFraction        = 50.0
	DefaultVolatileFraction      = 80.0
	DefaultBiodegradableFraction = 70.0
	DefaultFastFraction          = 60.0
	DefaultFastRate20            = 0.05
	DefaultSlowRate20            = 0.005
	DefaultHeatCapacity          = 0.9
	DefaultSubstrateTemperature  = 20.0
)

// MaxHRT is the longest retention time accepted, h. Ten years of hourly
// steps.
const MaxHRT = 87600

// DefaultComposition is the CHON formula used for a substrate without one.
var DefaultComposition = Composition{C: 4.43, H: 6.5, O: 2.2, N: 0.3}

// Composition is the elemental formula C_a H_b O_c N_d of a substrate.
type Composition struct {
	C float64 `yaml:"c"`
	H float64 `yaml:"h"`
	O float64 `yaml:"o"`
	N float64 `yaml:"n"`
}

// Denominator returns the molar mass of the formula, 12a+b+16c+14d.
func (c Composition) Denominator() float64 {
	return 12.0*c.C + c.H + 16.0*c.O + 14.0*c.N
}

// SubstrateSpec is one normalized feed stream.
type SubstrateSpec struct {
	Name                   string
	MassFlow               float64 // kg/h
	SolidsFraction         float64 // total solids, %
	VolatileSolidsFraction float64 // volatile share of solids, %
	BiodegradableFraction  float64 // biodegradable share of volatile solids, %
	FastFraction           float64 // fast share of biodegradable volatile solids, %
	FastRate20             float64 // 1/d at 20 degree C
	SlowRate20             float64 // 1/d at 20 degree C
	HeatCapacity           float64 // kJ/kg K
	Composition            Composition
	Temperature            float64 // degree C
}

// MoistureFraction returns 100 - SolidsFraction.
func (s SubstrateSpec) MoistureFraction() float64 { return 100.0 - s.SolidsFraction }

// AshFraction returns 100 - VolatileSolidsFraction.
func (s SubstrateSpec) AshFraction() float64 { return 100.0 - s.VolatileSolidsFraction }

// NonBiodegradableFraction returns 100 - BiodegradableFraction.
func (s SubstrateSpec) NonBiodegradableFraction() float64 { return 100.0 - s.BiodegradableFraction }

// SlowFraction returns 100 - FastFraction.
func (s SubstrateSpec) SlowFraction() float64 { return 100.0 - s.FastFraction }

// ProcessConfig is a fully normalized run configuration.
type ProcessConfig struct {
	Substrates         []SubstrateSpec
	HRT                int     // hydraulic retention time, h
	Airflow            float64 // m3/h
	Alternating        bool
	OnTime             float64 // h
	OffTime            float64 // h
	AmbientTemperature float64 // degree C
	RelativeHumidity   float64 // %
	WaterFlow          float64 // kg/h
	WaterTemperature   float64 // degree C
	Altitude           float64 // m
	HeatOfDegradation  float64 // kJ/kg of degraded biodegradable volatile solids
	BulkDensity        float64 // kg/m3
	AmbientProfile     []AmbientPoint
}

// RawSubstrate is a substrate as entered by a user. Numeric fields accept
// numbers or strings.
type RawSubstrate struct {
	Name                   string `yaml:"name" json:"name"`
	MassFlow               any    `yaml:"mass_flow" json:"mass_flow"`
	SolidsFraction         any    `yaml:"solids_fraction" json:"solids_fraction"`
	VolatileSolidsFraction any    `yaml:"volatile_solids_fraction" json:"volatile_solids_fraction"`
	BiodegradableFraction  any    `yaml:"biodegradable_fraction" json:"biodegradable_fraction"`
	FastFraction           any    `yaml:"fast_fraction" json:"fast_fraction"`
	FastRate20             any    `yaml:"fast_rate" json:"fast_rate"`
	SlowRate20             any    `yaml:"slow_rate" json:"slow_rate"`
	HeatCapacity           any    `yaml:"heat_capacity" json:"heat_capacity"`
	Temperature            any    `yaml:"temperature" json:"temperature"`
	Composition            []any  `yaml:"composition" json:"composition"` // C, H, O, N
}

// RawProcessConfig is the user-facing scenario before normalization.
type RawProcessConfig struct {
	Substrates         []RawSubstrate `yaml:"substrates" json:"substrates"`
	HRT                any            `yaml:"hrt" json:"hrt"`
	Airflow            any            `yaml:"airflow" json:"airflow"`
	Alternating        any            `yaml:"alternating" json:"alternating"`
	OnTime             any            `yaml:"on_time" json:"on_time"`
	OffTime            any            `yaml:"off_time" json:"off_time"`
	AmbientTemperature any            `yaml:"ambient_temperature" json:"ambient_temperature"`
	RelativeHumidity   any            `yaml:"relative_humidity" json:"relative_humidity"`
	WaterFlow          any            `yaml:"water_flow" json:"water_flow"`
	WaterTemperature   any            `yaml:"water_temperature" json:"water_temperature"`
	TotalMass          any            `yaml:"total_mass" json:"total_mass"`
	Altitude           any            `yaml:"altitude" json:"altitude"`
	HeatOfDegradation  any            `yaml:"heat_of_degradation" json:"heat_of_degradation"`
	BulkDensity        any            `yaml:"bulk_density" json:"bulk_density"`
	AmbientProfile     []AmbientPoint `yaml:"ambient_profile" json:"ambient_profile"`
}

// ReadRawConfig decodes a YAML or JSON scenario.
func ReadRawConfig(r io.Reader) (RawProcessConfig, error) {
	var raw RawProcessConfig
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return raw, nil
		}
		return raw, fmt.Errorf("biodrying: decoding scenario: %w", err)
	}
	return raw, nil
}
