package biodrying

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
	"gonum.org/v1/gonum/floats"
)

// ParseNumber converts a user-entered value to a float64. Strings are read
// permissively: an optional leading minus sign, the digits and the first
// decimal point are kept and every other character is dropped, so "25 °C"
// reads as 25 and "1,080h" as 1080.
func ParseNumber(v any) (float64, error) {
	s, ok := v.(string)
	if !ok {
		return finite(cast.ToFloat64E(v))
	}

	s = strings.TrimSpace(s)
	var b strings.Builder
	seenPoint := false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenPoint:
			seenPoint = true
			b.WriteRune(r)
		case r == '-' && i == 0:
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if strings.Trim(cleaned, "-.") == "" {
		return 0, fmt.Errorf("biodrying: %q is not a number", s)
	}
	return finite(cast.ToFloat64E(cleaned))
}

// parseStrictNumber accepts numbers and strings that are numbers after
// trimming surrounding space.
func parseStrictNumber(v any) (float64, error) {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	return finite(cast.ToFloat64E(v))
}

func finite(x float64, err error) (float64, error) {
	if err != nil {
		return 0, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("biodrying: %v is not finite", x)
	}
	return x, nil
}

// check repairs x for the lenient path and reports whether x was acceptable.
type check func(x, def float64) (float64, bool)

func percent(x, _ float64) (float64, bool) {
	return math.Max(0.0, math.Min(100.0, x)), x >= 0.0 && x <= 100.0
}

func nonNegative(x, def float64) (float64, bool) {
	if x < 0.0 {
		return def, false
	}
	return x, true
}

func positive(x, def float64) (float64, bool) {
	if x <= 0.0 {
		return def, false
	}
	return x, true
}

func unbounded(x, _ float64) (float64, bool) { return x, true }

type normalizer struct {
	strict bool
	err    error
}

func (nz *normalizer) fail(kind ConfigErrorKind, field string, v any) {
	if nz.err == nil {
		nz.err = &ConfigError{Kind: kind, Field: field, Value: v}
	}
}

// number reads an optional numeric field. Missing fields take def.
func (nz *normalizer) number(field string, v any, def float64, chk check) float64 {
	if v == nil {
		return def
	}

	parse := ParseNumber
	if nz.strict {
		parse = parseStrictNumber
	}
	x, err := parse(v)
	if err != nil {
		if nz.strict {
			nz.fail(NonNumericField, field, v)
		}
		return def
	}

	repaired, ok := chk(x, def)
	if !ok && nz.strict {
		nz.fail(InvalidRange, field, v)
	}
	return repaired
}

func (nz *normalizer) boolean(field string, v any) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		if nz.strict {
			nz.fail(NonNumericField, field, v)
		}
		return false
	}
	return b
}

func (nz *normalizer) composition(field string, raw []any) Composition {
	if len(raw) == 0 {
		return DefaultComposition
	}
	if len(raw) != 4 && nz.strict {
		nz.fail(InvalidRange, field, raw)
	}

	defaults := [4]float64{DefaultComposition.C, DefaultComposition.H, DefaultComposition.O, DefaultComposition.N}
	var atoms [4]float64
	for i := range atoms {
		if i >= len(raw) {
			atoms[i] = defaults[i]
			continue
		}
		atoms[i] = nz.number(fmt.Sprintf("%s[%d]", field, i), raw[i], defaults[i], nonNegative)
	}
	return Composition{C: atoms[0], H: atoms[1], O: atoms[2], N: atoms[3]}
}

func (nz *normalizer) substrate(i int, raw RawSubstrate) SubstrateSpec {
	field := func(name string) string { return fmt.Sprintf("substrates[%d].%s", i, name) }

	name := raw.Name
	if name == "" {
		name = fmt.Sprintf("substrate %d", i+1)
	}
	return SubstrateSpec{
		Name:                   name,
		MassFlow:               nz.number(field("mass_flow"), raw.MassFlow, DefaultMassFlow, nonNegative),
		SolidsFraction:         nz.number(field("solids_fraction"), raw.SolidsFraction, DefaultSolidsFraction, percent),
		VolatileSolidsFraction: nz.number(field("volatile_solids_fraction"), raw.VolatileSolidsFraction, DefaultVolatileFraction, percent),
		BiodegradableFraction:  nz.number(field("biodegradable_fraction"), raw.BiodegradableFraction, DefaultBiodegradableFraction, percent),
		FastFraction:           nz.number(field("fast_fraction"), raw.FastFraction, DefaultFastFraction, percent),
		FastRate20:             nz.number(field("fast_rate"), raw.FastRate20, DefaultFastRate20, nonNegative),
		SlowRate20:             nz.number(field("slow_rate"), raw.SlowRate20, DefaultSlowRate20, nonNegative),
		HeatCapacity:           nz.number(field("heat_capacity"), raw.HeatCapacity, DefaultHeatCapacity, positive),
		Temperature:            nz.number(field("temperature"), raw.Temperature, DefaultSubstrateTemperature, unbounded),
		Composition:            nz.composition(field("composition"), raw.Composition),
	}
}

func (nz *normalizer) normalize(raw RawProcessConfig) (ProcessConfig, error) {
	if len(raw.Substrates) == 0 {
		return ProcessConfig{}, &ConfigError{Kind: MissingSubstrates, Field: "substrates"}
	}

	cfg := ProcessConfig{
		Substrates:         make([]SubstrateSpec, len(raw.Substrates)),
		Airflow:            nz.number("airflow", raw.Airflow, DefaultAirflow, nonNegative),
		Alternating:        nz.boolean("alternating", raw.Alternating),
		OnTime:             nz.number("on_time", raw.OnTime, DefaultOnTime, nonNegative),
		OffTime:            nz.number("off_time", raw.OffTime, DefaultOffTime, nonNegative),
		AmbientTemperature: nz.number("ambient_temperature", raw.AmbientTemperature, DefaultAmbientTemperature, unbounded),
		RelativeHumidity:   nz.number("relative_humidity", raw.RelativeHumidity, DefaultRelativeHumidity, percent),
		WaterFlow:          nz.number("water_flow", raw.WaterFlow, DefaultWaterFlow, nonNegative),
		WaterTemperature:   nz.number("water_temperature", raw.WaterTemperature, DefaultWaterTemperature, unbounded),
		Altitude:           nz.number("altitude", raw.Altitude, DefaultAltitude, unbounded),
		HeatOfDegradation:  nz.number("heat_of_degradation", raw.HeatOfDegradation, DefaultHeatOfDegradation, nonNegative),
		BulkDensity:        nz.number("bulk_density", raw.BulkDensity, DefaultBulkDensity, positive),
		AmbientProfile:     raw.AmbientProfile,
	}

	hrt := nz.number("hrt", raw.HRT, DefaultHRT, positive)
	switch {
	case hrt > MaxHRT:
		if nz.strict {
			nz.fail(InvalidRange, "hrt", raw.HRT)
		}
		cfg.HRT = MaxHRT
	case hrt < 1.0:
		if nz.strict {
			nz.fail(InvalidRange, "hrt", raw.HRT)
		}
		cfg.HRT = DefaultHRT
	default:
		cfg.HRT = int(hrt)
	}

	if cfg.Alternating && cfg.OnTime+cfg.OffTime <= 0.0 {
		if nz.strict {
			nz.fail(InvalidRange, "on_time", raw.OnTime)
		}
		cfg.OnTime, cfg.OffTime = DefaultOnTime, DefaultOffTime
	}

	for i, s := range raw.Substrates {
		cfg.Substrates[i] = nz.substrate(i, s)
	}

	totalMass := nz.number("total_mass", raw.TotalMass, 0.0, nonNegative)
	normalizeMassFlows(cfg.Substrates, totalMass)

	if nz.err != nil {
		return ProcessConfig{}, nz.err
	}
	return cfg, nil
}

// normalizeMassFlows rescales the flows so they keep their proportions and
// sum to total. A non-positive total keeps the current sum.
func normalizeMassFlows(substrates []SubstrateSpec, total float64) {
	fr := make([]float64, len(substrates))
	for i, s := range substrates {
		fr[i] = s.MassFlow
	}
	sum := floats.Sum(fr)
	if sum <= 0.0 || total <= 0.0 {
		return
	}
	for i := range substrates {
		substrates[i].MassFlow = fr[i] / sum * total
	}
}

/*
Normalize a raw configuration leniently.

	Args:
	    raw: user-entered scenario

	Returns:
	    normalized configuration; missing, unparseable or out-of-range fields
	    are replaced by the Default* values and fractions are clamped to
	    [0, 100]. The only error is an empty substrate list.
*/
func Normalize(raw RawProcessConfig) (ProcessConfig, error) {
	nz := normalizer{}
	return nz.normalize(raw)
}

// NormalizeStrict normalizes raw but returns a *ConfigError for the first
// field that Normalize would have had to repair. Missing optional fields
// still take their defaults.
func NormalizeStrict(raw RawProcessConfig) (ProcessConfig, error) {
	nz := normalizer{strict: true}
	return nz.normalize(raw)
}
