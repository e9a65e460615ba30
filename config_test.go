package biodrying

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRawConfigYAML(t *testing.T) {
	f, err := os.Open("testdata/scenario.yaml")
	require.NoError(t, err)
	defer f.Close()

	raw, err := ReadRawConfig(f)
	require.NoError(t, err)
	require.Len(t, raw.Substrates, 2)
	assert.Equal(t, "straw", raw.Substrates[1].Name)
	assert.Equal(t, "200 kg/h", raw.Substrates[1].MassFlow)

	cfg, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, 48, cfg.HRT)
	assert.True(t, cfg.Alternating)
	assert.Equal(t, 60.0, cfg.RelativeHumidity)
	assert.Equal(t, 200.0, cfg.Substrates[1].MassFlow)
	assert.Equal(t, Composition{C: 6, H: 10, O: 5, N: 0.1}, cfg.Substrates[1].Composition)

	_, err = NormalizeStrict(raw)
	assert.Error(t, err, "unit suffixes are rejected in strict mode")

	r, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 49, r.Len())
}

func TestReadRawConfigJSON(t *testing.T) {
	raw, err := ReadRawConfig(strings.NewReader(`{"hrt": "12", "substrates": [{"name": "manure", "mass_flow": 500}]}`))
	require.NoError(t, err)

	cfg, err := NormalizeStrict(raw)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.HRT)
	assert.Equal(t, 500.0, cfg.Substrates[0].MassFlow)
	assert.Equal(t, DefaultSolidsFraction, cfg.Substrates[0].SolidsFraction)
}

func TestReadRawConfigErrors(t *testing.T) {
	raw, err := ReadRawConfig(strings.NewReader(""))
	require.NoError(t, err)
	_, err = Normalize(raw)
	assert.ErrorIs(t, err, ErrNoSubstrates)

	_, err = ReadRawConfig(strings.NewReader("substrates: [unterminated"))
	assert.Error(t, err)
}
