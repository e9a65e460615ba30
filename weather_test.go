package biodrying

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ambientCSV = `hour,ambient_temperature,relative_humidity
0,18.5,70
1,19,65
2,21.5,55
`

func TestReadAmbientProfile(t *testing.T) {
	profile, err := ReadAmbientProfile(strings.NewReader(ambientCSV))
	require.NoError(t, err)
	require.Len(t, profile, 3)
	assert.Equal(t, AmbientPoint{Hour: 2, AmbientTemperature: 21.5, RelativeHumidity: 55}, profile[2])

	assert.Equal(t, profile[1], ambientAt(profile, 1))
	assert.Equal(t, profile[2], ambientAt(profile, 10))
}

func TestReadAmbientProfileErrors(t *testing.T) {
	_, err := ReadAmbientProfile(strings.NewReader("hour,ambient_temperature,relative_humidity\n"))
	assert.Error(t, err)

	_, err = ReadAmbientProfile(strings.NewReader("hour,ambient_temperature,relative_humidity\n0,20,120\n"))
	assert.Error(t, err)

	_, err = ReadAmbientProfile(strings.NewReader("hour,ambient_temperature,relative_humidity\n0,warm,50\n"))
	assert.Error(t, err)
}

func TestLoadAmbientProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ambient.csv")
	require.NoError(t, os.WriteFile(path, []byte(ambientCSV), 0o644))

	profile, err := LoadAmbientProfile(path)
	require.NoError(t, err)
	assert.Len(t, profile, 3)

	_, err = LoadAmbientProfile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
