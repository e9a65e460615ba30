package biodrying

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// AmbientPoint is one hourly row of an ambient air profile.
type AmbientPoint struct {
	Hour               int     `csv:"hour" yaml:"hour" json:"hour"`
	AmbientTemperature float64 `csv:"ambient_temperature" yaml:"ambient_temperature" json:"ambient_temperature"` // degree C
	RelativeHumidity   float64 `csv:"relative_humidity" yaml:"relative_humidity" json:"relative_humidity"`       // %
}

/*
Read an hourly ambient profile.

	Args:
	    r: CSV with the header hour,ambient_temperature,relative_humidity

	Returns:
	    profile rows in file order
*/
func ReadAmbientProfile(r io.Reader) ([]AmbientPoint, error) {
	var rows []*AmbientPoint
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("biodrying: reading ambient profile: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("biodrying: ambient profile has no rows")
	}

	profile := make([]AmbientPoint, len(rows))
	for i, row := range rows {
		if row.RelativeHumidity < 0.0 || row.RelativeHumidity > 100.0 {
			return nil, fmt.Errorf("biodrying: ambient profile row %d: relative humidity %g outside [0, 100]", i+1, row.RelativeHumidity)
		}
		profile[i] = *row
	}
	return profile, nil
}

// LoadAmbientProfile reads an ambient profile from a CSV file.
func LoadAmbientProfile(filePath string) ([]AmbientPoint, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("biodrying: %w", err)
	}
	defer file.Close()

	return ReadAmbientProfile(file)
}

// ambientAt returns the profile row for hour n; hours past the end of the
// profile hold the last row.
func ambientAt(profile []AmbientPoint, n int) AmbientPoint {
	if n >= len(profile) {
		return profile[len(profile)-1]
	}
	return profile[n]
}
