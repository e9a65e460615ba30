package biodrying

import "math"

// AerationMode is how the blower is operated over a run.
type AerationMode int

const (
	Continuous   AerationMode = iota + 1 // constant airflow
	Intermittent                         // on/off cycling
)

// String returns the name of the mode.
func (m AerationMode) String() string {
	return [...]string{"continuous", "intermittent"}[m-1]
}

// AerationMode returns the aeration mode of the configuration. A cycle with
// no length falls back to continuous aeration.
func (c ProcessConfig) AerationMode() AerationMode {
	if c.Alternating && c.OnTime+c.OffTime > 0.0 {
		return Intermittent
	}
	return Continuous
}

/*
Decide whether the blower runs during step n.

	Args:
	    n: step
	    on: on time of the cycle, h
	    off: off time of the cycle, h

	Returns:
	    true when the blower runs

	Notes:
	    Intermittent aeration runs while (n mod (on+off)) < on.
*/
func (m AerationMode) IsOn(n int, on, off float64) bool {
	if m != Intermittent {
		return true
	}
	return math.Mod(float64(n), on+off) < on
}
