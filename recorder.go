package biodrying

// Result is the time series of one run. Every series has HRT+1 entries;
// index 0 is the initial state and index n the state after hour n.
type Result struct {
	Times            []float64 // elapsed time, h
	Temperatures     []float64 // degree C
	Moisture         []float64 // kg
	MoistureFraction []float64 // %
	ExhaustGasMass   []float64 // kg
	ExhaustGasVolume []float64 // m3
	RelativeHumidity []float64 // exhaust relative humidity, %
	Solids           []float64 // kg
	Biodegradable    []float64 // biodegradable volatile solids, kg
	CO2              []float64 // produced during the hour, kg
	O2               []float64 // consumed during the hour, kg
	NH3              []float64 // produced during the hour, kg

	ProcessVolume float64 // initial solids and moisture over bulk density, m3
}

// Len returns the number of recorded rows.
func (r Result) Len() int {
	return len(r.Times)
}

// Recorder collects the rows of a run as it advances.
type Recorder struct {
	nStep int
	r     Result
}

// NewRecorder allocates a recorder for nStep steps plus the initial row.
func NewRecorder(nStep int) *Recorder {
	n := nStep + 1
	return &Recorder{
		nStep: nStep,
		r: Result{
			Times:            make([]float64, n),
			Temperatures:     make([]float64, n),
			Moisture:         make([]float64, n),
			MoistureFraction: make([]float64, n),
			ExhaustGasMass:   make([]float64, n),
			ExhaustGasVolume: make([]float64, n),
			RelativeHumidity: make([]float64, n),
			Solids:           make([]float64, n),
			Biodegradable:    make([]float64, n),
			CO2:              make([]float64, n),
			O2:               make([]float64, n),
			NH3:              make([]float64, n),
		},
	}
}

// recordState writes the state columns of row c.State.Step.
func (r *Recorder) recordState(c *Conditions, rh float64) {
	n := c.State.Step
	r.r.Times[n] = float64(n)
	r.r.Temperatures[n] = c.State.Temperature
	r.r.Moisture[n] = c.State.Moisture
	r.r.MoistureFraction[n] = c.State.MoistureFraction
	r.r.Solids[n] = c.State.Solids
	r.r.Biodegradable[n] = c.Biodegradable()
	r.r.RelativeHumidity[n] = rh
}

// recordExhaust writes the exhaust columns of row n.
func (r *Recorder) recordExhaust(n int, gasMass, gasVolume float64, y Yields) {
	r.r.ExhaustGasMass[n] = gasMass
	r.r.ExhaustGasVolume[n] = gasVolume
	r.r.CO2[n] = y.CO2
	r.r.O2[n] = y.O2
	r.r.NH3[n] = y.NH3
}

// Result returns the collected series.
func (r *Recorder) Result() Result {
	return r.r
}
