package pulsesim

type Configuration struct {
	Trials        int     `json:"trials"`
	Verbosity     int     `json:"verbosity"`
	SignalLength  int     `json:"signal_length"`
	PulseStart    int     `json:"pulse_start"`
	PulseHeightMV float64 `json:"pulse_height_mv"`
	MVBin         float64 `json:"mv_bin"`
	Tau1          float64 `json:"tau1"`
	Tau2          float64 `json:"tau2"`
	NoiseLevelMV  float64 `json:"noise_level_mv"`
	Baseline      int     `json:"baseline"`
	WindowStart   int     `json:"window_start"`
	WindowEnd     int     `json:"window_end"`
	SubtractLag   int     `json:"subtract_lag"`
	ShiftBits     uint    `json:"shift_bits"`
	Subtract      bool    `json:"subtract"`
	Seed          int64   `json:"seed"`
	NoDB          bool    `json:"no_db"`
	RunNumber     int     `json:"run_number"`
	Host          string  `json:"host"`
	User          string  `json:"user"`
	Passwd        string  `json:"pass"`
	DBName        string  `json:"dbname"`
	NumWorkers    int     `json:"num_workers"`
	Parallel      bool    `json:"parallel"`
}

var configuration Configuration

func GetConfiguration() Configuration {
	return configuration
}

func SetConfiguration(config Configuration) {
	configuration = config
}

// PulseParameters builds the pulse shape from the configuration. Heights are
// configured in mV and converted to ADC counts with the mV-per-bin factor.
func (config Configuration) PulseParameters() PulseParameters {
	return PulseParameters{
		Length: config.SignalLength,
		Start:  config.PulseStart,
		Height: config.PulseHeightMV * config.MVBin,
		Tau1:   config.Tau1,
		Tau2:   config.Tau2,
	}
}

// NoiseAmplitude is the noise level converted from mV to ADC counts,
// truncated to an integer as the digitizer would.
func (config Configuration) NoiseAmplitude() int {
	return int(config.NoiseLevelMV * config.MVBin)
}

func (config Configuration) Window() ExtractionWindow {
	return ExtractionWindow{
		StartIndex: config.WindowStart,
		EndIndex:   config.WindowEnd,
		Lag:        config.SubtractLag,
		ShiftBits:  config.ShiftBits,
	}
}

// Validate checks every static parameter before any trial runs. All the
// errors here depend only on the configuration, so a bad combination aborts
// the batch up front instead of producing garbage signals.
func (config Configuration) Validate() error {
	if err := config.PulseParameters().Validate(); err != nil {
		return err
	}
	if config.NoiseAmplitude() < 0 {
		return &ErrNoiseAmplitude{Amplitude: config.NoiseAmplitude()}
	}
	if err := config.Window().Validate(config.SignalLength, config.Subtract); err != nil {
		return err
	}
	if config.Trials <= 0 {
		return &ErrTrialCount{Trials: config.Trials}
	}
	if config.Parallel && config.NumWorkers <= 0 {
		return &ErrWorkerCount{Workers: config.NumWorkers}
	}
	return nil
}
