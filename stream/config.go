package main

import (
	"encoding/json"
	"os"

	pulsesim "github.com/next-exp/pulsesim_go/pkg"
)

func LoadConfiguration(filename string) (pulsesim.Configuration, error) {
	var config pulsesim.Configuration

	// Same defaults as the batch simulator
	config.Trials = 300
	config.Verbosity = 0
	config.SignalLength = 100000
	config.PulseStart = 50000
	config.PulseHeightMV = 266.4
	config.MVBin = 1.0 / 0.122
	config.Tau1 = 5000
	config.Tau2 = 2
	config.NoiseLevelMV = 2
	config.Baseline = 8192
	config.WindowStart = 50032
	config.WindowEnd = 50096
	config.SubtractLag = 1000
	config.ShiftBits = 6
	config.Subtract = true
	config.Seed = 0
	config.NoDB = true
	config.NumWorkers = 1
	config.Parallel = false

	if filename == "" {
		return config, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = json.Unmarshal(data, &config)
	if err != nil {
		return config, err
	}
	return config, nil
}
