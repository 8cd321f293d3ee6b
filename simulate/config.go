package main

import (
	"encoding/json"
	"fmt"
	"os"

	pulsesim "github.com/next-exp/pulsesim_go/pkg"
)

func LoadConfiguration(filename string) (pulsesim.Configuration, error) {
	var config pulsesim.Configuration

	// Set default values, the reference Ge preamp scenario
	config.Trials = 300
	config.Verbosity = 0
	config.SignalLength = 100000
	config.PulseStart = 50000
	config.PulseHeightMV = 266.4 // 1.332 V through x200 gain
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
	config.NoDB = false
	config.RunNumber = 0
	config.Host = "next.ific.uv.es"
	config.User = "nextreader"
	config.Passwd = "readonly"
	config.DBName = "NEXT100"
	config.NumWorkers = 1
	config.Parallel = false

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

func printConfiguration(config pulsesim.Configuration, logger Logger) {
	logger.Info(fmt.Sprintf("Trials: %d", config.Trials), "config")
	logger.Info(fmt.Sprintf("Signal length: %d", config.SignalLength), "config")
	logger.Info(fmt.Sprintf("Pulse start: %d", config.PulseStart), "config")
	logger.Info(fmt.Sprintf("Pulse height (mV): %f", config.PulseHeightMV), "config")
	logger.Info(fmt.Sprintf("mV per bin: %f", config.MVBin), "config")
	logger.Info(fmt.Sprintf("Tau1: %f", config.Tau1), "config")
	logger.Info(fmt.Sprintf("Tau2: %f", config.Tau2), "config")
	logger.Info(fmt.Sprintf("Noise level (mV): %f", config.NoiseLevelMV), "config")
	logger.Info(fmt.Sprintf("Baseline: %d", config.Baseline), "config")
	logger.Info(fmt.Sprintf("Window start: %d", config.WindowStart), "config")
	logger.Info(fmt.Sprintf("Window end: %d", config.WindowEnd), "config")
	logger.Info(fmt.Sprintf("Subtract lag: %d", config.SubtractLag), "config")
	logger.Info(fmt.Sprintf("Shift bits: %d", config.ShiftBits), "config")
	logger.Info(fmt.Sprintf("Subtract: %t", config.Subtract), "config")
	logger.Info(fmt.Sprintf("Seed: %d", config.Seed), "config")
	logger.Info(fmt.Sprintf("No DB: %t", config.NoDB), "config")
	logger.Info(fmt.Sprintf("Run number: %d", config.RunNumber), "config")
	logger.Info(fmt.Sprintf("Host: %s", config.Host), "config")
	logger.Info(fmt.Sprintf("DB name: %s", config.DBName), "config")
	logger.Info(fmt.Sprintf("Verbosity: %d", config.Verbosity), "config")
	logger.Info(fmt.Sprintf("Number of workers: %d", config.NumWorkers), "config")
	logger.Info(fmt.Sprintf("Parallel: %t", config.Parallel), "config")
}
