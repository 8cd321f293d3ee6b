package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	sqlx "github.com/jmoiron/sqlx"
	pulsesim "github.com/next-exp/pulsesim_go/pkg"
)

var dbConn *sqlx.DB
var configuration pulsesim.Configuration

var (
	logger         Logger
	VerbosityLevel int
)

func init() {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	handlerStdOut := NewHandler(os.Stdout, opts)
	handlerStdErr := slog.NewJSONHandler(os.Stderr, opts)
	logger = Logger{
		InfoLog:  slog.New(handlerStdOut),
		ErrorLog: slog.New(handlerStdErr),
	}
}

func main() {
	configFilename := flag.String("config", "", "Configuration file path")
	flag.Parse()

	var err error
	configuration, err = LoadConfiguration(*configFilename)
	if err != nil {
		message := fmt.Errorf("Error reading configuration file: %w", err)
		logger.Error(message.Error())
		return
	}
	pulsesim.SetLogger(logger)
	pulsesim.SetConfiguration(configuration)

	VerbosityLevel = configuration.Verbosity
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Reading configuration file: %s", *configFilename)
		logger.Info(message, "main")
		printConfiguration(configuration, logger)
	}

	if !configuration.NoDB {
		dbConn, err = pulsesim.ConnectToDatabase(configuration.User, configuration.Passwd, configuration.Host, configuration.DBName)
		if err != nil {
			message := fmt.Errorf("Error connecting to database: %w", err)
			logger.Error(message.Error())
			return
		}
		defer dbConn.Close()

		err = pulsesim.LoadDatabase(dbConn, configuration.RunNumber)
		if err != nil {
			return
		}
		configuration = pulsesim.GetConfiguration()
	}

	// Bad parameter combinations abort here, before any trial runs
	if err := configuration.Validate(); err != nil {
		message := fmt.Errorf("Invalid configuration: %w", err)
		logger.Error(message.Error())
		os.Exit(1)
	}
	pulsesim.SetConfiguration(configuration)

	seed := configuration.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if VerbosityLevel > 0 {
		logger.Info(fmt.Sprintf("Random seed: %d", seed), "main")
	}

	params := configuration.PulseParameters()
	window := configuration.Window()
	extractors := []pulsesim.Extractor{pulsesim.SumExtractor(window)}
	if configuration.Subtract {
		extractors = append(extractors, pulsesim.SubtractedExtractor(window))
	}

	start := time.Now()
	var histograms []*pulsesim.Histogram
	if configuration.Parallel {
		synthesizers := func(worker int) func() []int32 {
			rng := rand.New(rand.NewSource(seed + int64(worker)))
			synth := pulsesim.NewSynthesizer(params, configuration.NoiseAmplitude(), configuration.Baseline, rng)
			return synth.Synthesize
		}
		histograms = pulsesim.RunParallel(configuration.Trials, configuration.NumWorkers, synthesizers, extractors)
	} else {
		rng := rand.New(rand.NewSource(seed))
		synth := pulsesim.NewSynthesizer(params, configuration.NoiseAmplitude(), configuration.Baseline, rng)
		histograms = pulsesim.Run(configuration.Trials, synth.Synthesize, extractors)
	}
	duration := time.Since(start)

	reportSynth := pulsesim.NewSynthesizer(params, configuration.NoiseAmplitude(), configuration.Baseline, rand.New(rand.NewSource(seed)))
	references := pulsesim.ReferenceEnergies(reportSynth.Noiseless(), extractors)
	report := pulsesim.BuildReport(reportSynth.Synthesize(), extractors, histograms, references)

	for _, variant := range report.Variants {
		s := variant.Summary
		message := fmt.Sprintf("%s: entries %d, mean %.2f, stddev %.2f, modal bin %d, reference %d",
			variant.Name, s.Entries, s.Mean, s.StdDev, s.ModalBin, variant.Reference)
		logger.Info(message, "results")
		if s.Underflow > 0 || s.Overflow > 0 {
			message := fmt.Sprintf("%s: %d underflow, %d overflow out of %d trials",
				variant.Name, s.Underflow, s.Overflow, configuration.Trials)
			logger.Error(message)
		}
	}
	fmt.Printf("Total time: %d ms\n", duration.Milliseconds())
}
