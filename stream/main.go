package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	osSignal "os/signal"
	"time"

	"github.com/nats-io/nats.go"
	pulsesim "github.com/next-exp/pulsesim_go/pkg"
)

var configuration pulsesim.Configuration

var logger Logger

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

func connect(url string) (*nats.Conn, error) {
	return nats.Connect(
		url,
		nats.Name("pulsesim-stream"),
		nats.Timeout(3*time.Second),
		nats.ReconnectWait(500*time.Millisecond),
		nats.MaxReconnects(-1),
	)
}

func main() {
	configFilename := flag.String("config", "", "Configuration file path")
	natsURL := flag.String("nats", nats.DefaultURL, "NATS url")
	subject := flag.String("subject", "pulsesim", "Subject prefix")
	interval := flag.Int("interval", 100, "Milliseconds between waveforms")
	snapshotEvery := flag.Int("snapshot", 50, "Publish histogram snapshots every N trials")
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

	if err := configuration.Validate(); err != nil {
		message := fmt.Errorf("Invalid configuration: %w", err)
		logger.Error(message.Error())
		os.Exit(1)
	}

	seed := configuration.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	synth := pulsesim.NewSynthesizer(configuration.PulseParameters(), configuration.NoiseAmplitude(), configuration.Baseline, rng)

	window := configuration.Window()
	extractors := []pulsesim.Extractor{pulsesim.SumExtractor(window)}
	if configuration.Subtract {
		extractors = append(extractors, pulsesim.SubtractedExtractor(window))
	}
	histograms := make([]*pulsesim.Histogram, len(extractors))
	for i := range histograms {
		histograms[i] = pulsesim.NewHistogram()
	}

	nc, err := connect(*natsURL)
	if err != nil {
		message := fmt.Errorf("Error connecting to NATS: %w", err)
		logger.Error(message.Error())
		return
	}
	defer nc.Drain()
	logger.Info(fmt.Sprintf("Publishing on %s.* via %s", *subject, *natsURL), "stream")

	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 1)
	osSignal.Notify(ch, os.Interrupt)
	go func() {
		<-ch
		cancel()
	}()

	ticker := time.NewTicker(time.Duration(*interval) * time.Millisecond)
	defer ticker.Stop()

	trial := 0
	for {
		select {
		case <-ctx.Done():
			logger.Info(fmt.Sprintf("Stopping after %d trials", trial), "stream")
			return

		case <-ticker.C:
			signal := synth.Synthesize()
			if err := nc.Publish(*subject+".waveform", encodeWaveform(signal)); err != nil {
				logger.Error(fmt.Errorf("error publishing waveform: %w", err).Error())
			}
			for i, extractor := range extractors {
				histograms[i].Record(extractor.Extract(signal))
			}
			trial++

			if trial%*snapshotEvery == 0 {
				for i, extractor := range extractors {
					histSubject := fmt.Sprintf("%s.histogram.%s", *subject, extractor.Name)
					if err := nc.Publish(histSubject, encodeCounts(histograms[i].Counts())); err != nil {
						logger.Error(fmt.Errorf("error publishing histogram: %w", err).Error())
					}
				}
				if configuration.Verbosity > 0 {
					logger.Info(fmt.Sprintf("Published snapshots after trial %d", trial), "stream")
				}
			}
		}
	}
}

func encodeWaveform(signal []int32) []byte {
	out := make([]byte, 4*len(signal))
	for i, v := range signal {
		binary.LittleEndian.PutUint32(out[i*4:], uint32(v))
	}
	return out
}

func encodeCounts(counts []uint64) []byte {
	out := make([]byte, 8*len(counts))
	for i, c := range counts {
		binary.LittleEndian.PutUint64(out[i*8:], c)
	}
	return out
}
