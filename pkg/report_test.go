package pulsesim_test

import (
	"math/rand"
	"testing"

	pulsesim "github.com/next-exp/pulsesim_go/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_KnownHistogram(t *testing.T) {
	h := pulsesim.NewHistogram()
	h.Record(10)
	h.Record(10)
	h.Record(20)
	h.Record(20)
	h.Record(30)

	s := pulsesim.Summarize("sum", h)
	assert.Equal(t, "sum", s.Name)
	assert.Equal(t, uint64(5), s.Entries)
	assert.InDelta(t, 18.0, s.Mean, 1e-12)
	assert.InDelta(t, 8.366600265340756, s.StdDev, 1e-9)
	// Bins 10 and 20 tie at two counts each, the lower bin wins
	assert.Equal(t, 10, s.ModalBin)
}

func TestSummarize_EmptyHistogram(t *testing.T) {
	s := pulsesim.Summarize("sum", pulsesim.NewHistogram())
	assert.Zero(t, s.Entries)
	assert.Equal(t, -1, s.ModalBin)
}

func TestSummarize_CountsOutOfRange(t *testing.T) {
	h := pulsesim.NewHistogram()
	h.Record(5)
	h.Record(-2)
	h.Record(pulsesim.HistogramSize + 1)

	s := pulsesim.Summarize("sum", h)
	assert.Equal(t, uint64(1), s.Entries)
	assert.Equal(t, uint64(1), s.Underflow)
	assert.Equal(t, uint64(1), s.Overflow)
	assert.Equal(t, 5, s.ModalBin)
}

func TestBuildReport(t *testing.T) {
	config := scenarioConfig()
	synth := pulsesim.NewSynthesizer(config.PulseParameters(), config.NoiseAmplitude(), config.Baseline, rand.New(rand.NewSource(1)))
	extractors := scenarioExtractors(config)

	histograms := pulsesim.Run(20, synth.Synthesize, extractors)
	references := pulsesim.ReferenceEnergies(synth.Noiseless(), extractors)
	report := pulsesim.BuildReport(synth.Synthesize(), extractors, histograms, references)

	require.Len(t, report.Variants, 2)
	assert.Len(t, report.Waveform, config.SignalLength)
	for i, variant := range report.Variants {
		assert.Equal(t, extractors[i].Name, variant.Name)
		assert.Equal(t, references[i], variant.Reference)
		assert.Len(t, variant.Counts, pulsesim.HistogramSize)
		assert.Equal(t, uint64(20), variant.Summary.Entries)
	}
}
