package pulsesim_test

import (
	"math/rand"
	"testing"

	pulsesim "github.com/next-exp/pulsesim_go/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSynthesizer_NoiselessComposition: with zero noise amplitude the
// synthesized signal is exactly pulse template plus baseline.
func TestSynthesizer_NoiselessComposition(t *testing.T) {
	config := scenarioConfig()
	params := config.PulseParameters()
	synth := pulsesim.NewSynthesizer(params, 0, config.Baseline, rand.New(rand.NewSource(1)))

	signal := synth.Synthesize()
	require.Len(t, signal, params.Length)
	assert.Equal(t, synth.Noiseless(), signal)

	// Before the pulse only the baseline remains
	assert.Equal(t, int32(config.Baseline), signal[0])
	assert.Equal(t, int32(config.Baseline), signal[49999])
	assert.Greater(t, signal[50001], int32(config.Baseline))
}

// TestSynthesizer_FreshSignalPerTrial: each call returns its own slice, so a
// consumer mutating one realization cannot corrupt the next.
func TestSynthesizer_FreshSignalPerTrial(t *testing.T) {
	config := scenarioConfig()
	synth := pulsesim.NewSynthesizer(config.PulseParameters(), config.NoiseAmplitude(), config.Baseline, rand.New(rand.NewSource(1)))

	first := synth.Synthesize()
	first[50050] = -12345

	second := synth.Synthesize()
	assert.NotEqual(t, int32(-12345), second[50050])

	// And noise actually varies between trials
	assert.NotEqual(t, first[:1000], second[:1000])
}

// TestSynthesizer_NoiseStaysBounded: every sample of a noisy realization is
// within the noise amplitude of the noiseless one.
func TestSynthesizer_NoiseStaysBounded(t *testing.T) {
	config := scenarioConfig()
	amplitude := config.NoiseAmplitude()
	synth := pulsesim.NewSynthesizer(config.PulseParameters(), amplitude, config.Baseline, rand.New(rand.NewSource(3)))

	noiseless := synth.Noiseless()
	signal := synth.Synthesize()
	for i := range signal {
		delta := signal[i] - noiseless[i]
		require.GreaterOrEqual(t, delta, int32(-amplitude), "sample %d", i)
		require.Less(t, delta, int32(amplitude), "sample %d", i)
	}
}
