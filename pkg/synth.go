package pulsesim

import "math/rand"

// Synthesizer produces one random signal realization per call: the pulse
// template plus fresh uniform noise, sitting on a fixed positive digitizer
// baseline. The template is evaluated once at construction; only the noise
// changes between trials.
type Synthesizer struct {
	template  []int32
	amplitude int
	baseline  int32
	rng       *rand.Rand
}

func NewSynthesizer(params PulseParameters, noiseAmplitude int, baseline int, rng *rand.Rand) *Synthesizer {
	return &Synthesizer{
		template:  Pulse(params),
		amplitude: noiseAmplitude,
		baseline:  int32(baseline),
		rng:       rng,
	}
}

// Synthesize returns a fresh signal. With a seeded source and a single
// worker the sequence of signals is reproducible; otherwise every call is a
// new random realization.
func (s *Synthesizer) Synthesize() []int32 {
	signal := Noise(s.rng, len(s.template), s.amplitude)
	for i, v := range s.template {
		signal[i] += v + s.baseline
	}
	return signal
}

// Noiseless returns the template on its baseline, the zero-noise signal the
// energy estimates center on.
func (s *Synthesizer) Noiseless() []int32 {
	signal := make([]int32, len(s.template))
	for i, v := range s.template {
		signal[i] = v + s.baseline
	}
	return signal
}
