package pulsesim

import "math"

// PulseParameters describe the bi-exponential shape of a Ge preamplifier
// pulse: a delay of Start samples, then a fast rise with time constant Tau2
// and a slow decay with time constant Tau1. Height is the peak amplitude in
// ADC counts. The shape is constant across all trials of a run.
type PulseParameters struct {
	Length int
	Start  int
	Height float64
	Tau1   float64
	Tau2   float64
}

func (p PulseParameters) Validate() error {
	if p.Length <= 0 {
		return &ErrSignalLength{Length: p.Length}
	}
	if p.Tau1 == p.Tau2 {
		return &ErrEqualTimeConstants{Tau: p.Tau1}
	}
	if p.Start < 0 || p.Start >= p.Length {
		return &ErrPulseStart{Start: p.Start, Length: p.Length}
	}
	return nil
}

// Pulse evaluates the noiseless pulse template. Samples before Start are
// zero; from Start on the value is
//
//	tau1/(tau1-tau2) * height * (exp(-t/tau1) - exp(-t/tau2))
//
// with t counted from Start. The normalization makes the peak reach Height
// in the continuum limit. Each sample is truncated toward zero to an integer
// once, after the full floating point evaluation. Parameters must have been
// validated beforehand.
func Pulse(p PulseParameters) []int32 {
	signal := make([]int32, p.Length)
	norm := p.Tau1 / (p.Tau1 - p.Tau2) * p.Height
	for k := p.Start; k < p.Length; k++ {
		t := float64(k - p.Start)
		signal[k] = int32(norm * (math.Exp(-t/p.Tau1) - math.Exp(-t/p.Tau2)))
	}
	return signal
}
