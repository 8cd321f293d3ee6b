package pulsesim

import "fmt"

// ErrEqualTimeConstants represents an invalid pulse shape where both time
// constants coincide and the normalization divides by zero.
type ErrEqualTimeConstants struct {
	Tau float64
}

func (e *ErrEqualTimeConstants) Error() string {
	return fmt.Sprintf("invalid pulse shape: tau1 == tau2 == %g", e.Tau)
}

// ErrSignalLength represents a non-positive signal length.
type ErrSignalLength struct {
	Length int
}

func (e *ErrSignalLength) Error() string {
	return fmt.Sprintf("invalid signal length %d", e.Length)
}

// ErrPulseStart represents a pulse start offset outside the signal.
type ErrPulseStart struct {
	Start  int
	Length int
}

func (e *ErrPulseStart) Error() string {
	return fmt.Sprintf("invalid pulse start %d for signal length %d", e.Start, e.Length)
}

// ErrNoiseAmplitude represents a negative noise amplitude.
type ErrNoiseAmplitude struct {
	Amplitude int
}

func (e *ErrNoiseAmplitude) Error() string {
	return fmt.Sprintf("invalid noise amplitude %d", e.Amplitude)
}

// ErrWindowBounds represents a summing window outside the signal or with
// its bounds reversed.
type ErrWindowBounds struct {
	Start  int
	End    int
	Length int
}

func (e *ErrWindowBounds) Error() string {
	return fmt.Sprintf("invalid summing window [%d, %d) for signal length %d", e.Start, e.End, e.Length)
}

// ErrSubtractLag represents a subtraction lag that pushes the baseline
// window before the start of the signal.
type ErrSubtractLag struct {
	Lag         int
	WindowStart int
}

func (e *ErrSubtractLag) Error() string {
	return fmt.Sprintf("invalid subtraction lag %d for window start %d", e.Lag, e.WindowStart)
}

// ErrTrialCount represents a non-positive number of trials.
type ErrTrialCount struct {
	Trials int
}

func (e *ErrTrialCount) Error() string {
	return fmt.Sprintf("invalid trial count %d", e.Trials)
}

// ErrWorkerCount represents a non-positive number of workers in parallel mode.
type ErrWorkerCount struct {
	Workers int
}

func (e *ErrWorkerCount) Error() string {
	return fmt.Sprintf("invalid number of workers %d", e.Workers)
}
