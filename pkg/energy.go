package pulsesim

// ExtractionWindow delimits the samples summed for the energy estimate.
// StartIndex is inclusive, EndIndex exclusive. Lag shifts a second window
// into the pulse-free region before the onset for the subtracted variant.
// ShiftBits quantizes the sum down to histogram bin resolution.
type ExtractionWindow struct {
	StartIndex int
	EndIndex   int
	Lag        int
	ShiftBits  uint
}

func (w ExtractionWindow) Validate(length int, subtract bool) error {
	if w.StartIndex < 0 || w.EndIndex > length || w.StartIndex >= w.EndIndex {
		return &ErrWindowBounds{Start: w.StartIndex, End: w.EndIndex, Length: length}
	}
	if subtract {
		if w.Lag <= 0 || w.StartIndex-w.Lag < 0 {
			return &ErrSubtractLag{Lag: w.Lag, WindowStart: w.StartIndex}
		}
	}
	return nil
}

func windowSum(signal []int32, start int, end int) int64 {
	var sum int64
	for _, v := range signal[start:end] {
		sum += int64(v)
	}
	return sum
}

// SumEnergy is the plain windowed sum, right-shifted down to bin resolution.
// The shift on int64 is arithmetic, so negative sums floor toward negative
// infinity exactly like the reference bit shift.
func SumEnergy(signal []int32, w ExtractionWindow) int64 {
	return windowSum(signal, w.StartIndex, w.EndIndex) >> w.ShiftBits
}

// SubtractedEnergy subtracts the lagged pre-pulse window sum before the
// shift. The subtraction cancels baseline common to both windows, so the
// estimate no longer rides on the digitizer offset.
func SubtractedEnergy(signal []int32, w ExtractionWindow) int64 {
	pulse := windowSum(signal, w.StartIndex, w.EndIndex)
	baseline := windowSum(signal, w.StartIndex-w.Lag, w.EndIndex-w.Lag)
	return (pulse - baseline) >> w.ShiftBits
}

// Extractor is one energy extraction variant. Extract must not modify the
// signal.
type Extractor struct {
	Name    string
	Extract func(signal []int32) int64
}

func SumExtractor(w ExtractionWindow) Extractor {
	return Extractor{
		Name:    "sum",
		Extract: func(signal []int32) int64 { return SumEnergy(signal, w) },
	}
}

func SubtractedExtractor(w ExtractionWindow) Extractor {
	return Extractor{
		Name:    "subtracted",
		Extract: func(signal []int32) int64 { return SubtractedEnergy(signal, w) },
	}
}
