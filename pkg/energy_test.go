package pulsesim_test

import (
	"testing"

	pulsesim "github.com/next-exp/pulsesim_go/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSumEnergy_ShiftQuantization pins the quantization bit-for-bit: a
// window summing to 130 shifted by 6 yields 2 (130/64 rounded down).
func TestSumEnergy_ShiftQuantization(t *testing.T) {
	signal := make([]int32, 100)
	for i := 10; i < 20; i++ {
		signal[i] = 13
	}
	w := pulsesim.ExtractionWindow{StartIndex: 10, EndIndex: 20, ShiftBits: 6}

	assert.Equal(t, int64(2), pulsesim.SumEnergy(signal, w))
}

// TestSumEnergy_WindowBoundsOnly: samples outside [start, end) must not
// contribute.
func TestSumEnergy_WindowBoundsOnly(t *testing.T) {
	signal := make([]int32, 100)
	for i := 10; i < 20; i++ {
		signal[i] = 13
	}
	w := pulsesim.ExtractionWindow{StartIndex: 10, EndIndex: 20, ShiftBits: 0}
	require.Equal(t, int64(130), pulsesim.SumEnergy(signal, w))

	signal[9] = 999
	signal[20] = 999
	assert.Equal(t, int64(130), pulsesim.SumEnergy(signal, w))
}

// TestSubtractedEnergy_NegativeFloorsDown: the shift is arithmetic, so a
// negative difference floors toward negative infinity. -130 >> 6 is -3;
// truncating division would give -2.
func TestSubtractedEnergy_NegativeFloorsDown(t *testing.T) {
	signal := make([]int32, 100)
	for i := 10; i < 20; i++ {
		signal[i] = 13 // lagged baseline window
	}
	w := pulsesim.ExtractionWindow{StartIndex: 50, EndIndex: 60, Lag: 40, ShiftBits: 6}

	assert.Equal(t, int64(-3), pulsesim.SubtractedEnergy(signal, w))
}

// TestSubtractedEnergy_CancelsBaseline: on a constant signal the two windows
// are identical and the estimate is exactly zero.
func TestSubtractedEnergy_CancelsBaseline(t *testing.T) {
	signal := make([]int32, 200)
	for i := range signal {
		signal[i] = 8192
	}
	w := pulsesim.ExtractionWindow{StartIndex: 100, EndIndex: 164, Lag: 50, ShiftBits: 6}

	assert.Equal(t, int64(0), pulsesim.SubtractedEnergy(signal, w))
}

func TestExtractionWindow_Validate(t *testing.T) {
	const length = 1000
	valid := pulsesim.ExtractionWindow{StartIndex: 500, EndIndex: 600, Lag: 100, ShiftBits: 6}
	require.NoError(t, valid.Validate(length, true))

	t.Run("reversed bounds", func(t *testing.T) {
		w := valid
		w.StartIndex, w.EndIndex = w.EndIndex, w.StartIndex
		var target *pulsesim.ErrWindowBounds
		assert.ErrorAs(t, w.Validate(length, false), &target)
	})

	t.Run("end past signal", func(t *testing.T) {
		w := valid
		w.EndIndex = length + 1
		var target *pulsesim.ErrWindowBounds
		assert.ErrorAs(t, w.Validate(length, false), &target)
	})

	t.Run("negative start", func(t *testing.T) {
		w := valid
		w.StartIndex = -1
		var target *pulsesim.ErrWindowBounds
		assert.ErrorAs(t, w.Validate(length, false), &target)
	})

	t.Run("lag before signal start", func(t *testing.T) {
		w := valid
		w.Lag = w.StartIndex + 1
		var target *pulsesim.ErrSubtractLag
		assert.ErrorAs(t, w.Validate(length, true), &target)
	})

	t.Run("non-positive lag", func(t *testing.T) {
		w := valid
		w.Lag = 0
		var target *pulsesim.ErrSubtractLag
		assert.ErrorAs(t, w.Validate(length, true), &target)
	})

	t.Run("lag ignored without subtraction", func(t *testing.T) {
		w := valid
		w.Lag = 0
		assert.NoError(t, w.Validate(length, false))
	})
}
