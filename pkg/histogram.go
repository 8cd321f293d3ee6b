package pulsesim

// HistogramSize is the number of energy bins, the full 14-bit range of the
// digitizer.
const HistogramSize = 16384

// Histogram accumulates energy estimates into fixed-size bins. Energies
// outside [0, HistogramSize) are counted separately as underflow/overflow
// instead of aborting the batch or touching a neighboring bin; one bad trial
// must not invalidate the rest.
type Histogram struct {
	counts    []uint64
	underflow uint64
	overflow  uint64
}

func NewHistogram() *Histogram {
	return &Histogram{counts: make([]uint64, HistogramSize)}
}

func (h *Histogram) Record(energy int64) {
	switch {
	case energy < 0:
		h.underflow++
	case energy >= HistogramSize:
		h.overflow++
	default:
		h.counts[energy]++
	}
}

// Counts returns a snapshot copy for downstream consumers; the histogram
// itself stays append-only.
func (h *Histogram) Counts() []uint64 {
	counts := make([]uint64, len(h.counts))
	copy(counts, h.counts)
	return counts
}

func (h *Histogram) Count(bin int) uint64 {
	return h.counts[bin]
}

func (h *Histogram) Size() int {
	return len(h.counts)
}

// Entries is the number of in-range energies recorded.
func (h *Histogram) Entries() uint64 {
	var total uint64
	for _, c := range h.counts {
		total += c
	}
	return total
}

func (h *Histogram) Underflow() uint64 {
	return h.underflow
}

func (h *Histogram) Overflow() uint64 {
	return h.overflow
}

// Merge adds the counts of another histogram bin by bin. Used to combine
// per-worker partial histograms; the result does not depend on the order the
// trials ran in.
func (h *Histogram) Merge(other *Histogram) {
	for i, c := range other.counts {
		h.counts[i] += c
	}
	h.underflow += other.underflow
	h.overflow += other.overflow
}
