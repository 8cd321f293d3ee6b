package pulsesim

import (
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

// Summary condenses one histogram to the numbers worth logging: how many
// trials landed in range, how many fell off either end, and the first two
// moments plus the modal bin of the energy distribution.
type Summary struct {
	Name      string
	Entries   uint64
	Underflow uint64
	Overflow  uint64
	Mean      float64
	StdDev    float64
	ModalBin  int
}

func Summarize(name string, h *Histogram) Summary {
	summary := Summary{
		Name:      name,
		Entries:   h.Entries(),
		Underflow: h.Underflow(),
		Overflow:  h.Overflow(),
		ModalBin:  -1,
	}
	if summary.Entries == 0 {
		return summary
	}

	counts := h.Counts()
	bins := make([]float64, len(counts))
	weights := make([]float64, len(counts))
	for i, c := range counts {
		bins[i] = float64(i)
		weights[i] = float64(c)
	}
	summary.Mean = stat.Mean(bins, weights)
	summary.StdDev = stat.StdDev(bins, weights)
	summary.ModalBin = slices.Index(counts, slices.Max(counts))
	return summary
}

// VariantReport is the per-extractor slice of a Report. Reference is the
// energy of the noiseless signal, the value the histogram should peak near.
type VariantReport struct {
	Name      string
	Counts    []uint64
	Reference int64
	Summary   Summary
}

// Report is the stateless data structure handed to a rendering collaborator:
// one sample waveform plus a histogram snapshot per extraction variant. The
// core never renders anything itself.
type Report struct {
	Waveform []int32
	Variants []VariantReport
}

// ReferenceEnergies runs every extractor over the noiseless signal.
func ReferenceEnergies(noiseless []int32, extractors []Extractor) []int64 {
	references := make([]int64, len(extractors))
	for i, extractor := range extractors {
		references[i] = extractor.Extract(noiseless)
	}
	return references
}

func BuildReport(waveform []int32, extractors []Extractor, histograms []*Histogram, references []int64) Report {
	report := Report{Waveform: waveform}
	for i, extractor := range extractors {
		report.Variants = append(report.Variants, VariantReport{
			Name:      extractor.Name,
			Counts:    histograms[i].Counts(),
			Reference: references[i],
			Summary:   Summarize(extractor.Name, histograms[i]),
		})
	}
	return report
}
