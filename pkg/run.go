package pulsesim

import "fmt"

// Run executes the trial batch sequentially: one fresh signal per trial, fed
// to every extractor so the variants are computed over the same realizations
// and their spreads are directly comparable. Returns one histogram per
// extractor, in the same order.
func Run(trials int, synthesize func() []int32, extractors []Extractor) []*Histogram {
	histograms := make([]*Histogram, len(extractors))
	for i := range histograms {
		histograms[i] = NewHistogram()
	}

	for t := 0; t < trials; t++ {
		signal := synthesize()
		for i, extractor := range extractors {
			histograms[i].Record(extractor.Extract(signal))
		}
		if configuration.Verbosity > 2 {
			logger.Info(fmt.Sprintf("Trial %d done", t), "run")
		}
	}
	return histograms
}

// RunParallel distributes the trials over a worker pool. Each worker gets
// its own synthesizer (and random source) from the factory and fills its own
// partial histograms, merged once the jobs channel drains. Bin increments
// commute, so the merged histograms do not depend on how the trials were
// interleaved.
func RunParallel(trials int, numWorkers int, synthesizers func(worker int) func() []int32, extractors []Extractor) []*Histogram {
	jobs := make(chan int, numWorkers)
	results := make(chan []*Histogram, numWorkers)

	for w := 1; w <= numWorkers; w++ {
		go trialWorker(w, jobs, results, synthesizers(w), extractors)
	}

	go func() {
		for t := 0; t < trials; t++ {
			jobs <- t
		}
		close(jobs)
	}()

	histograms := make([]*Histogram, len(extractors))
	for i := range histograms {
		histograms[i] = NewHistogram()
	}
	for w := 1; w <= numWorkers; w++ {
		partials := <-results
		for i, partial := range partials {
			histograms[i].Merge(partial)
		}
	}
	return histograms
}

func trialWorker(id int, jobs <-chan int, results chan<- []*Histogram, synthesize func() []int32, extractors []Extractor) {
	partials := make([]*Histogram, len(extractors))
	for i := range partials {
		partials[i] = NewHistogram()
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error(fmt.Sprintf("worker %d recovered from panic: %v", id, r))
		}
		results <- partials
	}()

	for trial := range jobs {
		if configuration.Verbosity > 2 {
			logger.Info(fmt.Sprintf("Worker %d processing trial %d", id, trial), "run")
		}
		signal := synthesize()
		for i, extractor := range extractors {
			partials[i].Record(extractor.Extract(signal))
		}
	}
}
