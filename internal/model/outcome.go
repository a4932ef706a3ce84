package model

// DownloadOutcome records the terminal state of one request. Every
// request ends in exactly one outcome: success with an output path, or
// failure with a reason. There is no pending state once the batch
// returns.
type DownloadOutcome struct {
	Identifier      string
	Title           string
	Success         bool
	OutputPath      string // path to the downloaded file, empty on failure
	ResolvedQuality string // resolution label of the stream actually used
	HasAudio        bool   // false only on the adaptive video-only fallback
	ErrorMessage    string // human-readable failure reason
}

// BatchSummary aggregates the outcomes of a single batch invocation.
type BatchSummary struct {
	TotalRequested int
	SuccessCount   int
	FailureCount   int
	OutputPaths    []string
	Outcomes       []DownloadOutcome
}

// Add folds one outcome into the summary, keeping the counters and the
// output path list in step.
func (bs *BatchSummary) Add(outcome DownloadOutcome) {
	bs.TotalRequested++
	bs.Outcomes = append(bs.Outcomes, outcome)
	if outcome.Success {
		bs.SuccessCount++
		bs.OutputPaths = append(bs.OutputPaths, outcome.OutputPath)
	} else {
		bs.FailureCount++
	}
}

// Consistent reports whether the counter invariants hold:
// SuccessCount+FailureCount == TotalRequested and one output path per
// success.
func (bs *BatchSummary) Consistent() bool {
	return bs.SuccessCount+bs.FailureCount == bs.TotalRequested &&
		len(bs.OutputPaths) == bs.SuccessCount
}
