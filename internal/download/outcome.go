package download

import (
	"github.com/handiism/modrinth-downloader/internal/model"
)

// OutcomeKind tags the result of processing one RequestItem.
type OutcomeKind int

const (
	// OutcomeSucceeded means the file was fetched and placed.
	OutcomeSucceeded OutcomeKind = iota

	// OutcomeSkipped means the destination already existed; nothing was fetched.
	OutcomeSkipped

	// OutcomePlanned means a dry run resolved the item without fetching it.
	OutcomePlanned

	// OutcomeLookupFailure means search or listing found nothing or failed.
	OutcomeLookupFailure

	// OutcomeResolutionFailure means no compatible release or file exists.
	OutcomeResolutionFailure

	// OutcomeTransportFailure means fetching or writing the file failed.
	OutcomeTransportFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSucceeded:
		return "downloaded"
	case OutcomeSkipped:
		return "skipped"
	case OutcomePlanned:
		return "planned"
	case OutcomeLookupFailure:
		return "lookup failure"
	case OutcomeResolutionFailure:
		return "resolution failure"
	case OutcomeTransportFailure:
		return "transport failure"
	default:
		return "unknown"
	}
}

// Failed reports whether the kind counts towards the failed tally.
func (k OutcomeKind) Failed() bool {
	return k >= OutcomeLookupFailure
}

// Outcome is the tagged result of one item.
//
// Path and Resolution are set once the item got as far as resolution; Err
// is set for failure kinds only.
type Outcome struct {
	Item       model.RequestItem
	Kind       OutcomeKind
	Path       string
	Resolution model.Resolution
	Bytes      int64
	Err        error
}

// Summary tallies outcomes of a run.
type Summary struct {
	Succeeded int
	Skipped   int
	Planned   int
	Failed    int
}

// Total returns the number of items the summary covers.
func (s Summary) Total() int {
	return s.Succeeded + s.Skipped + s.Planned + s.Failed
}

// Summarize folds outcomes into a Summary.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch {
		case o.Kind == OutcomeSucceeded:
			s.Succeeded++
		case o.Kind == OutcomeSkipped:
			s.Skipped++
		case o.Kind == OutcomePlanned:
			s.Planned++
		case o.Kind.Failed():
			s.Failed++
		}
	}
	return s
}
