package quiz

import "fmt"

// Warning describes a problem found in the input. Warnings never stop the extraction,
// the affected candidate is dropped or repaired and the scan goes on.
type Warning struct {
	// Issue defines the type of the problem.
	Issue Issue

	// Pos defines the byte position in the input string at which the problem occured.
	Pos int

	// Got is the offending byte, when there is one.
	Got byte
}

// Warnings collects the issues found during the extraction.
//
// The zero value keeps every Warning. A collector made by [NewWarnings] keeps at most
// limit entries: once full, the last slot holds an [IssueWarningsTruncated] marker
// pointing at the first Warning that did not fit, and the rest are only counted.
// A nil *Warnings keeps nothing.
type Warnings struct {
	list []Warning

	// limit is 0 for an unbounded collector
	limit int

	dropped int
}

// NewWarnings creates a Warnings collector holding at most limit entries.
// Input full of broken markers produces a warning per marker, so the HTTP layer
// always bounds it. It returns a ConfigError if limit is less than 1.
func NewWarnings(limit int) (Warnings, error) {
	if limit < 1 {
		return Warnings{}, NewConfigError(
			IssueInvalidWarningsLimit,
			fmt.Errorf("warnings limit must be at least 1, got %d", limit),
		)
	}

	return Warnings{
		list:  make([]Warning, 0, min(limit, 64)),
		limit: limit,
	}, nil
}

// Add records item, or only counts it when the collector is full.
// Calling Add on a nil *Warnings is a no-op.
func (w *Warnings) Add(item Warning) {
	if w == nil {
		return
	}

	if w.limit == 0 || len(w.list) < w.limit-1 {
		w.list = append(w.list, item)
		return
	}

	if w.dropped == 0 {
		w.list = append(w.list, Warning{Issue: IssueWarningsTruncated, Pos: item.Pos})
	}
	w.dropped++
}

func (w *Warnings) List() []Warning {
	if w == nil {
		return nil
	}
	return w.list
}

// Truncated reports how many Warnings did not fit and the input position of the first
// of them. ok is false when nothing was dropped.
func (w *Warnings) Truncated() (dropped int, firstPos int, ok bool) {
	if w == nil || w.dropped == 0 {
		return 0, 0, false
	}
	return w.dropped, w.list[len(w.list)-1].Pos, true
}
