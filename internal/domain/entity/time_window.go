package entity

import (
	"sort"
	"time"
)

// TimeWindow is a half-open interval [Start, End).
type TimeWindow struct {
	Start time.Time `json:"start_time"`
	End   time.Time `json:"end_time"`
}

// IsValid reports whether the window has positive length.
func (w TimeWindow) IsValid() bool {
	return w.Start.Before(w.End)
}

// Overlaps reports whether two half-open intervals intersect:
// a.start < b.end && b.start < a.end.
func (w TimeWindow) Overlaps(o TimeWindow) bool {
	return w.Start.Before(o.End) && o.Start.Before(w.End)
}

// MergeWindows coalesces overlapping or touching windows into a sorted,
// disjoint set. Template rows are not guaranteed disjoint, so callers merge
// before subtracting or checking coverage.
func MergeWindows(windows []TimeWindow) []TimeWindow {
	if len(windows) == 0 {
		return nil
	}

	sorted := make([]TimeWindow, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := []TimeWindow{sorted[0]}
	for _, w := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !w.Start.After(last.End) {
			if w.End.After(last.End) {
				last.End = w.End
			}
			continue
		}
		merged = append(merged, w)
	}
	return merged
}

// SubtractWindows removes the busy intervals from the free ones, returning
// the remaining sub-intervals ordered by start time. The free set must be
// merged (sorted, disjoint); busy may be arbitrary.
func SubtractWindows(free, busy []TimeWindow) []TimeWindow {
	busy = MergeWindows(busy)

	var open []TimeWindow
	for _, w := range free {
		cursor := w.Start
		for _, b := range busy {
			if !b.End.After(cursor) {
				continue
			}
			if !b.Start.Before(w.End) {
				break
			}
			if b.Start.After(cursor) {
				open = append(open, TimeWindow{Start: cursor, End: b.Start})
			}
			if b.End.After(cursor) {
				cursor = b.End
			}
			if !cursor.Before(w.End) {
				break
			}
		}
		if cursor.Before(w.End) {
			open = append(open, TimeWindow{Start: cursor, End: w.End})
		}
	}
	return open
}

// CoveredBy reports whether w lies fully within one of the merged windows.
// The set must be merged first; a request spanning two touching templates is
// covered because merging coalesces them.
func (w TimeWindow) CoveredBy(merged []TimeWindow) bool {
	for _, m := range merged {
		if !w.Start.Before(m.Start) && !w.End.After(m.End) {
			return true
		}
	}
	return false
}
