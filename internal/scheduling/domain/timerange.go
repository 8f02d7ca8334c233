package domain

import "time"

// TimeRange represents a half-open time period [Start, End).
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange creates a time range.
func NewTimeRange(start, end time.Time) TimeRange {
	return TimeRange{Start: start, End: end}
}

// Overlaps checks if two time ranges overlap. Intervals are half-open:
// ranges that merely touch at an endpoint do not overlap.
func (t TimeRange) Overlaps(other TimeRange) bool {
	return t.Start.Before(other.End) && other.Start.Before(t.End)
}

// Contains checks if an instant falls within the range.
func (t TimeRange) Contains(at time.Time) bool {
	return !at.Before(t.Start) && at.Before(t.End)
}

// Duration returns the duration of the time range.
func (t TimeRange) Duration() time.Duration {
	return t.End.Sub(t.Start)
}

// TimeSlot is a candidate free interval of a requested duration within a
// work day. Optimal is the category-dependent ranking flag.
type TimeSlot struct {
	Start   time.Time
	End     time.Time
	Optimal bool
}

// Range returns the slot as a TimeRange.
func (s TimeSlot) Range() TimeRange {
	return TimeRange{Start: s.Start, End: s.End}
}

// Duration returns the slot duration.
func (s TimeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}
