package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2026, time.March, 2, hour, min, 0, 0, time.UTC)
}

func TestTimeRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeRange
		b    TimeRange
		want bool
	}{
		{
			name: "touching endpoints do not overlap",
			a:    NewTimeRange(at(9, 0), at(10, 0)),
			b:    NewTimeRange(at(10, 0), at(11, 0)),
			want: false,
		},
		{
			name: "one minute past the boundary overlaps",
			a:    NewTimeRange(at(9, 0), at(10, 1)),
			b:    NewTimeRange(at(10, 0), at(11, 0)),
			want: true,
		},
		{
			name: "containment overlaps",
			a:    NewTimeRange(at(9, 0), at(12, 0)),
			b:    NewTimeRange(at(10, 0), at(11, 0)),
			want: true,
		},
		{
			name: "disjoint ranges do not overlap",
			a:    NewTimeRange(at(9, 0), at(10, 0)),
			b:    NewTimeRange(at(14, 0), at(15, 0)),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeRange_Contains(t *testing.T) {
	r := NewTimeRange(at(9, 0), at(10, 0))

	assert.True(t, r.Contains(at(9, 0)))
	assert.True(t, r.Contains(at(9, 59)))
	assert.False(t, r.Contains(at(10, 0)))
	assert.False(t, r.Contains(at(8, 59)))
}

func TestTimeSlot_Duration(t *testing.T) {
	slot := TimeSlot{Start: at(9, 0), End: at(9, 45)}
	assert.Equal(t, 45*time.Minute, slot.Duration())
}

func TestValidationResult(t *testing.T) {
	r := NewValidationResult()
	assert.True(t, r.Valid)
	assert.False(t, r.HasWarnings())

	r.AddWarning(Warning{Kind: WarningOutsideWorkHours})
	assert.True(t, r.Valid)
	assert.True(t, r.HasWarnings())

	r.AddConflict(Conflict{Kind: ConflictTaskOverlap, Severity: SeverityHigh})
	assert.False(t, r.Valid)
	assert.True(t, r.HasConflictKind(ConflictTaskOverlap))
	assert.False(t, r.HasConflictKind(ConflictApexHourViolation))
}
