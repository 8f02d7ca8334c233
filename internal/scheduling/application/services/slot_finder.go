package services

import (
	"sort"
	"time"

	prefs "github.com/felixgeelhaar/apexhour/internal/preferences/domain"
	"github.com/felixgeelhaar/apexhour/internal/productivity/domain/task"
	"github.com/felixgeelhaar/apexhour/internal/scheduling/domain"
)

// scanIncrement is the grid on which candidate slot starts are aligned.
const scanIncrement = 30 * time.Minute

// Optimality windows, expressed as time elapsed since workday start.
const (
	deepWorkOptimalBefore    = 4 * time.Hour
	shallowWorkOptimalAfter  = 2 * time.Hour
	shallowWorkOptimalBefore = 6 * time.Hour
	windDownOptimalAfter     = 6 * time.Hour
)

// SlotFinder discovers free intervals of a requested duration within a work
// day. It is stateless: identical inputs always produce identical output.
type SlotFinder struct{}

// NewSlotFinder creates a new slot finder.
func NewSlotFinder() *SlotFinder {
	return &SlotFinder{}
}

// Find scans the workday on the given date in fixed increments and returns
// up to maxSuggestions free slots for the category. Non-wind-down categories
// never receive a slot touching the apex-hour window. Results are ordered
// optimal-first, then by ascending start time within each group.
func (f *SlotFinder) Find(
	category task.Category,
	duration time.Duration,
	date time.Time,
	settings prefs.Settings,
	dayTasks []*task.Task,
	maxSuggestions int,
) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0, maxSuggestions)
	if duration <= 0 || maxSuggestions <= 0 {
		return slots
	}

	dayStart := settings.WorkdayStart(date)
	dayEnd := settings.WorkdayEnd(date)
	apexWindow := domain.NewTimeRange(settings.ApexHourStart(date), dayEnd)

	busy := make([]domain.TimeRange, 0, len(dayTasks))
	for _, t := range dayTasks {
		if start, end, ok := t.Interval(); ok {
			busy = append(busy, domain.NewTimeRange(start, end))
		}
	}

	for start := dayStart; len(slots) < maxSuggestions; start = start.Add(scanIncrement) {
		end := start.Add(duration)
		if end.After(dayEnd) {
			break
		}

		candidate := domain.NewTimeRange(start, end)
		if !category.ApexExempt() && candidate.Overlaps(apexWindow) {
			continue
		}

		occupied := false
		for _, b := range busy {
			if candidate.Overlaps(b) {
				occupied = true
				break
			}
		}
		if occupied {
			continue
		}

		slots = append(slots, domain.TimeSlot{
			Start:   start,
			End:     end,
			Optimal: optimalFor(category, start.Sub(dayStart)),
		})
	}

	// The scan is already ascending by start; a stable partition keeps
	// that order within each group.
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Optimal && !slots[j].Optimal
	})

	return slots
}

// optimalFor applies the per-category heuristic: deep work early, shallow
// work mid-day, wind-down late.
func optimalFor(category task.Category, elapsed time.Duration) bool {
	switch category {
	case task.CategoryDeepWork:
		return elapsed < deepWorkOptimalBefore
	case task.CategoryShallowWork:
		return elapsed >= shallowWorkOptimalAfter && elapsed < shallowWorkOptimalBefore
	case task.CategoryWindDown:
		return elapsed >= windDownOptimalAfter
	default:
		return false
	}
}
