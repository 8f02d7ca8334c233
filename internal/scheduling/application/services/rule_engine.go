package services

import (
	"errors"
	"fmt"
	"time"

	prefs "github.com/felixgeelhaar/apexhour/internal/preferences/domain"
	"github.com/felixgeelhaar/apexhour/internal/productivity/domain/task"
	"github.com/felixgeelhaar/apexhour/internal/scheduling/domain"
)

// ErrInvalidProposedInterval is returned when the proposed end precedes the
// proposed start. Malformed input is an argument error, not a conflict.
var ErrInvalidProposedInterval = errors.New("proposed end must not be before proposed start")

// Business constants carried over unchanged; there is no configuration path
// for these.
const (
	// apexProximityBuffer is how close to the apex hour a task may end
	// before a buffer warning is raised.
	apexProximityBuffer = time.Hour

	// deepWorkMorningWindow is how long after workday start deep work is
	// still considered well-timed.
	deepWorkMorningWindow = 4 * time.Hour

	// suggestionSlotLimit caps the alternate slots consulted per validation.
	suggestionSlotLimit = 2
)

const clockLayout = "15:04"

// RuleEngine validates proposed task intervals against the apex-hour
// window, other scheduled tasks, and workday boundaries. Conflicts and
// warnings are data in the result, never errors.
type RuleEngine struct {
	slots *SlotFinder
}

// NewRuleEngine creates a rule engine backed by the given slot finder.
func NewRuleEngine(slots *SlotFinder) *RuleEngine {
	return &RuleEngine{slots: slots}
}

// Validate evaluates every rule against the proposed interval and returns
// the accumulated result. Rules never short-circuit each other: a proposal
// can collect several conflicts and warnings in one pass. sameDayTasks is
// the already-fetched task list for the proposal's date; the task under
// validation is excluded from overlap checks by ID.
func (e *RuleEngine) Validate(
	t *task.Task,
	proposedStart, proposedEnd time.Time,
	settings prefs.Settings,
	sameDayTasks []*task.Task,
) (*domain.ValidationResult, error) {
	if proposedEnd.Before(proposedStart) {
		return nil, ErrInvalidProposedInterval
	}

	result := domain.NewValidationResult()
	proposed := domain.NewTimeRange(proposedStart, proposedEnd)

	dayStart := settings.WorkdayStart(proposedStart)
	dayEnd := settings.WorkdayEnd(proposedStart)
	apexStart := settings.ApexHourStart(proposedStart)
	apexWindow := domain.NewTimeRange(apexStart, dayEnd)

	// Rule 1: only wind-down work may occupy the apex hour.
	apexViolated := !t.Category().ApexExempt() && proposed.Overlaps(apexWindow)
	if apexViolated {
		result.AddConflict(domain.Conflict{
			Kind: domain.ConflictApexHourViolation,
			Message: fmt.Sprintf("%s task overlaps the protected apex hour (%s-%s)",
				t.Category(), apexStart.Format(clockLayout), dayEnd.Format(clockLayout)),
			Severity:        domain.SeverityHigh,
			SuggestedAction: "move the task earlier or change its category to wind-down",
		})
	}

	// Rule 2: warn when the task ends close to the apex hour. Skipped when
	// rule 1 already fired for the same interval.
	if !apexViolated && proposedEnd.After(apexStart.Add(-apexProximityBuffer)) {
		result.AddWarning(domain.Warning{
			Kind: domain.WarningCloseToApexHour,
			Message: fmt.Sprintf("task ends within an hour of the apex hour (%s)",
				apexStart.Format(clockLayout)),
			Remediation: "leave more buffer before your wind-down begins",
		})
	}

	// Rule 3: one conflict per overlapping same-day task.
	for _, other := range sameDayTasks {
		if other.ID() == t.ID() {
			continue
		}
		otherStart, otherEnd, ok := other.Interval()
		if !ok {
			continue
		}
		if proposed.Overlaps(domain.NewTimeRange(otherStart, otherEnd)) {
			result.AddConflict(domain.Conflict{
				Kind: domain.ConflictTaskOverlap,
				Message: fmt.Sprintf("overlaps %q (%s-%s)",
					other.Title(), otherStart.Format(clockLayout), otherEnd.Format(clockLayout)),
				Severity:        domain.SeverityHigh,
				SuggestedAction: "pick a free slot",
			})
		}
	}

	// Rule 4: outside work hours is advisory, not blocking.
	if proposedStart.Before(dayStart) || proposedEnd.After(dayEnd) {
		result.AddWarning(domain.Warning{
			Kind: domain.WarningOutsideWorkHours,
			Message: fmt.Sprintf("task extends outside work hours (%s-%s)",
				dayStart.Format(clockLayout), dayEnd.Format(clockLayout)),
			Remediation: "keep scheduled work inside the configured workday",
		})
	}

	// Rule 5: deep work late in the day is rarely deep.
	if t.Category() == task.CategoryDeepWork && proposedStart.After(dayStart.Add(deepWorkMorningWindow)) {
		result.AddWarning(domain.Warning{
			Kind:        domain.WarningSuboptimalTiming,
			Message:     "deep work is scheduled late in the day",
			Remediation: "schedule deep work within the first four hours of the workday",
		})
	}

	if !result.Valid || result.HasWarnings() {
		e.addSuggestions(result, t, proposed, apexWindow, settings, sameDayTasks)
	}

	return result, nil
}

// addSuggestions produces remediation proposals: earlier optimal slots for
// deep work, and a category change when the interval sits in the apex hour.
func (e *RuleEngine) addSuggestions(
	result *domain.ValidationResult,
	t *task.Task,
	proposed domain.TimeRange,
	apexWindow domain.TimeRange,
	settings prefs.Settings,
	sameDayTasks []*task.Task,
) {
	if t.Category() == task.CategoryDeepWork {
		slots := e.slots.Find(task.CategoryDeepWork, proposed.Duration(), proposed.Start, settings, sameDayTasks, suggestionSlotLimit)
		for _, slot := range slots {
			if slot.Optimal && slot.Start.Before(proposed.Start) {
				result.AddSuggestion(domain.Suggestion{
					Slot:      slot,
					Rationale: "morning hours are optimal for deep work",
					Priority:  domain.SuggestionPriorityHigh,
				})
			}
		}
	}

	if !t.Category().ApexExempt() && proposed.Overlaps(apexWindow) {
		alternate := task.CategoryWindDown
		result.AddSuggestion(domain.Suggestion{
			Slot:              domain.TimeSlot{Start: proposed.Start, End: proposed.End, Optimal: false},
			Rationale:         "keep the interval but treat it as wind-down work",
			Priority:          domain.SuggestionPriorityMedium,
			AlternateCategory: &alternate,
		})
	}
}
