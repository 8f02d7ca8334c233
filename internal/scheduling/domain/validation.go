package domain

import (
	"github.com/felixgeelhaar/apexhour/internal/productivity/domain/task"
)

// WarningKind identifies a non-blocking advisory about a proposed interval.
type WarningKind string

const (
	WarningCloseToApexHour  WarningKind = "close_to_apex_hour"
	WarningOutsideWorkHours WarningKind = "outside_work_hours"
	WarningSuboptimalTiming WarningKind = "suboptimal_timing"
)

// ConflictKind identifies a scheduling problem that invalidates the
// proposed interval.
type ConflictKind string

const (
	ConflictApexHourViolation ConflictKind = "apex_hour_violation"
	ConflictTaskOverlap       ConflictKind = "task_overlap"
)

// Severity grades a conflict. High-severity conflicts are blocking.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

// SuggestionPriority ranks remediation suggestions.
type SuggestionPriority string

const (
	SuggestionPriorityHigh   SuggestionPriority = "high"
	SuggestionPriorityMedium SuggestionPriority = "medium"
	SuggestionPriorityLow    SuggestionPriority = "low"
)

// Warning is a non-blocking advisory attached to a validation result.
type Warning struct {
	Kind        WarningKind
	Message     string
	Remediation string
}

// Conflict is a blocking scheduling problem.
type Conflict struct {
	Kind            ConflictKind
	Message         string
	Severity        Severity
	SuggestedAction string
}

// Suggestion proposes an alternative slot and, optionally, an alternative
// category. Suggestions are advisory; applying them is up to the caller.
type Suggestion struct {
	Slot              TimeSlot
	Rationale         string
	Priority          SuggestionPriority
	AlternateCategory *task.Category
}

// ValidationResult is the outcome of validating a proposed task interval.
// Valid is false exactly when Conflicts is non-empty.
type ValidationResult struct {
	Valid       bool
	Warnings    []Warning
	Conflicts   []Conflict
	Suggestions []Suggestion
}

// NewValidationResult creates an empty, valid result.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Valid:       true,
		Warnings:    make([]Warning, 0),
		Conflicts:   make([]Conflict, 0),
		Suggestions: make([]Suggestion, 0),
	}
}

// AddWarning appends a non-blocking warning.
func (r *ValidationResult) AddWarning(w Warning) {
	r.Warnings = append(r.Warnings, w)
}

// AddConflict appends a blocking conflict and invalidates the result.
func (r *ValidationResult) AddConflict(c Conflict) {
	r.Conflicts = append(r.Conflicts, c)
	r.Valid = false
}

// AddSuggestion appends a remediation suggestion.
func (r *ValidationResult) AddSuggestion(s Suggestion) {
	r.Suggestions = append(r.Suggestions, s)
}

// HasWarnings reports whether any warnings were recorded.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// HasConflictKind reports whether a conflict of the given kind was recorded.
func (r *ValidationResult) HasConflictKind(kind ConflictKind) bool {
	for _, c := range r.Conflicts {
		if c.Kind == kind {
			return true
		}
	}
	return false
}
