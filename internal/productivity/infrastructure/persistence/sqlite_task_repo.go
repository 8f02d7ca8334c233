package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/apexhour/internal/productivity/domain/task"
	"github.com/google/uuid"
)

// SQLiteTaskRepository implements task.Repository using SQLite.
type SQLiteTaskRepository struct {
	db *sql.DB
}

// NewSQLiteTaskRepository creates a new SQLite task repository.
func NewSQLiteTaskRepository(db *sql.DB) *SQLiteTaskRepository {
	return &SQLiteTaskRepository{db: db}
}

// taskRow represents a database row for tasks.
type taskRow struct {
	ID                   string
	Title                string
	Description          string
	Tags                 string
	Category             string
	Status               string
	ScheduledStart       sql.NullString
	ScheduledEnd         sql.NullString
	EstimatedDurationMin int64
	CompletedAt          sql.NullString
	CreatedAt            string
	UpdatedAt            string
}

const taskColumns = `id, title, description, tags, category, status,
	scheduled_start, scheduled_end, estimated_duration_min, completed_at,
	created_at, updated_at`

// Save persists a task, inserting or updating by id.
func (r *SQLiteTaskRepository) Save(ctx context.Context, t *task.Task) error {
	tags, err := json.Marshal(t.Tags())
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			tags = excluded.tags,
			category = excluded.category,
			status = excluded.status,
			scheduled_start = excluded.scheduled_start,
			scheduled_end = excluded.scheduled_end,
			estimated_duration_min = excluded.estimated_duration_min,
			completed_at = excluded.completed_at,
			updated_at = excluded.updated_at`,
		t.ID().String(),
		t.Title(),
		t.Description(),
		string(tags),
		t.Category().String(),
		t.Status().String(),
		nullableTime(t.ScheduledStart()),
		nullableTime(t.ScheduledEnd()),
		int64(t.EstimatedDuration().Minutes()),
		nullableTime(t.CompletedAt()),
		t.CreatedAt().UTC().Format(time.RFC3339Nano),
		t.UpdatedAt().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by id. Returns nil when not found.
func (r *SQLiteTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id.String())

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return t, nil
}

// FindByDate retrieves tasks whose scheduled start falls on the given
// calendar day, ordered by scheduled start.
func (r *SQLiteTaskRepository) FindByDate(ctx context.Context, date time.Time) ([]*task.Task, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+taskColumns+` FROM tasks
		WHERE scheduled_start IS NOT NULL
		  AND scheduled_start >= ? AND scheduled_start < ?
		ORDER BY scheduled_start`,
		dayStart.UTC().Format(time.RFC3339Nano),
		dayEnd.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks by date: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

// List retrieves all tasks, newest first.
func (r *SQLiteTaskRepository) List(ctx context.Context) ([]*task.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

// Delete removes a task.
func (r *SQLiteTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (*task.Task, error) {
	var row taskRow
	if err := s.Scan(
		&row.ID,
		&row.Title,
		&row.Description,
		&row.Tags,
		&row.Category,
		&row.Status,
		&row.ScheduledStart,
		&row.ScheduledEnd,
		&row.EstimatedDurationMin,
		&row.CompletedAt,
		&row.CreatedAt,
		&row.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return rowToTask(row)
}

func collectTasks(rows *sql.Rows) ([]*task.Task, error) {
	var tasks []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}

func rowToTask(row taskRow) (*task.Task, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid task id %q: %w", row.ID, err)
	}

	var tags []string
	if err := json.Unmarshal([]byte(row.Tags), &tags); err != nil {
		return nil, fmt.Errorf("invalid tags for task %s: %w", row.ID, err)
	}

	status, err := task.ParseStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status for task %s: %w", row.ID, err)
	}

	category, err := task.ParseCategory(row.Category)
	if err != nil {
		return nil, fmt.Errorf("invalid category for task %s: %w", row.ID, err)
	}

	createdAt, err := parseTime(row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at for task %s: %w", row.ID, err)
	}
	updatedAt, err := parseTime(row.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at for task %s: %w", row.ID, err)
	}

	scheduledStart, err := parseNullTime(row.ScheduledStart)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduled_start for task %s: %w", row.ID, err)
	}
	scheduledEnd, err := parseNullTime(row.ScheduledEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduled_end for task %s: %w", row.ID, err)
	}
	completedAt, err := parseNullTime(row.CompletedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid completed_at for task %s: %w", row.ID, err)
	}

	return task.Rehydrate(
		id,
		row.Title,
		row.Description,
		tags,
		category,
		status,
		scheduledStart,
		scheduledEnd,
		time.Duration(row.EstimatedDurationMin)*time.Minute,
		completedAt,
		createdAt,
		updatedAt,
	), nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func parseNullTime(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid {
		return nil, nil
	}
	t, err := parseTime(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
