package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Run("creates pending task with defaults", func(t *testing.T) {
		tk, err := NewTask("Write design doc", CategoryDeepWork)

		require.NoError(t, err)
		assert.Equal(t, "Write design doc", tk.Title())
		assert.Equal(t, CategoryDeepWork, tk.Category())
		assert.Equal(t, StatusPending, tk.Status())
		assert.Equal(t, DefaultEstimatedDuration, tk.EstimatedDuration())
		assert.False(t, tk.IsScheduled())
		require.Len(t, tk.DomainEvents(), 1)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := NewTask("   ", CategoryShallowWork)
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := NewTask("Misc", Category("leisure"))
		assert.ErrorIs(t, err, ErrUnknownCategory)
	})
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"deep_work", CategoryDeepWork, false},
		{"deep", CategoryDeepWork, false},
		{"Shallow-Work", CategoryShallowWork, false},
		{"wind_down", CategoryWindDown, false},
		{"winddown", CategoryWindDown, false},
		{"", "", true},
		{"leisure", "", true},
	}

	for _, tt := range tests {
		got, err := ParseCategory(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestCategory_ApexExempt(t *testing.T) {
	assert.False(t, CategoryDeepWork.ApexExempt())
	assert.False(t, CategoryShallowWork.ApexExempt())
	assert.True(t, CategoryWindDown.ApexExempt())
}

func TestTask_Schedule(t *testing.T) {
	start := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("assigns interval", func(t *testing.T) {
		tk, err := NewTask("Review PR", CategoryShallowWork)
		require.NoError(t, err)

		require.NoError(t, tk.Schedule(start, end))
		gotStart, gotEnd, ok := tk.Interval()
		require.True(t, ok)
		assert.Equal(t, start, gotStart)
		assert.Equal(t, end, gotEnd)
	})

	t.Run("rejects end before start", func(t *testing.T) {
		tk, err := NewTask("Review PR", CategoryShallowWork)
		require.NoError(t, err)

		err = tk.Schedule(end, start)
		assert.ErrorIs(t, err, ErrInvalidInterval)
		assert.False(t, tk.IsScheduled())
	})

	t.Run("clear removes interval", func(t *testing.T) {
		tk, err := NewTask("Review PR", CategoryShallowWork)
		require.NoError(t, err)
		require.NoError(t, tk.Schedule(start, end))

		require.NoError(t, tk.ClearSchedule())
		assert.False(t, tk.IsScheduled())
	})
}

func TestTask_Lifecycle(t *testing.T) {
	t.Run("complete records completion time", func(t *testing.T) {
		tk, err := NewTask("Ship release", CategoryDeepWork)
		require.NoError(t, err)

		require.NoError(t, tk.Start())
		assert.Equal(t, StatusInProgress, tk.Status())

		require.NoError(t, tk.Complete())
		assert.Equal(t, StatusCompleted, tk.Status())
		require.NotNil(t, tk.CompletedAt())
	})

	t.Run("completed task rejects mutation", func(t *testing.T) {
		tk, err := NewTask("Ship release", CategoryDeepWork)
		require.NoError(t, err)
		require.NoError(t, tk.Complete())

		assert.ErrorIs(t, tk.SetTitle("new"), ErrTaskAlreadyComplete)
		assert.ErrorIs(t, tk.Complete(), ErrTaskAlreadyComplete)
		assert.ErrorIs(t, tk.Cancel(), ErrTaskAlreadyComplete)
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		tk, err := NewTask("Ship release", CategoryDeepWork)
		require.NoError(t, err)

		require.NoError(t, tk.Cancel())
		require.NoError(t, tk.Cancel())
		assert.Equal(t, StatusCancelled, tk.Status())
		assert.Nil(t, tk.CompletedAt())
	})

	t.Run("start is idempotent", func(t *testing.T) {
		tk, err := NewTask("Ship release", CategoryDeepWork)
		require.NoError(t, err)

		require.NoError(t, tk.Start())
		require.NoError(t, tk.Start())
		assert.Equal(t, StatusInProgress, tk.Status())
	})
}

func TestTask_SetTags(t *testing.T) {
	tk, err := NewTask("Tidy backlog", CategoryShallowWork)
	require.NoError(t, err)

	require.NoError(t, tk.SetTags([]string{"work", " focus ", "work", ""}))
	assert.Equal(t, []string{"focus", "work"}, tk.Tags())
}

func TestTask_SetEstimatedDuration(t *testing.T) {
	tk, err := NewTask("Plan sprint", CategoryShallowWork)
	require.NoError(t, err)

	require.NoError(t, tk.SetEstimatedDuration(45*time.Minute))
	assert.Equal(t, 45*time.Minute, tk.EstimatedDuration())

	assert.Error(t, tk.SetEstimatedDuration(0))
}
