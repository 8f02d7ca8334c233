package commands

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/apexhour/internal/productivity/domain/task"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateTaskHandler_Handle(t *testing.T) {
	t.Run("applies only the provided fields", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewUpdateTaskHandler(repo)

		tk, err := task.NewTask("Refactor parser", task.CategoryDeepWork)
		require.NoError(t, err)

		repo.On("FindByID", mock.Anything, tk.ID()).Return(tk, nil)
		repo.On("Save", mock.Anything, tk).Return(nil)

		title := "Refactor lexer"
		category := "shallow"
		err = handler.Handle(context.Background(), UpdateTaskCommand{
			TaskID:   tk.ID(),
			Title:    &title,
			Category: &category,
		})

		require.NoError(t, err)
		assert.Equal(t, "Refactor lexer", tk.Title())
		assert.Equal(t, task.CategoryShallowWork, tk.Category())
		assert.Empty(t, tk.Description())
		repo.AssertExpectations(t)
	})

	t.Run("unknown category leaves the task untouched", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewUpdateTaskHandler(repo)

		tk, err := task.NewTask("Refactor parser", task.CategoryDeepWork)
		require.NoError(t, err)

		repo.On("FindByID", mock.Anything, tk.ID()).Return(tk, nil)

		category := "urgent"
		err = handler.Handle(context.Background(), UpdateTaskCommand{
			TaskID:   tk.ID(),
			Category: &category,
		})

		assert.ErrorIs(t, err, task.ErrUnknownCategory)
		assert.Equal(t, task.CategoryDeepWork, tk.Category())
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown task id", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewUpdateTaskHandler(repo)

		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, nil)

		err := handler.Handle(context.Background(), UpdateTaskCommand{TaskID: id})
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})
}
