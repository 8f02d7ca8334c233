package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseEntity(t *testing.T) {
	e := NewBaseEntity()

	assert.NotEqual(t, uuid.Nil, e.ID())
	assert.False(t, e.CreatedAt().IsZero())
	assert.Equal(t, e.CreatedAt(), e.UpdatedAt())
}

func TestBaseEntity_Touch(t *testing.T) {
	e := NewBaseEntity()
	created := e.CreatedAt()

	time.Sleep(time.Millisecond)
	e.Touch()

	assert.Equal(t, created, e.CreatedAt())
	assert.True(t, e.UpdatedAt().After(created))
}

func TestBaseEntity_Equals(t *testing.T) {
	a := NewBaseEntity()
	b := NewBaseEntity()

	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals(b))
	assert.False(t, a.Equals(nil))
}

func TestRehydrateBaseEntity(t *testing.T) {
	id := uuid.New()
	created := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	e := RehydrateBaseEntity(id, created, updated)

	require.Equal(t, id, e.ID())
	assert.Equal(t, created, e.CreatedAt())
	assert.Equal(t, updated, e.UpdatedAt())
}

func TestBaseAggregateRoot_DomainEvents(t *testing.T) {
	a := NewBaseAggregateRoot()
	require.Empty(t, a.DomainEvents())

	a.AddDomainEvent(NewBaseEvent(a.ID(), "Test", "test.created"))
	require.Len(t, a.DomainEvents(), 1)

	a.ClearDomainEvents()
	assert.Empty(t, a.DomainEvents())
}
