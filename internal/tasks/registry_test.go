package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndLookup(t *testing.T) {
	r := NewRegistry()

	created := r.Create(42, "Write spec")
	require.NotEqual(t, created.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, int64(42), created.Owner)
	assert.False(t, created.Completed)

	got, ok := r.ByID(42, created.ID)
	require.True(t, ok)
	assert.Equal(t, "Write spec", got.Name)

	byName, ok := r.ByName(42, "Write spec")
	require.True(t, ok)
	assert.Equal(t, created.ID, byName.ID)

	_, ok = r.ByName(42, "missing")
	assert.False(t, ok)

	_, ok = r.ByID(7, created.ID)
	assert.False(t, ok, "tasks must not leak across chats")
}

func TestByNameFirstMatch(t *testing.T) {
	r := NewRegistry()
	first := r.Create(1, "dup")
	second := r.Create(1, "dup")
	require.NotEqual(t, first.ID, second.ID)

	got, ok := r.ByName(1, "dup")
	require.True(t, ok)
	assert.Equal(t, first.ID, got.ID, "lookup by name is first-match")
}

func TestFieldSetters(t *testing.T) {
	r := NewRegistry()
	created := r.Create(1, "t")
	deadline := time.Date(2030, 12, 31, 23, 59, 0, 0, time.UTC)

	require.True(t, r.SetCategory(1, created.ID, "Разработка"))
	require.True(t, r.SetDescription(1, created.ID, "desc"))
	require.True(t, r.SetDeadline(1, created.ID, deadline))

	got, ok := r.ByID(1, created.ID)
	require.True(t, ok)
	assert.Equal(t, "Разработка", got.Category)
	assert.Equal(t, "desc", got.Description)
	assert.True(t, deadline.Equal(got.Deadline))
}

func TestCompleteIdempotent(t *testing.T) {
	r := NewRegistry()
	created := r.Create(1, "t")

	got, already, ok := r.Complete(1, created.ID)
	require.True(t, ok)
	assert.False(t, already)
	assert.True(t, got.Completed)

	got, already, ok = r.Complete(1, created.ID)
	require.True(t, ok)
	assert.True(t, already, "second completion must be detected, not reapplied")
	assert.True(t, got.Completed)

	assert.Len(t, r.Completed(1), 1)
}

func TestMoveToEnd(t *testing.T) {
	r := NewRegistry()
	a := r.Create(1, "a")
	r.Create(1, "b")
	r.Create(1, "c")

	require.True(t, r.MoveToEnd(1, a.ID))

	active := r.Active(1)
	require.Len(t, active, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{active[0].Name, active[1].Name, active[2].Name})
}

func TestActiveAndCompletedSplit(t *testing.T) {
	r := NewRegistry()
	a := r.Create(1, "a")
	r.Create(1, "b")

	_, _, ok := r.Complete(1, a.ID)
	require.True(t, ok)

	active := r.Active(1)
	require.Len(t, active, 1)
	assert.Equal(t, "b", active[0].Name)

	done := r.Completed(1)
	require.Len(t, done, 1)
	assert.Equal(t, "a", done[0].Name)
}

func TestAllCompleted(t *testing.T) {
	r := NewRegistry()

	assert.True(t, r.AllCompleted(1), "vacuously true for unknown chat")

	r.Register(1)
	assert.True(t, r.AllCompleted(1), "vacuously true for empty list")

	created := r.Create(1, "t")
	assert.False(t, r.AllCompleted(1))

	_, _, ok := r.Complete(1, created.ID)
	require.True(t, ok)
	assert.True(t, r.AllCompleted(1))
}

func TestRegisterIsIdempotent(t *testing.T) {
	r := NewRegistry()
	r.Register(1)
	r.Create(1, "t")
	r.Register(1)

	assert.Len(t, r.Active(1), 1, "re-registering must not drop tasks")
	assert.True(t, r.Exists(1))
	assert.False(t, r.Exists(2))
}
