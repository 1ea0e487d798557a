package state

import "testing"

func TestMemoryManagerDefaultsToIdle(t *testing.T) {
	m := NewMemoryManager()
	if got := m.GetState(42); got != StateIdle {
		t.Fatalf("GetState = %q, expected %q", got, StateIdle)
	}
	if m.InProgress(42) {
		t.Fatal("fresh chat must not be in progress")
	}
}

func TestMemoryManagerStateTransitions(t *testing.T) {
	m := NewMemoryManager()
	const custom = State("awaiting_something")

	m.SetState(7, custom)
	if got := m.GetState(7); got != custom {
		t.Fatalf("GetState = %q, expected %q", got, custom)
	}
	if !m.InProgress(7) {
		t.Fatal("chat with non-idle state must be in progress")
	}

	m.ClearState(7)
	if got := m.GetState(7); got != StateIdle {
		t.Fatalf("GetState after ClearState = %q, expected idle", got)
	}
}

func TestMemoryManagerTempData(t *testing.T) {
	m := NewMemoryManager()

	m.SetTemp(9, "task_in_progress", "abc-123")
	s, ok := m.GetTempString(9, "task_in_progress")
	if !ok || s != "abc-123" {
		t.Fatalf("GetTempString = %q, %v", s, ok)
	}

	m.SetTemp(9, "count", 3)
	if _, ok := m.GetTempString(9, "count"); ok {
		t.Fatal("GetTempString must reject non-string values")
	}

	m.ClearTemp(9, "task_in_progress")
	if _, ok := m.GetTemp(9, "task_in_progress"); ok {
		t.Fatal("temp value must be gone after ClearTemp")
	}

	// Temp data survives state resets, only Clear drops it.
	m.SetTemp(9, "k", "v")
	m.ClearState(9)
	if _, ok := m.GetTemp(9, "k"); !ok {
		t.Fatal("ClearState must not drop temp data")
	}
	m.Clear(9)
	if _, ok := m.GetTemp(9, "k"); ok {
		t.Fatal("Clear must drop the whole session")
	}
}
