package tasks

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single unit of tracked work owned by one chat.
// Name is set at creation and never edited; Category, Description and
// Deadline are filled in one step at a time by the creation wizard.
type Task struct {
	ID          uuid.UUID
	Owner       int64
	Name        string
	Category    string
	Description string
	Deadline    time.Time
	Completed   bool
}
