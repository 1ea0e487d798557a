package tasks

import (
	"fmt"
	"strings"
	"time"
)

// DeadlineLayout is the only deadline format the bot accepts: DD/MM/YYYY HH:MM.
const DeadlineLayout = "02/01/2006 15:04"

// ParseDeadline parses user input against DeadlineLayout.
func ParseDeadline(text string) (time.Time, error) {
	t, err := time.Parse(DeadlineLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, fmt.Errorf("tasks: invalid deadline %q: %w", text, err)
	}
	return t, nil
}

// FormatDeadline renders a deadline in the same layout the user typed it in.
func FormatDeadline(t time.Time) string {
	return t.Format(DeadlineLayout)
}
