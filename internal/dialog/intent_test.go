package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlashAndLabelRouteIdentically(t *testing.T) {
	pairs := map[string]string{
		"/help":      LabelHelp,
		"/add_task":  LabelAddTask,
		"/my_tasks":  LabelMyTasks,
		"/done_task": LabelDoneTasks,
	}
	for cmd, label := range pairs {
		assert.Equal(t, ParseIntent(cmd), ParseIntent(label), "%s vs %s", cmd, label)
		assert.NotEqual(t, IntentNone, ParseIntent(cmd), cmd)
	}
}

func TestUnrecognizedTextHasNoIntent(t *testing.T) {
	for _, input := range []string{"", "hello", "/unknown", "Помощь", "добавить задачу"} {
		assert.Equal(t, IntentNone, ParseIntent(input), "%q", input)
	}
}
