package dialog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m3rciful/tasktracker/internal/tasks"
)

func TestTaskDetailEscapesUserText(t *testing.T) {
	detail := taskDetail(tasks.Task{
		Name:        "fix *bold* bug",
		Category:    "Разработка",
		Description: "touch _underscore_",
		Deadline:    time.Date(2030, 1, 2, 3, 4, 0, 0, time.UTC),
	})

	assert.Contains(t, detail, `fix \*bold\* bug`)
	assert.Contains(t, detail, `touch \_underscore\_`)
	assert.Contains(t, detail, "02/01/2030 03:04")
	assert.Contains(t, detail, StatusInProgress)
}

func TestTaskDetailStatusFollowsCompletion(t *testing.T) {
	task := tasks.Task{Name: "n", Category: "c", Description: "d"}
	assert.Contains(t, taskDetail(task), StatusInProgress)

	task.Completed = true
	assert.Contains(t, taskDetail(task), StatusDone)
}

func TestDeadlinePromptShowsExample(t *testing.T) {
	got := deadlinePrompt(time.Date(2026, 8, 31, 9, 5, 0, 0, time.UTC))
	assert.Contains(t, got, "31/08/2026 09:05")
}

func TestKeyboardLayouts(t *testing.T) {
	assert.Equal(t, [][]string{
		{LabelAddTask, LabelMyTasks},
		{LabelDoneTasks, LabelHelp},
	}, mainMenuOptions())

	assert.Equal(t, [][]string{
		{"a"}, {"b"}, {LabelAddCategory},
	}, categoryOptions([]string{"a", "b"}))

	assert.Equal(t, [][]string{
		{"x"}, {LabelCancel},
	}, taskListOptions([]string{"x"}))

	assert.Equal(t, [][]string{{LabelComplete}, {LabelBack}}, editMenuOptions())
}
