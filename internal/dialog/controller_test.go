package dialog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m3rciful/tasktracker/core/telegram/state"
	"github.com/m3rciful/tasktracker/internal/categories"
	"github.com/m3rciful/tasktracker/internal/tasks"
)

func newTestController() (*Controller, state.Manager) {
	sessions := state.NewMemoryManager()
	c := NewController(
		sessions,
		tasks.NewRegistry(),
		categories.NewRegistry(),
		WithClock(func() time.Time {
			return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
		}),
	)
	return c, sessions
}

func texts(msgs []Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Text
	}
	return out
}

func flatOptions(m Message) []string {
	var out []string
	for _, row := range m.Options {
		out = append(out, row...)
	}
	return out
}

func TestFullScenario(t *testing.T) {
	c, sessions := newTestController()
	ctx := context.Background()
	const chat = int64(42)

	// /start: welcome plus main menu.
	msgs := c.Handle(ctx, chat, "/start")
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0].Text, "Привет")
	assert.Equal(t, textChooseAction, msgs[1].Text)
	assert.Equal(t, mainMenuOptions(), msgs[1].Options)
	assert.Equal(t, state.StateIdle, sessions.GetState(chat))

	// Add-task label: prompted for a name.
	msgs = c.Handle(ctx, chat, LabelAddTask)
	require.Len(t, msgs, 1)
	assert.Equal(t, textTaskNamePrompt, msgs[0].Text)
	assert.Equal(t, StateAwaitingTaskName, sessions.GetState(chat))

	// Name: prompted for a category with the seeded set plus add-new.
	msgs = c.Handle(ctx, chat, "Write spec")
	require.Len(t, msgs, 1)
	assert.Equal(t, textCategoryPrompt, msgs[0].Text)
	assert.Equal(t,
		[]string{"Разработка", "Аналитика", "Тестирование", LabelAddCategory},
		flatOptions(msgs[0]),
	)
	assert.Equal(t, StateAwaitingTaskCategory, sessions.GetState(chat))

	// Category: prompted for a description.
	msgs = c.Handle(ctx, chat, "Разработка")
	require.Len(t, msgs, 1)
	assert.Equal(t, textDescription, msgs[0].Text)
	assert.Equal(t, StateAwaitingTaskDesc, sessions.GetState(chat))

	// Description: prompted for a deadline with a rendered example.
	msgs = c.Handle(ctx, chat, "Finish task spec")
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "31/08/2026 12:00")
	assert.Equal(t, StateAwaitingTaskDeadline, sessions.GetState(chat))

	// Deadline: confirmation plus main menu, back to idle.
	msgs = c.Handle(ctx, chat, "31/12/2030 23:59")
	require.Len(t, msgs, 2)
	assert.Equal(t, textTaskAdded, msgs[0].Text)
	assert.Equal(t, textChooseAction, msgs[1].Text)
	assert.Equal(t, state.StateIdle, sessions.GetState(chat))

	// My tasks: the task is selectable.
	msgs = c.Handle(ctx, chat, LabelMyTasks)
	require.Len(t, msgs, 1)
	assert.Equal(t, textChooseTask, msgs[0].Text)
	assert.Equal(t, []string{"Write spec", LabelCancel}, flatOptions(msgs[0]))
	assert.Equal(t, StateViewingTasks, sessions.GetState(chat))

	// Select it: detail card with in-progress status and the edit menu.
	msgs = c.Handle(ctx, chat, "Write spec")
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0].Text, "Write spec")
	assert.Contains(t, msgs[0].Text, "Разработка")
	assert.Contains(t, msgs[0].Text, "31/12/2030 23:59")
	assert.Contains(t, msgs[0].Text, StatusInProgress)
	assert.Equal(t, textEditPrompt, msgs[1].Text)
	assert.Equal(t, editMenuOptions(), msgs[1].Options)
	assert.Equal(t, StateEditingTask, sessions.GetState(chat))

	// Complete: confirmation, then the now-empty list falls back to the menu.
	msgs = c.Handle(ctx, chat, LabelComplete)
	require.Len(t, msgs, 3)
	assert.Equal(t, textTaskCompleted, msgs[0].Text)
	assert.Equal(t, textNoActiveTasks, msgs[1].Text)
	assert.Equal(t, textChooseAction, msgs[2].Text)
	assert.Equal(t, state.StateIdle, sessions.GetState(chat))

	// Done tasks: the detail card with the done status.
	msgs = c.Handle(ctx, chat, LabelDoneTasks)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "Write spec")
	assert.Contains(t, msgs[0].Text, StatusDone)
}

func createTask(t *testing.T, c *Controller, chat int64, name, category, desc, deadline string) {
	t.Helper()
	ctx := context.Background()
	c.Handle(ctx, chat, "/add_task")
	c.Handle(ctx, chat, name)
	c.Handle(ctx, chat, category)
	c.Handle(ctx, chat, desc)
	msgs := c.Handle(ctx, chat, deadline)
	require.NotEmpty(t, msgs)
	require.Equal(t, textTaskAdded, msgs[0].Text)
}

func TestMalformedDeadlineRetries(t *testing.T) {
	c, sessions := newTestController()
	ctx := context.Background()

	c.Handle(ctx, 1, "/add_task")
	c.Handle(ctx, 1, "task")
	c.Handle(ctx, 1, "Аналитика")
	c.Handle(ctx, 1, "desc")

	msgs := c.Handle(ctx, 1, "13/13/2025 99:99")
	require.Len(t, msgs, 1)
	assert.Equal(t, textBadDeadline, msgs[0].Text)
	assert.Equal(t, StateAwaitingTaskDeadline, sessions.GetState(1))

	msgs = c.Handle(ctx, 1, "01/02/2030 10:00")
	require.Len(t, msgs, 2)
	assert.Equal(t, textTaskAdded, msgs[0].Text)
	assert.Equal(t, state.StateIdle, sessions.GetState(1))
}

func TestCompleteIsIdempotent(t *testing.T) {
	c, sessions := newTestController()
	ctx := context.Background()

	createTask(t, c, 1, "first", "Разработка", "d1", "01/01/2030 10:00")
	createTask(t, c, 1, "second", "Разработка", "d2", "01/01/2030 10:00")

	c.Handle(ctx, 1, "/my_tasks")
	c.Handle(ctx, 1, "first")
	msgs := c.Handle(ctx, 1, LabelComplete)
	require.NotEmpty(t, msgs)
	assert.Equal(t, textTaskCompleted, msgs[0].Text)
	assert.Equal(t, StateViewingTasks, sessions.GetState(1))

	// Reopen the completed task by name and try again.
	msgs = c.Handle(ctx, 1, "first")
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0].Text, StatusDone)

	msgs = c.Handle(ctx, 1, LabelComplete)
	require.Len(t, msgs, 3)
	assert.Equal(t, textAlreadyDone, msgs[0].Text)
	assert.Contains(t, msgs[1].Text, StatusDone)
	assert.Equal(t, textEditPrompt, msgs[2].Text)
}

func TestNewCategoryPropagatesAcrossChats(t *testing.T) {
	c, _ := newTestController()
	ctx := context.Background()

	c.Handle(ctx, 1, "/add_task")
	c.Handle(ctx, 1, "task")
	c.Handle(ctx, 1, LabelAddCategory)
	msgs := c.Handle(ctx, 1, "Спорт")
	require.Len(t, msgs, 1)
	assert.Equal(t, textDescription, msgs[0].Text)

	// Another chat now sees the new category.
	c.Handle(ctx, 2, "/add_task")
	msgs = c.Handle(ctx, 2, "other task")
	require.Len(t, msgs, 1)
	assert.Contains(t, flatOptions(msgs[0]), "Спорт")
}

func TestUnmatchedTaskNameReprompts(t *testing.T) {
	c, sessions := newTestController()
	ctx := context.Background()

	createTask(t, c, 1, "real", "Разработка", "d", "01/01/2030 10:00")
	c.Handle(ctx, 1, "/my_tasks")

	msgs := c.Handle(ctx, 1, "no such task")
	require.Len(t, msgs, 1)
	assert.Equal(t, textChooseTask, msgs[0].Text)
	assert.Contains(t, flatOptions(msgs[0]), "real")
	assert.Equal(t, StateViewingTasks, sessions.GetState(1))

	// The real name still works afterwards.
	msgs = c.Handle(ctx, 1, "real")
	require.Len(t, msgs, 2)
	assert.Equal(t, StateEditingTask, sessions.GetState(1))
}

func TestEmptyListsForNewUser(t *testing.T) {
	c, sessions := newTestController()
	ctx := context.Background()

	msgs := c.Handle(ctx, 9, "/my_tasks")
	require.Len(t, msgs, 2)
	assert.Equal(t, textNoActiveTasks, msgs[0].Text)
	assert.Equal(t, state.StateIdle, sessions.GetState(9))

	msgs = c.Handle(ctx, 9, "/done_task")
	require.Len(t, msgs, 2)
	assert.Equal(t, textNoCompletedTasks, msgs[0].Text)
	assert.Equal(t, state.StateIdle, sessions.GetState(9))
}

func TestDoneListHiddenWhileTasksActive(t *testing.T) {
	c, _ := newTestController()
	ctx := context.Background()

	createTask(t, c, 1, "a", "Разработка", "d", "01/01/2030 10:00")
	createTask(t, c, 1, "b", "Разработка", "d", "01/01/2030 10:00")

	c.Handle(ctx, 1, "/my_tasks")
	c.Handle(ctx, 1, "a")
	c.Handle(ctx, 1, LabelComplete)
	c.Handle(ctx, 1, LabelCancel)

	// One task is still active, so the done listing stays hidden.
	msgs := c.Handle(ctx, 1, LabelDoneTasks)
	require.Len(t, msgs, 2)
	assert.Equal(t, textNoCompletedTasks, msgs[0].Text)
}

func TestUnknownCommandFallsBackToHelp(t *testing.T) {
	c, _ := newTestController()

	msgs := c.Handle(context.Background(), 1, "whatever")
	require.Len(t, msgs, 2)
	assert.Equal(t, textUnknownCommand, msgs[0].Text)
	assert.Equal(t, textHelp, msgs[1].Text)
}

func TestCancelReturnsToMenu(t *testing.T) {
	c, sessions := newTestController()
	ctx := context.Background()

	createTask(t, c, 1, "a", "Разработка", "d", "01/01/2030 10:00")
	c.Handle(ctx, 1, "/my_tasks")

	msgs := c.Handle(ctx, 1, LabelCancel)
	require.Len(t, msgs, 2)
	assert.Equal(t, textBackToMenu, msgs[0].Text)
	assert.Equal(t, textChooseAction, msgs[1].Text)
	assert.Equal(t, state.StateIdle, sessions.GetState(1))
}

func TestCommandTypedMidWizardBecomesInput(t *testing.T) {
	c, sessions := newTestController()
	ctx := context.Background()

	c.Handle(ctx, 1, "/add_task")
	msgs := c.Handle(ctx, 1, "/start")
	require.Len(t, msgs, 1)
	assert.Equal(t, textCategoryPrompt, msgs[0].Text)
	assert.Equal(t, StateAwaitingTaskCategory, sessions.GetState(1))

	// The draft really is named "/start".
	c.Handle(ctx, 1, "Разработка")
	c.Handle(ctx, 1, "desc")
	c.Handle(ctx, 1, "01/01/2030 10:00")
	msgs = c.Handle(ctx, 1, "/my_tasks")
	require.Len(t, msgs, 1)
	assert.Contains(t, flatOptions(msgs[0]), "/start")
}

func TestEditMenuIgnoresUnknownInput(t *testing.T) {
	c, sessions := newTestController()
	ctx := context.Background()

	createTask(t, c, 1, "a", "Разработка", "d", "01/01/2030 10:00")
	c.Handle(ctx, 1, "/my_tasks")
	c.Handle(ctx, 1, "a")

	msgs := c.Handle(ctx, 1, "nonsense")
	assert.Empty(t, msgs)
	assert.Equal(t, StateEditingTask, sessions.GetState(1))
}

func TestBackLabelReturnsToTaskList(t *testing.T) {
	c, sessions := newTestController()
	ctx := context.Background()

	createTask(t, c, 1, "a", "Разработка", "d", "01/01/2030 10:00")
	c.Handle(ctx, 1, "/my_tasks")
	c.Handle(ctx, 1, "a")

	msgs := c.Handle(ctx, 1, LabelBack)
	require.Len(t, msgs, 1)
	assert.Equal(t, textChooseTask, msgs[0].Text)
	assert.Equal(t, StateViewingTasks, sessions.GetState(1))
}
