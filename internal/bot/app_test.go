package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreconfig "github.com/m3rciful/tasktracker/core/config"
	"github.com/m3rciful/tasktracker/core/telegram/state"
	"github.com/m3rciful/tasktracker/internal/categories"
	"github.com/m3rciful/tasktracker/internal/dialog"
	"github.com/m3rciful/tasktracker/internal/tasks"
)

func newTestApp() *App {
	sessions := state.NewMemoryManager()
	return &App{
		cfg:        &coreconfig.Config{},
		sessions:   sessions,
		controller: dialog.NewController(sessions, tasks.NewRegistry(), categories.NewRegistry()),
	}
}

func TestTelegramRunOptionsWiring(t *testing.T) {
	app := newTestApp()

	opts, err := app.TelegramRunOptions()
	require.NoError(t, err)
	require.NotNil(t, opts.Registry)

	// Seven command routes plus the text and document routes.
	assert.Len(t, opts.Routes, 9)
	assert.NotEmpty(t, opts.Middlewares)

	visible := opts.Registry.ListCommands(true)
	names := make([]string, len(visible))
	for i, c := range visible {
		names[i] = c.Text
	}
	assert.Equal(t, []string{"/add_task", "/done_task", "/help", "/menu", "/my_tasks", "/start"}, names)
	assert.NotContains(t, names, "/version", "admin command stays out of the public menu")
}

func TestLabelsRouteThroughCommandLookup(t *testing.T) {
	app := newTestApp()
	opts, err := app.TelegramRunOptions()
	require.NoError(t, err)

	for label, want := range map[string]string{
		dialog.LabelAddTask:   "/add_task",
		dialog.LabelMyTasks:   "/my_tasks",
		dialog.LabelDoneTasks: "/done_task",
		dialog.LabelHelp:      "/help",
	} {
		key, _, ok := opts.Registry.LookupCommand(label)
		require.True(t, ok, label)
		assert.Equal(t, want, key)
	}
}
