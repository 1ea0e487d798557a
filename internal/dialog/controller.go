package dialog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/m3rciful/tasktracker/core/logger"
	"github.com/m3rciful/tasktracker/core/telegram/state"
	"github.com/m3rciful/tasktracker/internal/categories"
	"github.com/m3rciful/tasktracker/internal/tasks"
	"log/slog"
)

// Conversation states of the task wizard. StateIdle comes from the session store.
const (
	StateAwaitingTaskName     state.State = "awaiting_task_name"
	StateAwaitingTaskCategory state.State = "awaiting_task_category"
	StateAwaitingTaskDesc     state.State = "awaiting_task_description"
	StateAwaitingTaskDeadline state.State = "awaiting_task_deadline"
	StateViewingTasks         state.State = "viewing_tasks"
	StateEditingTask          state.State = "editing_task"
	StateAddingNewCategory    state.State = "adding_new_category"
)

// Session temp keys holding task references.
const (
	// tempTaskInProgress is the UUID of the task being built by the wizard.
	tempTaskInProgress = "task_in_progress"
	// tempTaskActive is the UUID of the task opened from the task list.
	tempTaskActive = "task_active"
)

// Controller is the dialogue state machine. Given a chat's current state and
// an incoming text it mutates the task and category registries, advances the
// session, and returns the messages to deliver. It owns all mutation;
// the renderer only reads.
type Controller struct {
	sessions   state.Manager
	tasks      *tasks.Registry
	categories *categories.Registry
	now        func() time.Time

	mu      sync.Mutex
	chatMus map[int64]*sync.Mutex
}

// Option customizes a Controller.
type Option func(*Controller)

// WithClock overrides the time source, used by the deadline prompt.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// NewController wires the dialogue controller with its registries.
func NewController(sessions state.Manager, taskReg *tasks.Registry, catReg *categories.Registry, opts ...Option) *Controller {
	c := &Controller{
		sessions:   sessions,
		tasks:      taskReg,
		categories: catReg,
		now:        time.Now,
		chatMus:    make(map[int64]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) chatLock(chatID int64) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	mu, ok := c.chatMus[chatID]
	if !ok {
		mu = &sync.Mutex{}
		c.chatMus[chatID] = mu
	}
	return mu
}

// Handle processes one incoming text event for a chat.
// Events for the same chat are serialized for the duration of the call, so
// duplicate deliveries cannot interleave state transitions.
func (c *Controller) Handle(ctx context.Context, chatID int64, text string) []Message {
	mu := c.chatLock(chatID)
	mu.Lock()
	defer mu.Unlock()

	st := c.sessions.GetState(chatID)

	var out []Message
	switch st {
	case state.StateIdle:
		out = c.handleIdle(ctx, chatID, text)
	case StateAwaitingTaskName:
		out = c.handleTaskName(ctx, chatID, text)
	case StateAwaitingTaskCategory:
		out = c.handleTaskCategory(ctx, chatID, text)
	case StateAddingNewCategory:
		out = c.handleNewCategory(ctx, chatID, text)
	case StateAwaitingTaskDesc:
		out = c.handleDescription(ctx, chatID, text)
	case StateAwaitingTaskDeadline:
		out = c.handleDeadline(ctx, chatID, text)
	case StateViewingTasks:
		out = c.handleViewing(ctx, chatID, text)
	case StateEditingTask:
		out = c.handleEditing(ctx, chatID, text)
	default:
		logger.Warn(ctx, "service.dialog", "state.unknown",
			slog.Int64("chat_id", chatID),
			slog.String("state", string(st)),
		)
		c.sessions.ClearState(chatID)
		out = c.handleIdle(ctx, chatID, text)
	}

	if logger.ShouldSampleDebug() {
		logger.Debug(ctx, "service.dialog", "event.handled",
			slog.Int64("chat_id", chatID),
			slog.String("state", string(st)),
			slog.String("next_state", string(c.sessions.GetState(chatID))),
			slog.Int("messages", len(out)),
		)
	}
	return out
}

func (c *Controller) handleIdle(ctx context.Context, chatID int64, text string) []Message {
	switch ParseIntent(text) {
	case IntentStart:
		c.tasks.Register(chatID)
		return []Message{
			textMessage(chatID, textWelcome),
			c.mainMenu(chatID),
		}
	case IntentHelp:
		return []Message{textMessage(chatID, textHelp)}
	case IntentMenu:
		return []Message{c.mainMenu(chatID)}
	case IntentAddTask:
		c.tasks.Register(chatID)
		c.sessions.SetState(chatID, StateAwaitingTaskName)
		return []Message{textMessage(chatID, textTaskNamePrompt)}
	case IntentMyTasks:
		return c.showTaskList(ctx, chatID)
	case IntentDoneTasks:
		return c.showCompleted(ctx, chatID)
	default:
		return []Message{
			textMessage(chatID, textUnknownCommand),
			textMessage(chatID, textHelp),
		}
	}
}

func (c *Controller) handleTaskName(ctx context.Context, chatID int64, name string) []Message {
	t := c.tasks.Create(chatID, name)
	c.sessions.SetTemp(chatID, tempTaskInProgress, t.ID.String())
	c.sessions.SetState(chatID, StateAwaitingTaskCategory)

	logger.Info(ctx, "service.tasks", "task.created",
		slog.Int64("chat_id", chatID),
		slog.String("task_id", t.ID.String()),
		slog.String("task_name", logger.SanitizeLimit(name, 128)),
	)

	return []Message{withOptions(chatID, textCategoryPrompt, categoryOptions(c.categories.List()))}
}

func (c *Controller) handleTaskCategory(ctx context.Context, chatID int64, category string) []Message {
	if ParseIntent(category) == IntentAddCategory {
		c.sessions.SetState(chatID, StateAddingNewCategory)
		return []Message{textMessage(chatID, textNewCategory)}
	}

	id, ok := c.draftTask(ctx, chatID)
	if !ok {
		return c.recoverToMenu(chatID)
	}
	c.tasks.SetCategory(chatID, id, category)
	c.sessions.SetState(chatID, StateAwaitingTaskDesc)
	return []Message{textMessage(chatID, textDescription)}
}

func (c *Controller) handleNewCategory(ctx context.Context, chatID int64, category string) []Message {
	id, ok := c.draftTask(ctx, chatID)
	if !ok {
		return c.recoverToMenu(chatID)
	}
	c.tasks.SetCategory(chatID, id, category)
	c.categories.Add(category)
	c.sessions.SetState(chatID, StateAwaitingTaskDesc)

	logger.Info(ctx, "service.categories", "category.added",
		slog.Int64("chat_id", chatID),
		slog.String("category", logger.SanitizeLimit(category, 128)),
		slog.Int("categories", c.categories.Len()),
	)

	return []Message{textMessage(chatID, textDescription)}
}

func (c *Controller) handleDescription(ctx context.Context, chatID int64, description string) []Message {
	id, ok := c.draftTask(ctx, chatID)
	if !ok {
		return c.recoverToMenu(chatID)
	}
	c.tasks.SetDescription(chatID, id, description)
	c.sessions.SetState(chatID, StateAwaitingTaskDeadline)
	return []Message{textMessage(chatID, deadlinePrompt(c.now()))}
}

func (c *Controller) handleDeadline(ctx context.Context, chatID int64, input string) []Message {
	deadline, err := tasks.ParseDeadline(input)
	if err != nil {
		// Sole retry loop of the wizard: the deadline is the only field
		// with a format the user can get wrong.
		return []Message{textMessage(chatID, textBadDeadline)}
	}

	id, ok := c.draftTask(ctx, chatID)
	if !ok {
		return c.recoverToMenu(chatID)
	}
	c.tasks.SetDeadline(chatID, id, deadline)
	c.sessions.ClearTemp(chatID, tempTaskInProgress)
	c.sessions.ClearState(chatID)

	logger.Info(ctx, "service.tasks", "task.ready",
		slog.Int64("chat_id", chatID),
		slog.String("task_id", id.String()),
		slog.String("deadline", tasks.FormatDeadline(deadline)),
	)

	return []Message{
		textMessage(chatID, textTaskAdded),
		c.mainMenu(chatID),
	}
}

func (c *Controller) handleViewing(ctx context.Context, chatID int64, input string) []Message {
	if ParseIntent(input) == IntentCancel {
		c.sessions.ClearState(chatID)
		return []Message{
			textMessage(chatID, textBackToMenu),
			c.mainMenu(chatID),
		}
	}

	t, ok := c.tasks.ByName(chatID, input)
	if !ok {
		// Unmatched name: re-prompt with the list instead of failing the chat.
		return []Message{c.taskListMessage(chatID)}
	}

	c.tasks.MoveToEnd(chatID, t.ID)
	c.sessions.SetTemp(chatID, tempTaskActive, t.ID.String())
	c.sessions.SetState(chatID, StateEditingTask)

	return []Message{
		textMessage(chatID, taskDetail(t)),
		withOptions(chatID, textEditPrompt, editMenuOptions()),
	}
}

func (c *Controller) handleEditing(ctx context.Context, chatID int64, input string) []Message {
	switch ParseIntent(input) {
	case IntentCompleteTask:
		return c.completeTask(ctx, chatID)
	case IntentBack:
		return c.showTaskList(ctx, chatID)
	default:
		return nil
	}
}

func (c *Controller) completeTask(ctx context.Context, chatID int64) []Message {
	raw, ok := c.sessions.GetTempString(chatID, tempTaskActive)
	if !ok {
		logger.Warn(ctx, "service.dialog", "task.active.lost",
			slog.Int64("chat_id", chatID),
		)
		return c.showTaskList(ctx, chatID)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.sessions.ClearTemp(chatID, tempTaskActive)
		return c.showTaskList(ctx, chatID)
	}

	t, already, found := c.tasks.Complete(chatID, id)
	if !found {
		c.sessions.ClearTemp(chatID, tempTaskActive)
		return c.showTaskList(ctx, chatID)
	}

	if already {
		// Re-report without reapplying; the detail card stays open.
		return []Message{
			textMessage(chatID, textAlreadyDone),
			textMessage(chatID, taskDetail(t)),
			withOptions(chatID, textEditPrompt, editMenuOptions()),
		}
	}

	logger.Info(ctx, "service.tasks", "task.completed",
		slog.Int64("chat_id", chatID),
		slog.String("task_id", t.ID.String()),
	)

	c.sessions.ClearTemp(chatID, tempTaskActive)
	out := []Message{textMessage(chatID, textTaskCompleted)}
	return append(out, c.showTaskList(ctx, chatID)...)
}

func (c *Controller) showTaskList(ctx context.Context, chatID int64) []Message {
	if !c.tasks.Exists(chatID) || c.tasks.AllCompleted(chatID) {
		c.sessions.ClearState(chatID)
		return []Message{
			textMessage(chatID, textNoActiveTasks),
			c.mainMenu(chatID),
		}
	}
	c.sessions.SetState(chatID, StateViewingTasks)
	return []Message{c.taskListMessage(chatID)}
}

func (c *Controller) showCompleted(ctx context.Context, chatID int64) []Message {
	// The done listing is shown only when every task is completed, matching
	// the guard of the original flow where any active task hides the list.
	if !c.tasks.Exists(chatID) || !c.tasks.AllCompleted(chatID) {
		c.sessions.ClearState(chatID)
		return []Message{
			textMessage(chatID, textNoCompletedTasks),
			c.mainMenu(chatID),
		}
	}
	done := c.tasks.Completed(chatID)
	out := make([]Message, 0, len(done))
	for _, t := range done {
		out = append(out, textMessage(chatID, completedDetail(t)))
	}
	if len(out) == 0 {
		return []Message{
			textMessage(chatID, textNoCompletedTasks),
			c.mainMenu(chatID),
		}
	}
	return out
}

func (c *Controller) taskListMessage(chatID int64) Message {
	active := c.tasks.Active(chatID)
	names := make([]string, 0, len(active))
	for _, t := range active {
		names = append(names, t.Name)
	}
	return withOptions(chatID, textChooseTask, taskListOptions(names))
}

func (c *Controller) mainMenu(chatID int64) Message {
	return withOptions(chatID, textChooseAction, mainMenuOptions())
}

// draftTask resolves the wizard's task-in-progress reference.
func (c *Controller) draftTask(ctx context.Context, chatID int64) (uuid.UUID, bool) {
	raw, ok := c.sessions.GetTempString(chatID, tempTaskInProgress)
	if !ok {
		logger.Warn(ctx, "service.dialog", "task.draft.lost",
			slog.Int64("chat_id", chatID),
		)
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn(ctx, "service.dialog", "task.draft.invalid",
			slog.Int64("chat_id", chatID),
			slog.String("err", err.Error()),
		)
		return uuid.UUID{}, false
	}
	if _, ok := c.tasks.ByID(chatID, id); !ok {
		return uuid.UUID{}, false
	}
	return id, true
}

// recoverToMenu abandons a broken wizard and returns the chat to the menu.
func (c *Controller) recoverToMenu(chatID int64) []Message {
	c.sessions.ClearTemp(chatID, tempTaskInProgress)
	c.sessions.ClearState(chatID)
	return []Message{
		textMessage(chatID, textBackToMenu),
		c.mainMenu(chatID),
	}
}
