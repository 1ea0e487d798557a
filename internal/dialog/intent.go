package dialog

// Intent is the normalized meaning of an incoming text, resolved before
// dispatch so the state machine never compares display labels directly.
type Intent int

const (
	// IntentNone marks text that is not a recognized command or label.
	IntentNone Intent = iota
	IntentStart
	IntentHelp
	IntentMenu
	IntentAddTask
	IntentMyTasks
	IntentDoneTasks
	IntentAddCategory
	IntentCancel
	IntentCompleteTask
	IntentBack
)

// Reply-keyboard labels. They double as recognized input tokens, so the
// renderer and the intent table must stay in sync.
const (
	LabelAddTask     = "➕ Добавить задачу"
	LabelMyTasks     = "📋 Мои задачи"
	LabelDoneTasks   = "✅ Выполненные задачи"
	LabelHelp        = "❓ Помощь"
	LabelAddCategory = "➕ Добавить категорию"
	LabelCancel      = "❌ Отмена"
	LabelComplete    = "✅ Выполнить задачу!"
	LabelBack        = "⬅ Назад!"
)

var intents = map[string]Intent{
	"/start":         IntentStart,
	"/help":          IntentHelp,
	LabelHelp:        IntentHelp,
	"/menu":          IntentMenu,
	"/add_task":      IntentAddTask,
	LabelAddTask:     IntentAddTask,
	"/my_tasks":      IntentMyTasks,
	LabelMyTasks:     IntentMyTasks,
	"/done_task":     IntentDoneTasks,
	LabelDoneTasks:   IntentDoneTasks,
	LabelAddCategory: IntentAddCategory,
	LabelCancel:      IntentCancel,
	LabelComplete:    IntentCompleteTask,
	LabelBack:        IntentBack,
}

// ParseIntent maps a slash command or keyboard label to its intent.
// Both forms of a command route identically.
func ParseIntent(text string) Intent {
	if it, ok := intents[text]; ok {
		return it
	}
	return IntentNone
}
