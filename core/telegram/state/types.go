package state

// State identifies a finite-state-machine step used in conversations.
type State string

const (
	// StateIdle indicates there is no active conversation with the chat.
	StateIdle State = "idle"
)

// Session stores conversation state and temporary data for a chat.
type Session struct {
	State    State
	TempData map[string]interface{}
}

// Manager orchestrates chat sessions and FSM state transitions.
// Implementations must be safe for concurrent use.
type Manager interface {
	Get(chatID int64) *Session
	SetState(chatID int64, st State)
	GetState(chatID int64) State
	HasState(chatID int64) bool
	ClearState(chatID int64)

	SetTemp(chatID int64, key string, value interface{})
	GetTemp(chatID int64, key string) (interface{}, bool)
	GetTempString(chatID int64, key string) (string, bool)
	ClearTemp(chatID int64, key string)

	Clear(chatID int64)
	InProgress(chatID int64) bool
}
