package state

import "sync"

type memoryManager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewMemoryManager constructs an in-memory Manager implementation.
// Sessions live for the lifetime of the process and are never evicted.
func NewMemoryManager() Manager {
	return &memoryManager{
		sessions: make(map[int64]*Session),
	}
}

// Get returns the session for a chat if it exists, otherwise returns a default idle session.
func (m *memoryManager) Get(chatID int64) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if session, ok := m.sessions[chatID]; ok {
		return session
	}

	return &Session{State: StateIdle, TempData: make(map[string]interface{})}
}

func (m *memoryManager) session(chatID int64) *Session {
	session, ok := m.sessions[chatID]
	if !ok {
		session = &Session{State: StateIdle, TempData: make(map[string]interface{})}
		m.sessions[chatID] = session
	}
	return session
}

// SetState sets the FSM state for the given chat, creating a session if necessary.
func (m *memoryManager) SetState(chatID int64, st State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session(chatID).State = st
}

// GetState returns the current FSM state of a chat, or StateIdle if none exists.
func (m *memoryManager) GetState(chatID int64) State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if sess, ok := m.sessions[chatID]; ok {
		return sess.State
	}
	return StateIdle
}

// HasState checks if a chat has an active state other than idle.
func (m *memoryManager) HasState(chatID int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[chatID]
	return ok && sess.State != StateIdle
}

// ClearState resets the FSM state to idle for a chat without removing session data.
func (m *memoryManager) ClearState(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok := m.sessions[chatID]; ok {
		sess.State = StateIdle
	}
}

// SetTemp stores a temporary key/value pair for the given chat session.
func (m *memoryManager) SetTemp(chatID int64, key string, value interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session(chatID).TempData[key] = value
}

// GetTemp retrieves a temporary value by key for the given chat session.
func (m *memoryManager) GetTemp(chatID int64, key string) (interface{}, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[chatID]
	if !ok {
		return nil, false
	}
	val, ok := session.TempData[key]
	return val, ok
}

// GetTempString retrieves a temporary value by key and asserts it as string.
func (m *memoryManager) GetTempString(chatID int64, key string) (string, bool) {
	val, found := m.GetTemp(chatID, key)
	if !found {
		return "", false
	}
	s, ok := val.(string)
	if !ok {
		return "", false
	}
	return s, true
}

// ClearTemp removes a temporary key/value pair for the given chat session.
func (m *memoryManager) ClearTemp(chatID int64, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if session, ok := m.sessions[chatID]; ok {
		delete(session.TempData, key)
	}
}

// Clear removes the entire session for a chat.
func (m *memoryManager) Clear(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, chatID)
}

// InProgress reports whether the chat currently has an active FSM state.
func (m *memoryManager) InProgress(chatID int64) bool {
	return m.HasState(chatID)
}
