// Package state provides a lightweight per-chat session/FSM store for
// conversational bots. It carries no transport types, so the dialogue
// core can depend on it without pulling in the Telegram client.
package state
