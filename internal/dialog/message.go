package dialog

// Message is a transport-neutral outgoing message produced by the controller.
// Options are rows of selectable labels; the transport decides how to present
// them (reply keyboard for Telegram). An empty Options slice means the
// previous selection affordance, if any, stays untouched.
type Message struct {
	ChatID   int64
	Text     string
	Options  [][]string
	Markdown bool
}

func textMessage(chatID int64, s string) Message {
	return Message{ChatID: chatID, Text: s, Markdown: true}
}

func withOptions(chatID int64, s string, options [][]string) Message {
	return Message{ChatID: chatID, Text: s, Options: options, Markdown: true}
}
