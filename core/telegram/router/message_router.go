package router

import (
	"time"

	tg "github.com/m3rciful/tasktracker/core/telegram"
	"github.com/m3rciful/tasktracker/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// FSM reports whether a chat is in the middle of a multi-step dialogue.
type FSM interface {
	InProgress(chatID int64) bool
}

// TextOptions controls routing of text and document updates.
type TextOptions struct {
	// InConversation receives every text update for chats with an active dialogue.
	InConversation tele.HandlerFunc
	UnknownText    tele.HandlerFunc
}

// TextRoutes builds handlers for text and document routing.
// Text from chats with an active dialogue is handed to the conversation handler
// before command lookup, so mid-dialogue commands become regular input.
func TextRoutes(fsmMgr FSM, reg *tg.Registry, opts TextOptions) []tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		text := c.Text()

		if fsmMgr != nil && opts.InConversation != nil && c.Chat() != nil && fsmMgr.InProgress(c.Chat().ID) {
			return handleWithSummary(c, "conversation", start, "", "", func() error {
				return opts.InConversation(c)
			})
		}

		if reg != nil {
			if key, cmd, ok := reg.LookupCommand(text); ok && cmd.Handler != nil {
				name := normalizeHandlerName(key)
				return handleWithSummary(c, name, start, "", "", func() error {
					return cmd.Handler(c)
				})
			}
		}

		if reg != nil {
			if fb := reg.TextFallback(); fb != nil {
				return handleWithSummary(c, "fallback", start, "", "", func() error {
					return fb(c)
				})
			}
		}

		if opts.UnknownText != nil {
			return handleWithSummary(c, "unknown_text", start, "", "", func() error {
				return opts.UnknownText(c)
			})
		}

		logHandlerSummary(c, "unknown_text", start, "skip", "ok", nil)
		return nil
	}

	// Documents carry no routable text; drop them quietly.
	docHandler := func(c tele.Context) error {
		start := time.Now()
		logHandlerSummary(c, "unexpected_document", start, "skip", "ok", nil)
		return nil
	}

	return []tg.Route{
		{
			Endpoint: tele.OnText,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
		},
		{
			Endpoint: tele.OnDocument,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(docHandler)),
		},
	}
}
