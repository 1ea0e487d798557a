package router

import (
	"github.com/m3rciful/tasktracker/core/logger"
	tg "github.com/m3rciful/tasktracker/core/telegram"
	"github.com/m3rciful/tasktracker/core/telegram/middleware"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// CommandRouteOptions configures how commands are wrapped and exposed.
type CommandRouteOptions struct {
	AdminID       int64
	OnAdminReject tele.HandlerFunc
	// FSM and InConversation divert slash commands typed mid-dialogue to
	// the conversation handler, so they are treated as field input.
	FSM            FSM
	InConversation tele.HandlerFunc
}

// CommandRoutes prepares command handlers wrapped with shared middleware.
func CommandRoutes(reg *tg.Registry, opts CommandRouteOptions) []tg.Route {
	if reg == nil {
		return nil
	}

	adminOpts := middleware.AdminOptions{
		AdminID:  opts.AdminID,
		OnReject: opts.OnAdminReject,
	}

	routes := make([]tg.Route, 0, len(reg.Commands()))
	for cmd, def := range reg.Commands() {
		h := def.Handler
		h = conversationGuard(opts.FSM, opts.InConversation, h)
		h = middleware.RecoverMiddleware(h)
		h = middleware.LoggerMiddleware(h)
		if def.AdminOnly {
			h = middleware.AdminOnlyMiddleware(adminOpts)(h)
		}
		routes = append(routes, tg.Route{
			Endpoint: cmd,
			Handler:  h,
		})
	}

	logger.TWire.Info("tg.wire",
		slog.String("event", "complete"),
		slog.Int("commands", len(reg.Commands())),
	)

	return routes
}

func conversationGuard(fsmMgr FSM, conv, next tele.HandlerFunc) tele.HandlerFunc {
	if fsmMgr == nil || conv == nil {
		return next
	}
	return func(c tele.Context) error {
		if chat := c.Chat(); chat != nil && fsmMgr.InProgress(chat.ID) {
			return conv(c)
		}
		return next(c)
	}
}
