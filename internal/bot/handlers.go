package bot

import (
	"fmt"

	"github.com/m3rciful/tasktracker/core/buildinfo"
	tghelpers "github.com/m3rciful/tasktracker/core/telegram/helpers"
	"github.com/m3rciful/tasktracker/core/telegram/keyboard"
	"github.com/m3rciful/tasktracker/internal/dialog"

	tele "gopkg.in/telebot.v4"
)

// dispatch feeds the incoming text to the dialogue controller and delivers
// whatever it produced. Commands and plain text share this path, so a slash
// command typed mid-wizard becomes regular field input.
func (a *App) dispatch(c tele.Context) error {
	chat := c.Chat()
	if chat == nil {
		return nil
	}

	ctx := tghelpers.BuildContext(c)
	for _, msg := range a.controller.Handle(ctx, chat.ID, c.Text()) {
		if err := deliver(c, msg); err != nil {
			return err
		}
	}
	return nil
}

func deliver(c tele.Context, msg dialog.Message) error {
	var markup *tele.ReplyMarkup
	if len(msg.Options) > 0 {
		markup = keyboard.ReplyButtons(msg.Options...)
	}
	if msg.Markdown {
		if markup != nil {
			return tghelpers.SendMD(c, msg.Text, markup)
		}
		return tghelpers.SendMD(c, msg.Text)
	}
	if markup != nil {
		return tghelpers.SendText(c, msg.Text, &tele.SendOptions{ReplyMarkup: markup})
	}
	return tghelpers.SendText(c, msg.Text)
}

// handleVersion reports build metadata to the admin.
func (a *App) handleVersion(c tele.Context) error {
	text := fmt.Sprintf("version: %s\ncommit: %s", buildinfo.Version, buildinfo.Commit)
	if buildinfo.Date != "" {
		text += "\nbuilt: " + buildinfo.Date
	}
	return tghelpers.SendText(c, text)
}
