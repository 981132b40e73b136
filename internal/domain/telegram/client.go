package telegram

import "gopkg.in/telebot.v3"

// Client defines an interface for pushing messages to a Telegram chat.
// This keeps the application services decoupled from the bot library.
type Client interface {
	SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error
}
