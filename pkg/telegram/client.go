package telegram

import (
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier delivers pipeline health alerts, such as those built by
// FormatHealthAlert, to the operators' chat.
type Notifier interface {
	SendMessage(text string) error
}

// messageSender is the part of tgbotapi.BotAPI the client uses.
type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type client struct {
	bot    messageSender
	chatID int64
}

// NewClient creates a Notifier that posts health alerts to chatID through the
// bot identified by botToken. Both are required; the token is checked against
// the Telegram API.
func NewClient(botToken string, chatID int64) (Notifier, error) {
	if strings.TrimSpace(botToken) == "" {
		return nil, errors.New("telegram bot token is required for health alerts")
	}
	if chatID == 0 {
		return nil, errors.New("telegram chat id is required for health alerts")
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return newClient(bot, chatID), nil
}

func newClient(bot messageSender, chatID int64) *client {
	return &client{bot: bot, chatID: chatID}
}

// SendMessage posts a Markdown health alert. Link previews are disabled so
// feed URLs in the alert do not expand.
func (c *client) SendMessage(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("refusing to send empty health alert")
	}
	msg := tgbotapi.NewMessage(c.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = true
	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send health alert to chat %d: %w", c.chatID, err)
	}
	return nil
}
