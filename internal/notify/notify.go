// Package notify holds the messaging relay adapters. The core never formats
// keyboards or retries delivery here; it hands plain text to the relay.
package notify

import (
	"context"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

// Telegram delivers notifications through a Telegram bot. The administrator is
// reached via a single configured chat id; users via their own ids.
type Telegram struct {
	bot         *bot.Bot
	adminChatID int64
}

func NewTelegram(token string, adminChatID int64) (*Telegram, error) {
	b, err := bot.New(token)
	if err != nil {
		return nil, err
	}
	return &Telegram{
		bot:         b,
		adminChatID: adminChatID,
	}, nil
}

func (t *Telegram) NotifyUser(ctx context.Context, userID int64, text string) error {
	_, err := t.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: userID,
		Text:   text,
	})
	return err
}

func (t *Telegram) NotifyAdmin(ctx context.Context, text string) error {
	_, err := t.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: t.adminChatID,
		Text:   text,
	})
	return err
}

// Log is the fallback relay used when no bot token is configured.
type Log struct{}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) NotifyUser(_ context.Context, userID int64, text string) error {
	zap.L().Info("user notification", zap.Int64("user_id", userID), zap.String("text", text))
	return nil
}

func (l *Log) NotifyAdmin(_ context.Context, text string) error {
	zap.L().Info("admin notification", zap.String("text", text))
	return nil
}
