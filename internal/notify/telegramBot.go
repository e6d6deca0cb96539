package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ds124wfegd/eventease/config"
	"github.com/ds124wfegd/eventease/internal/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// TelegramBot forwards events to an operator chat as plain text.
type TelegramBot struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramBot bounds every Bot API call by timeout; zero means no limit.
func NewTelegramBot(cfg *config.TelegramConfig, timeout time.Duration) (*TelegramBot, error) {
	if cfg.BotToken == "" || cfg.ChatID == 0 {
		return nil, errors.New("telegram bot token and chat id are required")
	}

	endpoint := strings.TrimRight(cfg.APIURL, "/") + "/bot%s/%s"
	bot, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, endpoint, &http.Client{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	logrus.WithField("bot", bot.Self.UserName).Info("Telegram bot connected")
	return &TelegramBot{bot: bot, chatID: cfg.ChatID}, nil
}

func (b *TelegramBot) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(b.chatID, messageText(event))

	// Send takes no context; the client timeout ends the goroutine
	done := make(chan error, 1)
	go func() {
		_, err := b.bot.Send(msg)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send telegram message: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *TelegramBot) Close() error {
	return nil
}

func messageText(event Event) string {
	switch p := event.Payload.(type) {
	case entity.Booking:
		if event.Type == BookingDeleted {
			return fmt.Sprintf("Booking #%d cancelled: %s for %s", p.ID, p.Event, p.Name)
		}
		return fmt.Sprintf("New booking #%d: %s (%s) for %s <%s>", p.ID, p.Event, p.Category, p.Name, p.Email)
	case entity.Contact:
		return fmt.Sprintf("Message #%d from %s <%s>:\n%s", p.ID, p.Name, p.Email, p.Message)
	default:
		return fmt.Sprintf("%s #%d", event.Type, event.ID)
	}
}
