package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ds124wfegd/eventease/config"
	"github.com/ds124wfegd/eventease/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachable is a local port nothing listens on
const unreachable = "127.0.0.1:1"

func TestNewSelectsDriver(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.NotifyConfig
		wantErr bool
	}{
		{name: "default", cfg: config.NotifyConfig{}},
		{name: "log", cfg: config.NotifyConfig{Driver: "log"}},
		{
			name:    "redis unreachable",
			cfg:     config.NotifyConfig{Driver: "redis", Redis: config.RedisConfig{Addr: unreachable, DialTimeout: 200 * time.Millisecond, ReadTimeout: 200 * time.Millisecond}},
			wantErr: true,
		},
		{
			name:    "rabbitmq unreachable",
			cfg:     config.NotifyConfig{Driver: "rabbitmq", Rabbit: config.RabbitMQConfig{URL: "amqp://guest:guest@" + unreachable + "/", QueueName: "q"}},
			wantErr: true,
		},
		{
			name:    "kafka without brokers",
			cfg:     config.NotifyConfig{Driver: "kafka"},
			wantErr: true,
		},
		{
			name:    "kafka unreachable",
			cfg:     config.NotifyConfig{Driver: "kafka", Kafka: config.KafkaConfig{Brokers: []string{unreachable}, Topic: "t"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, &LogPublisher{}, p)
			assert.NoError(t, p.Publish(context.Background(), Event{Type: BookingCreated, ID: 1}))
			assert.NoError(t, p.Close())
		})
	}
}

func TestNewUnknownDriver(t *testing.T) {
	_, err := New(config.NotifyConfig{Driver: "smtp"})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestEncode(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	body, err := encode(Event{
		Type:       ContactCreated,
		ID:         7,
		OccurredAt: at,
		Payload:    entity.Contact{ID: 7, Name: "Bob"},
	})
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "contact.created", got["type"])
	assert.Equal(t, float64(7), got["id"])
	assert.Equal(t, "2025-01-02T03:04:05Z", got["occurred_at"])
	assert.Equal(t, "Bob", got["payload"].(map[string]interface{})["name"])
}

// fakeTelegram answers getMe and sendMessage like the Bot API does.
func fakeTelegram(t *testing.T, status int, sent chan<- map[string]string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"EventEase","username":"eventease_bot"}}`)
		case status != http.StatusOK:
			w.WriteHeader(status)
			fmt.Fprintf(w, `{"ok":false,"error_code":%d,"description":"Forbidden: bot was blocked"}`, status)
		default:
			assert.NoError(t, r.ParseForm())
			sent <- map[string]string{
				"path":    r.URL.Path,
				"chat_id": r.PostForm.Get("chat_id"),
				"text":    r.PostForm.Get("text"),
			}
			fmt.Fprint(w, `{"ok":true,"result":{"message_id":5,"date":0,"chat":{"id":42,"type":"private"}}}`)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestTelegramBotPublish(t *testing.T) {
	sent := make(chan map[string]string, 1)
	server := fakeTelegram(t, http.StatusOK, sent)

	p, err := New(config.NotifyConfig{
		Driver:   "telegram",
		Telegram: config.TelegramConfig{BotToken: "TOKEN", ChatID: 42, APIURL: server.URL + "/"},
	})
	require.NoError(t, err)
	defer p.Close()

	err = p.Publish(context.Background(), Event{
		Type:    ContactCreated,
		ID:      3,
		Payload: entity.Contact{ID: 3, Name: "Bob", Email: "b@x.io", Message: "Hello"},
	})
	require.NoError(t, err)

	got := <-sent
	assert.Equal(t, "/botTOKEN/sendMessage", got["path"])
	assert.Equal(t, "42", got["chat_id"])
	assert.Equal(t, "Message #3 from Bob <b@x.io>:\nHello", got["text"])
}

func TestTelegramBotErrors(t *testing.T) {
	_, err := New(config.NotifyConfig{Driver: "telegram"})
	assert.Error(t, err)

	server := fakeTelegram(t, http.StatusForbidden, nil)
	bot, err := NewTelegramBot(&config.TelegramConfig{BotToken: "TOKEN", ChatID: 1, APIURL: server.URL}, time.Second)
	require.NoError(t, err)

	err = bot.Publish(context.Background(), Event{Type: BookingCreated, ID: 1})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, bot.Publish(ctx, Event{Type: BookingCreated, ID: 1}), context.Canceled)
}

// slowTelegram answers getMe at once and holds sendMessage for delay.
func slowTelegram(t *testing.T, delay time.Duration) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/getMe") {
			fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"EventEase","username":"eventease_bot"}}`)
			return
		}

		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
		fmt.Fprint(w, `{"ok":true,"result":{"message_id":5,"date":0,"chat":{"id":1,"type":"private"}}}`)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestTelegramBotRespectsDeadline(t *testing.T) {
	server := slowTelegram(t, 2*time.Second)

	tests := []struct {
		name          string
		clientTimeout time.Duration
		ctxTimeout    time.Duration
	}{
		{name: "publish context deadline", clientTimeout: 5 * time.Second, ctxTimeout: 100 * time.Millisecond},
		{name: "client timeout", clientTimeout: 100 * time.Millisecond, ctxTimeout: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot, err := NewTelegramBot(&config.TelegramConfig{BotToken: "TOKEN", ChatID: 1, APIURL: server.URL}, tt.clientTimeout)
			require.NoError(t, err)

			ctx := context.Background()
			if tt.ctxTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, tt.ctxTimeout)
				defer cancel()
			}

			start := time.Now()
			err = bot.Publish(ctx, Event{Type: BookingCreated, ID: 1})

			assert.Error(t, err)
			assert.Less(t, time.Since(start), time.Second)
		})
	}
}

func TestMessageText(t *testing.T) {
	booking := entity.Booking{ID: 2, Category: "Music", Event: "Jazz", Name: "Ann", Email: "a@x.io"}

	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{name: "booking created", event: Event{Type: BookingCreated, ID: 2, Payload: booking}, want: "New booking #2: Jazz (Music) for Ann <a@x.io>"},
		{name: "booking deleted", event: Event{Type: BookingDeleted, ID: 2, Payload: booking}, want: "Booking #2 cancelled: Jazz for Ann"},
		{name: "unknown payload", event: Event{Type: BookingCreated, ID: 9}, want: "booking.created #9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messageText(tt.event))
		})
	}
}
