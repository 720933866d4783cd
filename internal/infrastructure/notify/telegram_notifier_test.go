package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"oficina_prime/internal/domain/entities"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type fakeBot struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func TestTelegramNotifier_NotifyTaskApproved(t *testing.T) {
	bot := &fakeBot{}
	n := NewTelegramNotifierWithBot(bot, 42)

	task := entities.Task{ID: "t-1", VehicleID: "v-1", Title: "troca de oleo", Payment: 12350}
	if err := n.NotifyTaskApproved(context.Background(), task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bot.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(bot.sent))
	}
	if bot.sent[0].ChatID != 42 {
		t.Fatalf("expected chat id 42, got %d", bot.sent[0].ChatID)
	}
	if !strings.Contains(bot.sent[0].Text, "troca de oleo") || !strings.Contains(bot.sent[0].Text, "R$ 123,50") {
		t.Fatalf("unexpected message text: %q", bot.sent[0].Text)
	}
}

func TestTelegramNotifier_NotifyVehicleCompleted(t *testing.T) {
	t.Run("mentions outstanding balance", func(t *testing.T) {
		bot := &fakeBot{}
		n := NewTelegramNotifierWithBot(bot, 42)

		v := entities.Vehicle{ID: "v-1", Plate: "ABC1D23"}
		if err := n.NotifyVehicleCompleted(context.Background(), v, 2000); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(bot.sent[0].Text, "ABC1D23") || !strings.Contains(bot.sent[0].Text, "R$ 20,00") {
			t.Fatalf("unexpected message text: %q", bot.sent[0].Text)
		}
	})

	t.Run("no balance mention when fully paid", func(t *testing.T) {
		bot := &fakeBot{}
		n := NewTelegramNotifierWithBot(bot, 42)

		v := entities.Vehicle{ID: "v-1", Plate: "ABC1D23"}
		if err := n.NotifyVehicleCompleted(context.Background(), v, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(bot.sent[0].Text, "Saldo") {
			t.Fatalf("unexpected message text: %q", bot.sent[0].Text)
		}
	})
}

func TestTelegramNotifier_SendError(t *testing.T) {
	bot := &fakeBot{err: errors.New("telegram down")}
	n := NewTelegramNotifierWithBot(bot, 42)

	if err := n.NotifyTaskApproved(context.Background(), entities.Task{Title: "freio"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNewTelegramNotifier_MissingConfig(t *testing.T) {
	if _, err := NewTelegramNotifier("", 42); !errors.Is(err, ErrMissingTelegramConfig) {
		t.Fatalf("expected ErrMissingTelegramConfig, got %v", err)
	}
	if _, err := NewTelegramNotifier("token", 0); !errors.Is(err, ErrMissingTelegramConfig) {
		t.Fatalf("expected ErrMissingTelegramConfig, got %v", err)
	}
}
