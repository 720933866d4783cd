package notify

import (
	"context"
	"errors"
	"fmt"
	"log"

	"oficina_prime/internal/domain/entities"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var ErrMissingTelegramConfig = errors.New("missing TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID")

// TelegramBot is the slice of the bot API the notifier uses, kept narrow so
// tests can fake it.
type TelegramBot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier pushes shop events to a fixed chat. Delivery is
// best-effort; callers log failures and move on.
type TelegramNotifier struct {
	bot    TelegramBot
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		return nil, ErrMissingTelegramConfig
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Printf("[notify][telegram] failed creating bot err=%v", err)
		return nil, err
	}
	log.Printf("[notify][telegram] bot initialized chat_id=%d", chatID)
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

// NewTelegramNotifierWithBot injects a bot, for tests.
func NewTelegramNotifierWithBot(bot TelegramBot, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{bot: bot, chatID: chatID}
}

func (n *TelegramNotifier) NotifyTaskApproved(ctx context.Context, task entities.Task) error {
	text := fmt.Sprintf("Tarefa aprovada: %s (veiculo %s), pagamento %s", task.Title, task.VehicleID, formatCentavos(task.Payment))
	return n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyVehicleCompleted(ctx context.Context, vehicle entities.Vehicle, outstanding int64) error {
	text := fmt.Sprintf("Veiculo %s concluido e pronto para retirada.", vehicle.Plate)
	if outstanding > 0 {
		text = fmt.Sprintf("%s Saldo em aberto: %s", text, formatCentavos(outstanding))
	}
	return n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		log.Printf("[notify][telegram] send failed chat_id=%d err=%v", n.chatID, err)
		return err
	}
	return nil
}

func formatCentavos(v int64) string {
	return fmt.Sprintf("R$ %d,%02d", v/100, v%100)
}
