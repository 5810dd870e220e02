package notify

import (
	"context"

	"crm-service/config"

	"go.uber.org/zap"
)

// Reminder — данные письма-напоминания о заказе.
type Reminder struct {
	OrderID       string
	CustomerEmail string
	TotalAmount   string
	OrderDate     string
}

type Notifier interface {
	SendReminder(ctx context.Context, r Reminder) error
	Close() error
}

const (
	reminderSubject  = "Order reminder"
	reminderTemplate = "order_reminder"
)

func New(cfg config.Notify, log *zap.Logger) Notifier {
	switch cfg.Mode {
	case config.NotifyKafka:
		log.Info("Напоминания отправляются через Kafka", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
		return NewEmailProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	case config.NotifySMTP:
		log.Info("Напоминания отправляются через SMTP", zap.String("host", cfg.SMTPHost))
		return NewEmailSender(cfg)
	default:
		return Noop{}
	}
}

type Noop struct{}

func (Noop) SendReminder(context.Context, Reminder) error { return nil }
func (Noop) Close() error                                 { return nil }
