package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// EmailMessage — формат сообщения топика писем, его читает сервис уведомлений.
type EmailMessage struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject"`
	Template string         `json:"template"`
	Data     map[string]any `json:"data"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type EmailProducer struct {
	writer messageWriter
}

func NewEmailProducer(brokers []string, topic string) *EmailProducer {
	return &EmailProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

func (p *EmailProducer) SendEmail(ctx context.Context, key string, msg EmailMessage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	value, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

// SendReminder ключует сообщение id заказа, чтобы повторы попадали в одну партицию.
func (p *EmailProducer) SendReminder(ctx context.Context, r Reminder) error {
	return p.SendEmail(ctx, r.OrderID, EmailMessage{
		To:       r.CustomerEmail,
		Subject:  reminderSubject,
		Template: reminderTemplate,
		Data: map[string]any{
			"order_id":     r.OrderID,
			"total_amount": r.TotalAmount,
			"order_date":   r.OrderDate,
		},
	})
}

func (p *EmailProducer) Close() error {
	return p.writer.Close()
}
