package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm-service/internal/dto"
	"crm-service/internal/notify"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	heartbeatLayout = "02/01/2006-15:04:05"
	stampLayout     = "2006-01-02 15:04:05"

	reminderWindow = 7 * 24 * time.Hour
)

// Runner выполняет задачи по одному разу. Любой сбой пишется строкой в журнал
// задачи и в лог; наружу ошибка возвращается только для кода выхода cmd/cron.
type Runner struct {
	api      API
	notifier notify.Notifier
	log      *zap.Logger
	now      func() time.Time

	heartbeat *Sink
	restock   *Sink
	report    *Sink
	reminders *Sink
}

func NewRunner(api API, notifier notify.Notifier, logDir string, log *zap.Logger) *Runner {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Runner{
		api:       api,
		notifier:  notifier,
		log:       log,
		now:       time.Now,
		heartbeat: NewSink(logDir, HeartbeatLog),
		restock:   NewSink(logDir, RestockLog),
		report:    NewSink(logDir, ReportLog),
		reminders: NewSink(logDir, ReminderLog),
	}
}

// Heartbeat: строка "CRM is alive" пишется всегда, при недоступном API добавляется вторая.
func (r *Runner) Heartbeat(ctx context.Context) error {
	ts := r.now().Format(heartbeatLayout)
	lines := []string{ts + " CRM is alive"}

	pingErr := r.api.Ping(ctx)
	if pingErr != nil {
		r.log.Warn("CRM API недоступен", zap.Error(pingErr))
		lines = append(lines, fmt.Sprintf("%s CRM API unreachable: %v", ts, pingErr))
	}

	if err := r.heartbeat.Append(lines...); err != nil {
		r.log.Error("Не удалось записать heartbeat", zap.String("path", r.heartbeat.Path()), zap.Error(err))
		return err
	}
	return pingErr
}

func (r *Runner) Restock(ctx context.Context) error {
	ts := r.now().Format(stampLayout)

	res, err := r.api.RestockLowStock(ctx)
	if err == nil && !res.Success {
		err = errors.New(res.Message)
	}
	if err != nil {
		r.log.Error("Пополнение остатков не выполнено", zap.Error(err))
		_ = r.write(r.restock, fmt.Sprintf("%s: Error updating low stock products: %v", ts, err))
		return err
	}

	lines := make([]string, 0, len(res.Products))
	for _, p := range res.Products {
		lines = append(lines, fmt.Sprintf("%s: Updated %s - New stock: %d", ts, p.Name, p.Stock))
	}
	r.log.Info("Остатки пополнены", zap.Int("count", len(res.Products)))
	return r.write(r.restock, lines...)
}

func (r *Runner) Report(ctx context.Context) error {
	ts := r.now().Format(stampLayout)

	line, err := r.buildReport(ctx, ts)
	if err != nil {
		r.log.Error("Не удалось сформировать отчёт", zap.Error(err))
		_ = r.write(r.report, fmt.Sprintf("%s - Error generating report: %v", ts, err))
		return err
	}
	r.log.Info("Отчёт сформирован", zap.String("report", line))
	return r.write(r.report, line)
}

func (r *Runner) buildReport(ctx context.Context, ts string) (string, error) {
	customers, err := r.api.Customers(ctx)
	if err != nil {
		return "", err
	}
	orders, err := r.api.Orders(ctx, nil)
	if err != nil {
		return "", err
	}

	revenue := decimal.Zero
	for _, o := range orders {
		amount, err := decimal.NewFromString(o.TotalAmount)
		if err != nil {
			return "", fmt.Errorf("order %s: bad total amount %q: %w", o.ID, o.TotalAmount, err)
		}
		revenue = revenue.Add(amount)
	}

	return fmt.Sprintf("%s - Report: %d customers, %d orders, %s revenue",
		ts, len(customers), len(orders), revenue.StringFixed(2)), nil
}

// Reminders: заказы с начала дня неделю назад. Ошибка отправки письма не прерывает остальные.
func (r *Runner) Reminders(ctx context.Context) error {
	now := r.now()
	ts := now.Format(stampLayout)
	since := ReminderSince(now)

	orders, err := r.api.Orders(ctx, &since)
	if err != nil {
		r.log.Error("Не удалось получить заказы для напоминаний", zap.Error(err))
		_ = r.write(r.reminders, fmt.Sprintf("%s: Error processing order reminders: %v", ts, err))
		return err
	}

	lines := make([]string, 0, len(orders))
	for _, o := range orders {
		lines = append(lines, fmt.Sprintf("%s: Order ID %s, Customer: %s", ts, o.ID, customerEmail(o.Customer)))
	}
	if err := r.write(r.reminders, lines...); err != nil {
		return err
	}

	sent := 0
	for _, o := range orders {
		if o.Customer == nil {
			continue
		}
		err := r.notifier.SendReminder(ctx, notify.Reminder{
			OrderID:       o.ID,
			CustomerEmail: o.Customer.Email,
			TotalAmount:   o.TotalAmount,
			OrderDate:     o.OrderDate.Format(time.DateOnly),
		})
		if err != nil {
			r.log.Warn("Не удалось отправить напоминание", zap.String("order_id", o.ID), zap.Error(err))
			continue
		}
		sent++
	}
	r.log.Info("Напоминания обработаны", zap.Int("orders", len(orders)), zap.Int("sent", sent))
	return nil
}

// RunAll выполняет все задачи по очереди и возвращает первую ошибку.
func (r *Runner) RunAll(ctx context.Context) error {
	var first error
	for _, job := range []func(context.Context) error{r.Heartbeat, r.Restock, r.Report, r.Reminders} {
		if err := job(ctx); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// ReminderSince — полночь (UTC) календарного дня, отстоящего на неделю от now.
func ReminderSince(now time.Time) time.Time {
	d := now.UTC().Add(-reminderWindow)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func customerEmail(c *dto.CustomerResponse) string {
	if c == nil {
		return ""
	}
	return c.Email
}

func (r *Runner) write(s *Sink, lines ...string) error {
	if err := s.Append(lines...); err != nil {
		r.log.Error("Не удалось записать журнал задачи", zap.String("path", s.Path()), zap.Error(err))
		return err
	}
	return nil
}
