package jobs

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	HeartbeatLog = "crm_heartbeat_log.txt"
	RestockLog   = "low_stock_updates_log.txt"
	ReportLog    = "crm_report_log.txt"
	ReminderLog  = "order_reminders_log.txt"
)

// Sink — текстовый файл только на дозапись, по строке на событие.
type Sink struct {
	path string
	mu   sync.Mutex
}

func NewSink(dir, name string) *Sink {
	return &Sink{path: filepath.Join(dir, name)}
}

func (s *Sink) Path() string { return s.path }

func (s *Sink) Append(lines ...string) error {
	if len(lines) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
