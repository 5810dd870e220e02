package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"crm-service/internal/database"

	"go.uber.org/zap"
)

type Config struct {
	Port     string
	GRPCPort string
	DB       DB
	Redis    Redis
	API      API
	Jobs     Jobs
	Notify   Notify
}

type DB struct {
	database.Config
}

type Redis struct {
	Enabled    bool
	Addr       string
	Password   string
	DB         int
	TTLSeconds int
}

// API — адрес HTTP API для одноразовых cron-задач.
type API struct {
	BaseURL        string
	Timeout        time.Duration
	GRPCHealthAddr string
}

type Jobs struct {
	SchedulerEnabled  bool
	LogDir            string
	HeartbeatInterval time.Duration
	RestockInterval   time.Duration
	ReportInterval    time.Duration
	ReminderInterval  time.Duration
}

type NotifyMode string

const (
	NotifyNone  NotifyMode = "none"
	NotifyKafka NotifyMode = "kafka"
	NotifySMTP  NotifyMode = "smtp"
)

type Notify struct {
	Mode NotifyMode

	KafkaBrokers []string
	KafkaTopic   string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
}

// Load собирает конфигурацию сервиса. Переменные БД обязательны.
func Load(log *zap.Logger) *Config {
	cfg := &Config{
		Port:     getEnvDefault("APP_PORT", ":8080"),
		GRPCPort: getEnvDefault("GRPC_PORT", ":9090"),
		DB: DB{
			Config: database.Config{
				Host:     getEnv("DB_HOST", log),
				Port:     getEnv("DB_PORT", log),
				User:     getEnv("DB_USER", log),
				Password: getEnv("DB_PASSWORD", log),
				Name:     getEnv("DB_NAME", log),
				SSLMode:  getEnvDefault("DB_SSLMODE", "disable"),
				Debug:    os.Getenv("ENV") == "development",
			},
		},
		Redis: loadRedis(),
		Jobs:  loadJobs(),
	}
	cfg.Notify = loadNotify(log)
	return cfg
}

// LoadClient — конфигурация для cmd/cron: БД не нужна, только адрес API.
func LoadClient(log *zap.Logger) *Config {
	cfg := &Config{
		API: API{
			BaseURL:        getEnvDefault("API_BASE_URL", "http://localhost:8080"),
			Timeout:        time.Duration(atoiDefault(os.Getenv("API_TIMEOUT_SECONDS"), 10)) * time.Second,
			GRPCHealthAddr: os.Getenv("GRPC_HEALTH_ADDR"),
		},
		Jobs: loadJobs(),
	}
	cfg.Notify = loadNotify(log)
	return cfg
}

func loadRedis() Redis {
	return Redis{
		Enabled:    os.Getenv("REDIS_ENABLED") == "true",
		Addr:       getEnvDefault("REDIS_ADDR", "localhost:6379"),
		Password:   os.Getenv("REDIS_PASSWORD"),
		DB:         atoiDefault(os.Getenv("REDIS_DB"), 0),
		TTLSeconds: atoiDefault(os.Getenv("CACHE_TTL_SECONDS"), 60),
	}
}

func loadJobs() Jobs {
	return Jobs{
		SchedulerEnabled:  getEnvDefault("SCHEDULER_ENABLED", "true") == "true",
		LogDir:            getEnvDefault("JOB_LOG_DIR", "/tmp"),
		HeartbeatInterval: durationDefault(os.Getenv("HEARTBEAT_INTERVAL"), 5*time.Minute),
		RestockInterval:   durationDefault(os.Getenv("RESTOCK_INTERVAL"), 12*time.Hour),
		ReportInterval:    durationDefault(os.Getenv("REPORT_INTERVAL"), 7*24*time.Hour),
		ReminderInterval:  durationDefault(os.Getenv("REMINDER_INTERVAL"), 24*time.Hour),
	}
}

func loadNotify(log *zap.Logger) Notify {
	n := Notify{Mode: NotifyMode(getEnvDefault("NOTIFY_MODE", string(NotifyNone)))}
	switch n.Mode {
	case NotifyKafka:
		n.KafkaBrokers = splitAndTrim(os.Getenv("KAFKA_BROKERS"))
		n.KafkaTopic = getEnv("KAFKA_TOPIC_EMAIL", log)
	case NotifySMTP:
		n.SMTPHost = getEnv("SMTP_HOST", log)
		n.SMTPPort = atoiDefault(getEnv("SMTP_PORT", log), 465)
		n.SMTPUser = getEnv("SMTP_USER", log)
		n.SMTPPassword = getEnv("SMTP_PASSWORD", log)
		n.SMTPFrom = getEnv("SMTP_FROM", log)
	case NotifyNone:
	default:
		log.Warn("Неизвестный NOTIFY_MODE, уведомления отключены", zap.String("mode", string(n.Mode)))
		n.Mode = NotifyNone
	}
	return n
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("Обязательная переменная окружения не установлена", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvDefault(key, def string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return def
}

func durationDefault(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	if d := parseDurationWithDays(s); d > 0 {
		return d
	}
	return def
}

func parseDurationWithDays(s string) time.Duration {
	if strings.HasSuffix(s, "d") {
		daysStr := strings.TrimSuffix(s, "d")
		days, err := time.ParseDuration(daysStr + "h")
		if err != nil {
			log.Printf("Ошибка парсинга длительности: %v", err)
			return 0
		}
		return time.Duration(24) * days
	}

	duration, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return duration
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}
