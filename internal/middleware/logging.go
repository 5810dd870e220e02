package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HeaderRequestID = "X-Request-ID"
	CtxRequestID    = "request_id"
)

// RequestID берёт идентификатор запроса из заголовка или генерирует новый.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := ExtractRequestID(c.GetHeader(HeaderRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// ExtractRequestID обрезает пробелы и кавычки, слишком длинные значения отбрасываются.
func ExtractRequestID(raw string) string {
	id := strings.Trim(strings.TrimSpace(raw), "\"'")
	if len(id) > 64 {
		return ""
	}
	return id
}

// AccessLog пишет по строке на запрос. 5xx логируются как ошибки.
func AccessLog(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(CtxRequestID)),
		}
		switch {
		case status >= 500:
			log.Error("request", fields...)
		case status >= 400:
			log.Warn("request", fields...)
		default:
			log.Debug("request", fields...)
		}
	}
}
