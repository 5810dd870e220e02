package handlers

import (
	"net/http"

	"crm-service/internal/dto"
	"crm-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthHandler struct {
	query service.QueryService
	log   *zap.Logger
}

func NewHealthHandler(query service.QueryService, log *zap.Logger) *HealthHandler {
	return &HealthHandler{query: query, log: log}
}

// Health godoc
// @Summary Проверка живости
// @Description Пингует базу данных
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.UnavailableErrorResponse "База недоступна"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.query.Ping(c.Request.Context()); err != nil {
		h.log.Warn("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.NewUnavailableError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
