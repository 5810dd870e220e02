package handlers

import (
	"net/http"

	"crm-service/internal/dto"
	"crm-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	query    service.QueryService
	mutation service.MutationService
	log      *zap.Logger
}

func NewOrderHandler(query service.QueryService, mutation service.MutationService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{query: query, mutation: mutation, log: log}
}

// List godoc
// @Summary Список заказов
// @Description Заказы с клиентом и товарами, по дате заказа от новых к старым
// @Tags orders
// @Produce json
// @Param total_amount query string false "Сумма"
// @Param total_amount_gte query string false "Сумма от"
// @Param total_amount_lte query string false "Сумма до"
// @Param order_date query string false "Дата заказа"
// @Param order_date_gte query string false "Заказ не раньше"
// @Param order_date_lte query string false "Заказ не позже"
// @Param customer_id query string false "ID клиента"
// @Param customer_name query string false "Подстрока имени клиента"
// @Param customer_name_icontains query string false "Подстрока имени клиента"
// @Param product_id query string false "ID товара"
// @Param product_name query string false "Подстрока названия товара"
// @Param product_name_icontains query string false "Подстрока названия товара"
// @Success 200 {object} dto.OrderList
// @Failure 400 {object} dto.ValidationErrorResponse "Неверные параметры"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /api/v1/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	f, verr := parseOrderFilter(c)
	if verr != nil {
		c.JSON(http.StatusBadRequest, verr)
		return
	}
	list, err := h.query.AllOrders(c.Request.Context(), f)
	if err != nil {
		h.log.Error("Не удалось получить список заказов", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.JSON(http.StatusOK, dto.OrderList{Orders: dto.FromOrders(list)})
}

// Get godoc
// @Summary Заказ по id
// @Tags orders
// @Produce json
// @Param id path string true "ID заказа"
// @Success 200 {object} dto.OrderEnvelope
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /api/v1/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.query.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error("Не удалось получить заказ", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.JSON(http.StatusOK, dto.OrderEnvelope{Order: dto.FromOrder(o)})
}

// Create godoc
// @Summary Создание заказа
// @Description Сумма считается по ценам товаров; заказ и связи пишутся атомарно
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Данные заказа"
// @Success 200 {object} dto.OrderPayload
// @Failure 400 {object} dto.ValidationErrorResponse "Неверное тело запроса"
// @Router /api/v1/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid create order request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}
	res := h.mutation.CreateOrder(c.Request.Context(), req.ToInput())
	c.JSON(http.StatusOK, dto.NewOrderPayload(res))
}
