package handlers

import (
	"net/http"

	"crm-service/internal/dto"
	"crm-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	query    service.QueryService
	mutation service.MutationService
	log      *zap.Logger
}

func NewCustomerHandler(query service.QueryService, mutation service.MutationService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{query: query, mutation: mutation, log: log}
}

// List godoc
// @Summary Список клиентов
// @Description Клиенты по фильтрам, новые первыми
// @Tags customers
// @Produce json
// @Param name query string false "Подстрока имени (без учёта регистра)"
// @Param name_icontains query string false "Подстрока имени"
// @Param name_exact query string false "Точное имя"
// @Param email query string false "Подстрока email"
// @Param email_icontains query string false "Подстрока email"
// @Param email_exact query string false "Точный email"
// @Param phone query string false "Подстрока телефона"
// @Param phone_icontains query string false "Подстрока телефона"
// @Param phone_exact query string false "Точный телефон"
// @Param phone_pattern query string false "Префикс телефона"
// @Param created_at query string false "Дата создания"
// @Param created_at_gte query string false "Создан не раньше"
// @Param created_at_lte query string false "Создан не позже"
// @Success 200 {object} dto.CustomerList
// @Failure 400 {object} dto.ValidationErrorResponse "Неверные параметры"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /api/v1/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	f, verr := parseCustomerFilter(c)
	if verr != nil {
		c.JSON(http.StatusBadRequest, verr)
		return
	}
	list, err := h.query.AllCustomers(c.Request.Context(), f)
	if err != nil {
		h.log.Error("Не удалось получить список клиентов", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.JSON(http.StatusOK, dto.CustomerList{Customers: dto.FromCustomers(list)})
}

// Get godoc
// @Summary Клиент по id
// @Description Для неизвестного или некорректного id возвращает customer: null
// @Tags customers
// @Produce json
// @Param id path string true "ID клиента"
// @Success 200 {object} dto.CustomerEnvelope
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /api/v1/customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	cust, err := h.query.Customer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error("Не удалось получить клиента", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.JSON(http.StatusOK, dto.CustomerEnvelope{Customer: dto.FromCustomer(cust)})
}

// Create godoc
// @Summary Создание клиента
// @Description Ошибки валидации и конфликт email возвращаются в payload с success=false
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Данные клиента"
// @Success 200 {object} dto.CustomerPayload
// @Failure 400 {object} dto.ValidationErrorResponse "Неверное тело запроса"
// @Router /api/v1/customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid create customer request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}
	res := h.mutation.CreateCustomer(c.Request.Context(), req.ToInput())
	c.JSON(http.StatusOK, dto.NewCustomerPayload(res))
}

// BulkCreate godoc
// @Summary Массовое создание клиентов
// @Description Строки с ошибками пропускаются, ошибки возвращаются в errors как "Row N: ..."
// @Tags customers
// @Accept json
// @Produce json
// @Param customers body dto.BulkCreateCustomersRequest true "Список клиентов"
// @Success 200 {object} dto.BulkCustomersPayload
// @Failure 400 {object} dto.ValidationErrorResponse "Неверное тело запроса"
// @Router /api/v1/customers/bulk [post]
func (h *CustomerHandler) BulkCreate(c *gin.Context) {
	var req dto.BulkCreateCustomersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid bulk create request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}
	in := make([]service.CustomerInput, 0, len(req.Customers))
	for _, r := range req.Customers {
		in = append(in, r.ToInput())
	}
	res := h.mutation.BulkCreateCustomers(c.Request.Context(), in)
	c.JSON(http.StatusOK, dto.NewBulkCustomersPayload(res))
}
