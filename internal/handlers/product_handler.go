package handlers

import (
	"net/http"

	"crm-service/internal/dto"
	"crm-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	query    service.QueryService
	mutation service.MutationService
	log      *zap.Logger
}

func NewProductHandler(query service.QueryService, mutation service.MutationService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{query: query, mutation: mutation, log: log}
}

// List godoc
// @Summary Список товаров
// @Tags products
// @Produce json
// @Param name query string false "Подстрока названия"
// @Param name_icontains query string false "Подстрока названия"
// @Param name_exact query string false "Точное название"
// @Param price query string false "Цена"
// @Param price_gte query string false "Цена от"
// @Param price_lte query string false "Цена до"
// @Param stock query int false "Остаток"
// @Param stock_gte query int false "Остаток от"
// @Param stock_lte query int false "Остаток до"
// @Param low_stock query bool false "Только остаток < 10"
// @Param created_at query string false "Дата создания"
// @Param created_at_gte query string false "Создан не раньше"
// @Param created_at_lte query string false "Создан не позже"
// @Success 200 {object} dto.ProductList
// @Failure 400 {object} dto.ValidationErrorResponse "Неверные параметры"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /api/v1/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	f, verr := parseProductFilter(c)
	if verr != nil {
		c.JSON(http.StatusBadRequest, verr)
		return
	}
	list, err := h.query.AllProducts(c.Request.Context(), f)
	if err != nil {
		h.log.Error("Не удалось получить список товаров", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.JSON(http.StatusOK, dto.ProductList{Products: dto.FromProducts(list)})
}

// Get godoc
// @Summary Товар по id
// @Tags products
// @Produce json
// @Param id path string true "ID товара"
// @Success 200 {object} dto.ProductEnvelope
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /api/v1/products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.query.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error("Не удалось получить товар", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.JSON(http.StatusOK, dto.ProductEnvelope{Product: dto.FromProduct(p)})
}

// Create godoc
// @Summary Создание товара
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Данные товара"
// @Success 200 {object} dto.ProductPayload
// @Failure 400 {object} dto.ValidationErrorResponse "Неверное тело запроса"
// @Router /api/v1/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid create product request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}
	res := h.mutation.CreateProduct(c.Request.Context(), req.ToInput())
	c.JSON(http.StatusOK, dto.NewProductPayload(res))
}

// Restock godoc
// @Summary Пополнение остатков
// @Description Товарам с остатком меньше 10 добавляет 10 единиц
// @Tags products
// @Produce json
// @Success 200 {object} dto.RestockPayload
// @Router /api/v1/products/restock [post]
func (h *ProductHandler) Restock(c *gin.Context) {
	res := h.mutation.RestockLowStock(c.Request.Context())
	c.JSON(http.StatusOK, dto.NewRestockPayload(res))
}
