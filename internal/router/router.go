package router

import (
	"crm-service/internal/handlers"
	"crm-service/internal/middleware"
	"crm-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func Router(query service.QueryService, mutation service.MutationService, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(), middleware.AccessLog(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", middleware.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID},
	}))

	customers := handlers.NewCustomerHandler(query, mutation, log)
	products := handlers.NewProductHandler(query, mutation, log)
	orders := handlers.NewOrderHandler(query, mutation, log)
	health := handlers.NewHealthHandler(query, log)

	api := r.Group("/api/v1")
	{
		api.GET("/customers", customers.List)
		api.GET("/customers/:id", customers.Get)
		api.POST("/customers", customers.Create)
		api.POST("/customers/bulk", customers.BulkCreate)

		api.GET("/products", products.List)
		api.GET("/products/:id", products.Get)
		api.POST("/products", products.Create)
		api.POST("/products/restock", products.Restock)

		api.GET("/orders", orders.List)
		api.GET("/orders/:id", orders.Get)
		api.POST("/orders", orders.Create)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", health.Health)

	return r
}
