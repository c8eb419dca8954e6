package transport

import (
	"time"

	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/transport/middleware"

	"github.com/gin-gonic/gin"
)

func InitRoutes(
	timeout time.Duration,
	customerHandler *CustomerHandler,
	productHandler *ProductHandler,
	saleHandler *SaleHandler,
	notificationHandler *NotificationHandler,
	reportHandler *ReportHandler,
) *gin.Engine {

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(timeout))

	// API routes
	api := router.Group("/api/v1")
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerHandler.CreateCustomer)
			customers.GET("", customerHandler.ListCustomers)
			customers.GET("/:id", customerHandler.GetCustomer)
			customers.PUT("/:id", customerHandler.UpdateCustomer)
			customers.GET("/:id/purchases", customerHandler.GetPurchases)
		}

		// Product routes
		products := api.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.POST("", productHandler.CreateProduct)
		}

		// Sale routes
		sales := api.Group("/sales")
		{
			sales.POST("", saleHandler.RecordSale)
		}

		// Notification routes
		notifications := api.Group("/notifications")
		{
			notifications.GET("", notificationHandler.GetToday)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
		}

		// Birthday side panel
		api.GET("/birthdays", customerHandler.GetBirthdays)

		// Report routes
		reports := api.Group("/reports")
		{
			reports.GET("/summary", reportHandler.GetSummary)
		}
	}

	return router
}
