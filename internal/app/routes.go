package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	handlers "github.com/jeffleon2/draftea-customer-payment-service/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(customers *handlers.CustomerHandler, payments *handlers.PaymentHandler) {
	registerRoutes(a.Router, customers, payments)
}

func registerRoutes(router *gin.Engine, customers *handlers.CustomerHandler, payments *handlers.PaymentHandler) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")

	customerRoutes := api.Group("/customers")
	customerRoutes.POST("", customers.CreateCustomer)
	customerRoutes.GET("", customers.GetAllCustomers)
	customerRoutes.GET("/:customerId", customers.GetCustomer)
	customerRoutes.PUT("/:customerId", customers.UpdateCustomer)
	customerRoutes.DELETE("/:customerId", customers.DeleteCustomer)
	customerRoutes.POST("/:customerId/payments", payments.MakePayment)
	customerRoutes.GET("/:customerId/payments", payments.GetCustomerPayments)

	api.GET("/payments/:paymentId", payments.GetPayment)
}
