package routes

import (
	"go-crm-management/controllers"

	"github.com/gin-gonic/gin"
)

func CustomerRoutes(incomingRoutes *gin.Engine, customerController *controllers.CustomerController) {
	incomingRoutes.POST("/customers", customerController.AddCustomer())
	incomingRoutes.GET("/customers", customerController.GetCustomers())
	incomingRoutes.POST("/customers/by-id", customerController.GetCustomerByID())
	incomingRoutes.POST("/customers/by-phone", customerController.GetCustomerByPhone())
	incomingRoutes.POST("/customers/orders", customerController.GetCustomerOrders())
}
