package routes

import (
	"go-crm-management/controllers"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine, orderController *controllers.OrderController, orderItemController *controllers.OrderItemController) {
	incomingRoutes.POST("/orders", orderController.AddOrder())
	incomingRoutes.GET("/orders", orderController.GetOrders())
	incomingRoutes.GET("/orders/find", orderController.GetOrderByID())
	incomingRoutes.POST("/orders/items", orderItemController.AddOrderItem())
	incomingRoutes.GET("/ws", controllers.HandleWebSocket())
}
