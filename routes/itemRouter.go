package routes

import (
	"go-crm-management/controllers"

	"github.com/gin-gonic/gin"
)

func ItemRoutes(incomingRoutes *gin.Engine, itemController *controllers.ItemController) {
	incomingRoutes.POST("/items", itemController.AddItem())
	incomingRoutes.POST("/items/search", itemController.SearchItems())
	incomingRoutes.GET("/items", itemController.GetItems())
}
