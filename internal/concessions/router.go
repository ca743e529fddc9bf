package concessions

import "github.com/gin-gonic/gin"

func SetupConcessionRoutes(rg *gin.RouterGroup, controller *Controller) {
	concessions := rg.Group("/concessions")
	{
		concessions.POST("", controller.CreateFoodItem)
		concessions.GET("/menu", controller.GetMenu)
		concessions.PATCH("/:id/availability", controller.SetAvailability)
	}
}
