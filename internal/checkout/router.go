package checkout

import (
	"cinepass/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCheckoutRoutes(rg *gin.RouterGroup, controller *Controller) {
	checkout := rg.Group("/checkout")
	checkout.Use(middleware.Session())
	{
		checkout.POST("", controller.Checkout)
	}
}
