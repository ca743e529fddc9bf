package cart

import (
	"cinepass/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCartRoutes(rg *gin.RouterGroup, controller *Controller) {
	carts := rg.Group("/cart")
	carts.Use(middleware.Session())
	{
		carts.GET("", controller.GetCart)        // GET /api/v1/cart
		carts.DELETE("", controller.ClearCart)   // DELETE /api/v1/cart
		carts.PUT("/seats", controller.SetSeats) // PUT /api/v1/cart/seats
		carts.PUT("/showtime", controller.SetShowtime)
		carts.PUT("/movie", controller.SetMovie)

		carts.POST("/food", controller.AddFood)                 // POST /api/v1/cart/food
		carts.PATCH("/food/:id", controller.UpdateFoodQuantity) // PATCH /api/v1/cart/food/:id
		carts.DELETE("/food/:id", controller.RemoveFood)        // DELETE /api/v1/cart/food/:id
	}
}
