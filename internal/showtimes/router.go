package showtimes

import (
	"cinepass/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupShowtimeRoutes(rg *gin.RouterGroup, controller *Controller) {
	showtimes := rg.Group("/showtimes")
	{
		showtimes.POST("", controller.CreateShowtime)
		showtimes.GET("", controller.ListShowtimes)
		showtimes.GET("/:id", controller.GetShowtime)

		// Seat-map routes are session-scoped: selection state lives per
		// booking session, not per showtime.
		seats := showtimes.Group("/:id/seats")
		seats.Use(middleware.Session())
		{
			seats.GET("", controller.GetSeatMap)
			seats.POST("/:seatId/toggle", controller.ToggleSeat)
		}
	}

	theaters := rg.Group("/theaters")
	{
		theaters.POST("", controller.CreateTheater)
		theaters.GET("", controller.ListTheaters)
		theaters.GET("/:id/showtimes", controller.ListTheaterShowtimes)
	}
}
