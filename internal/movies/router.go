package movies

import "github.com/gin-gonic/gin"

func SetupMovieRoutes(rg *gin.RouterGroup, controller *Controller) {
	movies := rg.Group("/movies")
	{
		movies.POST("", controller.CreateMovie)
		movies.GET("", controller.ListMovies)
		movies.GET("/:id", controller.GetMovie)
		movies.DELETE("/:id", controller.DeleteMovie)
	}
}
