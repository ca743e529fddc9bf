package movies

import (
	"net/http"
	"strings"

	"cinepass/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) CreateMovie(ctx *gin.Context) {
	var req CreateMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	movie, err := c.service.CreateMovie(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create movie", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Movie created successfully", toMovieResponse(movie), nil)
}

func (c *Controller) GetMovie(ctx *gin.Context) {
	movie, err := c.service.GetMovie(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Movie not found", nil, err.Error())
			return
		}
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid movie ID", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Movie retrieved successfully", toMovieResponse(movie), nil)
}

func (c *Controller) ListMovies(ctx *gin.Context) {
	var query ListMoviesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	movies, err := c.service.ListMovies(ctx.Request.Context(), query.Genre, query.Search)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list movies", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Movies retrieved successfully", toMovieResponses(movies), nil)
}

func (c *Controller) DeleteMovie(ctx *gin.Context) {
	if err := c.service.DeleteMovie(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if strings.Contains(err.Error(), "not found") {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Movie not found", nil, err.Error())
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete movie", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Movie deleted successfully", nil, nil)
}
