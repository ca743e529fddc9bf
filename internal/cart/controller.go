package cart

import (
	"net/http"

	"cinepass/internal/shared/middleware"
	"cinepass/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) GetCart(ctx *gin.Context) {
	view, err := c.service.View(ctx.Request.Context(), middleware.SessionID(ctx))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get cart", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cart retrieved successfully", view, nil)
}

func (c *Controller) SetSeats(ctx *gin.Context) {
	var req SetSeatsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	view, err := c.service.SetSelectedSeats(ctx.Request.Context(), middleware.SessionID(ctx), req.Seats)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update seats", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat selection updated", view, nil)
}

func (c *Controller) AddFood(ctx *gin.Context) {
	var req AddFoodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	view, err := c.service.AddFoodItem(ctx.Request.Context(), middleware.SessionID(ctx), req.FoodItemID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadGateway, "Failed to add food item", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Food item added", view, nil)
}

func (c *Controller) UpdateFoodQuantity(ctx *gin.Context) {
	foodID := ctx.Param("id")
	if foodID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Food item ID is required", nil, "missing food item ID")
		return
	}

	var req UpdateFoodQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	view, err := c.service.UpdateFoodItemQuantity(ctx.Request.Context(), middleware.SessionID(ctx), foodID, *req.Quantity)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update quantity", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Quantity updated", view, nil)
}

func (c *Controller) RemoveFood(ctx *gin.Context) {
	foodID := ctx.Param("id")
	if foodID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Food item ID is required", nil, "missing food item ID")
		return
	}

	view, err := c.service.RemoveFoodItem(ctx.Request.Context(), middleware.SessionID(ctx), foodID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to remove food item", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Food item removed", view, nil)
}

func (c *Controller) SetShowtime(ctx *gin.Context) {
	var req SetShowtimeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	view, err := c.service.SetShowtime(ctx.Request.Context(), middleware.SessionID(ctx), req.ShowtimeID)
	if err != nil {
		response.RespondRetryable(ctx, http.StatusBadGateway, "Failed to set showtime", err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Showtime set", view, nil)
}

func (c *Controller) SetMovie(ctx *gin.Context) {
	var req SetMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	view, err := c.service.SetMovie(ctx.Request.Context(), middleware.SessionID(ctx), req.MovieID)
	if err != nil {
		response.RespondRetryable(ctx, http.StatusBadGateway, "Failed to set movie", err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Movie set", view, nil)
}

func (c *Controller) ClearCart(ctx *gin.Context) {
	if err := c.service.Clear(ctx.Request.Context(), middleware.SessionID(ctx)); err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to clear cart", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cart cleared", nil, nil)
}
