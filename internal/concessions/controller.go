package concessions

import (
	"net/http"
	"strings"

	"cinepass/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

func (c *Controller) CreateFoodItem(ctx *gin.Context) {
	var req CreateFoodItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	item, err := c.service.CreateFoodItem(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create food item", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Food item created successfully", toFoodItemResponse(item), nil)
}

func (c *Controller) GetMenu(ctx *gin.Context) {
	var query MenuQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	items, err := c.service.GetMenu(ctx.Request.Context(), query.Category)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get menu", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Menu retrieved successfully", toFoodItemResponses(items), nil)
}

func (c *Controller) SetAvailability(ctx *gin.Context) {
	var req SetAvailabilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	item, err := c.service.SetAvailability(ctx.Request.Context(), ctx.Param("id"), *req.Available)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Food item not found", nil, err.Error())
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update availability", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Availability updated", toFoodItemResponse(item), nil)
}
