package checkout

import (
	"errors"
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

// Checkout runs one payment attempt for the caller's session.
func (c *Controller) Checkout(ctx *gin.Context) {
	result, err := c.service.Checkout(ctx.Request.Context(), middleware.SessionID(ctx))
	if err != nil {
		switch {
		case errors.Is(err, ErrNoSeatsSelected):
			response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, "Select at least one seat before checking out", nil, err.Error())
		case errors.Is(err, ErrNoShowtime):
			response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, "Select a showtime before checking out", nil, err.Error())
		default:
			response.RespondRetryable(ctx, http.StatusBadGateway, "Checkout could not be completed", err.Error())
		}
		return
	}

	if result.Outcome == OutcomeSuccess {
		response.RespondJSON(ctx, "success", http.StatusOK, "Order confirmed", result, nil)
		return
	}

	// Declined or cancelled: the cart survives and the buyer may retry.
	response.RespondJSON(ctx, "error", http.StatusPaymentRequired, "Payment was not completed", result, nil)
}
