package showtimes

import (
	"errors"
	"net/http"
	"strings"

	"cinepass/internal/cart"
	"cinepass/internal/shared/middleware"
	"cinepass/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service  Service
	sessions *cart.Store
}

func NewController(service Service, sessions *cart.Store) *Controller {
	return &Controller{service: service, sessions: sessions}
}

func (c *Controller) CreateShowtime(ctx *gin.Context) {
	var req CreateShowtimeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	showtime, err := c.service.CreateShowtime(ctx.Request.Context(), req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Theater not found", nil, err.Error())
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create showtime", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Showtime created successfully", toShowtimeResponse(showtime), nil)
}

func (c *Controller) GetShowtime(ctx *gin.Context) {
	showtime, err := c.service.GetShowtime(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Showtime not found", nil, err.Error())
			return
		}
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid showtime ID", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Showtime retrieved successfully", toShowtimeResponse(showtime), nil)
}

func (c *Controller) ListShowtimes(ctx *gin.Context) {
	var query ListShowtimesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	showtimes, err := c.service.ListByMovie(ctx.Request.Context(), query.MovieID, query.UpcomingOnly)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list showtimes", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Showtimes retrieved successfully", toShowtimeResponses(showtimes), nil)
}

func (c *Controller) ListTheaterShowtimes(ctx *gin.Context) {
	upcomingOnly := ctx.Query("upcoming_only") == "true"

	showtimes, err := c.service.ListByTheater(ctx.Request.Context(), ctx.Param("id"), upcomingOnly)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid theater ID", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Showtimes retrieved successfully", toShowtimeResponses(showtimes), nil)
}

func (c *Controller) ListTheaters(ctx *gin.Context) {
	theaters, err := c.service.ListTheaters(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list theaters", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Theaters retrieved successfully", toTheaterResponses(theaters), nil)
}

func (c *Controller) CreateTheater(ctx *gin.Context) {
	var req CreateTheaterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	theater, err := c.service.CreateTheater(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create theater", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Theater created successfully", toTheaterResponses([]Theater{*theater})[0], nil)
}

// GetSeatMap renders the grid with this session's selection overlaid.
func (c *Controller) GetSeatMap(ctx *gin.Context) {
	sess := c.sessions.Get(middleware.SessionID(ctx))

	seatMap, err := c.service.SeatMap(ctx.Request.Context(), sess, ctx.Param("id"))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Showtime not found", nil, err.Error())
			return
		}
		response.RespondRetryable(ctx, http.StatusBadGateway, "Failed to load seat map", err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat map retrieved successfully", seatMap, nil)
}

// ToggleSeat flips one seat in the session's selection. A seat outside the
// hall grid is a client error; a booked-seats fetch failure is retryable and
// leaves the selection untouched.
func (c *Controller) ToggleSeat(ctx *gin.Context) {
	sess := c.sessions.Get(middleware.SessionID(ctx))
	showtimeID := ctx.Param("id")

	selection, err := c.service.ToggleSeat(ctx.Request.Context(), sess, showtimeID, ctx.Param("seatId"))
	if err != nil {
		if errors.Is(err, ErrSeatOutsideGrid) {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Seat is outside the hall grid", nil, err.Error())
			return
		}
		if strings.Contains(err.Error(), "not found") {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Showtime not found", nil, err.Error())
			return
		}
		response.RespondRetryable(ctx, http.StatusBadGateway, "Failed to toggle seat", err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat selection updated", ToggleSeatResponse{
		ShowtimeID:    showtimeID,
		SelectedSeats: selection,
	}, nil)
}
