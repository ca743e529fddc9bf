package showtimes

import (
	"time"

	"cinepass/internal/seatmap"

	"github.com/shopspring/decimal"
)

type ShowtimeResponse struct {
	ID         string          `json:"id"`
	MovieID    string          `json:"movie_id"`
	TheaterID  string          `json:"theater_id"`
	Theater    string          `json:"theater,omitempty"`
	HallNumber int             `json:"hall_number"`
	StartTime  time.Time       `json:"start_time"`
	EndTime    time.Time       `json:"end_time"`
	Is3D       bool            `json:"is_3d"`
	Price      decimal.Decimal `json:"price"`
	Rows       int             `json:"rows"`
	Columns    int             `json:"columns"`
}

type SeatMapResponse struct {
	ShowtimeID    string           `json:"showtime_id"`
	Rows          int              `json:"rows"`
	Columns       int              `json:"columns"`
	Layout        [][]seatmap.Seat `json:"layout"`
	SelectedSeats []string         `json:"selected_seats"`
}

type ToggleSeatResponse struct {
	ShowtimeID    string   `json:"showtime_id"`
	SelectedSeats []string `json:"selected_seats"`
}

type TheaterResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
}

func toShowtimeResponse(st *Showtime) ShowtimeResponse {
	resp := ShowtimeResponse{
		ID:         st.ID.String(),
		MovieID:    st.MovieID.String(),
		TheaterID:  st.TheaterID.String(),
		HallNumber: st.HallNumber,
		StartTime:  st.StartTime,
		EndTime:    st.EndTime,
		Is3D:       st.Is3D,
		Price:      st.Price,
		Rows:       st.Rows,
		Columns:    st.Columns,
	}
	if st.Theater != nil {
		resp.Theater = st.Theater.Name
	}
	return resp
}

func toShowtimeResponses(sts []Showtime) []ShowtimeResponse {
	out := make([]ShowtimeResponse, 0, len(sts))
	for i := range sts {
		out = append(out, toShowtimeResponse(&sts[i]))
	}
	return out
}

func toTheaterResponses(ths []Theater) []TheaterResponse {
	out := make([]TheaterResponse, 0, len(ths))
	for _, t := range ths {
		out = append(out, TheaterResponse{
			ID:      t.ID.String(),
			Name:    t.Name,
			City:    t.City,
			Address: t.Address,
		})
	}
	return out
}
