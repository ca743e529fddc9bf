package cart

type SetSeatsRequest struct {
	Seats []string `json:"seats" binding:"required"`
}

type AddFoodRequest struct {
	FoodItemID string `json:"food_item_id" binding:"required,uuid"`
}

type UpdateFoodQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type SetShowtimeRequest struct {
	ShowtimeID string `json:"showtime_id" binding:"required,uuid"`
}

type SetMovieRequest struct {
	MovieID string `json:"movie_id" binding:"required,uuid"`
}
