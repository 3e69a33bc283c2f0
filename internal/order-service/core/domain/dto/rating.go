package dto

type RatingRequestDto struct {
	OrderID    string `json:"orderId"`
	RatingType string `json:"ratingType"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
}

type RatingResponseDto struct {
	ID         string `json:"id"`
	OrderID    string `json:"orderId"`
	UserID     string `json:"userId"`
	RatingType string `json:"ratingType"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
	CreatedAt  string `json:"createdAt"`
}
