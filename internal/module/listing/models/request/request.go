package request

type CreateListing struct {
	Title         string  `json:"title" validate:"required,max=255"`
	Description   string  `json:"description"`
	PictureURL    string  `json:"picture_url" validate:"omitempty,url"`
	PricePerNight float64 `json:"price_per_night" validate:"gte=0"`
	AvailableFrom string  `json:"available_from" validate:"required,datetime=2006-01-02"`
	AvailableTo   string  `json:"available_to" validate:"required,datetime=2006-01-02"`
}

type UpdateListing struct {
	Title         *string  `json:"title" validate:"omitempty,max=255"`
	Description   *string  `json:"description"`
	PictureURL    *string  `json:"picture_url" validate:"omitempty,url"`
	PricePerNight *float64 `json:"price_per_night" validate:"omitempty,gte=0"`
	AvailableFrom *string  `json:"available_from" validate:"omitempty,datetime=2006-01-02"`
	AvailableTo   *string  `json:"available_to" validate:"omitempty,datetime=2006-01-02"`
}

type CreateReview struct {
	UserEmail string `json:"user_email" validate:"required,email"`
	Rating    int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Comment   string `json:"comment"`
}

type UpdateReview struct {
	Rating  *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Comment *string `json:"comment"`
}
