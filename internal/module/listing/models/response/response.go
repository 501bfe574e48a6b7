package response

type Listing struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	PictureURL    string  `json:"picture_url"`
	PricePerNight float64 `json:"price_per_night"`
	AvailableFrom string  `json:"available_from"`
	AvailableTo   string  `json:"available_to"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}

type Review struct {
	ID        string `json:"id"`
	ListingID string `json:"listing_id"`
	UserEmail string `json:"user_email"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
