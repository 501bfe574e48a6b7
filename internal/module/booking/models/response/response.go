package response

type Booking struct {
	ID        string `json:"id"`
	ListingID string `json:"listing_id"`
	UserEmail string `json:"user_email"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type Payment struct {
	ID            string  `json:"id"`
	BookingID     string  `json:"booking_id,omitempty"`
	TransactionID string  `json:"transaction_id,omitempty"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	Email         string  `json:"email"`
	CreatedAt     string  `json:"created_at"`
}
