package request

type CreateBooking struct {
	ListingID string `json:"listing_id" validate:"required,uuid4"`
	UserEmail string `json:"user_email" validate:"required,email"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type UpdateBooking struct {
	UserEmail *string `json:"user_email" validate:"omitempty,email"`
	StartDate *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type CreatePayment struct {
	BookingID     string  `json:"booking_id" validate:"omitempty,uuid4"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount" validate:"gte=0"`
	Email         string  `json:"email" validate:"required,email"`
}

// BookingConfirmation is the payload of the email:booking_confirmation task.
type BookingConfirmation struct {
	BookingID string `json:"booking_id" validate:"required,uuid4"`
}

// PaymentStatusUpdate arrives on the payment_status queue from the payment
// processor callback relay.
type PaymentStatusUpdate struct {
	PaymentID     string `json:"payment_id" validate:"required,uuid4"`
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status" validate:"required,oneof=Pending Completed Failed"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}

// BookingCreated is the domain event published after a booking commits.
type BookingCreated struct {
	BookingID string `json:"booking_id"`
	ListingID string `json:"listing_id"`
	UserEmail string `json:"user_email"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
