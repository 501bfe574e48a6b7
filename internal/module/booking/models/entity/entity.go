package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID        uuid.UUID    `db:"id" json:"id"`
	ListingID uuid.UUID    `db:"listing_id" json:"listing_id"`
	UserEmail string       `db:"user_email" json:"user_email"`
	StartDate time.Time    `db:"start_date" json:"start_date"`
	EndDate   time.Time    `db:"end_date" json:"end_date"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt sql.NullTime `db:"updated_at" json:"updated_at"`
}

const (
	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"
)

type Payment struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	BookingID     uuid.NullUUID  `db:"booking_id" json:"booking_id"`
	TransactionID sql.NullString `db:"transaction_id" json:"transaction_id"`
	Status        string         `db:"status" json:"status"`
	Amount        float64        `db:"amount" json:"amount"`
	Email         string         `db:"email" json:"email"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
}

// BookingWithListing is the joined row the confirmation mail is rendered from.
type BookingWithListing struct {
	Booking
	ListingTitle  string  `db:"listing_title"`
	PricePerNight float64 `db:"price_per_night"`
}
