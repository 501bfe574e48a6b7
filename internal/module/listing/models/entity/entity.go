package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Listing struct {
	ID            uuid.UUID    `db:"id" json:"id"`
	Title         string       `db:"title" json:"title"`
	Description   string       `db:"description" json:"description"`
	PictureURL    string       `db:"picture_url" json:"picture_url"`
	PricePerNight float64      `db:"price_per_night" json:"price_per_night"`
	AvailableFrom time.Time    `db:"available_from" json:"available_from"`
	AvailableTo   time.Time    `db:"available_to" json:"available_to"`
	CreatedAt     time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt     sql.NullTime `db:"updated_at" json:"updated_at"`
}

type Review struct {
	ID        uuid.UUID    `db:"id" json:"id"`
	ListingID uuid.UUID    `db:"listing_id" json:"listing_id"`
	UserEmail string       `db:"user_email" json:"user_email"`
	Rating    int          `db:"rating" json:"rating"`
	Comment   string       `db:"comment" json:"comment"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt sql.NullTime `db:"updated_at" json:"updated_at"`
}
