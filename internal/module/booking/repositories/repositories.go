package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"travel-service/internal/module/booking/models/entity"
	"travel-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type repositories struct {
	db  *sqlx.DB
	log *otelzap.Logger
}

type Repositories interface {
	// bookings
	InsertBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error)
	FindBookingByID(ctx context.Context, id string) (entity.Booking, error)
	FindBookingWithListing(ctx context.Context, id string) (entity.BookingWithListing, error)
	FindBookings(ctx context.Context) ([]entity.Booking, error)
	UpdateBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	// listing lookups needed for booking validation
	ListingAvailability(ctx context.Context, listingID string) (time.Time, time.Time, error)
	// payments
	InsertPayment(ctx context.Context, payment entity.Payment) (entity.Payment, error)
	FindPaymentByID(ctx context.Context, id string) (entity.Payment, error)
	FindPayments(ctx context.Context) ([]entity.Payment, error)
	UpdatePaymentStatus(ctx context.Context, paymentID, status, transactionID string) (entity.Payment, error)
}

func New(db *sqlx.DB, log *otelzap.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// InsertBooking implements Repositories. The parent listing is re-checked
// inside the transaction so the insert and the integrity check commit
// atomically; a missing parent surfaces as a conflict with nothing persisted.
func (r *repositories) InsertBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error starting transaction")
	}

	var exists int
	err = tx.GetContext(ctx, &exists, `SELECT 1 FROM listings WHERE id = $1`, booking.ListingID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return entity.Booking{}, errors.Conflict("listing does not exist")
	}
	if err != nil {
		tx.Rollback()
		r.log.Ctx(ctx).Error(fmt.Sprintf("error check listing exists: %v", err))
		return entity.Booking{}, errors.InternalServerError("error check listing exists")
	}

	booking.ID = uuid.New()
	booking.CreatedAt = time.Now().UTC()
	booking.UpdatedAt = sql.NullTime{Time: booking.CreatedAt, Valid: true}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO bookings (id, listing_id, user_email, start_date, end_date, created_at, updated_at)
		VALUES (:id, :listing_id, :user_email, :start_date, :end_date, :created_at, :updated_at)
	`, booking)
	if err != nil {
		tx.Rollback()
		r.log.Ctx(ctx).Error(fmt.Sprintf("error insert booking: %v", err))
		return entity.Booking{}, errors.InternalServerError("error insert booking")
	}

	if err := tx.Commit(); err != nil {
		return entity.Booking{}, errors.InternalServerError("error committing transaction")
	}

	return booking, nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, id string) (entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE id = $1`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find booking by id: %v", err))
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// FindBookingWithListing implements Repositories.
func (r *repositories) FindBookingWithListing(ctx context.Context, id string) (entity.BookingWithListing, error) {
	query := `
		SELECT b.id, b.listing_id, b.user_email, b.start_date, b.end_date,
			b.created_at, b.updated_at,
			l.title AS listing_title, l.price_per_night
		FROM bookings b
		JOIN listings l ON l.id = b.listing_id
		WHERE b.id = $1`
	var row entity.BookingWithListing
	err := r.db.GetContext(ctx, &row, query, id)
	if err == sql.ErrNoRows {
		return entity.BookingWithListing{}, errors.NotFound("booking not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find booking with listing: %v", err))
		return entity.BookingWithListing{}, errors.InternalServerError("error find booking with listing")
	}
	return row, nil
}

// FindBookings implements Repositories.
func (r *repositories) FindBookings(ctx context.Context) ([]entity.Booking, error) {
	query := `SELECT * FROM bookings ORDER BY created_at DESC`
	bookings := []entity.Booking{}
	err := r.db.SelectContext(ctx, &bookings, query)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find bookings: %v", err))
		return nil, errors.InternalServerError("error find bookings")
	}
	return bookings, nil
}

// UpdateBooking implements Repositories. The row is locked so concurrent
// updates to the same booking serialize.
func (r *repositories) UpdateBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error starting transaction")
	}

	var existing entity.Booking
	err = tx.GetContext(ctx, &existing, `SELECT * FROM bookings WHERE id = $1 FOR UPDATE`, booking.ID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		tx.Rollback()
		r.log.Ctx(ctx).Error(fmt.Sprintf("error locking booking row: %v", err))
		return entity.Booking{}, errors.InternalServerError("error locking booking row")
	}

	booking.ListingID = existing.ListingID
	booking.CreatedAt = existing.CreatedAt
	booking.UpdatedAt = sql.NullTime{Time: time.Now().UTC(), Valid: true}

	_, err = tx.NamedExecContext(ctx, `
		UPDATE bookings
		SET user_email = :user_email, start_date = :start_date, end_date = :end_date,
			updated_at = :updated_at
		WHERE id = :id
	`, booking)
	if err != nil {
		tx.Rollback()
		r.log.Ctx(ctx).Error(fmt.Sprintf("error update booking: %v", err))
		return entity.Booking{}, errors.InternalServerError("error update booking")
	}

	if err := tx.Commit(); err != nil {
		return entity.Booking{}, errors.InternalServerError("error committing transaction")
	}

	return booking, nil
}

// DeleteBooking implements Repositories.
func (r *repositories) DeleteBooking(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error delete booking: %v", err))
		return errors.InternalServerError("error delete booking")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error delete booking")
	}
	if rows == 0 {
		return errors.NotFound("booking not found")
	}

	return nil
}

// ListingAvailability implements Repositories.
func (r *repositories) ListingAvailability(ctx context.Context, listingID string) (time.Time, time.Time, error) {
	var window struct {
		AvailableFrom time.Time `db:"available_from"`
		AvailableTo   time.Time `db:"available_to"`
	}
	err := r.db.GetContext(ctx, &window, `SELECT available_from, available_to FROM listings WHERE id = $1`, listingID)
	if err == sql.ErrNoRows {
		return time.Time{}, time.Time{}, errors.Conflict("listing does not exist")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find listing availability: %v", err))
		return time.Time{}, time.Time{}, errors.InternalServerError("error find listing availability")
	}
	return window.AvailableFrom, window.AvailableTo, nil
}

// InsertPayment implements Repositories. A referenced booking, when present,
// is verified inside the transaction.
func (r *repositories) InsertPayment(ctx context.Context, payment entity.Payment) (entity.Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Payment{}, errors.InternalServerError("error starting transaction")
	}

	if payment.BookingID.Valid {
		var exists int
		err = tx.GetContext(ctx, &exists, `SELECT 1 FROM bookings WHERE id = $1`, payment.BookingID.UUID)
		if err == sql.ErrNoRows {
			tx.Rollback()
			return entity.Payment{}, errors.Conflict("booking does not exist")
		}
		if err != nil {
			tx.Rollback()
			r.log.Ctx(ctx).Error(fmt.Sprintf("error check booking exists: %v", err))
			return entity.Payment{}, errors.InternalServerError("error check booking exists")
		}
	}

	payment.ID = uuid.New()
	payment.CreatedAt = time.Now().UTC()
	if payment.Status == "" {
		payment.Status = entity.PaymentStatusPending
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO payments (id, booking_id, transaction_id, status, amount, email, created_at)
		VALUES (:id, :booking_id, :transaction_id, :status, :amount, :email, :created_at)
	`, payment)
	if err != nil {
		tx.Rollback()
		r.log.Ctx(ctx).Error(fmt.Sprintf("error insert payment: %v", err))
		return entity.Payment{}, errors.InternalServerError("error insert payment")
	}

	if err := tx.Commit(); err != nil {
		return entity.Payment{}, errors.InternalServerError("error committing transaction")
	}

	return payment, nil
}

// FindPaymentByID implements Repositories.
func (r *repositories) FindPaymentByID(ctx context.Context, id string) (entity.Payment, error) {
	query := `SELECT * FROM payments WHERE id = $1`
	var payment entity.Payment
	err := r.db.GetContext(ctx, &payment, query, id)
	if err == sql.ErrNoRows {
		return entity.Payment{}, errors.NotFound("payment not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find payment by id: %v", err))
		return entity.Payment{}, errors.InternalServerError("error find payment by id")
	}
	return payment, nil
}

// FindPayments implements Repositories.
func (r *repositories) FindPayments(ctx context.Context) ([]entity.Payment, error) {
	query := `SELECT * FROM payments ORDER BY created_at DESC`
	payments := []entity.Payment{}
	err := r.db.SelectContext(ctx, &payments, query)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find payments: %v", err))
		return nil, errors.InternalServerError("error find payments")
	}
	return payments, nil
}

// UpdatePaymentStatus implements Repositories. Pending is the only state a
// payment may leave; Completed and Failed are terminal.
func (r *repositories) UpdatePaymentStatus(ctx context.Context, paymentID, status, transactionID string) (entity.Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Payment{}, errors.InternalServerError("error starting transaction")
	}

	var payment entity.Payment
	err = tx.GetContext(ctx, &payment, `SELECT * FROM payments WHERE id = $1 FOR UPDATE`, paymentID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return entity.Payment{}, errors.NotFound("payment not found")
	}
	if err != nil {
		tx.Rollback()
		r.log.Ctx(ctx).Error(fmt.Sprintf("error locking payment row: %v", err))
		return entity.Payment{}, errors.InternalServerError("error locking payment row")
	}

	if payment.Status != entity.PaymentStatusPending && payment.Status != status {
		tx.Rollback()
		return entity.Payment{}, errors.Conflict(fmt.Sprintf("payment already %s", payment.Status))
	}

	payment.Status = status
	if transactionID != "" {
		payment.TransactionID = sql.NullString{String: transactionID, Valid: true}
	}

	_, err = tx.NamedExecContext(ctx, `
		UPDATE payments
		SET status = :status, transaction_id = :transaction_id
		WHERE id = :id
	`, payment)
	if err != nil {
		tx.Rollback()
		r.log.Ctx(ctx).Error(fmt.Sprintf("error update payment status: %v", err))
		return entity.Payment{}, errors.InternalServerError("error update payment status")
	}

	if err := tx.Commit(); err != nil {
		return entity.Payment{}, errors.InternalServerError("error committing transaction")
	}

	return payment, nil
}
