package usecases

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"travel-service/internal/module/booking/models/entity"
	"travel-service/internal/module/booking/models/request"
	"travel-service/internal/module/booking/models/response"
	"travel-service/internal/module/booking/repositories"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/lock"
	"travel-service/internal/pkg/mailer"
	"travel-service/internal/pkg/scheduler"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const (
	dateLayout          = "2006-01-02"
	TopicBookingCreated = "booking_created"
)

// TaskEnqueuer is the slice of asynq.Client the usecase needs; narrowed for
// mocking.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type usecase struct {
	repo       repositories.Repositories
	log        *otelzap.Logger
	publisher  message.Publisher
	taskClient TaskEnqueuer
	locker     lock.Locker
	mail       mailer.Mailer
	maxRetry   int
}

type Usecase interface {
	// http
	CreateBooking(ctx context.Context, payload *request.CreateBooking) (response.Booking, error)
	GetBooking(ctx context.Context, id string) (response.Booking, error)
	ListBookings(ctx context.Context) ([]response.Booking, error)
	UpdateBooking(ctx context.Context, id string, payload *request.UpdateBooking) (response.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	CreatePayment(ctx context.Context, payload *request.CreatePayment) (response.Payment, error)
	GetPayment(ctx context.Context, id string) (response.Payment, error)
	ListPayments(ctx context.Context) ([]response.Payment, error)
	// queue
	ApplyPaymentStatus(ctx context.Context, payload *request.PaymentStatusUpdate) error
	// worker
	SendBookingConfirmation(ctx context.Context, payload *request.BookingConfirmation) error
}

func New(repo repositories.Repositories, log *otelzap.Logger, publisher message.Publisher, taskClient TaskEnqueuer, locker lock.Locker, mail mailer.Mailer, maxRetry int) Usecase {
	return &usecase{
		repo:       repo,
		log:        log,
		publisher:  publisher,
		taskClient: taskClient,
		locker:     locker,
		mail:       mail,
		maxRetry:   maxRetry,
	}
}

// CreateBooking persists the booking and, only after the commit, submits the
// confirmation task and the domain event. Neither submission failing can fail
// the request.
func (u *usecase) CreateBooking(ctx context.Context, payload *request.CreateBooking) (response.Booking, error) {
	start, err := time.Parse(dateLayout, payload.StartDate)
	if err != nil {
		return response.Booking{}, errors.BadRequest("invalid start_date")
	}
	end, err := time.Parse(dateLayout, payload.EndDate)
	if err != nil {
		return response.Booking{}, errors.BadRequest("invalid end_date")
	}
	if !start.Before(end) {
		return response.Booking{}, errors.UnprocessableEntity("start_date must be before end_date")
	}

	unlock, err := u.locker.LockListing(ctx, payload.ListingID)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error acquire listing lock: %v", err))
		return response.Booking{}, errors.InternalServerError("error acquire listing lock")
	}
	defer unlock(ctx)

	availableFrom, availableTo, err := u.repo.ListingAvailability(ctx, payload.ListingID)
	if err != nil {
		return response.Booking{}, err
	}
	if start.Before(availableFrom) || end.After(availableTo) {
		return response.Booking{}, errors.UnprocessableEntity("booking dates fall outside the listing availability window")
	}

	listingID, err := uuid.Parse(payload.ListingID)
	if err != nil {
		return response.Booking{}, errors.BadRequest("invalid listing_id")
	}

	booking := entity.Booking{
		ListingID: listingID,
		UserEmail: payload.UserEmail,
		StartDate: start,
		EndDate:   end,
	}

	created, err := u.repo.InsertBooking(ctx, booking)
	if err != nil {
		return response.Booking{}, err
	}

	u.enqueueConfirmation(ctx, created)
	u.publishBookingCreated(ctx, created)

	return toBookingResponse(created), nil
}

// enqueueConfirmation submits the email:booking_confirmation task. The
// booking is already committed, so the task is guaranteed to observe it.
func (u *usecase) enqueueConfirmation(ctx context.Context, booking entity.Booking) {
	payload, err := json.Marshal(request.BookingConfirmation{BookingID: booking.ID.String()})
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error marshal confirmation payload: %v", err))
		return
	}

	task := asynq.NewTask(scheduler.TypeBookingConfirmation, payload)
	_, err = u.taskClient.EnqueueContext(ctx, task,
		asynq.MaxRetry(u.maxRetry),
		asynq.Timeout(time.Minute),
	)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error enqueue booking confirmation for %s: %v", booking.ID, err))
	}
}

func (u *usecase) publishBookingCreated(ctx context.Context, booking entity.Booking) {
	event := request.BookingCreated{
		BookingID: booking.ID.String(),
		ListingID: booking.ListingID.String(),
		UserEmail: booking.UserEmail,
		StartDate: booking.StartDate.Format(dateLayout),
		EndDate:   booking.EndDate.Format(dateLayout),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error marshal booking created event: %v", err))
		return
	}

	if err := u.publisher.Publish(TopicBookingCreated, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error publish booking created event: %v", err))
	}
}

func (u *usecase) GetBooking(ctx context.Context, id string) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, id)
	if err != nil {
		return response.Booking{}, err
	}
	return toBookingResponse(booking), nil
}

func (u *usecase) ListBookings(ctx context.Context) ([]response.Booking, error) {
	bookings, err := u.repo.FindBookings(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Booking, 0, len(bookings))
	for _, booking := range bookings {
		resp = append(resp, toBookingResponse(booking))
	}
	return resp, nil
}

func (u *usecase) UpdateBooking(ctx context.Context, id string, payload *request.UpdateBooking) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, id)
	if err != nil {
		return response.Booking{}, err
	}

	if payload.UserEmail != nil {
		booking.UserEmail = *payload.UserEmail
	}
	if payload.StartDate != nil {
		start, err := time.Parse(dateLayout, *payload.StartDate)
		if err != nil {
			return response.Booking{}, errors.BadRequest("invalid start_date")
		}
		booking.StartDate = start
	}
	if payload.EndDate != nil {
		end, err := time.Parse(dateLayout, *payload.EndDate)
		if err != nil {
			return response.Booking{}, errors.BadRequest("invalid end_date")
		}
		booking.EndDate = end
	}

	if !booking.StartDate.Before(booking.EndDate) {
		return response.Booking{}, errors.UnprocessableEntity("start_date must be before end_date")
	}

	availableFrom, availableTo, err := u.repo.ListingAvailability(ctx, booking.ListingID.String())
	if err != nil {
		return response.Booking{}, err
	}
	if booking.StartDate.Before(availableFrom) || booking.EndDate.After(availableTo) {
		return response.Booking{}, errors.UnprocessableEntity("booking dates fall outside the listing availability window")
	}

	updated, err := u.repo.UpdateBooking(ctx, booking)
	if err != nil {
		return response.Booking{}, err
	}

	return toBookingResponse(updated), nil
}

func (u *usecase) DeleteBooking(ctx context.Context, id string) error {
	return u.repo.DeleteBooking(ctx, id)
}

func (u *usecase) CreatePayment(ctx context.Context, payload *request.CreatePayment) (response.Payment, error) {
	payment := entity.Payment{
		Status: entity.PaymentStatusPending,
		Amount: payload.Amount,
		Email:  payload.Email,
	}

	if payload.BookingID != "" {
		bookingID, err := uuid.Parse(payload.BookingID)
		if err != nil {
			return response.Payment{}, errors.BadRequest("invalid booking_id")
		}
		payment.BookingID = uuid.NullUUID{UUID: bookingID, Valid: true}
	}
	if payload.TransactionID != "" {
		payment.TransactionID = sql.NullString{String: payload.TransactionID, Valid: true}
	}

	created, err := u.repo.InsertPayment(ctx, payment)
	if err != nil {
		return response.Payment{}, err
	}

	return toPaymentResponse(created), nil
}

func (u *usecase) GetPayment(ctx context.Context, id string) (response.Payment, error) {
	payment, err := u.repo.FindPaymentByID(ctx, id)
	if err != nil {
		return response.Payment{}, err
	}
	return toPaymentResponse(payment), nil
}

func (u *usecase) ListPayments(ctx context.Context) ([]response.Payment, error) {
	payments, err := u.repo.FindPayments(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Payment, 0, len(payments))
	for _, payment := range payments {
		resp = append(resp, toPaymentResponse(payment))
	}
	return resp, nil
}

// ApplyPaymentStatus applies a processor callback. A payment that is gone or
// already terminal is logged and dropped so redelivery stays harmless.
func (u *usecase) ApplyPaymentStatus(ctx context.Context, payload *request.PaymentStatusUpdate) error {
	_, err := u.repo.UpdatePaymentStatus(ctx, payload.PaymentID, payload.Status, payload.TransactionID)
	if err != nil {
		if errors.IsNotFound(err) || errors.IsConflict(err) {
			u.log.Ctx(ctx).Warn(fmt.Sprintf("dropping payment status update for %s: %v", payload.PaymentID, err))
			return nil
		}
		return err
	}
	return nil
}

// SendBookingConfirmation is the body of the email:booking_confirmation task.
// A vanished booking terminates the job without retry; a transient mail
// failure is returned so the queue retries it.
func (u *usecase) SendBookingConfirmation(ctx context.Context, payload *request.BookingConfirmation) error {
	row, err := u.repo.FindBookingWithListing(ctx, payload.BookingID)
	if err != nil {
		if errors.IsNotFound(err) {
			u.log.Ctx(ctx).Warn(fmt.Sprintf("booking %s no longer exists, skipping confirmation", payload.BookingID))
			return fmt.Errorf("booking %s not found: %w", payload.BookingID, asynq.SkipRetry)
		}
		return err
	}

	msg := renderConfirmation(row)

	if err := u.mail.Send(ctx, msg); err != nil {
		var deliveryErr *errors.DeliveryError
		if stderrors.As(err, &deliveryErr) && !deliveryErr.Transient {
			u.log.Ctx(ctx).Error(fmt.Sprintf("permanent delivery failure for booking %s: %v", payload.BookingID, err))
			return fmt.Errorf("confirmation for booking %s undeliverable: %w", payload.BookingID, asynq.SkipRetry)
		}
		u.log.Ctx(ctx).Error(fmt.Sprintf("error send confirmation for booking %s: %v", payload.BookingID, err))
		return err
	}

	u.log.Ctx(ctx).Info(fmt.Sprintf("booking confirmation sent for %s", payload.BookingID))
	return nil
}

func toBookingResponse(booking entity.Booking) response.Booking {
	resp := response.Booking{
		ID:        booking.ID.String(),
		ListingID: booking.ListingID.String(),
		UserEmail: booking.UserEmail,
		StartDate: booking.StartDate.Format(dateLayout),
		EndDate:   booking.EndDate.Format(dateLayout),
		CreatedAt: booking.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if booking.UpdatedAt.Valid {
		resp.UpdatedAt = booking.UpdatedAt.Time.Format("2006-01-02 15:04:05")
	}
	return resp
}

func toPaymentResponse(payment entity.Payment) response.Payment {
	resp := response.Payment{
		ID:        payment.ID.String(),
		Status:    payment.Status,
		Amount:    payment.Amount,
		Email:     payment.Email,
		CreatedAt: payment.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if payment.BookingID.Valid {
		resp.BookingID = payment.BookingID.UUID.String()
	}
	if payment.TransactionID.Valid {
		resp.TransactionID = payment.TransactionID.String
	}
	return resp
}
