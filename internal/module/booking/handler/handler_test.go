package handler_test

import (
	"context"
	stderrors "errors"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"travel-service/internal/module/booking/handler"
	"travel-service/internal/module/booking/mocks"
	"travel-service/internal/module/booking/models/request"
	"travel-service/internal/module/booking/models/response"
	"travel-service/internal/pkg/errors"
	log_internal "travel-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPublisher struct {
	mu       sync.Mutex
	messages map[string][]*message.Message
}

func newMockPublisher() *mockPublisher {
	return &mockPublisher{messages: map[string][]*message.Message{}}
}

func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages[topic] = append(m.messages[topic], messages...)
	return nil
}

func (m *mockPublisher) Close() error { return nil }

func setup(t *testing.T) (*fiber.App, *mocks.Usecase, *handler.BookingHandler, *mockPublisher) {
	uc := mocks.NewUsecase(t)
	publisher := newMockPublisher()
	h := &handler.BookingHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   uc,
		Publish:   publisher,
	}

	app := fiber.New()
	app.Post("/api/v1/bookings", h.CreateBooking)
	app.Get("/api/v1/bookings/:id", h.GetBooking)
	app.Delete("/api/v1/bookings/:id", h.DeleteBooking)
	app.Post("/api/v1/payments", h.CreatePayment)

	return app, uc, h, publisher
}

func TestCreateBookingHandler(t *testing.T) {
	listingID := uuid.NewString()
	bookingID := uuid.NewString()

	t.Run("valid payload returns 201 with the booking", func(t *testing.T) {
		app, uc, _, _ := setup(t)

		uc.On("CreateBooking", mock.Anything, mock.AnythingOfType("*request.CreateBooking")).
			Return(response.Booking{
				ID:        bookingID,
				ListingID: listingID,
				UserEmail: "test@example.com",
				StartDate: "2026-09-08",
				EndDate:   "2026-09-11",
			}, nil)

		body := `{"listing_id":"` + listingID + `","user_email":"test@example.com","start_date":"2026-09-08","end_date":"2026-09-11"}`
		req := httptest.NewRequest("POST", "/api/v1/bookings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		raw, _ := io.ReadAll(resp.Body)
		var envelope struct {
			Message string           `json:"message"`
			Data    response.Booking `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(raw, &envelope))
		assert.Equal(t, bookingID, envelope.Data.ID)
		assert.Contains(t, envelope.Message, "confirmation email")
	})

	t.Run("malformed listing id returns 422", func(t *testing.T) {
		app, _, _, _ := setup(t)

		body := `{"listing_id":"not-a-uuid","user_email":"test@example.com","start_date":"2026-09-08","end_date":"2026-09-11"}`
		req := httptest.NewRequest("POST", "/api/v1/bookings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("missing fields return 422", func(t *testing.T) {
		app, _, _, _ := setup(t)

		req := httptest.NewRequest("POST", "/api/v1/bookings", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("usecase conflict surfaces as 409", func(t *testing.T) {
		app, uc, _, _ := setup(t)

		uc.On("CreateBooking", mock.Anything, mock.AnythingOfType("*request.CreateBooking")).
			Return(response.Booking{}, errors.Conflict("listing does not exist"))

		body := `{"listing_id":"` + listingID + `","user_email":"test@example.com","start_date":"2026-09-08","end_date":"2026-09-11"}`
		req := httptest.NewRequest("POST", "/api/v1/bookings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

		raw, _ := io.ReadAll(resp.Body)
		var envelope struct {
			Error string `json:"error"`
		}
		assert.NoError(t, json.Unmarshal(raw, &envelope))
		assert.Equal(t, "listing does not exist", envelope.Error)
	})
}

func TestGetBookingHandler(t *testing.T) {
	bookingID := uuid.NewString()

	t.Run("returns the booking", func(t *testing.T) {
		app, uc, _, _ := setup(t)

		uc.On("GetBooking", mock.Anything, bookingID).
			Return(response.Booking{ID: bookingID}, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/bookings/"+bookingID, nil))

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing booking returns 404", func(t *testing.T) {
		app, uc, _, _ := setup(t)

		uc.On("GetBooking", mock.Anything, bookingID).
			Return(response.Booking{}, errors.NotFound("booking not found"))

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/bookings/"+bookingID, nil))

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("malformed id returns 400 without touching the usecase", func(t *testing.T) {
		app, _, _, _ := setup(t)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/bookings/not-a-uuid", nil))

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestCreatePaymentHandler(t *testing.T) {
	app, uc, _, _ := setup(t)

	uc.On("CreatePayment", mock.Anything, mock.AnythingOfType("*request.CreatePayment")).
		Return(response.Payment{ID: uuid.NewString(), Status: "Pending", Amount: 450.00}, nil)

	body := `{"amount":450.00,"email":"test@example.com"}`
	req := httptest.NewRequest("POST", "/api/v1/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestSendBookingConfirmationTask(t *testing.T) {
	bookingID := uuid.NewString()

	t.Run("delegates a valid payload", func(t *testing.T) {
		_, uc, h, _ := setup(t)

		uc.On("SendBookingConfirmation", mock.Anything, &request.BookingConfirmation{BookingID: bookingID}).
			Return(nil)

		payload, _ := json.Marshal(request.BookingConfirmation{BookingID: bookingID})
		err := h.SendBookingConfirmation(context.Background(), asynq.NewTask("email:booking_confirmation", payload))

		assert.NoError(t, err)
	})

	t.Run("undecodable payload terminates without retry", func(t *testing.T) {
		_, _, h, _ := setup(t)

		err := h.SendBookingConfirmation(context.Background(), asynq.NewTask("email:booking_confirmation", []byte("not json")))

		assert.Error(t, err)
		assert.True(t, stderrors.Is(err, asynq.SkipRetry))
	})

	t.Run("payload without a booking id terminates without retry", func(t *testing.T) {
		_, _, h, _ := setup(t)

		err := h.SendBookingConfirmation(context.Background(), asynq.NewTask("email:booking_confirmation", []byte("{}")))

		assert.Error(t, err)
		assert.True(t, stderrors.Is(err, asynq.SkipRetry))
	})
}

func TestConsumePaymentStatusQueue(t *testing.T) {
	paymentID := uuid.NewString()

	t.Run("applies a valid update", func(t *testing.T) {
		_, uc, h, publisher := setup(t)

		uc.On("ApplyPaymentStatus", mock.Anything, mock.AnythingOfType("*request.PaymentStatusUpdate")).
			Return(nil)

		payload, _ := json.Marshal(request.PaymentStatusUpdate{
			PaymentID:     paymentID,
			TransactionID: "tx-1",
			Status:        "Completed",
		})

		err := h.ConsumePaymentStatusQueue(message.NewMessage(watermill.NewUUID(), payload))

		assert.NoError(t, err)
		assert.Empty(t, publisher.messages["poisoned_queue"])
	})

	t.Run("undecodable message goes to the poison queue", func(t *testing.T) {
		_, _, h, publisher := setup(t)

		err := h.ConsumePaymentStatusQueue(message.NewMessage(watermill.NewUUID(), []byte("not json")))

		assert.Error(t, err)
		assert.Len(t, publisher.messages["poisoned_queue"], 1)

		var poisoned request.PoisonedQueue
		assert.NoError(t, json.Unmarshal(publisher.messages["poisoned_queue"][0].Payload, &poisoned))
		assert.Equal(t, "payment_status", poisoned.TopicTarget)
	})

	t.Run("unknown status goes to the poison queue", func(t *testing.T) {
		_, _, h, publisher := setup(t)

		payload, _ := json.Marshal(request.PaymentStatusUpdate{
			PaymentID: paymentID,
			Status:    "Refunded",
		})

		err := h.ConsumePaymentStatusQueue(message.NewMessage(watermill.NewUUID(), payload))

		assert.Error(t, err)
		assert.Len(t, publisher.messages["poisoned_queue"], 1)
	})
}
