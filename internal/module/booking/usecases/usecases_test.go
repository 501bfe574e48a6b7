package usecases_test

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"travel-service/internal/module/booking/mocks"
	"travel-service/internal/module/booking/models/entity"
	"travel-service/internal/module/booking/models/request"
	"travel-service/internal/module/booking/usecases"
	"travel-service/internal/pkg/errors"
	log_internal "travel-service/internal/pkg/log"
	"travel-service/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
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

type mockEnqueuer struct {
	mu    sync.Mutex
	tasks []*asynq.Task
	err   error
}

func (m *mockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.tasks = append(m.tasks, task)
	return &asynq.TaskInfo{ID: uuid.NewString(), Type: task.Type()}, nil
}

type mockLocker struct{}

func (m *mockLocker) LockListing(ctx context.Context, listingID string) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}

type mockMailer struct {
	sent []mailer.Message
	err  error
}

func (m *mockMailer) Send(ctx context.Context, msg mailer.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func newUsecase(repo *mocks.Repositories, publisher *mockPublisher, enqueuer *mockEnqueuer, mail *mockMailer) usecases.Usecase {
	logger := log_internal.Setup()
	return usecases.New(repo, logger, publisher, enqueuer, &mockLocker{}, mail, 5)
}

func availabilityWindow() (time.Time, time.Time) {
	from, _ := time.Parse("2006-01-02", "2026-09-01")
	to, _ := time.Parse("2006-01-02", "2026-10-01")
	return from, to
}

func TestCreateBooking(t *testing.T) {
	listingID := uuid.New()
	from, to := availabilityWindow()

	testCases := []struct {
		name          string
		payload       request.CreateBooking
		setupRepo     func(repo *mocks.Repositories)
		expectedError error
		expectedTasks int
	}{
		{
			name: "booking created and exactly one confirmation task enqueued",
			payload: request.CreateBooking{
				ListingID: listingID.String(),
				UserEmail: "test@example.com",
				StartDate: "2026-09-08",
				EndDate:   "2026-09-11",
			},
			setupRepo: func(repo *mocks.Repositories) {
				repo.On("ListingAvailability", mock.Anything, listingID.String()).Return(from, to, nil)
				repo.On("InsertBooking", mock.Anything, mock.AnythingOfType("entity.Booking")).
					Return(func(ctx context.Context, b entity.Booking) entity.Booking {
						b.ID = uuid.New()
						b.CreatedAt = time.Now().UTC()
						return b
					}, nil)
			},
			expectedTasks: 1,
		},
		{
			name: "inverted date range is rejected",
			payload: request.CreateBooking{
				ListingID: listingID.String(),
				UserEmail: "test@example.com",
				StartDate: "2026-09-11",
				EndDate:   "2026-09-08",
			},
			setupRepo:     func(repo *mocks.Repositories) {},
			expectedError: errors.UnprocessableEntity("start_date must be before end_date"),
		},
		{
			name: "dates outside availability window are rejected",
			payload: request.CreateBooking{
				ListingID: listingID.String(),
				UserEmail: "test@example.com",
				StartDate: "2026-10-10",
				EndDate:   "2026-10-12",
			},
			setupRepo: func(repo *mocks.Repositories) {
				repo.On("ListingAvailability", mock.Anything, listingID.String()).Return(from, to, nil)
			},
			expectedError: errors.UnprocessableEntity("booking dates fall outside the listing availability window"),
		},
		{
			name: "missing listing surfaces as conflict and nothing is enqueued",
			payload: request.CreateBooking{
				ListingID: listingID.String(),
				UserEmail: "test@example.com",
				StartDate: "2026-09-08",
				EndDate:   "2026-09-11",
			},
			setupRepo: func(repo *mocks.Repositories) {
				repo.On("ListingAvailability", mock.Anything, listingID.String()).
					Return(time.Time{}, time.Time{}, errors.Conflict("listing does not exist"))
			},
			expectedError: errors.Conflict("listing does not exist"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mocks.Repositories)
			tc.setupRepo(repo)
			publisher := newMockPublisher()
			enqueuer := &mockEnqueuer{}
			uc := newUsecase(repo, publisher, enqueuer, &mockMailer{})

			resp, err := uc.CreateBooking(context.Background(), &tc.payload)

			if tc.expectedError != nil {
				assert.EqualError(t, err, tc.expectedError.Error())
				assert.Empty(t, enqueuer.tasks)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, resp.ID)
			assert.Len(t, enqueuer.tasks, 1)

			var taskPayload request.BookingConfirmation
			assert.NoError(t, json.Unmarshal(enqueuer.tasks[0].Payload(), &taskPayload))
			assert.Equal(t, resp.ID, taskPayload.BookingID)

			assert.Len(t, publisher.messages[usecases.TopicBookingCreated], 1)
		})
	}
}

func TestCreateBookingEnqueueFailureDoesNotFailRequest(t *testing.T) {
	listingID := uuid.New()
	from, to := availabilityWindow()

	repo := new(mocks.Repositories)
	repo.On("ListingAvailability", mock.Anything, listingID.String()).Return(from, to, nil)
	repo.On("InsertBooking", mock.Anything, mock.AnythingOfType("entity.Booking")).
		Return(func(ctx context.Context, b entity.Booking) entity.Booking {
			b.ID = uuid.New()
			return b
		}, nil)

	enqueuer := &mockEnqueuer{err: stderrors.New("redis down")}
	uc := newUsecase(repo, newMockPublisher(), enqueuer, &mockMailer{})

	resp, err := uc.CreateBooking(context.Background(), &request.CreateBooking{
		ListingID: listingID.String(),
		UserEmail: "test@example.com",
		StartDate: "2026-09-08",
		EndDate:   "2026-09-11",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
}

func confirmationRow() entity.BookingWithListing {
	start, _ := time.Parse("2006-01-02", "2026-09-08")
	end, _ := time.Parse("2006-01-02", "2026-09-11")
	return entity.BookingWithListing{
		Booking: entity.Booking{
			ID:        uuid.New(),
			ListingID: uuid.New(),
			UserEmail: "test@example.com",
			StartDate: start,
			EndDate:   end,
			CreatedAt: time.Now().UTC(),
		},
		ListingTitle:  "Test Beach House",
		PricePerNight: 150.00,
	}
}

func TestSendBookingConfirmation(t *testing.T) {
	row := confirmationRow()

	t.Run("renders and sends the confirmation", func(t *testing.T) {
		repo := new(mocks.Repositories)
		repo.On("FindBookingWithListing", mock.Anything, row.ID.String()).Return(row, nil)

		mail := &mockMailer{}
		uc := newUsecase(repo, newMockPublisher(), &mockEnqueuer{}, mail)

		err := uc.SendBookingConfirmation(context.Background(), &request.BookingConfirmation{BookingID: row.ID.String()})

		assert.NoError(t, err)
		assert.Len(t, mail.sent, 1)
		assert.Equal(t, "Booking Confirmation - Test Beach House", mail.sent[0].Subject)
		assert.Equal(t, []string{"test@example.com"}, mail.sent[0].To)
		assert.Contains(t, mail.sent[0].BodyHTML, row.ID.String())
		assert.Contains(t, mail.sent[0].BodyPlain, "Check-in: 2026-09-08")
	})

	t.Run("vanished booking terminates without retry", func(t *testing.T) {
		repo := new(mocks.Repositories)
		repo.On("FindBookingWithListing", mock.Anything, row.ID.String()).
			Return(entity.BookingWithListing{}, errors.NotFound("booking not found"))

		mail := &mockMailer{}
		uc := newUsecase(repo, newMockPublisher(), &mockEnqueuer{}, mail)

		err := uc.SendBookingConfirmation(context.Background(), &request.BookingConfirmation{BookingID: row.ID.String()})

		assert.Error(t, err)
		assert.True(t, stderrors.Is(err, asynq.SkipRetry))
		assert.Empty(t, mail.sent)
	})

	t.Run("transient delivery failure is retryable", func(t *testing.T) {
		repo := new(mocks.Repositories)
		repo.On("FindBookingWithListing", mock.Anything, row.ID.String()).Return(row, nil)

		mail := &mockMailer{err: errors.TransientDelivery(503, nil)}
		uc := newUsecase(repo, newMockPublisher(), &mockEnqueuer{}, mail)

		err := uc.SendBookingConfirmation(context.Background(), &request.BookingConfirmation{BookingID: row.ID.String()})

		assert.Error(t, err)
		assert.False(t, stderrors.Is(err, asynq.SkipRetry))
	})

	t.Run("permanent delivery failure terminates without retry", func(t *testing.T) {
		repo := new(mocks.Repositories)
		repo.On("FindBookingWithListing", mock.Anything, row.ID.String()).Return(row, nil)

		mail := &mockMailer{err: errors.PermanentDelivery(422, nil)}
		uc := newUsecase(repo, newMockPublisher(), &mockEnqueuer{}, mail)

		err := uc.SendBookingConfirmation(context.Background(), &request.BookingConfirmation{BookingID: row.ID.String()})

		assert.Error(t, err)
		assert.True(t, stderrors.Is(err, asynq.SkipRetry))
	})
}

func TestConcurrentBookingsEachEnqueueOwnTask(t *testing.T) {
	from, to := availabilityWindow()

	repo := new(mocks.Repositories)
	repo.On("ListingAvailability", mock.Anything, mock.AnythingOfType("string")).Return(from, to, nil)
	repo.On("InsertBooking", mock.Anything, mock.AnythingOfType("entity.Booking")).
		Return(func(ctx context.Context, b entity.Booking) entity.Booking {
			b.ID = uuid.New()
			return b
		}, nil)

	enqueuer := &mockEnqueuer{}
	uc := newUsecase(repo, newMockPublisher(), enqueuer, &mockMailer{})

	const n = 100
	var wg sync.WaitGroup
	bookingIDs := make([]string, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := uc.CreateBooking(context.Background(), &request.CreateBooking{
				ListingID: uuid.NewString(),
				UserEmail: "test@example.com",
				StartDate: "2026-09-08",
				EndDate:   "2026-09-11",
			})
			assert.NoError(t, err)
			bookingIDs[i] = resp.ID
		}(i)
	}
	wg.Wait()

	assert.Len(t, enqueuer.tasks, n)

	seen := map[string]bool{}
	for _, task := range enqueuer.tasks {
		var payload request.BookingConfirmation
		assert.NoError(t, json.Unmarshal(task.Payload(), &payload))
		assert.False(t, seen[payload.BookingID], "duplicate task for booking %s", payload.BookingID)
		seen[payload.BookingID] = true
	}
	for _, id := range bookingIDs {
		assert.True(t, seen[id])
	}
}

func TestApplyPaymentStatus(t *testing.T) {
	paymentID := uuid.NewString()

	t.Run("missing payment is dropped", func(t *testing.T) {
		repo := new(mocks.Repositories)
		repo.On("UpdatePaymentStatus", mock.Anything, paymentID, entity.PaymentStatusCompleted, "tx-1").
			Return(entity.Payment{}, errors.NotFound("payment not found"))

		uc := newUsecase(repo, newMockPublisher(), &mockEnqueuer{}, &mockMailer{})

		err := uc.ApplyPaymentStatus(context.Background(), &request.PaymentStatusUpdate{
			PaymentID:     paymentID,
			TransactionID: "tx-1",
			Status:        entity.PaymentStatusCompleted,
		})
		assert.NoError(t, err)
	})

	t.Run("terminal payment redelivery is dropped", func(t *testing.T) {
		repo := new(mocks.Repositories)
		repo.On("UpdatePaymentStatus", mock.Anything, paymentID, entity.PaymentStatusFailed, "").
			Return(entity.Payment{}, errors.Conflict("payment already Completed"))

		uc := newUsecase(repo, newMockPublisher(), &mockEnqueuer{}, &mockMailer{})

		err := uc.ApplyPaymentStatus(context.Background(), &request.PaymentStatusUpdate{
			PaymentID: paymentID,
			Status:    entity.PaymentStatusFailed,
		})
		assert.NoError(t, err)
	})
}

func TestCreatePayment(t *testing.T) {
	bookingID := uuid.New()

	repo := new(mocks.Repositories)
	repo.On("InsertPayment", mock.Anything, mock.AnythingOfType("entity.Payment")).
		Return(func(ctx context.Context, p entity.Payment) entity.Payment {
			p.ID = uuid.New()
			p.CreatedAt = time.Now().UTC()
			return p
		}, nil)

	uc := newUsecase(repo, newMockPublisher(), &mockEnqueuer{}, &mockMailer{})

	resp, err := uc.CreatePayment(context.Background(), &request.CreatePayment{
		BookingID: bookingID.String(),
		Amount:    450.00,
		Email:     "test@example.com",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, entity.PaymentStatusPending, resp.Status)
	assert.Equal(t, bookingID.String(), resp.BookingID)
}
