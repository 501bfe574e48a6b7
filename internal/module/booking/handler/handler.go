package handler

import (
	"context"
	"fmt"

	"travel-service/internal/module/booking/models/request"
	"travel-service/internal/module/booking/usecases"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/helpers"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func parseIDParam(ctx *fiber.Ctx, name string) (string, error) {
	id := ctx.Params(name)
	if _, err := uuid.Parse(id); err != nil {
		return "", errors.BadRequest(fmt.Sprintf("invalid %s", name))
	}
	return id, nil
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.UnprocessableEntity(err.Error()))
	}

	resp, err := h.Usecase.CreateBooking(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create booking, a confirmation email is on its way")
}

func (h *BookingHandler) GetBooking(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.GetBooking(ctx.UserContext(), id)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get booking")
}

func (h *BookingHandler) ListBookings(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListBookings(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list bookings")
}

func (h *BookingHandler) UpdateBooking(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.UpdateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.UnprocessableEntity(err.Error()))
	}

	resp, err := h.Usecase.UpdateBooking(ctx.UserContext(), id, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update booking")
}

func (h *BookingHandler) DeleteBooking(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.DeleteBooking(ctx.UserContext(), id); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success delete booking")
}

func (h *BookingHandler) CreatePayment(ctx *fiber.Ctx) error {
	var req request.CreatePayment
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.UnprocessableEntity(err.Error()))
	}

	resp, err := h.Usecase.CreatePayment(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create payment")
}

func (h *BookingHandler) GetPayment(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.GetPayment(ctx.UserContext(), id)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get payment")
}

func (h *BookingHandler) ListPayments(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListPayments(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list payments: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list payments")
}

// ConsumePaymentStatusQueue handles payment processor callbacks relayed over
// AMQP. Messages that cannot be decoded go straight to the poison queue.
func (h *BookingHandler) ConsumePaymentStatusQueue(msg *message.Message) error {
	msg.Ack()

	tx := apm.DefaultTracer.StartTransaction("payment_status_consume", "messaging")
	defer tx.End()
	ctx := apm.ContextWithTransaction(context.Background(), tx)

	var req request.PaymentStatusUpdate
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal message: %v", err))
		h.publishPoisoned(ctx, msg, err)
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate message: %v", err))
		h.publishPoisoned(ctx, msg, err)
		return err
	}

	if err := h.Usecase.ApplyPaymentStatus(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error apply payment status: %v", err))
		h.publishPoisoned(ctx, msg, err)
		return err
	}

	return nil
}

func (h *BookingHandler) publishPoisoned(ctx context.Context, msg *message.Message, cause error) {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: "payment_status",
		ErrorMsg:    cause.Error(),
		Payload:     msg.Payload,
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)
	if err := h.Publish.Publish("poisoned_queue", message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error publish to poison queue: %v", err))
	}
}

// SendBookingConfirmation is the asynq handler for email:booking_confirmation.
func (h *BookingHandler) SendBookingConfirmation(ctx context.Context, t *asynq.Task) error {
	tx := apm.DefaultTracer.StartTransaction("email:booking_confirmation", "task")
	defer tx.End()
	ctx = apm.ContextWithTransaction(ctx, tx)

	var req request.BookingConfirmation
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return fmt.Errorf("undecodable confirmation payload: %w", asynq.SkipRetry)
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return fmt.Errorf("invalid confirmation payload: %w", asynq.SkipRetry)
	}

	return h.Usecase.SendBookingConfirmation(ctx, &req)
}
