package router

import (
	bookinghandler "travel-service/internal/module/booking/handler"
	listinghandler "travel-service/internal/module/listing/handler"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func Initialize(app *fiber.App, handlerListing *listinghandler.ListingHandler, handlerBooking *bookinghandler.BookingHandler) *fiber.App {

	app.Use(requestid.New())
	app.Use(recover.New())

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")
	v1 := Api.Group("/v1")

	v1.Post("/listings", handlerListing.CreateListing)
	v1.Get("/listings", handlerListing.ListListings)
	v1.Get("/listings/:id", handlerListing.GetListing)
	v1.Put("/listings/:id", handlerListing.UpdateListing)
	v1.Delete("/listings/:id", handlerListing.DeleteListing)

	v1.Post("/listings/:id/reviews", handlerListing.CreateReview)
	v1.Get("/listings/:id/reviews", handlerListing.ListReviews)
	v1.Put("/reviews/:id", handlerListing.UpdateReview)
	v1.Delete("/reviews/:id", handlerListing.DeleteReview)

	v1.Post("/bookings", handlerBooking.CreateBooking)
	v1.Get("/bookings", handlerBooking.ListBookings)
	v1.Get("/bookings/:id", handlerBooking.GetBooking)
	v1.Put("/bookings/:id", handlerBooking.UpdateBooking)
	v1.Delete("/bookings/:id", handlerBooking.DeleteBooking)

	v1.Post("/payments", handlerBooking.CreatePayment)
	v1.Get("/payments", handlerBooking.ListPayments)
	v1.Get("/payments/:id", handlerBooking.GetPayment)

	return app
}
