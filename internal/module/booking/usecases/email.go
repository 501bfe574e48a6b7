package usecases

import (
	"fmt"

	"travel-service/internal/module/booking/models/entity"
	"travel-service/internal/pkg/mailer"
)

func renderConfirmation(row entity.BookingWithListing) mailer.Message {
	subject := fmt.Sprintf("Booking Confirmation - %s", row.ListingTitle)

	bodyHTML := fmt.Sprintf(`<html>
<body>
	<h2>Booking Confirmation</h2>
	<p>Dear %s,</p>
	<p>Your booking has been confirmed successfully!</p>
	<h3>Booking Details:</h3>
	<ul>
		<li><strong>Property:</strong> %s</li>
		<li><strong>Check-in:</strong> %s</li>
		<li><strong>Check-out:</strong> %s</li>
		<li><strong>Booking ID:</strong> %s</li>
		<li><strong>Price per night:</strong> $%.2f</li>
	</ul>
	<p>Thank you for choosing our service!</p>
</body>
</html>`,
		row.UserEmail,
		row.ListingTitle,
		row.StartDate.Format(dateLayout),
		row.EndDate.Format(dateLayout),
		row.ID,
		row.PricePerNight,
	)

	bodyPlain := fmt.Sprintf(
		"Dear %s,\n\nYour booking has been confirmed successfully!\n\n"+
			"Property: %s\nCheck-in: %s\nCheck-out: %s\nBooking ID: %s\nPrice per night: $%.2f\n\n"+
			"Thank you for choosing our service!",
		row.UserEmail,
		row.ListingTitle,
		row.StartDate.Format(dateLayout),
		row.EndDate.Format(dateLayout),
		row.ID,
		row.PricePerNight,
	)

	return mailer.Message{
		Subject:   subject,
		BodyHTML:  bodyHTML,
		BodyPlain: bodyPlain,
		To:        []string{row.UserEmail},
	}
}
