package notification

import (
	"context"

	"bot9palace/models"
)

// BookingMailer sends the booking confirmation mail. It never fails the
// calling turn: delivery problems are reported as false.
type BookingMailer interface {
	NotifyBooking(ctx context.Context, email string, details models.BookingDetails) bool
}
