package hotel

import (
	"context"
	"errors"
	"fmt"
	"time"

	roomRepo "bot9palace/database/repository/room"
	"bot9palace/models"

	"github.com/google/uuid"
)

// ListAvailableRooms returns the rooms currently open for booking.
func (s *DefaultHotelService) ListAvailableRooms(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.Rooms.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available rooms: %w", err)
	}
	return rooms, nil
}

// ReserveRoom takes a room out of the inventory and records the booking.
// An already-taken room yields an UnavailableError; the reservation itself
// is atomic, so a lost race never double-books.
func (s *DefaultHotelService) ReserveRoom(ctx context.Context, roomID int, fullName, email string, nights int) (*models.BookingDetails, error) {
	if nights <= 0 {
		return nil, fmt.Errorf("reserve room: nights must be positive, got %d", nights)
	}

	room, err := s.Rooms.Reserve(ctx, roomID)
	if errors.Is(err, roomRepo.ErrRoomUnavailable) {
		return nil, NewUnavailableError(roomID)
	}
	if err != nil {
		return nil, fmt.Errorf("reserve room %d: %w", roomID, err)
	}

	booking := models.Booking{
		ID:        uuid.New().String(),
		RoomID:    room.ID,
		RoomType:  room.Type,
		FullName:  fullName,
		Email:     email,
		Nights:    nights,
		Total:     room.Price * float64(nights),
		CreatedAt: time.Now(),
	}
	if err := s.Rooms.InsertBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("record booking for room %d: %w", roomID, err)
	}

	return &models.BookingDetails{
		Room:      room.Type,
		Price:     room.Price,
		Nights:    nights,
		Total:     booking.Total,
		BookingID: booking.ID,
	}, nil
}
