package hotel

import (
	"context"

	roomRepo "bot9palace/database/repository/room"
	"bot9palace/models"
)

// HotelService exposes the two room operations the assistant can invoke.
type HotelService interface {
	ListAvailableRooms(ctx context.Context) ([]models.Room, error)
	ReserveRoom(ctx context.Context, roomID int, fullName, email string, nights int) (*models.BookingDetails, error)
}

// DefaultHotelService implements HotelService on the Mongo room inventory.
type DefaultHotelService struct {
	Rooms roomRepo.RoomRepository
}
