package hotel

import (
	"context"
	"errors"
	"testing"

	roomRepo "bot9palace/database/repository/room"
	"bot9palace/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoomRepo struct {
	rooms    map[int]models.Room
	bookings []models.Booking
}

func (f *fakeRoomRepo) ListAvailable(_ context.Context) ([]models.Room, error) {
	var out []models.Room
	for _, r := range f.rooms {
		if r.Available {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) Reserve(_ context.Context, roomID int) (*models.Room, error) {
	room, ok := f.rooms[roomID]
	if !ok || !room.Available {
		return nil, roomRepo.ErrRoomUnavailable
	}
	room.Available = false
	f.rooms[roomID] = room
	return &room, nil
}

func (f *fakeRoomRepo) InsertBooking(_ context.Context, booking models.Booking) error {
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeRoomRepo) EnsureSeedData(_ context.Context) error { return nil }

func newFakeRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: map[int]models.Room{
		2: {ID: 2, Type: "Deluxe", Price: 200, Available: true},
	}}
}

func TestReserveRoomSuccess(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultHotelService{Rooms: repo}

	details, err := svc.ReserveRoom(context.Background(), 2, "Jane Doe", "jane@x.com", 3)
	require.NoError(t, err)
	assert.Equal(t, "Deluxe", details.Room)
	assert.Equal(t, 200.0, details.Price)
	assert.Equal(t, 3, details.Nights)
	assert.Equal(t, 600.0, details.Total)
	assert.NotEmpty(t, details.BookingID)

	require.Len(t, repo.bookings, 1)
	assert.Equal(t, details.BookingID, repo.bookings[0].ID)
	assert.Equal(t, "Jane Doe", repo.bookings[0].FullName)
}

func TestReserveRoomBecomesUnavailable(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultHotelService{Rooms: repo}

	_, err := svc.ReserveRoom(context.Background(), 2, "Jane Doe", "jane@x.com", 3)
	require.NoError(t, err)

	rooms, err := svc.ListAvailableRooms(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rooms)

	_, err = svc.ReserveRoom(context.Background(), 2, "John Roe", "john@x.com", 1)
	var unavailable *UnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Equal(t, 2, unavailable.RoomID)
}

func TestReserveRoomUnknownRoom(t *testing.T) {
	svc := &DefaultHotelService{Rooms: newFakeRepo()}

	_, err := svc.ReserveRoom(context.Background(), 99, "Jane Doe", "jane@x.com", 1)
	var unavailable *UnavailableError
	require.True(t, errors.As(err, &unavailable))
}

func TestReserveRoomRejectsNonPositiveNights(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultHotelService{Rooms: repo}

	_, err := svc.ReserveRoom(context.Background(), 2, "Jane Doe", "jane@x.com", 0)
	require.Error(t, err)
	// The room must not have been taken out of the inventory.
	assert.True(t, repo.rooms[2].Available)
}
