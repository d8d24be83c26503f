package roomRepo

import (
	"context"
	"errors"
	"time"

	"bot9palace/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrRoomUnavailable signals that the requested room is missing or already
// reserved. It is a domain outcome, not a system failure.
var ErrRoomUnavailable = errors.New("room unavailable")

// ListAvailable returns all rooms still open for booking, cheapest first.
func (r *mongoRoomRepo) ListAvailable(ctx context.Context) ([]models.Room, error) {
	opts := options.Find().SetSort(bson.D{{Key: "price", Value: 1}})
	cursor, err := r.rooms.Find(ctx, bson.M{"available": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// Reserve flips an available room to taken in a single FindOneAndUpdate so
// two concurrent bookings of the same room cannot both succeed.
func (r *mongoRoomRepo) Reserve(ctx context.Context, roomID int) (*models.Room, error) {
	var room models.Room
	err := r.rooms.FindOneAndUpdate(ctx,
		bson.M{"id": roomID, "available": true},
		bson.M{"$set": bson.M{"available": false}},
	).Decode(&room)
	if err == mongo.ErrNoDocuments {
		return nil, ErrRoomUnavailable
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// InsertBooking records a confirmed reservation.
func (r *mongoRoomRepo) InsertBooking(ctx context.Context, booking models.Booking) error {
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	_, err := r.bookings.InsertOne(ctx, booking)
	return err
}
