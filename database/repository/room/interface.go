package roomRepo

import (
	"context"

	"bot9palace/config"
	"bot9palace/database"
	"bot9palace/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RoomRepository owns the room inventory and the booking records.
type RoomRepository interface {
	ListAvailable(ctx context.Context) ([]models.Room, error)
	// Reserve atomically marks an available room as taken and returns it.
	// Returns ErrRoomUnavailable if the room does not exist or is already
	// taken.
	Reserve(ctx context.Context, roomID int) (*models.Room, error)
	InsertBooking(ctx context.Context, booking models.Booking) error
	EnsureSeedData(ctx context.Context) error
}

type mongoRoomRepo struct {
	rooms    *mongo.Collection
	bookings *mongo.Collection
}

// NewMongoRoomRepo returns a new RoomRepository instance using MongoDB.
func NewMongoRoomRepo() RoomRepository {
	db := database.MongoClient.Database(config.AppConfig.MongoDB)
	return &mongoRoomRepo{
		rooms:    db.Collection("rooms"),
		bookings: db.Collection("bookings"),
	}
}
