package roomRepo

import (
	"context"

	"bot9palace/models"

	"go.mongodb.org/mongo-driver/bson"
)

var defaultRooms = []models.Room{
	{ID: 1, Type: "Standard", Price: 100, Description: "Cozy standard room with a queen bed, ideal for solo travellers.", Available: true},
	{ID: 2, Type: "Deluxe", Price: 200, Description: "Spacious deluxe room with a king bed and city view.", Available: true},
	{ID: 3, Type: "Suite", Price: 350, Description: "Suite with a separate living area and complimentary breakfast.", Available: true},
	{ID: 4, Type: "Presidential", Price: 500, Description: "Top-floor presidential suite with panoramic views and butler service.", Available: true},
}

// EnsureSeedData populates the room inventory on first startup. An already
// populated collection is left untouched.
func (r *mongoRoomRepo) EnsureSeedData(ctx context.Context) error {
	count, err := r.rooms.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(defaultRooms))
	for _, room := range defaultRooms {
		docs = append(docs, room)
	}
	_, err = r.rooms.InsertMany(ctx, docs)
	return err
}
