package transcriptRepo

import (
	"context"

	"bot9palace/config"
	"bot9palace/database"
	"bot9palace/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TranscriptRepository is the append-only chat history log, grouped by
// session id.
type TranscriptRepository interface {
	Append(ctx context.Context, entry models.TranscriptEntry) (string, error)
	Recent(ctx context.Context, sessionID string, limit int) ([]models.TranscriptEntry, error)
}

type mongoTranscriptRepo struct {
	coll *mongo.Collection
}

// NewMongoTranscriptRepo returns a new TranscriptRepository instance using MongoDB.
func NewMongoTranscriptRepo() TranscriptRepository {
	db := database.MongoClient.Database(config.AppConfig.MongoDB)
	return &mongoTranscriptRepo{
		coll: db.Collection("transcripts"),
	}
}
