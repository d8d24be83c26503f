package transcriptRepo

import (
	"context"
	"time"

	"bot9palace/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Append inserts a new transcript entry and returns its ID.
func (r *mongoTranscriptRepo) Append(ctx context.Context, entry models.TranscriptEntry) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, entry)
	if err != nil {
		return "", err
	}
	return entry.ID, nil
}

// Recent returns the most recent `limit` entries for a session, oldest first.
func (r *mongoTranscriptRepo) Recent(ctx context.Context, sessionID string, limit int) ([]models.TranscriptEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"sessionId": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.TranscriptEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	// The query sorts newest-first to apply the limit; callers expect
	// chronological order.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}
