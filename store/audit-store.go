package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/leewaller93/has-status-backend/models"
)

type AuditStore struct {
	collection *mongo.Collection
}

func NewAuditStore(db *mongo.Database) *AuditStore {
	return &AuditStore{collection: db.Collection(AuditCollection)}
}

func (s *AuditStore) Insert(ctx context.Context, entry models.AuditEntry) error {
	if _, err := s.collection.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert audit entry: %v", err)
	}
	return nil
}

func (s *AuditStore) List(ctx context.Context, clientID string) ([]models.AuditEntry, error) {
	filter := bson.M{}
	if clientID != "" {
		filter["clientId"] = clientID
	}

	opts := options.Find().SetSort(bson.M{"timestamp": -1})
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve audit trail: %v", err)
	}
	defer cursor.Close(ctx)

	var entries []models.AuditEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode audit trail: %v", err)
	}
	return entries, nil
}
