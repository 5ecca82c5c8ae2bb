package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/leewaller93/has-status-backend/models"
)

// BoardStore persists the two fixed-id singleton documents.
type BoardStore struct {
	project    *mongo.Collection
	whiteboard *mongo.Collection
}

func NewBoardStore(db *mongo.Database) *BoardStore {
	return &BoardStore{
		project:    db.Collection(ProjectCollection),
		whiteboard: db.Collection(WhiteboardCollection),
	}
}

func (s *BoardStore) ProjectName(ctx context.Context) (string, error) {
	var project models.Project
	err := s.project.FindOne(ctx, bson.M{"_id": models.SingletonID}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to retrieve project: %v", err)
	}
	return project.Name, nil
}

func (s *BoardStore) SetProjectName(ctx context.Context, name string) error {
	opts := options.Update().SetUpsert(true)
	_, err := s.project.UpdateOne(ctx,
		bson.M{"_id": models.SingletonID},
		bson.M{"$set": bson.M{"name": name}},
		opts,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert project name: %v", err)
	}
	return nil
}

func (s *BoardStore) Whiteboard(ctx context.Context) (map[string]interface{}, error) {
	var state models.WhiteboardState
	err := s.whiteboard.FindOne(ctx, bson.M{"_id": models.SingletonID}).Decode(&state)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return map[string]interface{}{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve whiteboard state: %v", err)
	}
	return state.StateJSON, nil
}

func (s *BoardStore) SetWhiteboard(ctx context.Context, state map[string]interface{}) error {
	opts := options.Update().SetUpsert(true)
	_, err := s.whiteboard.UpdateOne(ctx,
		bson.M{"_id": models.SingletonID},
		bson.M{"$set": bson.M{"state_json": state}},
		opts,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert whiteboard state: %v", err)
	}
	return nil
}
