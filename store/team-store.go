package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/leewaller93/has-status-backend/models"
	"github.com/leewaller93/has-status-backend/services"
)

type TeamStore struct {
	collection *mongo.Collection
}

func NewTeamStore(db *mongo.Database) *TeamStore {
	return &TeamStore{collection: db.Collection(TeamCollection)}
}

func (s *TeamStore) Insert(ctx context.Context, member models.TeamMember) (models.TeamMember, error) {
	member.ID = primitive.NewObjectID()
	result, err := s.collection.InsertOne(ctx, member)
	if err != nil {
		return models.TeamMember{}, fmt.Errorf("failed to insert team member: %v", err)
	}
	member.ID = result.InsertedID.(primitive.ObjectID)
	return member, nil
}

func (s *TeamStore) ListByClient(ctx context.Context, clientID string) ([]models.TeamMember, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve team: %v", err)
	}
	defer cursor.Close(ctx)

	var members []models.TeamMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("failed to decode team: %v", err)
	}
	return members, nil
}

func (s *TeamStore) Get(ctx context.Context, id string) (*models.TeamMember, error) {
	return s.findOne(ctx, id, nil)
}

func (s *TeamStore) GetScoped(ctx context.Context, id, clientID string) (*models.TeamMember, error) {
	return s.findOne(ctx, id, bson.M{"clientId": clientID})
}

func (s *TeamStore) findOne(ctx context.Context, id string, extra bson.M) (*models.TeamMember, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"_id": oid}
	for key, value := range extra {
		filter[key] = value
	}

	var member models.TeamMember
	err = s.collection.FindOne(ctx, filter).Decode(&member)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: team member", services.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve team member: %v", err)
	}
	return &member, nil
}

func (s *TeamStore) Delete(ctx context.Context, id string) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete team member: %v", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: team member", services.ErrNotFound)
	}
	return nil
}

func (s *TeamStore) MarkNotWorking(ctx context.Context, id string) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"not_working": true}})
	if err != nil {
		return fmt.Errorf("failed to update team member: %v", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: team member", services.ErrNotFound)
	}
	return nil
}
