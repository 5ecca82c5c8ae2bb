package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/leewaller93/has-status-backend/models"
	"github.com/leewaller93/has-status-backend/services"
)

type ClientStore struct {
	collection *mongo.Collection
}

func NewClientStore(db *mongo.Database) *ClientStore {
	return &ClientStore{collection: db.Collection(ClientsCollection)}
}

func (s *ClientStore) Insert(ctx context.Context, client models.Client) (models.Client, error) {
	client.ID = primitive.NewObjectID()
	result, err := s.collection.InsertOne(ctx, client)
	if mongo.IsDuplicateKeyError(err) {
		return models.Client{}, fmt.Errorf("%w: client code %s", services.ErrConflict, client.FacCode)
	}
	if err != nil {
		return models.Client{}, fmt.Errorf("failed to insert client: %v", err)
	}
	client.ID = result.InsertedID.(primitive.ObjectID)
	return client, nil
}

// Resolve looks a client up by code. Records created before the facCode
// rename only carry the code in the legacy clientId field, so the lookup
// tries facCode first and falls back to the alias.
func (s *ClientStore) Resolve(ctx context.Context, code string) (*models.Client, error) {
	for _, filter := range []bson.M{
		{"facCode": code},
		{"clientId": code},
	} {
		var client models.Client
		err := s.collection.FindOne(ctx, filter).Decode(&client)
		if err == nil {
			return &client, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("failed to retrieve client: %v", err)
		}
	}
	return nil, fmt.Errorf("%w: client", services.ErrNotFound)
}

func (s *ClientStore) List(ctx context.Context) ([]models.Client, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve clients: %v", err)
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("failed to decode clients: %v", err)
	}
	return clients, nil
}

func (s *ClientStore) Update(ctx context.Context, code string, client models.Client) (*models.Client, error) {
	existing, err := s.Resolve(ctx, code)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"name":          client.Name,
		"color":         client.Color,
		"city":          client.City,
		"state":         client.State,
		"contactPerson": client.ContactPerson,
		"phoneNumber":   client.PhoneNumber,
	}}

	var updated models.Client
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = s.collection.FindOneAndUpdate(ctx, bson.M{"_id": existing.ID}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: client", services.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update client: %v", err)
	}
	return &updated, nil
}

func (s *ClientStore) Delete(ctx context.Context, code string) error {
	existing, err := s.Resolve(ctx, code)
	if err != nil {
		return err
	}

	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": existing.ID}); err != nil {
		return fmt.Errorf("failed to delete client: %v", err)
	}
	return nil
}
