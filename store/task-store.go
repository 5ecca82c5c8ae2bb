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

type TaskStore struct {
	collection *mongo.Collection
}

func NewTaskStore(db *mongo.Database) *TaskStore {
	return &TaskStore{collection: db.Collection(TasksCollection)}
}

func (s *TaskStore) Insert(ctx context.Context, task models.Task) (models.Task, error) {
	task.ID = primitive.NewObjectID()
	result, err := s.collection.InsertOne(ctx, task)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to insert task: %v", err)
	}
	task.ID = result.InsertedID.(primitive.ObjectID)
	return task, nil
}

func (s *TaskStore) ListByClient(ctx context.Context, clientID string) ([]models.Task, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tasks: %v", err)
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %v", err)
	}
	return tasks, nil
}

func (s *TaskStore) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (bool, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return false, err
	}

	set := bson.M{}
	for key, value := range fields {
		set[key] = value
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("failed to update task: %v", err)
	}
	return result.MatchedCount > 0, nil
}

func (s *TaskStore) Delete(ctx context.Context, id string) (*models.Task, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var task models.Task
	err = s.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: task", services.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete task: %v", err)
	}
	return &task, nil
}

func (s *TaskStore) DeleteByClient(ctx context.Context, clientID string) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete tasks: %v", err)
	}
	return result.DeletedCount, nil
}

func (s *TaskStore) FindAssigned(ctx context.Context, clientID, assignee string) ([]models.Task, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"clientId": clientID, "assigned_to": assignee})
	if err != nil {
		return nil, fmt.Errorf("failed to find assigned tasks: %v", err)
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode assigned tasks: %v", err)
	}
	return tasks, nil
}

func (s *TaskStore) Reassign(ctx context.Context, clientID, from, to string) (int64, error) {
	result, err := s.collection.UpdateMany(ctx,
		bson.M{"clientId": clientID, "assigned_to": from},
		bson.M{"$set": bson.M{"assigned_to": to}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to reassign tasks: %v", err)
	}
	return result.ModifiedCount, nil
}

func (s *TaskStore) ReassignAll(ctx context.Context, from, to string) (int64, error) {
	result, err := s.collection.UpdateMany(ctx,
		bson.M{"assigned_to": from},
		bson.M{"$set": bson.M{"assigned_to": to}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to reassign tasks: %v", err)
	}
	return result.ModifiedCount, nil
}

func (s *TaskStore) SetFields(ctx context.Context, clientID string, fields map[string]interface{}, ids []string) (int64, error) {
	filter := bson.M{"clientId": clientID}
	if len(ids) > 0 {
		oids := make([]primitive.ObjectID, 0, len(ids))
		for _, id := range ids {
			oid, err := objectIDFromHex(id)
			if err != nil {
				return 0, err
			}
			oids = append(oids, oid)
		}
		filter["_id"] = bson.M{"$in": oids}
	}

	set := bson.M{}
	for key, value := range fields {
		set[key] = value
	}

	result, err := s.collection.UpdateMany(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("failed to update tasks: %v", err)
	}
	return result.ModifiedCount, nil
}
