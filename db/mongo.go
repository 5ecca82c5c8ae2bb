// Package db owns Mongo connection bootstrap, kept separate from route
// registration so tests and tools can construct isolated store instances.
package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/leewaller93/has-status-backend/logging"
	"github.com/leewaller93/has-status-backend/store"
)

// Connect opens a client and verifies the connection with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("database ping failed: %v", err)
	}

	return client, nil
}

// EnsureIndexes creates the unique index on clients.facCode and drops the
// pre-rename unique index on clients.clientId if it is still around. The
// drop is best-effort: a missing index is not an error.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	clients := database.Collection(store.ClientsCollection)

	indexModel := mongo.IndexModel{
		Keys:    bson.M{"facCode": 1},
		Options: options.Index().SetUnique(true),
	}
	if _, err := clients.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create unique index on facCode: %v", err)
	}

	if _, err := clients.Indexes().DropOne(ctx, "clientId_1"); err != nil {
		logging.Logger.Infof("Event ID: LEGACY_INDEX_DROP_SKIPPED, Description: Legacy clientId index not dropped: %v", err)
	}

	return nil
}
