// Package store implements the service-layer store interfaces against
// MongoDB collections.
package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/leewaller93/has-status-backend/services"
)

// Collection names.
const (
	TasksCollection      = "phases"
	TeamCollection       = "team"
	ClientsCollection    = "clients"
	AuditCollection      = "audit_trail"
	ProjectCollection    = "project"
	WhiteboardCollection = "whiteboard_state"
)

func objectIDFromHex(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid id format", services.ErrBadRequest)
	}
	return oid, nil
}
