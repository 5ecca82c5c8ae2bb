package services

import (
	"context"

	"github.com/leewaller93/has-status-backend/models"
)

// The store interfaces below are the only way services touch persistence.
// The store package implements them against MongoDB; tests substitute
// in-memory fakes. Ids are ObjectID hex strings at this boundary; a
// malformed id yields ErrBadRequest, a missing document ErrNotFound.

type TaskStore interface {
	Insert(ctx context.Context, task models.Task) (models.Task, error)
	ListByClient(ctx context.Context, clientID string) ([]models.Task, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (bool, error)
	// Delete removes one task and returns the removed document.
	Delete(ctx context.Context, id string) (*models.Task, error)
	DeleteByClient(ctx context.Context, clientID string) (int64, error)
	// FindAssigned returns the tasks of a client assigned to the given
	// display name.
	FindAssigned(ctx context.Context, clientID, assignee string) ([]models.Task, error)
	// Reassign repoints assigned_to from one display name to another within
	// a client and returns the number of tasks modified.
	Reassign(ctx context.Context, clientID, from, to string) (int64, error)
	// ReassignAll is the deactivation variant: it matches on assignee alone,
	// across all clients.
	ReassignAll(ctx context.Context, from, to string) (int64, error)
	// SetFields applies one $set to every task of a client, optionally
	// restricted to an explicit id set.
	SetFields(ctx context.Context, clientID string, fields map[string]interface{}, ids []string) (int64, error)
}

type TeamStore interface {
	Insert(ctx context.Context, member models.TeamMember) (models.TeamMember, error)
	ListByClient(ctx context.Context, clientID string) ([]models.TeamMember, error)
	Get(ctx context.Context, id string) (*models.TeamMember, error)
	// GetScoped resolves a member by id within a client.
	GetScoped(ctx context.Context, id, clientID string) (*models.TeamMember, error)
	Delete(ctx context.Context, id string) error
	MarkNotWorking(ctx context.Context, id string) error
}

type ClientStore interface {
	Insert(ctx context.Context, client models.Client) (models.Client, error)
	// Resolve looks a client up by code, trying facCode first and the legacy
	// clientId alias second. This is the single place the fallback chain
	// lives.
	Resolve(ctx context.Context, code string) (*models.Client, error)
	List(ctx context.Context) ([]models.Client, error)
	Update(ctx context.Context, code string, client models.Client) (*models.Client, error)
	Delete(ctx context.Context, code string) error
}

type AuditStore interface {
	Insert(ctx context.Context, entry models.AuditEntry) error
	// List returns entries newest-first; an empty clientID returns all.
	List(ctx context.Context, clientID string) ([]models.AuditEntry, error)
}

type BoardStore interface {
	ProjectName(ctx context.Context) (string, error)
	SetProjectName(ctx context.Context, name string) error
	Whiteboard(ctx context.Context) (map[string]interface{}, error)
	SetWhiteboard(ctx context.Context, state map[string]interface{}) error
}
