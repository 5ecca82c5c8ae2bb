package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit action kinds.
const (
	ActionDeleteTask       = "delete_task"
	ActionDeleteTeamMember = "delete_team_member"
	ActionReassignTasks    = "reassign_tasks"
	ActionMassUpdate       = "mass_update"
	ActionBulkClear        = "bulk_clear"
)

// AuditEntry records a destructive or bulk-mutating action. Entries are
// append-only; nothing in the system updates or deletes them.
type AuditEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID    string             `bson:"clientId" json:"clientId"`
	Action      string             `bson:"action" json:"action"`
	TargetID    string             `bson:"targetId" json:"targetId"`
	TargetName  string             `bson:"targetName" json:"targetName"`
	Details     string             `bson:"details" json:"details"`
	PerformedBy string             `bson:"performedBy" json:"performedBy"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}
