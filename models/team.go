package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	// DefaultOrg is the organization label applied when an invite omits one.
	DefaultOrg = "PHG"

	// DefaultAssignee is the sentinel assignee tasks fall back to when a
	// member is deactivated without a reassignment target.
	DefaultAssignee = "team"

	// DefaultTeamMemberName is the member provisioned for every new client.
	DefaultTeamMemberName = "PHGHAS"
)

type TeamMember struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID   string             `bson:"clientId" json:"clientId"`
	Username   string             `bson:"username" json:"username"`
	Email      string             `bson:"email" json:"email"`
	Org        string             `bson:"org" json:"org"`
	NotWorking bool               `bson:"not_working" json:"not_working"`
}
