package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DefaultClientID is the tenant used when a request carries no clientId.
const DefaultClientID = "demo"

// Workflow stage labels used by the status board.
const (
	StageOutstanding = "Outstanding"
	StageReview      = "Review/Discussion"
	StageInProcess   = "In Process"
	StageResolved    = "Resolved"
)

// Task is a single tracked work item ("phase" in the API), partitioned by
// clientId. The assigned_to field carries a team member's display name, not
// an id; consistency with the team collection is maintained by the
// reassignment logic in the team service.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID    string             `bson:"clientId" json:"clientId"`
	Phase       string             `bson:"phase" json:"phase"`
	Goal        string             `bson:"goal" json:"goal"`
	Need        string             `bson:"need" json:"need"`
	Comments    string             `bson:"comments" json:"comments"`
	Execute     string             `bson:"execute" json:"execute"`
	Stage       string             `bson:"stage" json:"stage"`
	CommentArea string             `bson:"commentArea" json:"commentArea"`
	AssignedTo  string             `bson:"assigned_to" json:"assigned_to"`
}
