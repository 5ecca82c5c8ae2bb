package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultClientColor is the dashboard color assigned when none is supplied.
const DefaultClientColor = "#2563eb"

// Client is a tenant record. FacCode is the 3-character code used as the
// clientId partition key everywhere else. LegacyClientID holds the same code
// for records written before the field rename; lookups fall back to it.
type Client struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FacCode        string             `bson:"facCode" json:"facCode"`
	LegacyClientID string             `bson:"clientId,omitempty" json:"clientId,omitempty"`
	Name           string             `bson:"name" json:"name"`
	Color          string             `bson:"color" json:"color"`
	City           string             `bson:"city" json:"city"`
	State          string             `bson:"state" json:"state"`
	ContactPerson  string             `bson:"contactPerson" json:"contactPerson"`
	PhoneNumber    string             `bson:"phoneNumber" json:"phoneNumber"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
