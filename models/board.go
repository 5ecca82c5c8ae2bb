package models

// SingletonID is the fixed _id shared by the per-deployment singleton
// documents (project name, whiteboard state).
const SingletonID = 1

// Project holds the single display name for the deployment.
type Project struct {
	ID   int    `bson:"_id" json:"-"`
	Name string `bson:"name" json:"name"`
}

// WhiteboardState holds the freeform canvas state as an arbitrary JSON
// document. Writes replace the whole document (last writer wins).
type WhiteboardState struct {
	ID        int                    `bson:"_id" json:"-"`
	StateJSON map[string]interface{} `bson:"state_json" json:"state_json"`
}
