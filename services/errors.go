package services

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped to HTTP statuses by the handlers package. Services
// wrap them with context via fmt.Errorf("...: %w", ...).
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrBadRequest = errors.New("bad request")
)

// AssignedTask identifies a task still pointing at a member that a caller is
// trying to delete.
type AssignedTask struct {
	TaskID   string `json:"taskId"`
	TaskName string `json:"taskName"`
	Stage    string `json:"stage"`
}

// ReassignmentRequiredError blocks a team-member deletion while tasks still
// reference the member and no reassignment target was supplied. It is an
// expected control path, not a system failure: it carries everything the
// caller needs to prompt for a resolution target and retry.
type ReassignmentRequiredError struct {
	MemberName    string
	AssignedTasks []AssignedTask
}

func (e *ReassignmentRequiredError) Error() string {
	return fmt.Sprintf("team member %q has %d assigned tasks", e.MemberName, len(e.AssignedTasks))
}
