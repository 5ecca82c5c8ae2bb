package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/leewaller93/has-status-backend/models"
)

// taskFields is the set of Task fields a client may write through updates.
// Keys outside this set are dropped from partial updates and rejected from
// mass updates.
var taskFields = map[string]bool{
	"phase":       true,
	"goal":        true,
	"need":        true,
	"comments":    true,
	"execute":     true,
	"stage":       true,
	"commentArea": true,
	"assigned_to": true,
}

type TaskService struct {
	tasks TaskStore
	audit *AuditService
}

func NewTaskService(tasks TaskStore, audit *AuditService) *TaskService {
	return &TaskService{tasks: tasks, audit: audit}
}

func (s *TaskService) ListByClient(ctx context.Context, clientID string) ([]models.Task, error) {
	return s.tasks.ListByClient(ctx, clientID)
}

func (s *TaskService) Create(ctx context.Context, task models.Task) (models.Task, error) {
	if task.ClientID == "" {
		task.ClientID = models.DefaultClientID
	}
	created, err := s.tasks.Insert(ctx, task)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

// Update applies a partial update. Unknown keys are silently dropped, the
// way the previous backend's schema handling behaved.
func (s *TaskService) Update(ctx context.Context, id string, fields map[string]interface{}) (bool, error) {
	set := make(map[string]interface{})
	for key, value := range fields {
		if taskFields[key] {
			set[key] = value
		}
	}
	if len(set) == 0 {
		return false, fmt.Errorf("%w: no updatable fields supplied", ErrBadRequest)
	}
	return s.tasks.UpdateFields(ctx, id, set)
}

// Delete removes one task and records the deletion in the audit trail.
func (s *TaskService) Delete(ctx context.Context, id, clientID, performedBy string) error {
	deleted, err := s.tasks.Delete(ctx, id)
	if err != nil {
		return err
	}

	targetName := deleted.Goal
	if targetName == "" {
		targetName = "Unknown Task"
	}
	details := fmt.Sprintf("Task deleted from phase: %s", orUnknown(deleted.Phase))

	return s.audit.Record(ctx, clientID, models.ActionDeleteTask, id, targetName, details, performedBy)
}

// Clear deletes every task of a client and records one audit entry.
func (s *TaskService) Clear(ctx context.Context, clientID, performedBy string) (int64, error) {
	deleted, err := s.tasks.DeleteByClient(ctx, clientID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear tasks: %w", err)
	}

	details := fmt.Sprintf("Removed %d tasks", deleted)
	if err := s.audit.Record(ctx, clientID, models.ActionBulkClear, clientID, "all tasks", details, performedBy); err != nil {
		return 0, err
	}
	return deleted, nil
}

// MassUpdate sets one named field to one value across a client's tasks,
// optionally restricted to an explicit id set, and records one audit entry
// summarizing the write.
func (s *TaskService) MassUpdate(ctx context.Context, clientID, field string, value interface{}, taskIDs []string, performedBy string) (int64, error) {
	if !taskFields[field] {
		return 0, fmt.Errorf("%w: unknown field %q", ErrBadRequest, field)
	}

	modified, err := s.tasks.SetFields(ctx, clientID, map[string]interface{}{field: value}, taskIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to mass update tasks: %w", err)
	}

	details := fmt.Sprintf("Set %s=%v on %d tasks", field, value, modified)
	if err := s.audit.Record(ctx, clientID, models.ActionMassUpdate, clientID, field, details, performedBy); err != nil {
		return 0, err
	}
	return modified, nil
}

// UnifiedFields is the fixed field subset the unified mass update accepts.
type UnifiedFields struct {
	Stage      string `json:"stage"`
	AssignedTo string `json:"assigned_to"`
	Need       string `json:"need"`
}

// UnifiedMassUpdate sets any non-empty subset of stage, assigned_to and need
// in one pass.
func (s *TaskService) UnifiedMassUpdate(ctx context.Context, clientID string, fields UnifiedFields, taskIDs []string, performedBy string) (int64, error) {
	set := make(map[string]interface{})
	if fields.Stage != "" {
		set["stage"] = fields.Stage
	}
	if fields.AssignedTo != "" {
		set["assigned_to"] = fields.AssignedTo
	}
	if fields.Need != "" {
		set["need"] = fields.Need
	}
	if len(set) == 0 {
		return 0, fmt.Errorf("%w: at least one of stage, assigned_to, need is required", ErrBadRequest)
	}

	modified, err := s.tasks.SetFields(ctx, clientID, set, taskIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to mass update tasks: %w", err)
	}

	var parts []string
	for key, value := range set {
		parts = append(parts, fmt.Sprintf("%s=%v", key, value))
	}
	sort.Strings(parts)
	details := fmt.Sprintf("Set %s on %d tasks", strings.Join(parts, ", "), modified)
	if err := s.audit.Record(ctx, clientID, models.ActionMassUpdate, clientID, "unified", details, performedBy); err != nil {
		return 0, err
	}
	return modified, nil
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
