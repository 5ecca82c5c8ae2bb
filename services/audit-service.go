package services

import (
	"context"
	"fmt"
	"time"

	"github.com/leewaller93/has-status-backend/models"
)

// AuditService appends and lists audit trail entries. Record is called
// synchronously after a mutation succeeds; a failed audit write surfaces as
// an error to the caller even though the mutation has already committed.
type AuditService struct {
	store AuditStore
}

func NewAuditService(store AuditStore) *AuditService {
	return &AuditService{store: store}
}

// Record appends one immutable entry with a server-assigned timestamp.
// performedBy is an unverified free-text actor; it defaults to "admin".
func (s *AuditService) Record(ctx context.Context, clientID, action, targetID, targetName, details, performedBy string) error {
	if performedBy == "" {
		performedBy = "admin"
	}

	entry := models.AuditEntry{
		ClientID:    clientID,
		Action:      action,
		TargetID:    targetID,
		TargetName:  targetName,
		Details:     details,
		PerformedBy: performedBy,
		Timestamp:   time.Now(),
	}

	if err := s.store.Insert(ctx, entry); err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}
	return nil
}

// List returns entries newest-first, optionally filtered by clientId.
func (s *AuditService) List(ctx context.Context, clientID string) ([]models.AuditEntry, error) {
	return s.store.List(ctx, clientID)
}
