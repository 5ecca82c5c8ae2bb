package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/leewaller93/has-status-backend/models"
)

var facCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{3}$`)

// ClientService is the tenant registry. Codes resolve facCode-first with a
// fallback to the legacy clientId alias; that chain lives in the store's
// Resolve and is never duplicated here.
type ClientService struct {
	clients ClientStore
	team    TeamStore
}

func NewClientService(clients ClientStore, team TeamStore) *ClientService {
	return &ClientService{clients: clients, team: team}
}

// Create registers a new client and provisions its default team member.
// The two inserts are one logical unit but not atomic: if the member insert
// fails the client already exists and the error surfaces as-is.
func (s *ClientService) Create(ctx context.Context, client models.Client) (models.Client, error) {
	if !facCodePattern.MatchString(client.FacCode) {
		return models.Client{}, fmt.Errorf("%w: facCode must be exactly 3 alphanumeric characters", ErrBadRequest)
	}
	if client.Name == "" {
		return models.Client{}, fmt.Errorf("%w: name is required", ErrBadRequest)
	}

	_, err := s.clients.Resolve(ctx, client.FacCode)
	if err == nil {
		return models.Client{}, fmt.Errorf("%w: client code %s", ErrConflict, client.FacCode)
	}
	if !errors.Is(err, ErrNotFound) {
		return models.Client{}, fmt.Errorf("failed to check existing client: %w", err)
	}

	if client.Color == "" {
		client.Color = models.DefaultClientColor
	}
	client.CreatedAt = time.Now()

	created, err := s.clients.Insert(ctx, client)
	if err != nil {
		return models.Client{}, fmt.Errorf("failed to create client: %w", err)
	}

	if _, err := s.team.Insert(ctx, models.TeamMember{
		ClientID: created.FacCode,
		Username: models.DefaultTeamMemberName,
		Org:      models.DefaultOrg,
	}); err != nil {
		return models.Client{}, fmt.Errorf("client created but default team member failed: %w", err)
	}

	return created, nil
}

func (s *ClientService) Get(ctx context.Context, code string) (*models.Client, error) {
	return s.clients.Resolve(ctx, code)
}

func (s *ClientService) List(ctx context.Context) ([]models.Client, error) {
	return s.clients.List(ctx)
}

func (s *ClientService) Update(ctx context.Context, code string, client models.Client) (*models.Client, error) {
	return s.clients.Update(ctx, code, client)
}

func (s *ClientService) Delete(ctx context.Context, code string) error {
	return s.clients.Delete(ctx, code)
}
