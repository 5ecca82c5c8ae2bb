package services

import (
	"context"
	"fmt"
)

// BoardService fronts the two per-deployment singletons: the project display
// name and the whiteboard canvas state. Both are upsert-on-write, so the
// last writer wins.
type BoardService struct {
	store BoardStore
}

func NewBoardService(store BoardStore) *BoardService {
	return &BoardService{store: store}
}

func (s *BoardService) ProjectName(ctx context.Context) (string, error) {
	return s.store.ProjectName(ctx)
}

func (s *BoardService) SetProjectName(ctx context.Context, name string) error {
	if err := s.store.SetProjectName(ctx, name); err != nil {
		return fmt.Errorf("failed to save project name: %w", err)
	}
	return nil
}

func (s *BoardService) Whiteboard(ctx context.Context) (map[string]interface{}, error) {
	state, err := s.store.Whiteboard(ctx)
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = map[string]interface{}{}
	}
	return state, nil
}

func (s *BoardService) SetWhiteboard(ctx context.Context, state map[string]interface{}) error {
	if err := s.store.SetWhiteboard(ctx, state); err != nil {
		return fmt.Errorf("failed to save whiteboard state: %w", err)
	}
	return nil
}
