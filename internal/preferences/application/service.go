// Package application exposes the preferences service used by the CLI and
// the scheduling handlers.
package application

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/apexhour/internal/preferences/domain"
)

// Service provides read/update access to the user settings.
type Service struct {
	repo domain.Repository
}

// NewService creates a new preferences service.
func NewService(repo domain.Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the current settings, falling back to defaults when nothing
// has been stored yet.
func (s *Service) Get(ctx context.Context) (domain.Settings, error) {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

// Update validates and persists new settings.
func (s *Service) Update(ctx context.Context, settings domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
