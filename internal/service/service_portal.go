package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/edsc-portals/internal/config"
	"github.com/MKhiriev/edsc-portals/internal/logger"
	"github.com/MKhiriev/edsc-portals/internal/store"
	"github.com/MKhiriev/edsc-portals/internal/validators"
	"github.com/MKhiriev/edsc-portals/models"
)

type portalService struct {
	registry      store.PortalRegistry
	basePortalID  string
	defaultPortal string
	validator     validators.Validator

	logger *logger.Logger
}

// NewPortalService returns a resolver over registry. It fails with
// [ErrBasePortalNotFound] or [ErrDefaultPortalNotFound] when the configured
// ids are not registered.
func NewPortalService(registry store.PortalRegistry, cfg config.StructuredConfig, logger *logger.Logger) (PortalService, error) {
	if _, ok := registry.Get(cfg.Portals.BasePortal); !ok {
		return nil, fmt.Errorf("%w: %q", ErrBasePortalNotFound, cfg.Portals.BasePortal)
	}
	if _, ok := registry.Get(cfg.App.DefaultPortal); !ok {
		return nil, fmt.Errorf("%w: %q", ErrDefaultPortalNotFound, cfg.App.DefaultPortal)
	}

	return &portalService{
		registry:      registry,
		basePortalID:  cfg.Portals.BasePortal,
		defaultPortal: cfg.App.DefaultPortal,
		validator:     validators.NewPortalValidator(),
		logger:        logger,
	}, nil
}

func (s *portalService) IsDefaultPortal(portalID string) bool {
	return portalID == s.defaultPortal
}

func (s *portalService) BuildConfig(target models.PortalConfig) (models.PortalConfig, error) {
	if target.PortalID == "" {
		return models.PortalConfig{}, ErrMissingPortalID
	}

	base, ok := s.registry.Get(s.basePortalID)
	if !ok {
		return models.PortalConfig{}, fmt.Errorf("%w: %q", ErrBasePortalNotFound, s.basePortalID)
	}

	resolved := defaultPortalConfig()
	if err := mergeLayer(&resolved, base); err != nil {
		return models.PortalConfig{}, err
	}
	if err := mergeLayer(&resolved, target); err != nil {
		return models.PortalConfig{}, err
	}

	resolved.PortalID = target.PortalID
	resolved.ParentConfig = s.basePortalID

	return resolved.Clone(), nil
}

func (s *portalService) ResolvePortal(ctx context.Context, portalID string) (models.PortalConfig, error) {
	target, ok := s.registry.Get(portalID)
	if !ok {
		return models.PortalConfig{}, fmt.Errorf("%w: %q", ErrPortalNotFound, portalID)
	}

	resolved, err := s.BuildConfig(target)
	if err != nil {
		return models.PortalConfig{}, err
	}

	logger.FromContext(ctx).Debug().Str("portal_id", portalID).Msg("portal resolved")
	return resolved, nil
}

func (s *portalService) ListPortals(ctx context.Context) ([]models.PortalSummary, error) {
	summaries := make([]models.PortalSummary, 0, s.registry.Len())
	for _, id := range s.registry.IDs() {
		resolved, err := s.ResolvePortal(ctx, id)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, models.PortalSummary{
			PortalID:  id,
			Title:     resolved.Title.Primary.OrZero(),
			IsDefault: s.IsDefaultPortal(id),
		})
	}
	return summaries, nil
}

// ValidateAll resolves every registered portal and checks the result. All
// failures are reported together.
func (s *portalService) ValidateAll(ctx context.Context) error {
	var errs []error
	for _, id := range s.registry.IDs() {
		resolved, err := s.ResolvePortal(ctx, id)
		if err == nil {
			err = s.validator.Validate(ctx, resolved)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("portal %q: %w", id, err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	s.logger.Info().Int("portals", s.registry.Len()).Msg("all portals resolved")
	return nil
}
