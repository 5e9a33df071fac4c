package services

import (
	"context"

	"takuezy-housing/internal/adapters/persistence/models"
	"takuezy-housing/internal/adapters/persistence/repositories"
	"takuezy-housing/internal/core/domain"
	"takuezy-housing/internal/core/policy"
	"takuezy-housing/internal/pkg/metrics"

	"github.com/sirupsen/logrus"
)

// ApplicationService handles rental applications and their decisions
type ApplicationService struct {
	appRepo     repositories.ApplicationRepository
	listingRepo repositories.ListingRepository
	audit       AuditRecorder
	metrics     *metrics.Metrics
	log         *logrus.Logger
}

// NewApplicationService creates a new application service
func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	listingRepo repositories.ListingRepository,
	audit AuditRecorder,
	m *metrics.Metrics,
	log *logrus.Logger,
) *ApplicationService {
	return &ApplicationService{
		appRepo:     appRepo,
		listingRepo: listingRepo,
		audit:       audit,
		metrics:     m,
		log:         log,
	}
}

// CreateApplicationInput represents application input
type CreateApplicationInput struct {
	ListingID  string  `json:"listing_id" validate:"required"`
	Message    *string `json:"message"`
	NationalID string  `json:"national_id" validate:"required"`
}

// Apply creates a pending application for an existing listing
func (s *ApplicationService) Apply(ctx context.Context, actor policy.Actor, input *CreateApplicationInput) (string, error) {
	if _, err := s.listingRepo.GetByID(ctx, input.ListingID); err != nil {
		return "", orNotFound(err, domain.ErrListingNotFound)
	}
	if err := policy.CanApply(actor); err != nil {
		return "", err
	}

	app := &models.Application{
		ListingID:  input.ListingID,
		TenantID:   actor.ID,
		Message:    input.Message,
		NationalID: input.NationalID,
		Status:     domain.ApplicationPending,
	}
	id, err := s.appRepo.Create(ctx, app)
	if err != nil {
		return "", err
	}

	s.log.WithFields(logrus.Fields{"application_id": id, "listing_id": input.ListingID}).Info("📝 Application submitted")
	return id, nil
}

// Decide approves or rejects an application. Deciding again overwrites the earlier status.
func (s *ApplicationService) Decide(ctx context.Context, actor policy.Actor, applicationID string, approve bool) error {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return orNotFound(err, domain.ErrApplicationNotFound)
	}
	listing, err := s.listingRepo.GetByID(ctx, app.ListingID)
	if err != nil {
		return orNotFound(err, domain.ErrListingNotFound)
	}
	if err := policy.CanDecideApplication(actor, listing.OwnerID); err != nil {
		return err
	}

	status := domain.DecisionStatus(approve)
	if err := s.appRepo.SetStatus(ctx, applicationID, status); err != nil {
		return orNotFound(err, domain.ErrApplicationNotFound)
	}

	s.metrics.Decision(string(status))
	s.audit.Record(ctx, AuditEvent{
		Actor:        actor,
		Action:       ActionApplicationDecide,
		ResourceType: "application",
		ResourceID:   applicationID,
		Detail:       map[string]interface{}{"status": status, "previous": app.Status},
	})
	return nil
}

// Mine lists the actor's own applications
func (s *ApplicationService) Mine(ctx context.Context, actor policy.Actor) ([]*models.Application, error) {
	apps, err := s.appRepo.ListByTenant(ctx, actor.ID, repositories.DashboardLimit)
	if err != nil {
		return nil, err
	}
	return nonNilSlice(apps), nil
}

// ForOwner lists applications made against the actor's listings
func (s *ApplicationService) ForOwner(ctx context.Context, actor policy.Actor) ([]*models.Application, error) {
	listings, err := s.listingRepo.ListByOwner(ctx, actor.ID, repositories.OwnerListingsScan)
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return []*models.Application{}, nil
	}

	ids := make([]string, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
	}

	apps, err := s.appRepo.ListByListings(ctx, ids, repositories.DashboardLimit)
	if err != nil {
		return nil, err
	}
	return nonNilSlice(apps), nil
}
