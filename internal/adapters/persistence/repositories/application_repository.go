package repositories

import (
	"context"
	"time"

	"takuezy-housing/internal/adapters/persistence/models"
	"takuezy-housing/internal/adapters/persistence/store"
	"takuezy-housing/internal/core/domain"
)

// applicationRepository implements ApplicationRepository interface
type applicationRepository struct {
	gw store.Gateway
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(gw store.Gateway) ApplicationRepository {
	return &applicationRepository{gw: gw}
}

// Create creates a new application
func (r *applicationRepository) Create(ctx context.Context, app *models.Application) (string, error) {
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	id, err := r.gw.Create(ctx, store.Applications, app)
	if err != nil {
		return "", err
	}
	app.ID = id
	return id, nil
}

// GetByID gets an application by ID
func (r *applicationRepository) GetByID(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	if err := r.gw.FindOne(ctx, store.Applications, store.ByID(id), &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// ListByTenant lists applications submitted by a tenant
func (r *applicationRepository) ListByTenant(ctx context.Context, tenantID string, limit int64) ([]*models.Application, error) {
	var apps []*models.Application
	if err := r.gw.FindMany(ctx, store.Applications, store.Where().Eq("tenant_id", tenantID), limit, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// ListByListings lists applications for any of the given listings
func (r *applicationRepository) ListByListings(ctx context.Context, listingIDs []string, limit int64) ([]*models.Application, error) {
	var apps []*models.Application
	if err := r.gw.FindMany(ctx, store.Applications, store.Where().In("listing_id", listingIDs), limit, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// SetStatus overwrites the application status
func (r *applicationRepository) SetStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	return r.gw.UpdateOne(ctx, store.Applications, store.ByID(id), store.Patch{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	})
}
