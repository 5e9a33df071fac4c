package repositories

import (
	"context"
	"time"

	"takuezy-housing/internal/adapters/persistence/models"
	"takuezy-housing/internal/adapters/persistence/store"
)

// listingRepository implements ListingRepository interface
type listingRepository struct {
	gw store.Gateway
}

// NewListingRepository creates a new listing repository
func NewListingRepository(gw store.Gateway) ListingRepository {
	return &listingRepository{gw: gw}
}

// Create creates a new listing
func (r *listingRepository) Create(ctx context.Context, listing *models.Listing) (string, error) {
	now := time.Now().UTC()
	listing.CreatedAt = now
	listing.UpdatedAt = now
	id, err := r.gw.Create(ctx, store.Listings, listing)
	if err != nil {
		return "", err
	}
	listing.ID = id
	return id, nil
}

// GetByID gets a listing by ID
func (r *listingRepository) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	var listing models.Listing
	if err := r.gw.FindOne(ctx, store.Listings, store.ByID(id), &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// Search filters listings; the result never exceeds SearchLimit
func (r *listingRepository) Search(ctx context.Context, search ListingSearch) ([]*models.Listing, error) {
	filter := store.Where()
	if search.PropertyType != nil {
		filter = filter.Eq("property_type", *search.PropertyType)
	}
	if search.IsAvailable != nil {
		filter = filter.Eq("is_available", *search.IsAvailable)
	}
	if search.MinPrice != nil {
		filter = filter.Gte("price", *search.MinPrice)
	}
	if search.MaxPrice != nil {
		filter = filter.Lte("price", *search.MaxPrice)
	}
	if search.Query != "" {
		filter = filter.AnyOf(
			store.Where().Contains("title", search.Query),
			store.Where().Contains("description", search.Query),
			store.Where().Contains("facilities", search.Query),
		)
	}

	limit := search.Limit
	if limit <= 0 || limit > SearchLimit {
		limit = SearchLimit
	}

	var listings []*models.Listing
	if err := r.gw.FindMany(ctx, store.Listings, filter, limit, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// ListByOwner lists listings owned by a user
func (r *listingRepository) ListByOwner(ctx context.Context, ownerID string, limit int64) ([]*models.Listing, error) {
	var listings []*models.Listing
	if err := r.gw.FindMany(ctx, store.Listings, store.Where().Eq("owner_id", ownerID), limit, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// SetAvailability updates is_available
func (r *listingRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	return r.gw.UpdateOne(ctx, store.Listings, store.ByID(id), store.Patch{
		"is_available": available,
		"updated_at":   time.Now().UTC(),
	})
}
