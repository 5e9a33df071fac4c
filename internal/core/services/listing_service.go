package services

import (
	"context"

	"takuezy-housing/internal/adapters/persistence/models"
	"takuezy-housing/internal/adapters/persistence/repositories"
	"takuezy-housing/internal/core/domain"
	"takuezy-housing/internal/core/policy"

	"github.com/sirupsen/logrus"
)

// ListingService handles listing creation, search and availability
type ListingService struct {
	listingRepo repositories.ListingRepository
	audit       AuditRecorder
	log         *logrus.Logger
}

// NewListingService creates a new listing service
func NewListingService(listingRepo repositories.ListingRepository, audit AuditRecorder, log *logrus.Logger) *ListingService {
	return &ListingService{listingRepo: listingRepo, audit: audit, log: log}
}

// LocationInput is a listing location
type LocationInput struct {
	Lat     *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng     *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
	Address *string  `json:"address"`
}

// CreateListingInput represents listing creation input
type CreateListingInput struct {
	Title        string              `json:"title" validate:"required"`
	Description  *string             `json:"description"`
	Price        *float64            `json:"price" validate:"required,gte=0"`
	PricingType  domain.PricingType  `json:"pricing_type" validate:"required,oneof=monthly daily hourly"`
	PropertyType domain.PropertyType `json:"property_type" validate:"required,oneof=house room apartment lodge_room other"`
	Facilities   []string            `json:"facilities"`
	MediaURLs    []string            `json:"media_urls"`
	Location     *LocationInput      `json:"location" validate:"required"`
	IsAvailable  *bool               `json:"is_available"`
}

// Create stores a listing owned by the actor
func (s *ListingService) Create(ctx context.Context, actor policy.Actor, input *CreateListingInput) (string, error) {
	if err := policy.CanCreateListing(actor); err != nil {
		return "", err
	}
	if input.Location == nil || input.Location.Lat == nil || input.Location.Lng == nil {
		return "", domain.Validation("location requires lat and lng")
	}
	if input.Price == nil || *input.Price < 0 {
		return "", domain.Validation("price must be greater than or equal to 0")
	}

	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}

	listing := &models.Listing{
		OwnerID:      actor.ID,
		Title:        input.Title,
		Description:  input.Description,
		Price:        *input.Price,
		PricingType:  input.PricingType,
		PropertyType: input.PropertyType,
		Facilities:   nonNilSlice(input.Facilities),
		MediaURLs:    nonNilSlice(input.MediaURLs),
		Location: domain.Location{
			Lat:     *input.Location.Lat,
			Lng:     *input.Location.Lng,
			Address: input.Location.Address,
		},
		IsAvailable: available,
	}

	id, err := s.listingRepo.Create(ctx, listing)
	if err != nil {
		return "", err
	}

	s.log.WithFields(logrus.Fields{"listing_id": id, "owner_id": actor.ID}).Info("🏠 Listing created")
	return id, nil
}

// Search returns at most repositories.SearchLimit listings matching every given filter
func (s *ListingService) Search(ctx context.Context, search repositories.ListingSearch) ([]*models.Listing, error) {
	listings, err := s.listingRepo.Search(ctx, search)
	if err != nil {
		return nil, err
	}
	return nonNilSlice(listings), nil
}

// SetAvailability lets the owner or an admin mark a listing (un)available
func (s *ListingService) SetAvailability(ctx context.Context, actor policy.Actor, listingID string, available bool) error {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return orNotFound(err, domain.ErrListingNotFound)
	}
	if err := policy.CanUpdateAvailability(actor, listing.OwnerID); err != nil {
		return err
	}

	if err := s.listingRepo.SetAvailability(ctx, listingID, available); err != nil {
		return orNotFound(err, domain.ErrListingNotFound)
	}

	s.audit.Record(ctx, AuditEvent{
		Actor:        actor,
		Action:       ActionListingAvailability,
		ResourceType: "listing",
		ResourceID:   listingID,
		Detail:       map[string]interface{}{"is_available": available},
	})
	return nil
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
