package repositories

import (
	"context"
	"time"

	"takuezy-housing/internal/adapters/persistence/models"
	"takuezy-housing/internal/core/domain"
)

// Result caps for list queries
const (
	SearchLimit       = 100
	DashboardLimit    = 200
	OwnerListingsScan = 500
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// FindByAnyIdentifier returns the first user whose email, phone or national id matches
	FindByAnyIdentifier(ctx context.Context, email, phone *string, nationalID string) (*models.User, error)
	// FindForLogin matches identifier against email, phone and national id
	FindForLogin(ctx context.Context, identifier string) (*models.User, error)
	List(ctx context.Context, limit int64) ([]*models.User, error)
	SetFlag(ctx context.Context, id, field string, value bool) error
}

// ListingSearch is a conjunctive listing filter; nil fields are not applied
type ListingSearch struct {
	Query        string
	PropertyType *string
	IsAvailable  *bool
	MinPrice     *float64
	MaxPrice     *float64
	Limit        int64
}

// ListingRepository defines listing repository interface
type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) (string, error)
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	Search(ctx context.Context, search ListingSearch) ([]*models.Listing, error)
	ListByOwner(ctx context.Context, ownerID string, limit int64) ([]*models.Listing, error)
	SetAvailability(ctx context.Context, id string, available bool) error
}

// ApplicationRepository defines application repository interface
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) (string, error)
	GetByID(ctx context.Context, id string) (*models.Application, error)
	ListByTenant(ctx context.Context, tenantID string, limit int64) ([]*models.Application, error)
	ListByListings(ctx context.Context, listingIDs []string, limit int64) ([]*models.Application, error)
	SetStatus(ctx context.Context, id string, status domain.ApplicationStatus) error
}

// PaymentRepository defines payment and receipt repository interface
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) (string, error)
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	ListByTenant(ctx context.Context, tenantID string, limit int64) ([]*models.Payment, error)
	ListByOwner(ctx context.Context, ownerID string, limit int64) ([]*models.Payment, error)
	// ListUnlinked returns successful payments created before createdBefore that carry no receipt id
	ListUnlinked(ctx context.Context, createdBefore time.Time, limit int64) ([]*models.Payment, error)
	LinkReceipt(ctx context.Context, paymentID, receiptID string) error

	CreateReceipt(ctx context.Context, receipt *models.Receipt) (string, error)
	GetReceiptByPayment(ctx context.Context, paymentID string) (*models.Receipt, error)
}

// AuditRepository defines the SQL audit log interface
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	ListByResource(ctx context.Context, resourceType, resourceID string) ([]*models.AuditLog, error)
}
