package repositories

import (
	"context"
	"time"

	"takuezy-housing/internal/adapters/persistence/models"
	"takuezy-housing/internal/adapters/persistence/store"
)

// userRepository implements UserRepository interface
type userRepository struct {
	gw store.Gateway
}

// NewUserRepository creates a new user repository
func NewUserRepository(gw store.Gateway) UserRepository {
	return &userRepository{gw: gw}
}

// Create creates a new user
func (r *userRepository) Create(ctx context.Context, user *models.User) (string, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	id, err := r.gw.Create(ctx, store.Users, user)
	if err != nil {
		return "", err
	}
	user.ID = id
	return id, nil
}

// GetByID gets a user by ID
func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.gw.FindOne(ctx, store.Users, store.ByID(id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByAnyIdentifier gets the first user sharing the email, phone or national id.
// Absent email/phone are not compared.
func (r *userRepository) FindByAnyIdentifier(ctx context.Context, email, phone *string, nationalID string) (*models.User, error) {
	var alts []store.Filter
	if email != nil {
		alts = append(alts, store.Where().Eq("email", *email))
	}
	if phone != nil {
		alts = append(alts, store.Where().Eq("phone", *phone))
	}
	alts = append(alts, store.Where().Eq("national_id", nationalID))

	var user models.User
	if err := r.gw.FindOne(ctx, store.Users, store.Where().AnyOf(alts...), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindForLogin gets a user by email, phone or national id
func (r *userRepository) FindForLogin(ctx context.Context, identifier string) (*models.User, error) {
	filter := store.Where().AnyOf(
		store.Where().Eq("email", identifier),
		store.Where().Eq("phone", identifier),
		store.Where().Eq("national_id", identifier),
	)

	var user models.User
	if err := r.gw.FindOne(ctx, store.Users, filter, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// List lists users up to limit
func (r *userRepository) List(ctx context.Context, limit int64) ([]*models.User, error) {
	var users []*models.User
	if err := r.gw.FindMany(ctx, store.Users, store.Where(), limit, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SetFlag sets a boolean moderation flag (is_approved, id_verified)
func (r *userRepository) SetFlag(ctx context.Context, id, field string, value bool) error {
	return r.gw.UpdateOne(ctx, store.Users, store.ByID(id), store.Patch{
		field:        value,
		"updated_at": time.Now().UTC(),
	})
}
