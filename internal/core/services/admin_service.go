package services

import (
	"context"

	"takuezy-housing/internal/adapters/persistence/models"
	"takuezy-housing/internal/adapters/persistence/repositories"
	"takuezy-housing/internal/core/domain"
	"takuezy-housing/internal/core/policy"
)

// AdminService handles user moderation
type AdminService struct {
	userRepo repositories.UserRepository
	audit    AuditTrail
}

// NewAdminService creates a new admin service
func NewAdminService(userRepo repositories.UserRepository, audit AuditTrail) *AdminService {
	return &AdminService{userRepo: userRepo, audit: audit}
}

// ListUsers returns up to repositories.DashboardLimit users
func (s *AdminService) ListUsers(ctx context.Context, actor policy.Actor) ([]*models.UserResponse, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(ctx, repositories.DashboardLimit)
	if err != nil {
		return nil, err
	}

	out := make([]*models.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, u.ToResponse())
	}
	return out, nil
}

// AuditTrail lists the recorded events for one resource, newest first
func (s *AdminService) AuditTrail(ctx context.Context, actor policy.Actor, resourceType, resourceID string) ([]*models.AuditLog, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if resourceType == "" || resourceID == "" {
		return nil, domain.Validation("resource_type and resource_id are required")
	}
	return s.audit.Trail(ctx, resourceType, resourceID)
}

// SetApproved sets is_approved on a user
func (s *AdminService) SetApproved(ctx context.Context, actor policy.Actor, userID string, approved bool) error {
	return s.setFlag(ctx, actor, userID, "is_approved", approved, ActionUserApprove)
}

// SetIDVerified sets id_verified on a user
func (s *AdminService) SetIDVerified(ctx context.Context, actor policy.Actor, userID string, verified bool) error {
	return s.setFlag(ctx, actor, userID, "id_verified", verified, ActionUserVerifyID)
}

func (s *AdminService) setFlag(ctx context.Context, actor policy.Actor, userID, field string, value bool, action string) error {
	if err := policy.RequireAdmin(actor); err != nil {
		return err
	}
	if err := s.userRepo.SetFlag(ctx, userID, field, value); err != nil {
		return orNotFound(err, domain.ErrUserNotFound)
	}

	s.audit.Record(ctx, AuditEvent{
		Actor:        actor,
		Action:       action,
		ResourceType: "user",
		ResourceID:   userID,
		Detail:       map[string]interface{}{field: value},
	})
	return nil
}
