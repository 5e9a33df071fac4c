package services

import (
	"context"
	"encoding/json"

	"takuezy-housing/internal/adapters/persistence/models"
	"takuezy-housing/internal/adapters/persistence/repositories"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AuditService writes audit events to the SQL audit store
type AuditService struct {
	repo repositories.AuditRepository
	log  *logrus.Logger
}

// NewAuditService returns a trail over repo, or a no-op trail when repo is nil
func NewAuditService(repo repositories.AuditRepository, log *logrus.Logger) AuditTrail {
	if repo == nil {
		return NopAudit{}
	}
	return &AuditService{repo: repo, log: log}
}

// Record stores the event; failures are logged only
func (s *AuditService) Record(ctx context.Context, event AuditEvent) {
	detail := ""
	if len(event.Detail) > 0 {
		raw, err := json.Marshal(event.Detail)
		if err != nil {
			s.log.WithError(err).WithField("action", event.Action).Warn("⚠️ Audit detail not encodable")
		} else {
			detail = string(raw)
		}
	}

	entry := &models.AuditLog{
		EventID:      uuid.NewString(),
		ActorID:      event.Actor.ID,
		ActorRole:    string(event.Actor.Role),
		Action:       event.Action,
		ResourceType: event.ResourceType,
		ResourceID:   event.ResourceID,
		Detail:       detail,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"action":      event.Action,
			"resource_id": event.ResourceID,
		}).Error("❌ Failed to write audit log")
	}
}

// Trail lists stored events for a resource, newest first
func (s *AuditService) Trail(ctx context.Context, resourceType, resourceID string) ([]*models.AuditLog, error) {
	entries, err := s.repo.ListByResource(ctx, resourceType, resourceID)
	if err != nil {
		return nil, err
	}
	return nonNilSlice(entries), nil
}

// NopAudit discards events
type NopAudit struct{}

func (NopAudit) Record(context.Context, AuditEvent) {}

func (NopAudit) Trail(context.Context, string, string) ([]*models.AuditLog, error) {
	return []*models.AuditLog{}, nil
}
