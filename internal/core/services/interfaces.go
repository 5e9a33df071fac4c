package services

import (
	"context"
	"errors"

	"takuezy-housing/internal/adapters/persistence/models"
	"takuezy-housing/internal/adapters/persistence/store"
	"takuezy-housing/internal/core/policy"
)

// AuditEvent is one state change worth keeping a trail of
type AuditEvent struct {
	Actor        policy.Actor
	Action       string
	ResourceType string
	ResourceID   string
	Detail       map[string]interface{}
}

// Audit actions
const (
	ActionUserApprove          = "user.approve"
	ActionUserVerifyID         = "user.verify_id"
	ActionApplicationDecide    = "application.decide"
	ActionListingAvailability  = "listing.availability"
	ActionPaymentInit          = "payment.init"
	ActionPaymentReceiptRelink = "payment.receipt_relink"
)

// AuditRecorder stores audit events. Implementations never fail the caller.
type AuditRecorder interface {
	Record(ctx context.Context, event AuditEvent)
}

// AuditTrail is an AuditRecorder that can read a resource's events back
type AuditTrail interface {
	AuditRecorder
	// Trail lists events for one resource, newest first
	Trail(ctx context.Context, resourceType, resourceID string) ([]*models.AuditLog, error)
}

// orNotFound maps a missing document to the given domain error
func orNotFound(err, notFound error) error {
	if errors.Is(err, store.ErrNoDocument) {
		return notFound
	}
	return err
}
