package repositories

import (
	"context"
	"time"

	"takuezy-housing/internal/adapters/persistence/models"
	"takuezy-housing/internal/adapters/persistence/store"
	"takuezy-housing/internal/core/domain"
)

// paymentRepository implements PaymentRepository interface
type paymentRepository struct {
	gw store.Gateway
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(gw store.Gateway) PaymentRepository {
	return &paymentRepository{gw: gw}
}

// Create creates a new payment
func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) (string, error) {
	now := time.Now().UTC()
	payment.CreatedAt = now
	payment.UpdatedAt = now
	id, err := r.gw.Create(ctx, store.Payments, payment)
	if err != nil {
		return "", err
	}
	payment.ID = id
	return id, nil
}

// GetByID gets a payment by ID
func (r *paymentRepository) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	if err := r.gw.FindOne(ctx, store.Payments, store.ByID(id), &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListByTenant lists payments made by a tenant
func (r *paymentRepository) ListByTenant(ctx context.Context, tenantID string, limit int64) ([]*models.Payment, error) {
	return r.list(ctx, store.Where().Eq("tenant_id", tenantID), limit)
}

// ListByOwner lists payments received by a listing owner
func (r *paymentRepository) ListByOwner(ctx context.Context, ownerID string, limit int64) ([]*models.Payment, error) {
	return r.list(ctx, store.Where().Eq("owner_id", ownerID), limit)
}

// ListUnlinked lists successful payments without a receipt id created before createdBefore
func (r *paymentRepository) ListUnlinked(ctx context.Context, createdBefore time.Time, limit int64) ([]*models.Payment, error) {
	filter := store.Where().
		Eq("status", string(domain.PaymentSuccessful)).
		Eq("receipt_id", nil).
		Before("created_at", createdBefore)
	return r.list(ctx, filter, limit)
}

func (r *paymentRepository) list(ctx context.Context, filter store.Filter, limit int64) ([]*models.Payment, error) {
	var payments []*models.Payment
	if err := r.gw.FindMany(ctx, store.Payments, filter, limit, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// LinkReceipt records the receipt id on the payment
func (r *paymentRepository) LinkReceipt(ctx context.Context, paymentID, receiptID string) error {
	return r.gw.UpdateOne(ctx, store.Payments, store.ByID(paymentID), store.Patch{
		"receipt_id": receiptID,
		"updated_at": time.Now().UTC(),
	})
}

// CreateReceipt creates a receipt
func (r *paymentRepository) CreateReceipt(ctx context.Context, receipt *models.Receipt) (string, error) {
	receipt.CreatedAt = time.Now().UTC()
	id, err := r.gw.Create(ctx, store.Receipts, receipt)
	if err != nil {
		return "", err
	}
	receipt.ID = id
	return id, nil
}

// GetReceiptByPayment gets the receipt issued for a payment
func (r *paymentRepository) GetReceiptByPayment(ctx context.Context, paymentID string) (*models.Receipt, error) {
	var receipt models.Receipt
	if err := r.gw.FindOne(ctx, store.Receipts, store.Where().Eq("payment_id", paymentID), &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}
