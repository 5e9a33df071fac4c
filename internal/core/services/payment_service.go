package services

import (
	"context"
	"strings"

	"takuezy-housing/internal/adapters/persistence/models"
	"takuezy-housing/internal/adapters/persistence/repositories"
	"takuezy-housing/internal/config"
	"takuezy-housing/internal/core/domain"
	"takuezy-housing/internal/core/policy"
	"takuezy-housing/internal/pkg/metrics"

	"github.com/sirupsen/logrus"
)

// PaymentService runs the mocked payment flow and its receipts
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	listingRepo repositories.ListingRepository
	platform    config.PlatformConfig
	audit       AuditRecorder
	metrics     *metrics.Metrics
	log         *logrus.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	listingRepo repositories.ListingRepository,
	platform config.PlatformConfig,
	audit AuditRecorder,
	m *metrics.Metrics,
	log *logrus.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		listingRepo: listingRepo,
		platform:    platform,
		audit:       audit,
		metrics:     m,
		log:         log,
	}
}

// InitPaymentInput represents payment initiation input
type InitPaymentInput struct {
	ListingID string               `json:"listing_id" validate:"required"`
	Method    domain.PaymentMethod `json:"method" validate:"required,oneof=ecocash paynow"`
}

// PaymentResult is returned by Init
type PaymentResult struct {
	PaymentID   string  `json:"payment_id"`
	ReceiptID   string  `json:"receipt_id"`
	OwnerAmount float64 `json:"owner_amount"`
	PlatformFee float64 `json:"platform_fee"`
}

// ReceiptReference derives the human-facing receipt reference from a payment id
func ReceiptReference(paymentID string) string {
	prefix := paymentID
	if len(prefix) > 6 {
		prefix = prefix[:6]
	}
	return "TAK-" + strings.ToUpper(prefix)
}

// Init charges the listing price, writes the receipt and links it to the payment.
// The three writes are independent; a payment left without receipt_id is repaired by the reconciler.
func (s *PaymentService) Init(ctx context.Context, actor policy.Actor, input *InitPaymentInput) (*PaymentResult, error) {
	listing, err := s.listingRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, orNotFound(err, domain.ErrListingNotFound)
	}
	if err := policy.CanPay(actor); err != nil {
		return nil, err
	}

	split := domain.SplitPayment(listing.Price, s.platform.FeeRate)
	payment := &models.Payment{
		ListingID:   listing.ID,
		TenantID:    actor.ID,
		OwnerID:     listing.OwnerID,
		Amount:      split.Amount,
		Method:      input.Method,
		PlatformFee: split.PlatformFee,
		OwnerAmount: split.OwnerAmount,
		Status:      domain.PaymentSuccessful,
	}
	paymentID, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		return nil, err
	}

	receiptID, err := s.paymentRepo.CreateReceipt(ctx, s.receiptFor(payment))
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.LinkReceipt(ctx, paymentID, receiptID); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"payment_id": paymentID,
			"receipt_id": receiptID,
		}).Error("❌ Receipt created but not linked to payment")
		return nil, err
	}

	s.metrics.Payment(string(input.Method), split.PlatformFee)
	s.audit.Record(ctx, AuditEvent{
		Actor:        actor,
		Action:       ActionPaymentInit,
		ResourceType: "payment",
		ResourceID:   paymentID,
		Detail: map[string]interface{}{
			"listing_id":   listing.ID,
			"amount":       split.Amount,
			"platform_fee": split.PlatformFee,
			"method":       input.Method,
			"receipt_id":   receiptID,
		},
	})
	s.log.WithFields(logrus.Fields{"payment_id": paymentID, "amount": split.Amount}).Info("💸 Payment completed")

	return &PaymentResult{
		PaymentID:   paymentID,
		ReceiptID:   receiptID,
		OwnerAmount: split.OwnerAmount,
		PlatformFee: split.PlatformFee,
	}, nil
}

func (s *PaymentService) receiptFor(p *models.Payment) *models.Receipt {
	var phone *string
	if s.platform.Phone != "" {
		v := s.platform.Phone
		phone = &v
	}
	return &models.Receipt{
		PaymentID:   p.ID,
		Total:       p.Amount,
		OwnerAmount: p.OwnerAmount,
		PlatformFee: p.PlatformFee,
		PayeePhone:  phone,
		Reference:   ReceiptReference(p.ID),
	}
}

// Mine lists payments made by the actor
func (s *PaymentService) Mine(ctx context.Context, actor policy.Actor) ([]*models.Payment, error) {
	payments, err := s.paymentRepo.ListByTenant(ctx, actor.ID, repositories.DashboardLimit)
	if err != nil {
		return nil, err
	}
	return nonNilSlice(payments), nil
}

// ForOwner lists payments received for the actor's listings
func (s *PaymentService) ForOwner(ctx context.Context, actor policy.Actor) ([]*models.Payment, error) {
	payments, err := s.paymentRepo.ListByOwner(ctx, actor.ID, repositories.DashboardLimit)
	if err != nil {
		return nil, err
	}
	return nonNilSlice(payments), nil
}
