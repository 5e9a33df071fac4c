package services

import (
	"context"
	"errors"
	"time"

	"takuezy-housing/internal/adapters/persistence/store"
	"takuezy-housing/internal/core/policy"

	"github.com/robfig/cron/v3"
)

const (
	// reconcileBatch bounds the payments repaired per run
	reconcileBatch = 100
	// reconcileGrace leaves payments whose Init may still be writing the receipt alone
	reconcileGrace = time.Minute
)

var systemActor = policy.Actor{ID: "system", Role: "system"}

// ReconcilerService links successful payments to their receipts when the inline link step failed
type ReconcilerService struct {
	payments *PaymentService
	cron     *cron.Cron
	timeout  time.Duration
	grace    time.Duration
	now      func() time.Time
}

// NewReconcilerService creates a reconciler that repairs payments through the payment service's stores
func NewReconcilerService(payments *PaymentService) *ReconcilerService {
	return &ReconcilerService{
		payments: payments,
		timeout:  time.Minute,
		grace:    reconcileGrace,
		now:      time.Now,
	}
}

// Start schedules Run on the given cron spec
func (s *ReconcilerService) Start(spec string) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(spec, s.runScheduled); err != nil {
		return err
	}
	s.cron = c
	c.Start()
	s.payments.log.WithField("schedule", spec).Info("🚀 Receipt reconciler started")
	return nil
}

// Stop waits for a running job to finish
func (s *ReconcilerService) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.payments.log.Info("🛑 Receipt reconciler stopped")
}

func (s *ReconcilerService) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if _, err := s.Run(ctx); err != nil {
		s.payments.log.WithError(err).Error("❌ Receipt reconciliation failed")
	}
}

// Run links up to reconcileBatch unlinked payments older than the grace period,
// creating the receipt when none exists. It returns the number of payments linked.
func (s *ReconcilerService) Run(ctx context.Context) (int, error) {
	repo := s.payments.paymentRepo
	log := s.payments.log

	unlinked, err := repo.ListUnlinked(ctx, s.now().Add(-s.grace), reconcileBatch)
	if err != nil {
		return 0, err
	}

	linked := 0
	for _, p := range unlinked {
		current, err := repo.GetByID(ctx, p.ID)
		if err != nil {
			return linked, err
		}
		if current.ReceiptID != nil {
			continue
		}

		receipt, err := repo.GetReceiptByPayment(ctx, p.ID)
		switch {
		case errors.Is(err, store.ErrNoDocument):
			receipt = s.payments.receiptFor(p)
			if _, err := repo.CreateReceipt(ctx, receipt); err != nil {
				log.WithError(err).WithField("payment_id", p.ID).Error("❌ Failed to create missing receipt")
				continue
			}
		case err != nil:
			return linked, err
		}

		if err := repo.LinkReceipt(ctx, p.ID, receipt.ID); err != nil {
			log.WithError(err).WithField("payment_id", p.ID).Error("❌ Failed to link receipt")
			continue
		}

		linked++
		s.payments.metrics.ReceiptRelinked()
		s.payments.audit.Record(ctx, AuditEvent{
			Actor:        systemActor,
			Action:       ActionPaymentReceiptRelink,
			ResourceType: "payment",
			ResourceID:   p.ID,
			Detail:       map[string]interface{}{"receipt_id": receipt.ID},
		})
	}

	if linked > 0 {
		log.WithField("count", linked).Info("🔗 Linked receipts to payments")
	}
	return linked, nil
}
