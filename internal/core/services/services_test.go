package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"takuezy-housing/internal/adapters/persistence/models"
	"takuezy-housing/internal/adapters/persistence/repositories"
	"takuezy-housing/internal/adapters/persistence/store"
	"takuezy-housing/internal/config"
	"takuezy-housing/internal/core/domain"
	"takuezy-housing/internal/core/policy"
	"takuezy-housing/internal/pkg/metrics"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type recordingAudit struct {
	mu     sync.Mutex
	events []AuditEvent
}

func (r *recordingAudit) Record(_ context.Context, e AuditEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingAudit) Trail(_ context.Context, resourceType, resourceID string) ([]*models.AuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.AuditLog{}
	for i := len(r.events) - 1; i >= 0; i-- {
		e := r.events[i]
		if e.ResourceType == resourceType && e.ResourceID == resourceID {
			out = append(out, &models.AuditLog{Action: e.Action, ActorID: e.Actor.ID, ResourceType: e.ResourceType, ResourceID: e.ResourceID})
		}
	}
	return out, nil
}

func (r *recordingAudit) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Action)
	}
	return out
}

type harness struct {
	gw       *store.Memory
	users    repositories.UserRepository
	listings repositories.ListingRepository
	apps     repositories.ApplicationRepository
	payments repositories.PaymentRepository

	creds      *CredentialService
	auth       *AuthService
	listingSvc *ListingService
	appSvc     *ApplicationService
	paymentSvc *PaymentService
	adminSvc   *AdminService
	audit      *recordingAudit
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gw := store.NewMemory()
	log := quietLogger()
	m := metrics.New()
	audit := &recordingAudit{}

	h := &harness{
		gw:       gw,
		users:    repositories.NewUserRepository(gw),
		listings: repositories.NewListingRepository(gw),
		apps:     repositories.NewApplicationRepository(gw),
		payments: repositories.NewPaymentRepository(gw),
		audit:    audit,
	}
	h.creds = NewCredentialService(config.JWTConfig{Secret: "test-secret", AccessTTL: time.Hour, BcryptCost: bcrypt.MinCost})
	h.auth = NewAuthService(h.users, h.creds, m, log)
	h.listingSvc = NewListingService(h.listings, audit, log)
	h.appSvc = NewApplicationService(h.apps, h.listings, audit, m, log)
	h.paymentSvc = NewPaymentService(h.payments, h.listings, config.PlatformConfig{Phone: "+263 778 864 239", FeeRate: 0.05}, audit, m, log)
	h.adminSvc = NewAdminService(h.users, audit)
	return h
}

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }

func (h *harness) actor(t *testing.T, role domain.Role, nationalID string) policy.Actor {
	t.Helper()
	id, err := h.users.Create(context.Background(), &models.User{
		FullName:   string(role) + " " + nationalID,
		Role:       role,
		Email:      strPtr(nationalID + "@example.com"),
		NationalID: nationalID,
	})
	require.NoError(t, err)
	return policy.Actor{ID: id, Role: role}
}

func (h *harness) listing(t *testing.T, owner policy.Actor, price float64) string {
	t.Helper()
	id, err := h.listingSvc.Create(context.Background(), owner, &CreateListingInput{
		Title:        "Room near campus",
		Price:        floatPtr(price),
		PricingType:  domain.PricingMonthly,
		PropertyType: domain.PropertyRoom,
		Location:     &LocationInput{Lat: floatPtr(-17.82), Lng: floatPtr(31.05)},
	})
	require.NoError(t, err)
	return id
}

// ============================================================
// Credentials & auth
// ============================================================

func TestCredentialService(t *testing.T) {
	h := newHarness(t)

	hash, err := h.creds.Hash("pw")
	require.NoError(t, err)
	assert.True(t, h.creds.Verify("pw", hash))
	assert.False(t, h.creds.Verify("pw", "garbage"))

	token, err := h.creds.IssueToken("abc")
	require.NoError(t, err)
	sub, err := h.creds.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "abc", sub)

	_, err = h.creds.ValidateToken(token + "x")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRegisterAndLogin(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	tok, err := h.auth.Register(ctx, &RegisterInput{
		FullName: "Tariro", Role: domain.RoleTenant, Phone: strPtr("+263771000000"),
		NationalID: "63-123456-A-42", Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", tok.TokenType)

	user, err := h.auth.CurrentUser(ctx, tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "Tariro", user.FullName)
	assert.False(t, user.IsApproved)
	assert.Nil(t, user.Email)

	for _, ident := range []string{"+263771000000", "63-123456-A-42"} {
		login, err := h.auth.Login(ctx, ident, "hunter22")
		require.NoError(t, err, ident)
		me, err := h.auth.CurrentUser(ctx, login.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, me.ID)
	}

	_, wrongPw := h.auth.Login(ctx, "63-123456-A-42", "nope")
	_, unknown := h.auth.Login(ctx, "nobody", "hunter22")
	assert.Equal(t, domain.ErrInvalidCredentials, wrongPw)
	assert.Equal(t, wrongPw, unknown)
}

func TestRegisterValidation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.auth.Register(ctx, &RegisterInput{FullName: "A", Role: domain.RoleTenant, NationalID: "N1", Password: "p"})
	assert.Equal(t, domain.ErrEmailOrPhoneRequired, err)

	_, err = h.auth.Register(ctx, &RegisterInput{FullName: "A", Role: domain.RoleTenant, Email: strPtr(" "), NationalID: "N1", Password: "p"})
	assert.Equal(t, domain.ErrEmailOrPhoneRequired, err)

	_, err = h.auth.Register(ctx, &RegisterInput{FullName: "A", Role: "superuser", Email: strPtr("a@x.co"), NationalID: "N1", Password: "p"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = h.auth.Register(ctx, &RegisterInput{FullName: "A", Role: domain.RoleTenant, Email: strPtr("a@x.co"), NationalID: "N1", Password: strings.Repeat("a", 80)})
	assert.Equal(t, domain.ErrPasswordTooLong, err)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.auth.Register(ctx, &RegisterInput{FullName: "A", Role: domain.RoleLandlord, Email: strPtr("a@x.co"), NationalID: "N1", Password: "p"})
	require.NoError(t, err)

	dupes := []*RegisterInput{
		{FullName: "B", Role: domain.RoleTenant, Phone: strPtr("0772"), NationalID: "N1", Password: "p"},
		{FullName: "C", Role: domain.RoleTenant, Email: strPtr("a@x.co"), NationalID: "N3", Password: "p"},
	}
	for _, in := range dupes {
		_, err := h.auth.Register(ctx, in)
		assert.Equal(t, domain.ErrUserAlreadyExists, err)
	}

	// Another user without an email is not a duplicate of one that also lacks it.
	_, err = h.auth.Register(ctx, &RegisterInput{FullName: "D", Role: domain.RoleTenant, Phone: strPtr("0773"), NationalID: "N4", Password: "p"})
	require.NoError(t, err)
	_, err = h.auth.Register(ctx, &RegisterInput{FullName: "E", Role: domain.RoleTenant, Phone: strPtr("0774"), NationalID: "N5", Password: "p"})
	require.NoError(t, err)
}

func TestCurrentUserFailures(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.auth.CurrentUser(ctx, "junk")
	assert.Equal(t, domain.ErrCouldNotValidate, err)

	orphan, err := h.creds.IssueToken("65f000000000000000000000")
	require.NoError(t, err)
	_, err = h.auth.CurrentUser(ctx, orphan)
	assert.Equal(t, domain.ErrCouldNotValidate, err)
}

// ============================================================
// Listings
// ============================================================

func TestListingCreateAndSearch(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	owner := h.actor(t, domain.RoleLodgeOwner, "O1")
	tenant := h.actor(t, domain.RoleTenant, "T1")

	_, err := h.listingSvc.Create(ctx, tenant, &CreateListingInput{Title: "x", Price: floatPtr(1), Location: &LocationInput{Lat: floatPtr(0), Lng: floatPtr(0)}})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	id, err := h.listingSvc.Create(ctx, owner, &CreateListingInput{
		Title:        "Lodge room 4",
		Description:  strPtr("Quiet"),
		Price:        floatPtr(150),
		PricingType:  domain.PricingDaily,
		PropertyType: domain.PropertyLodgeRoom,
		Facilities:   []string{"WiFi", "Parking"},
		MediaURLs:    []string{"https://img/1.jpg"},
		Location:     &LocationInput{Lat: floatPtr(-17.8), Lng: floatPtr(31.0), Address: strPtr("Avondale")},
	})
	require.NoError(t, err)
	h.listing(t, owner, 250)
	h.listing(t, owner, 90)

	minPrice, maxPrice := 100.0, 200.0
	found, err := h.listingSvc.Search(ctx, repositories.ListingSearch{MinPrice: &minPrice, MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.Len(t, found, 1)

	got := found[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, owner.ID, got.OwnerID)
	assert.Equal(t, "Lodge room 4", got.Title)
	assert.Equal(t, "Quiet", *got.Description)
	assert.Equal(t, 150.0, got.Price)
	assert.Equal(t, domain.PricingDaily, got.PricingType)
	assert.Equal(t, domain.PropertyLodgeRoom, got.PropertyType)
	assert.Equal(t, []string{"WiFi", "Parking"}, got.Facilities)
	assert.Equal(t, []string{"https://img/1.jpg"}, got.MediaURLs)
	assert.Equal(t, "Avondale", *got.Location.Address)
	assert.True(t, got.IsAvailable)

	found, err = h.listingSvc.Search(ctx, repositories.ListingSearch{Query: "wifi"})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	none, err := h.listingSvc.Search(ctx, repositories.ListingSearch{Query: "sauna"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestListingSetAvailability(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	owner := h.actor(t, domain.RoleLandlord, "O1")
	other := h.actor(t, domain.RoleLandlord, "O2")
	admin := h.actor(t, domain.RoleAdmin, "A1")
	id := h.listing(t, owner, 100)

	assert.Equal(t, domain.ErrListingNotFound, h.listingSvc.SetAvailability(ctx, other, "65f000000000000000000000", false))
	assert.Equal(t, domain.ErrListingNotFound, h.listingSvc.SetAvailability(ctx, admin, "not-an-id", false))
	assert.Equal(t, domain.ErrNotAllowed, h.listingSvc.SetAvailability(ctx, other, id, false))

	require.NoError(t, h.listingSvc.SetAvailability(ctx, owner, id, false))
	l, err := h.listings.GetByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, l.IsAvailable)

	require.NoError(t, h.listingSvc.SetAvailability(ctx, admin, id, true))
	assert.Equal(t, []string{ActionListingAvailability, ActionListingAvailability}, h.audit.actions())
}

// ============================================================
// Applications
// ============================================================

func TestApplicationLifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	owner := h.actor(t, domain.RoleLandlord, "O1")
	tenant := h.actor(t, domain.RoleTenant, "T1")
	admin := h.actor(t, domain.RoleAdmin, "A1")
	listingID := h.listing(t, owner, 100)

	_, err := h.appSvc.Apply(ctx, tenant, &CreateApplicationInput{ListingID: "65f000000000000000000000", NationalID: "T1"})
	assert.Equal(t, domain.ErrListingNotFound, err)

	_, err = h.appSvc.Apply(ctx, owner, &CreateApplicationInput{ListingID: listingID, NationalID: "O1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	appID, err := h.appSvc.Apply(ctx, tenant, &CreateApplicationInput{ListingID: listingID, Message: strPtr("hi"), NationalID: "T1"})
	require.NoError(t, err)

	app, err := h.apps.GetByID(ctx, appID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationPending, app.Status)

	assert.Equal(t, domain.ErrNotAllowed, h.appSvc.Decide(ctx, tenant, appID, true))
	assert.Equal(t, domain.ErrApplicationNotFound, h.appSvc.Decide(ctx, owner, "65f000000000000000000000", true))

	require.NoError(t, h.appSvc.Decide(ctx, owner, appID, true))
	app, _ = h.apps.GetByID(ctx, appID)
	assert.Equal(t, domain.ApplicationApproved, app.Status)

	// Re-deciding overwrites.
	require.NoError(t, h.appSvc.Decide(ctx, admin, appID, false))
	app, _ = h.apps.GetByID(ctx, appID)
	assert.Equal(t, domain.ApplicationRejected, app.Status)

	mine, err := h.appSvc.Mine(ctx, tenant)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	forOwner, err := h.appSvc.ForOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, forOwner, 1)

	forNobody, err := h.appSvc.ForOwner(ctx, tenant)
	require.NoError(t, err)
	assert.NotNil(t, forNobody)
	assert.Empty(t, forNobody)
}

func TestDecideWithMissingListing(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	owner := h.actor(t, domain.RoleLandlord, "O1")

	appID, err := h.apps.Create(ctx, &models.Application{ListingID: "65f000000000000000000000", TenantID: "t", NationalID: "N", Status: domain.ApplicationPending})
	require.NoError(t, err)

	assert.Equal(t, domain.ErrListingNotFound, h.appSvc.Decide(ctx, owner, appID, true))
}

// ============================================================
// Payments
// ============================================================

func TestPaymentInit(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	owner := h.actor(t, domain.RoleLandlord, "O1")
	tenant := h.actor(t, domain.RoleTenant, "T1")
	listingID := h.listing(t, owner, 99.99)

	_, err := h.paymentSvc.Init(ctx, tenant, &InitPaymentInput{ListingID: "65f000000000000000000000", Method: domain.MethodEcocash})
	assert.Equal(t, domain.ErrListingNotFound, err)

	_, err = h.paymentSvc.Init(ctx, owner, &InitPaymentInput{ListingID: listingID, Method: domain.MethodEcocash})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	res, err := h.paymentSvc.Init(ctx, tenant, &InitPaymentInput{ListingID: listingID, Method: domain.MethodPaynow})
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.PlatformFee)
	assert.Equal(t, 94.99, res.OwnerAmount)

	p, err := h.payments.GetByID(ctx, res.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentSuccessful, p.Status)
	assert.Equal(t, owner.ID, p.OwnerID)
	assert.Equal(t, tenant.ID, p.TenantID)
	require.NotNil(t, p.ReceiptID)
	assert.Equal(t, res.ReceiptID, *p.ReceiptID)

	r, err := h.payments.GetReceiptByPayment(ctx, res.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, ReceiptReference(res.PaymentID), r.Reference)
	assert.Equal(t, "+263 778 864 239", *r.PayeePhone)
	assert.Equal(t, 99.99, r.Total)

	mine, err := h.paymentSvc.Mine(ctx, tenant)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	received, err := h.paymentSvc.ForOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, received, 1)

	assert.Contains(t, h.audit.actions(), ActionPaymentInit)
}

func TestReceiptReference(t *testing.T) {
	assert.Equal(t, "TAK-65F0AB", ReceiptReference("65f0ab0000000000000000ff"))
	assert.Equal(t, "TAK-AB", ReceiptReference("ab"))
}

type failingLink struct {
	repositories.PaymentRepository
}

func (failingLink) LinkReceipt(context.Context, string, string) error {
	return errors.New("write concern timeout")
}

func TestPaymentLinkFailureIsRepairedByReconciler(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	owner := h.actor(t, domain.RoleLandlord, "O1")
	tenant := h.actor(t, domain.RoleTenant, "T1")
	listingID := h.listing(t, owner, 200)

	broken := NewPaymentService(failingLink{h.payments}, h.listings, config.PlatformConfig{FeeRate: 0.05}, h.audit, metrics.New(), quietLogger())
	_, err := broken.Init(ctx, tenant, &InitPaymentInput{ListingID: listingID, Method: domain.MethodEcocash})
	require.Error(t, err)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))

	unlinked, err := h.payments.ListUnlinked(ctx, time.Now().Add(time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, unlinked, 1)
	paymentID := unlinked[0].ID

	// A successful payment whose receipt was never written at all.
	orphanID, err := h.payments.Create(ctx, &models.Payment{ListingID: listingID, TenantID: tenant.ID, OwnerID: owner.ID, Amount: 10, Method: domain.MethodEcocash, PlatformFee: 0.5, OwnerAmount: 9.5, Status: domain.PaymentSuccessful})
	require.NoError(t, err)

	reconciler := NewReconcilerService(h.paymentSvc)
	linked, err := reconciler.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, linked, "payments inside the grace period are skipped")

	reconciler.now = func() time.Time { return time.Now().Add(2 * reconcileGrace) }
	linked, err = reconciler.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, linked)

	for _, id := range []string{paymentID, orphanID} {
		p, err := h.payments.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, p.ReceiptID)

		r, err := h.payments.GetReceiptByPayment(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, r.ID, *p.ReceiptID)
	}

	linked, err = reconciler.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, linked)
}

// reconcileDuringInit runs the reconciler right before Init writes its receipt
type reconcileDuringInit struct {
	repositories.PaymentRepository
	reconciler *ReconcilerService
	linked     int
}

func (r *reconcileDuringInit) CreateReceipt(ctx context.Context, receipt *models.Receipt) (string, error) {
	n, err := r.reconciler.Run(ctx)
	if err != nil {
		return "", err
	}
	r.linked += n
	return r.PaymentRepository.CreateReceipt(ctx, receipt)
}

func TestReconcilerLeavesInFlightPaymentsAlone(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	owner := h.actor(t, domain.RoleLandlord, "O1")
	tenant := h.actor(t, domain.RoleTenant, "T1")
	listingID := h.listing(t, owner, 120)

	repo := &reconcileDuringInit{PaymentRepository: h.payments, reconciler: NewReconcilerService(h.paymentSvc)}
	svc := NewPaymentService(repo, h.listings, config.PlatformConfig{FeeRate: 0.05}, h.audit, metrics.New(), quietLogger())

	res, err := svc.Init(ctx, tenant, &InitPaymentInput{ListingID: listingID, Method: domain.MethodEcocash})
	require.NoError(t, err)
	assert.Zero(t, repo.linked)

	receiptsFor := func(paymentID string) []*models.Receipt {
		var receipts []*models.Receipt
		require.NoError(t, h.gw.FindMany(ctx, store.Receipts, store.Where().Eq("payment_id", paymentID), 0, &receipts))
		return receipts
	}

	receipts := receiptsFor(res.PaymentID)
	require.Len(t, receipts, 1)
	assert.Equal(t, res.ReceiptID, receipts[0].ID)

	later := NewReconcilerService(h.paymentSvc)
	later.now = func() time.Time { return time.Now().Add(2 * reconcileGrace) }
	linked, err := later.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, linked)
	assert.Len(t, receiptsFor(res.PaymentID), 1)

	p, err := h.payments.GetByID(ctx, res.PaymentID)
	require.NoError(t, err)
	require.NotNil(t, p.ReceiptID)
	assert.Equal(t, res.ReceiptID, *p.ReceiptID)
}

func TestReconcilerStartRejectsBadSchedule(t *testing.T) {
	h := newHarness(t)
	r := NewReconcilerService(h.paymentSvc)
	assert.Error(t, r.Start("every tuesday"))

	require.NoError(t, r.Start("@every 1h"))
	r.Stop()
}

// ============================================================
// Admin
// ============================================================

func TestAdminModeration(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	admin := h.actor(t, domain.RoleAdmin, "A1")
	tenant := h.actor(t, domain.RoleTenant, "T1")

	_, err := h.adminSvc.ListUsers(ctx, tenant)
	assert.Equal(t, domain.ErrAdminOnly, err)
	assert.Equal(t, domain.ErrAdminOnly, h.adminSvc.SetApproved(ctx, tenant, tenant.ID, true))
	assert.Equal(t, domain.ErrAdminOnly, h.adminSvc.SetIDVerified(ctx, tenant, "missing", true))

	users, err := h.adminSvc.ListUsers(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	require.NoError(t, h.adminSvc.SetApproved(ctx, admin, tenant.ID, true))
	require.NoError(t, h.adminSvc.SetIDVerified(ctx, admin, tenant.ID, true))
	u, err := h.users.GetByID(ctx, tenant.ID)
	require.NoError(t, err)
	assert.True(t, u.IsApproved)
	assert.True(t, u.IDVerified)

	assert.Equal(t, domain.ErrUserNotFound, h.adminSvc.SetApproved(ctx, admin, "65f000000000000000000000", true))
	assert.Equal(t, []string{ActionUserApprove, ActionUserVerifyID}, h.audit.actions())
}

func TestAdminAuditTrail(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	admin := h.actor(t, domain.RoleAdmin, "A1")
	tenant := h.actor(t, domain.RoleTenant, "T1")

	require.NoError(t, h.adminSvc.SetApproved(ctx, admin, tenant.ID, true))
	require.NoError(t, h.adminSvc.SetIDVerified(ctx, admin, tenant.ID, true))

	_, err := h.adminSvc.AuditTrail(ctx, tenant, "user", tenant.ID)
	assert.Equal(t, domain.ErrAdminOnly, err)

	_, err = h.adminSvc.AuditTrail(ctx, admin, "", tenant.ID)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = h.adminSvc.AuditTrail(ctx, admin, "user", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	entries, err := h.adminSvc.AuditTrail(ctx, admin, "user", tenant.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, ActionUserVerifyID, entries[0].Action)
	assert.Equal(t, ActionUserApprove, entries[1].Action)
	assert.Equal(t, admin.ID, entries[0].ActorID)

	entries, err = h.adminSvc.AuditTrail(ctx, admin, "listing", tenant.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
