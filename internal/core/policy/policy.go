// Package policy holds the marketplace authorization rules.
//
// Every rule is a pure function over the acting user's role and id and, where
// ownership matters, the owner recorded on the target resource. Callers load
// the resource first so a missing resource is reported as not found before
// any of these checks run.
package policy

import "takuezy-housing/internal/core/domain"

// Actor is the authenticated caller
type Actor struct {
	ID   string
	Role domain.Role
}

func (a Actor) isAdmin() bool {
	return a.Role == domain.RoleAdmin
}

func hasRole(a Actor, roles ...domain.Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// CanCreateListing allows landlords, lodge owners and admins
func CanCreateListing(a Actor) error {
	if !hasRole(a, domain.RoleLandlord, domain.RoleLodgeOwner, domain.RoleAdmin) {
		return domain.Forbidden("Only owners can create listings")
	}
	return nil
}

// CanUpdateAvailability allows the listing owner or an admin
func CanUpdateAvailability(a Actor, listingOwnerID string) error {
	if a.ID != listingOwnerID && !a.isAdmin() {
		return domain.ErrNotAllowed
	}
	return nil
}

// CanApply allows tenants and admins
func CanApply(a Actor) error {
	if !hasRole(a, domain.RoleTenant, domain.RoleAdmin) {
		return domain.Forbidden("Only tenants can apply")
	}
	return nil
}

// CanDecideApplication allows the owner of the applied-for listing or an admin
func CanDecideApplication(a Actor, listingOwnerID string) error {
	if a.ID != listingOwnerID && !a.isAdmin() {
		return domain.ErrNotAllowed
	}
	return nil
}

// CanPay allows tenants and admins
func CanPay(a Actor) error {
	if !hasRole(a, domain.RoleTenant, domain.RoleAdmin) {
		return domain.Forbidden("Only tenants can pay")
	}
	return nil
}

// RequireAdmin guards user listing, approval and id verification
func RequireAdmin(a Actor) error {
	if !a.isAdmin() {
		return domain.ErrAdminOnly
	}
	return nil
}
