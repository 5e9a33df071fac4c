package domain

// Role represents user role in the system
type Role string

const (
	RoleTenant     Role = "tenant"
	RoleLandlord   Role = "landlord"
	RoleLodgeOwner Role = "lodge_owner"
	RoleAdmin      Role = "admin"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleTenant, RoleLandlord, RoleLodgeOwner, RoleAdmin:
		return true
	}
	return false
}

// PricingType is the billing period of a listing price
type PricingType string

const (
	PricingMonthly PricingType = "monthly"
	PricingDaily   PricingType = "daily"
	PricingHourly  PricingType = "hourly"
)

// PropertyType classifies a listing
type PropertyType string

const (
	PropertyHouse     PropertyType = "house"
	PropertyRoom      PropertyType = "room"
	PropertyApartment PropertyType = "apartment"
	PropertyLodgeRoom PropertyType = "lodge_room"
	PropertyOther     PropertyType = "other"
)

// ApplicationStatus is the state of a rental application.
// pending -> approved | rejected
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// DecisionStatus maps an approve flag onto the resulting status
func DecisionStatus(approve bool) ApplicationStatus {
	if approve {
		return ApplicationApproved
	}
	return ApplicationRejected
}

// PaymentMethod is the mobile money rail used by the tenant
type PaymentMethod string

const (
	MethodEcocash PaymentMethod = "ecocash"
	MethodPaynow  PaymentMethod = "paynow"
)

// PaymentStatus is the settlement state of a payment
type PaymentStatus string

const (
	PaymentInitiated  PaymentStatus = "initiated"
	PaymentSuccessful PaymentStatus = "successful"
	PaymentFailed     PaymentStatus = "failed"
)

// Location is a geographic point with an optional address
type Location struct {
	Lat     float64 `bson:"lat" json:"lat"`
	Lng     float64 `bson:"lng" json:"lng"`
	Address *string `bson:"address" json:"address"`
}
