package models

import (
	"time"

	"takuezy-housing/internal/core/domain"
)

// ============================================================
// Users & Auth
// ============================================================

// User represents the user collection
type User struct {
	ID           string      `bson:"_id,omitempty" json:"id"`
	FullName     string      `bson:"full_name" json:"full_name"`
	Role         domain.Role `bson:"role" json:"role"`
	Email        *string     `bson:"email" json:"email"`
	Phone        *string     `bson:"phone" json:"phone"`
	NationalID   string      `bson:"national_id" json:"national_id"`
	PasswordHash string      `bson:"password_hash" json:"-"`
	IsApproved   bool        `bson:"is_approved" json:"is_approved"`
	IDVerified   bool        `bson:"id_verified" json:"id_verified"`
	CreatedAt    time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time   `bson:"updated_at" json:"updated_at"`
}

// UserResponse DTO
type UserResponse struct {
	ID         string      `json:"id"`
	FullName   string      `json:"full_name"`
	Role       domain.Role `json:"role"`
	Email      *string     `json:"email"`
	Phone      *string     `json:"phone"`
	NationalID string      `json:"national_id"`
	IsApproved bool        `json:"is_approved"`
	IDVerified bool        `json:"id_verified"`
	CreatedAt  time.Time   `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		FullName:   u.FullName,
		Role:       u.Role,
		Email:      u.Email,
		Phone:      u.Phone,
		NationalID: u.NationalID,
		IsApproved: u.IsApproved,
		IDVerified: u.IDVerified,
		CreatedAt:  u.CreatedAt,
	}
}

// ============================================================
// Listings
// ============================================================

// Listing represents the listing collection
type Listing struct {
	ID           string              `bson:"_id,omitempty" json:"id"`
	OwnerID      string              `bson:"owner_id" json:"owner_id"`
	Title        string              `bson:"title" json:"title"`
	Description  *string             `bson:"description" json:"description"`
	Price        float64             `bson:"price" json:"price"`
	PricingType  domain.PricingType  `bson:"pricing_type" json:"pricing_type"`
	PropertyType domain.PropertyType `bson:"property_type" json:"property_type"`
	Facilities   []string            `bson:"facilities" json:"facilities"`
	MediaURLs    []string            `bson:"media_urls" json:"media_urls"`
	Location     domain.Location     `bson:"location" json:"location"`
	IsAvailable  bool                `bson:"is_available" json:"is_available"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updated_at"`
}

// ============================================================
// Applications
// ============================================================

// Application represents the application collection
type Application struct {
	ID         string                   `bson:"_id,omitempty" json:"id"`
	ListingID  string                   `bson:"listing_id" json:"listing_id"`
	TenantID   string                   `bson:"tenant_id" json:"tenant_id"`
	Message    *string                  `bson:"message" json:"message"`
	NationalID string                   `bson:"national_id" json:"national_id"`
	Status     domain.ApplicationStatus `bson:"status" json:"status"`
	CreatedAt  time.Time                `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time                `bson:"updated_at" json:"updated_at"`
}

// ============================================================
// Payments & Receipts
// ============================================================

// Payment represents the payment collection
type Payment struct {
	ID          string               `bson:"_id,omitempty" json:"id"`
	ListingID   string               `bson:"listing_id" json:"listing_id"`
	TenantID    string               `bson:"tenant_id" json:"tenant_id"`
	OwnerID     string               `bson:"owner_id" json:"owner_id"`
	Amount      float64              `bson:"amount" json:"amount"`
	Method      domain.PaymentMethod `bson:"method" json:"method"`
	PlatformFee float64              `bson:"platform_fee" json:"platform_fee"`
	OwnerAmount float64              `bson:"owner_amount" json:"owner_amount"`
	Status      domain.PaymentStatus `bson:"status" json:"status"`
	ReceiptID   *string              `bson:"receipt_id" json:"receipt_id"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updated_at"`
}

// Receipt represents the receipt collection
type Receipt struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	PaymentID   string    `bson:"payment_id" json:"payment_id"`
	Total       float64   `bson:"total" json:"total"`
	OwnerAmount float64   `bson:"owner_amount" json:"owner_amount"`
	PlatformFee float64   `bson:"platform_fee" json:"platform_fee"`
	PayeePhone  *string   `bson:"payee_phone" json:"payee_phone"`
	Reference   string    `bson:"reference" json:"reference"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
