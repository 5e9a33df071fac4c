package domain

import "github.com/shopspring/decimal"

// DefaultPlatformFeeRate is the share of every payment retained by the marketplace
const DefaultPlatformFeeRate = 0.05

// Split is the division of a payment between the platform and the listing owner
type Split struct {
	Amount      float64
	PlatformFee float64
	OwnerAmount float64
}

// SplitPayment computes platform_fee = round(amount*rate, 2) and owner_amount = round(amount-fee, 2).
// Both parts always add back up to the amount at 2 decimal places.
func SplitPayment(amount, rate float64) Split {
	total := decimal.NewFromFloat(amount)
	fee := total.Mul(decimal.NewFromFloat(rate)).Round(2)
	owner := total.Sub(fee).Round(2)

	return Split{
		Amount:      amount,
		PlatformFee: fee.InexactFloat64(),
		OwnerAmount: owner.InexactFloat64(),
	}
}
