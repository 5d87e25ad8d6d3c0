// Package pricing computes client shipping fees and courier commissions.
// Fees are fixed on the shipment at creation, commissions at assignment;
// later scheme or rate changes never apply retroactively.
package pricing

import "github.com/karimsaad/wasel_backend/internal/model"

// ReferralBonus is the fixed, company-funded bonus paid to a courier's
// referrer per successful delivery by the referred courier.
const ReferralBonus = 15.0

// flatSchedule is the priority-indexed courier commission for the flat
// scheme. It overrides any per-courier stored flat amount.
var flatSchedule = map[string]float64{
	model.PriorityStandard: 30,
	model.PriorityExpress:  50,
	model.PriorityUrgent:   70,
}

// Commission schemes.
const (
	SchemeFlat       = "flat"
	SchemePercentage = "percentage"
)

// ClientFee returns the shipping fee for a client at shipment creation:
// flat rate × priority multiplier, reduced by the partner-tier discount.
// A missing multiplier for the priority means no scaling.
func ClientFee(flatRate float64, priority string, multipliers map[string]float64, discountPct float64) float64 {
	fee := flatRate
	if m, ok := multipliers[priority]; ok && m > 0 {
		fee *= m
	}
	if discountPct > 0 {
		fee *= 1 - discountPct/100
	}
	return fee
}

// FinalPrice derives the shipment price from the payment method. Transfer
// shipments price at the collection amount (the fee is settled out of
// band); everything else prices at declared value plus fee.
func FinalPrice(method string, packageValue, amountToCollect, fee float64) float64 {
	if method == model.PaymentTransfer {
		return amountToCollect
	}
	return packageValue + fee
}

// CourierCommission returns the commission frozen on the shipment at
// assignment time.
func CourierCommission(scheme string, commissionValue float64, priority string, price float64) float64 {
	if scheme == SchemePercentage {
		return price * commissionValue / 100
	}
	return flatSchedule[priority]
}
