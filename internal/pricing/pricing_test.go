package pricing

import (
	"testing"

	"github.com/karimsaad/wasel_backend/internal/model"
)

func TestClientFee(t *testing.T) {
	multipliers := map[string]float64{
		model.PriorityStandard: 1,
		model.PriorityUrgent:   1.5,
		model.PriorityExpress:  2,
	}

	tests := []struct {
		name        string
		flatRate    float64
		priority    string
		discountPct float64
		want        float64
	}{
		{"standard no discount", 20, model.PriorityStandard, 0, 20},
		{"urgent multiplier", 20, model.PriorityUrgent, 0, 30},
		{"express multiplier", 20, model.PriorityExpress, 0, 40},
		{"silver discount", 20, model.PriorityStandard, 10, 18},
		{"gold discount on express", 20, model.PriorityExpress, 15, 34},
		{"zero flat rate", 0, model.PriorityExpress, 15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClientFee(tt.flatRate, tt.priority, multipliers, tt.discountPct)
			if got != tt.want {
				t.Errorf("ClientFee() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClientFeeMissingMultiplier(t *testing.T) {
	// No multiplier configured for the priority: fee is the flat rate.
	got := ClientFee(25, model.PriorityUrgent, nil, 0)
	if got != 25 {
		t.Errorf("ClientFee() = %v, want 25", got)
	}
}

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		packageValue    float64
		amountToCollect float64
		fee             float64
		want            float64
	}{
		{"cod is value plus fee", model.PaymentCOD, 100, 0, 20, 120},
		{"wallet is value plus fee", model.PaymentWallet, 100, 0, 20, 120},
		{"transfer is collection amount", model.PaymentTransfer, 100, 75, 20, 75},
		{"transfer with zero collection", model.PaymentTransfer, 100, 0, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FinalPrice(tt.method, tt.packageValue, tt.amountToCollect, tt.fee)
			if got != tt.want {
				t.Errorf("FinalPrice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCourierCommission(t *testing.T) {
	tests := []struct {
		name     string
		scheme   string
		value    float64
		priority string
		price    float64
		want     float64
	}{
		{"flat standard", SchemeFlat, 0, model.PriorityStandard, 500, 30},
		{"flat express", SchemeFlat, 0, model.PriorityExpress, 500, 50},
		{"flat urgent", SchemeFlat, 0, model.PriorityUrgent, 500, 70},
		// The schedule overrides any stored per-courier flat value.
		{"flat ignores stored value", SchemeFlat, 999, model.PriorityStandard, 500, 30},
		{"percentage", SchemePercentage, 10, model.PriorityStandard, 500, 50},
		{"percentage zero price", SchemePercentage, 10, model.PriorityUrgent, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CourierCommission(tt.scheme, tt.value, tt.priority, tt.price)
			if got != tt.want {
				t.Errorf("CourierCommission() = %v, want %v", got, tt.want)
			}
		})
	}
}
