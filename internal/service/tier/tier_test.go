package tier

import (
	"testing"

	"github.com/karimsaad/wasel_backend/internal/model"
)

func TestQualifyingTier(t *testing.T) {
	// Sorted by MinShipments descending, as loadSettings produces.
	settings := []Setting{
		{Tier: model.TierGold, MinShipments: 300, DiscountPercent: 15},
		{Tier: model.TierSilver, MinShipments: 150, DiscountPercent: 10},
		{Tier: model.TierBronze, MinShipments: 50, DiscountPercent: 2},
	}

	tests := []struct {
		name  string
		count int
		want  string
	}{
		{"below bronze", 49, ""},
		{"exactly bronze", 50, model.TierBronze},
		{"mid bronze", 149, model.TierBronze},
		{"exactly silver", 150, model.TierSilver},
		{"exactly gold", 300, model.TierGold},
		{"far beyond gold", 10000, model.TierGold},
		{"zero", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QualifyingTier(settings, tt.count); got != tt.want {
				t.Errorf("QualifyingTier(%d) = %q, want %q", tt.count, got, tt.want)
			}
		})
	}
}

func TestQualifyingTierNoSettings(t *testing.T) {
	if got := QualifyingTier(nil, 500); got != "" {
		t.Errorf("no settings should yield no tier, got %q", got)
	}
}
