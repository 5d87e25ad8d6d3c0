package shipment

import (
	"testing"

	"github.com/karimsaad/wasel_backend/internal/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"waiting to packaged", model.StatusWaitingPackaging, model.StatusPackaged, true},
		{"packaged to assigned", model.StatusPackaged, model.StatusAssigned, true},
		{"assigned to out for delivery", model.StatusAssigned, model.StatusOutForDelivery, true},
		{"out for delivery to delivered", model.StatusOutForDelivery, model.StatusDelivered, true},
		{"out for delivery to failed", model.StatusOutForDelivery, model.StatusFailed, true},

		{"skip packaging", model.StatusWaitingPackaging, model.StatusAssigned, false},
		{"skip to delivered", model.StatusPackaged, model.StatusDelivered, false},
		{"backwards", model.StatusAssigned, model.StatusPackaged, false},
		{"from delivered", model.StatusDelivered, model.StatusFailed, false},
		{"from failed", model.StatusFailed, model.StatusOutForDelivery, false},
		{"unknown status", "teleported", model.StatusDelivered, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCanRevert(t *testing.T) {
	if prev, ok := CanRevert(model.StatusPackaged); !ok || prev != model.StatusWaitingPackaging {
		t.Errorf("packaged revert: got (%q, %v)", prev, ok)
	}
	if prev, ok := CanRevert(model.StatusAssigned); !ok || prev != model.StatusPackaged {
		t.Errorf("assigned revert: got (%q, %v)", prev, ok)
	}

	for _, status := range []string{
		model.StatusWaitingPackaging,
		model.StatusOutForDelivery,
		model.StatusDelivered,
		model.StatusFailed,
	} {
		if _, ok := CanRevert(status); ok {
			t.Errorf("revert from %q should not be allowed", status)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if !IsTerminal(model.StatusDelivered) || !IsTerminal(model.StatusFailed) {
		t.Error("delivered and failed are terminal")
	}
	if IsTerminal(model.StatusOutForDelivery) {
		t.Error("out_for_delivery is not terminal")
	}
}
