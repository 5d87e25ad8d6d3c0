package shipment

import "github.com/karimsaad/wasel_backend/internal/model"

// forwardNext is the adjacency of the lifecycle. Delivered appears here so
// the delivery-confirmation path can validate against the same table, but
// the generic status update refuses it separately.
var forwardNext = map[string][]string{
	model.StatusWaitingPackaging: {model.StatusPackaged},
	model.StatusPackaged:         {model.StatusAssigned},
	model.StatusAssigned:         {model.StatusOutForDelivery},
	model.StatusOutForDelivery:   {model.StatusDelivered, model.StatusFailed},
}

// revertPrev lists the only two supported reversions.
var revertPrev = map[string]string{
	model.StatusPackaged: model.StatusWaitingPackaging,
	model.StatusAssigned: model.StatusPackaged,
}

// CanTransition reports whether the lifecycle allows moving from one status
// directly to another.
func CanTransition(from, to string) bool {
	for _, next := range forwardNext[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanRevert reports whether the current status supports a revert, and the
// status it would fall back to.
func CanRevert(current string) (string, bool) {
	prev, ok := revertPrev[current]
	return prev, ok
}

// IsTerminal reports whether a status ends the main flow. A failed shipment
// can still be requeued by an operator, which is a separate admin operation.
func IsTerminal(status string) bool {
	return status == model.StatusDelivered || status == model.StatusFailed
}

// ValidStatus reports whether s is a known lifecycle status.
func ValidStatus(s string) bool {
	switch s {
	case model.StatusWaitingPackaging, model.StatusPackaged, model.StatusAssigned,
		model.StatusOutForDelivery, model.StatusDelivered, model.StatusFailed:
		return true
	}
	return false
}
