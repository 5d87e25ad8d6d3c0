package assignment

import "github.com/google/uuid"

// Candidate is one courier considered for assignment.
type Candidate struct {
	CourierID uuid.UUID
	Zones     []string
	Active    int
}

// PickCourier returns the index of the candidate covering the zone with the
// fewest active shipments, ties broken by first-found order. Returns -1
// when no candidate covers the zone. Callers assigning several shipments in
// one pass must bump the winner's Active before the next pick so ties do
// not all land on the same courier.
func PickCourier(zone string, candidates []Candidate) int {
	best := -1
	for i, c := range candidates {
		if !coversZone(c.Zones, zone) {
			continue
		}
		if best == -1 || c.Active < candidates[best].Active {
			best = i
		}
	}
	return best
}

func coversZone(zones []string, zone string) bool {
	for _, z := range zones {
		if z == zone {
			return true
		}
	}
	return false
}
