package assignment

import (
	"testing"

	"github.com/google/uuid"
)

func TestPickCourier(t *testing.T) {
	a := uuid.Must(uuid.NewV7())
	b := uuid.Must(uuid.NewV7())

	tests := []struct {
		name       string
		zone       string
		candidates []Candidate
		want       int
	}{
		{
			"lowest workload wins",
			"downtown",
			[]Candidate{
				{CourierID: a, Zones: []string{"downtown"}, Active: 2},
				{CourierID: b, Zones: []string{"downtown"}, Active: 0},
			},
			1,
		},
		{
			"tie goes to first found",
			"downtown",
			[]Candidate{
				{CourierID: a, Zones: []string{"downtown"}, Active: 1},
				{CourierID: b, Zones: []string{"downtown"}, Active: 1},
			},
			0,
		},
		{
			"zone filter excludes busy-but-wrong couriers",
			"suburbs",
			[]Candidate{
				{CourierID: a, Zones: []string{"downtown"}, Active: 0},
				{CourierID: b, Zones: []string{"suburbs", "downtown"}, Active: 5},
			},
			1,
		},
		{
			"no coverage",
			"desert",
			[]Candidate{
				{CourierID: a, Zones: []string{"downtown"}, Active: 0},
			},
			-1,
		},
		{
			"empty candidates",
			"downtown",
			nil,
			-1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PickCourier(tt.zone, tt.candidates); got != tt.want {
				t.Errorf("PickCourier(%q) = %d, want %d", tt.zone, got, tt.want)
			}
		})
	}
}

// Two shipments, couriers at workloads 0 and 2: both must go to the idle
// courier, because after the first pick its workload is still below the
// other's.
func TestPickCourierSequentialBalancing(t *testing.T) {
	idle := uuid.Must(uuid.NewV7())
	busy := uuid.Must(uuid.NewV7())
	candidates := []Candidate{
		{CourierID: busy, Zones: []string{"downtown"}, Active: 2},
		{CourierID: idle, Zones: []string{"downtown"}, Active: 0},
	}

	first := PickCourier("downtown", candidates)
	if candidates[first].CourierID != idle {
		t.Fatalf("first pick went to courier with workload %d", candidates[first].Active)
	}
	candidates[first].Active++

	second := PickCourier("downtown", candidates)
	if candidates[second].CourierID != idle {
		t.Fatalf("second pick should still prefer workload 1 over 2")
	}
}
