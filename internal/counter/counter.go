// Package counter increments named database sequences. Increments run as a
// single UPDATE inside the caller's transaction, so the row lock it takes
// serializes concurrent callers until commit.
package counter

import (
	"context"
	"fmt"

	"github.com/karimsaad/wasel_backend/internal/repo"
	entcounter "github.com/karimsaad/wasel_backend/internal/repo/counter"
)

// Well-known sequence names.
const (
	ShipmentSeq = "shipment_seq"
	ClientSeq   = "client_seq"
	CourierSeq  = "courier_seq"
)

// Next increments the named sequence and returns its new value (1-based).
// The sequence row is created on first use.
func Next(ctx context.Context, tx *repo.Tx, name string) (int64, error) {
	c, err := tx.Counter.Query().
		Where(entcounter.Name(name)).
		Only(ctx)
	if err != nil {
		if !repo.IsNotFound(err) {
			return 0, fmt.Errorf("get counter %q: %w", name, err)
		}
		c, err = tx.Counter.Create().
			SetName(name).
			SetValue(0).
			Save(ctx)
		if err != nil {
			// A concurrent creation won the unique constraint race.
			if !repo.IsConstraintError(err) {
				return 0, fmt.Errorf("create counter %q: %w", name, err)
			}
			c, err = tx.Counter.Query().
				Where(entcounter.Name(name)).
				Only(ctx)
			if err != nil {
				return 0, fmt.Errorf("reload counter %q: %w", name, err)
			}
		}
	}

	updated, err := tx.Counter.UpdateOne(c).
		AddValue(1).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("increment counter %q: %w", name, err)
	}

	return updated.Value, nil
}
