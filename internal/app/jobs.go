package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"github.com/karimsaad/wasel_backend/config"
	"github.com/karimsaad/wasel_backend/internal/ledger"
	"github.com/karimsaad/wasel_backend/internal/repo"
	entshipment "github.com/karimsaad/wasel_backend/internal/repo/shipment"
	enttx "github.com/karimsaad/wasel_backend/internal/repo/transaction"
	"github.com/karimsaad/wasel_backend/internal/service/assignment"
	"github.com/karimsaad/wasel_backend/internal/service/shipment"
	"github.com/karimsaad/wasel_backend/internal/service/tier"
	s3pkg "github.com/karimsaad/wasel_backend/pkg/s3"
)

// JobsModule runs the periodic background jobs: auto-assignment, the
// overdue-shipment sweep, daily tier recalculation, and evidence cleanup.
var JobsModule = fx.Module("jobs",
	fx.Invoke(RegisterJobs),
)

type JobsParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	DB         *repo.Client
	Shipments  shipment.Service
	Assignment assignment.Service
	Tiers      tier.Service
	S3         *s3pkg.Client
}

func RegisterJobs(p JobsParams) {
	ctx, cancel := context.WithCancel(context.Background())

	p.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go runEvery(ctx, time.Duration(p.Cfg.Jobs.AutoAssignMinutes)*time.Minute, "auto_assign", func(ctx context.Context) error {
				n, err := p.Assignment.AutoAssign(ctx)
				if n > 0 {
					slog.Info("auto_assign: shipments assigned", "count", n)
				}
				return err
			})

			overdueAfter := time.Duration(p.Cfg.Jobs.OverdueAfterHours) * time.Hour
			go runEvery(ctx, time.Duration(p.Cfg.Jobs.OverdueSweepHours)*time.Hour, "overdue_sweep", func(ctx context.Context) error {
				n, err := p.Shipments.SweepOverdue(ctx, overdueAfter)
				if n > 0 {
					slog.Info("overdue_sweep: shipments flagged", "count", n)
				}
				return err
			})

			go runEvery(ctx, time.Duration(p.Cfg.Jobs.TierRecalcHours)*time.Hour, "tier_recalc", func(ctx context.Context) error {
				n, err := p.Tiers.RecalculateAll(ctx)
				if n > 0 {
					slog.Info("tier_recalc: tiers changed", "count", n)
				}
				return err
			})

			go runEvery(ctx, time.Duration(p.Cfg.Jobs.PhotoCleanupMinutes)*time.Minute, "evidence_cleanup", func(ctx context.Context) error {
				return cleanupEvidence(ctx, p.DB, p.S3)
			})

			slog.Info("background jobs started")
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

// runEvery drives one job on a fixed interval until the context ends.
func runEvery(ctx context.Context, interval time.Duration, name string, fn func(context.Context) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := fn(ctx); err != nil {
				slog.Warn("background job failed", "job", name, "err", err)
			}
		}
	}
}

// cleanupEvidence deletes uploaded evidence objects that nothing references
// anymore: failure photos whose shipment no longer points at them, and
// payout attachments whose entry no longer points at them. Uploads happen
// before the referencing write commits, so abandoned requests leave orphans.
func cleanupEvidence(ctx context.Context, db *repo.Client, s3 *s3pkg.Client) error {
	keys, err := s3.ListPrefix(ctx, "evidence/", 500)
	if err != nil {
		return err
	}

	for _, key := range keys {
		parts := strings.Split(key, "/")
		// evidence/{failure|payout}/{id}/{file}
		if len(parts) < 4 {
			continue
		}
		id, err := uuid.Parse(parts[2])
		if err != nil {
			continue
		}

		referenced := false
		switch parts[1] {
		case "failure":
			referenced, err = db.Shipment.Query().
				Where(
					entshipment.ID(id),
					entshipment.FailurePhoto(key),
				).
				Exist(ctx)
		case "payout":
			referenced, err = db.Transaction.Query().
				Where(
					enttx.ID(id),
					enttx.EvidenceRef(key),
					enttx.TypeEQ(enttx.Type(ledger.TypeWithdrawalProcessed)),
				).
				Exist(ctx)
		default:
			continue
		}
		if err != nil {
			slog.Warn("evidence_cleanup: reference check", "key", key, "err", err)
			continue
		}
		// Pending entries and freshly failed shipments reference their
		// uploads immediately, so anything unreferenced is an orphan.
		if referenced {
			continue
		}

		if err := s3.Delete(ctx, key); err != nil {
			slog.Warn("evidence_cleanup: delete", "key", key, "err", err)
			continue
		}
		slog.Debug("evidence_cleanup: removed orphan", "key", key)
	}

	return nil
}
