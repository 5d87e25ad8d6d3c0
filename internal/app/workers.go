package app

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/karimsaad/wasel_backend/config"
	"github.com/karimsaad/wasel_backend/internal/events"
	"github.com/karimsaad/wasel_backend/internal/repo"
	entuser "github.com/karimsaad/wasel_backend/internal/repo/user"
	"github.com/karimsaad/wasel_backend/pkg/email"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc    fx.Lifecycle
	NC    *nats.Conn
	DB    *repo.Client
	Email *email.Client
	Cfg   *config.Config
}

func RegisterWorkers(p WorkerParams) {
	if p.NC == nil {
		slog.Warn("workers disabled: no NATS connection")
		return
	}
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startStatusEmailWorker(p.NC, p.DB, p.Email, p.Cfg)
			startPayoutEmailWorker(p.NC, p.DB, p.Email, p.Cfg)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// status_email_worker
// ---------------------------------------------------------------------------

func startStatusEmailWorker(nc *nats.Conn, db *repo.Client, mailer *email.Client, cfg *config.Config) {
	_, err := nc.Subscribe(events.SubjectShipmentStatusPrefix+"*", func(msg *nats.Msg) {
		var ev events.ShipmentStatusEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("status_email_worker: bad payload", "subject", msg.Subject, "err", err)
			return
		}

		ctx := context.Background()

		client, err := db.User.Query().
			Where(entuser.ID(ev.ClientID)).
			Only(ctx)
		if err != nil {
			slog.Warn("status_email_worker: client not found", "client_id", ev.ClientID, "err", err)
			return
		}

		m := email.BuildStatusUpdateEmail(email.ShipmentEmailData{
			RecipientName: client.Name,
			Email:         client.Email,
			ShipmentID:    ev.DisplayID,
			Status:        ev.Status,
			AppName:       cfg.Server.AppName,
		})
		if err := mailer.Send(ctx, m); err != nil {
			slog.Warn("status_email_worker: send failed", "email", client.Email, "err", err)
		}
	})
	if err != nil {
		slog.Error("status_email_worker: subscribe failed", "err", err)
		return
	}

	slog.Info("status_email_worker: started")
}

// ---------------------------------------------------------------------------
// payout_email_worker
// ---------------------------------------------------------------------------

func startPayoutEmailWorker(nc *nats.Conn, db *repo.Client, mailer *email.Client, cfg *config.Config) {
	_, err := nc.Subscribe(events.SubjectPayoutDecided, func(msg *nats.Msg) {
		var ev events.PayoutEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("payout_email_worker: bad payload", "err", err)
			return
		}

		ctx := context.Background()

		owner, err := db.User.Query().
			Where(entuser.ID(ev.CourierID)).
			Only(ctx)
		if err != nil {
			slog.Warn("payout_email_worker: account owner not found", "account_id", ev.CourierID, "err", err)
			return
		}

		m := email.BuildPayoutDecisionEmail(owner.Email, owner.Name, cfg.Server.AppName, ev.Decision == "approved", ev.Amount)
		if err := mailer.Send(ctx, m); err != nil {
			slog.Warn("payout_email_worker: send failed", "email", owner.Email, "err", err)
		}
	})
	if err != nil {
		slog.Error("payout_email_worker: subscribe failed", "err", err)
		return
	}

	slog.Info("payout_email_worker: started")
}
