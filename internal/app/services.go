package app

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/karimsaad/wasel_backend/config"
	"github.com/karimsaad/wasel_backend/internal/events"
	"github.com/karimsaad/wasel_backend/internal/repo"
	"github.com/karimsaad/wasel_backend/internal/service/account"
	"github.com/karimsaad/wasel_backend/internal/service/assignment"
	"github.com/karimsaad/wasel_backend/internal/service/delivery"
	"github.com/karimsaad/wasel_backend/internal/service/inventory"
	"github.com/karimsaad/wasel_backend/internal/service/payout"
	"github.com/karimsaad/wasel_backend/internal/service/shipment"
	"github.com/karimsaad/wasel_backend/internal/service/tier"
	"github.com/karimsaad/wasel_backend/internal/service/wallet"
	"github.com/karimsaad/wasel_backend/pkg/sms"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideWalletService,
		ProvideShipmentService,
		ProvideDeliveryService,
		ProvidePayoutService,
		ProvideAssignmentService,
		ProvideTierService,
		ProvideAccountService,
		ProvideInventoryService,
	),
)

func ProvideWalletService(db *repo.Client) wallet.Service {
	return wallet.New(db, slog.Default())
}

func ProvideShipmentService(db *repo.Client, pub *events.Publisher) shipment.Service {
	return shipment.New(db, pub, slog.Default())
}

func ProvideDeliveryService(
	db *repo.Client,
	rdb *redis.Client,
	smsCli *sms.Client,
	pub *events.Publisher,
	cfg *config.Config,
) delivery.Service {
	return delivery.New(db, rdb, smsCli, pub, cfg, slog.Default())
}

func ProvidePayoutService(db *repo.Client, pub *events.Publisher) payout.Service {
	return payout.New(db, pub, slog.Default())
}

func ProvideAssignmentService(db *repo.Client, pub *events.Publisher) assignment.Service {
	return assignment.New(db, pub, slog.Default())
}

func ProvideTierService(db *repo.Client) tier.Service {
	return tier.New(db, slog.Default())
}

func ProvideAccountService(db *repo.Client) account.Service {
	return account.New(db, slog.Default())
}

func ProvideInventoryService(db *repo.Client) inventory.Service {
	return inventory.New(db)
}
