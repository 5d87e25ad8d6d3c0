package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/karimsaad/wasel_backend/config"
	"github.com/karimsaad/wasel_backend/internal/api/http/handler"
	"github.com/karimsaad/wasel_backend/internal/api/http/middleware"
	"github.com/karimsaad/wasel_backend/internal/service/account"
	"github.com/karimsaad/wasel_backend/internal/service/assignment"
	"github.com/karimsaad/wasel_backend/internal/service/delivery"
	"github.com/karimsaad/wasel_backend/internal/service/inventory"
	"github.com/karimsaad/wasel_backend/internal/service/payout"
	"github.com/karimsaad/wasel_backend/internal/service/shipment"
	"github.com/karimsaad/wasel_backend/internal/service/tier"
	"github.com/karimsaad/wasel_backend/internal/service/wallet"
	"github.com/karimsaad/wasel_backend/pkg/s3"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg           *config.Config
	S3            *s3.Client
	ShipmentSvc   shipment.Service
	DeliverySvc   delivery.Service
	AssignmentSvc assignment.Service
	PayoutSvc     payout.Service
	WalletSvc     wallet.Service
	AccountSvc    account.Service
	TierSvc       tier.Service
	InventorySvc  inventory.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	adminOnly := middleware.RequireRole("admin")

	shipmentH := handler.NewShipmentHandler(r.p.ShipmentSvc, r.p.S3)
	deliveryH := handler.NewDeliveryHandler(r.p.DeliverySvc)
	assignmentH := handler.NewAssignmentHandler(r.p.AssignmentSvc)
	payoutH := handler.NewPayoutHandler(r.p.PayoutSvc, r.p.S3)
	walletH := handler.NewWalletHandler(r.p.WalletSvc)
	accountH := handler.NewAccountHandler(r.p.AccountSvc)
	tierH := handler.NewTierHandler(r.p.TierSvc)
	inventoryH := handler.NewInventoryHandler(r.p.InventorySvc)
	evidenceH := handler.NewEvidenceHandler(r.p.S3)

	api := app.Group("/api/v1")
	api.Get("/evidence/*", evidenceH.Download, adminOnly)

	r.registerShipmentRoutes(api, shipmentH, deliveryH, assignmentH, adminOnly)
	r.registerPayoutRoutes(api, payoutH, adminOnly)
	r.registerWalletRoutes(api, walletH, adminOnly)
	r.registerAccountRoutes(api, accountH, tierH, adminOnly)
	r.registerTierRoutes(api, tierH, adminOnly)
	r.registerInventoryRoutes(api, inventoryH, adminOnly)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
