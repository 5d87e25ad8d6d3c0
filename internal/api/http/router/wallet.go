package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/karimsaad/wasel_backend/internal/api/http/handler"
)

func (r *Router) registerWalletRoutes(
	api fiber.Router,
	wh *handler.WalletHandler,
	adminOnly fiber.Handler,
) {
	wallets := api.Group("/wallets")

	wallets.Post("/deposits", wh.Deposit, adminOnly)
	wallets.Post("/reconcile", wh.ReconcileAll, adminOnly)

	w := wallets.Group("/:type/:id")
	w.Get("/transactions", wh.List)
	w.Get("/balance", wh.Summary)
	w.Post("/reconcile", wh.Reconcile, adminOnly)
}
