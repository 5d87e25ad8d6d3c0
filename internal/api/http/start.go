package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/karimsaad/wasel_backend/config"
	"github.com/karimsaad/wasel_backend/internal/api/http/router"
	"github.com/karimsaad/wasel_backend/internal/app"
)

func Start(cfg *config.Config, timeout time.Duration) {
	fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		app.WorkerModule,
		app.JobsModule,
		router.Module,
		Module,

		// Invoking *fiber.App forces NewServer to run and register the
		// lifecycle hooks.
		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(timeout),
	).Run()
}
