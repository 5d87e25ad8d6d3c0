package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/karimsaad/wasel_backend/config"
	"github.com/karimsaad/wasel_backend/internal/model"
	"github.com/karimsaad/wasel_backend/internal/repo"
	enttier "github.com/karimsaad/wasel_backend/internal/repo/tiersetting"
	"github.com/karimsaad/wasel_backend/pkg/database"
)

// Default tier thresholds; operators tune them later through the API.
var defaultTiers = []struct {
	tier            string
	minShipments    int
	discountPercent float64
}{
	{model.TierBronze, 50, 2},
	{model.TierSilver, 150, 10},
	{model.TierGold, 300, 15},
}

func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the database and seed defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			fmt.Println("Initializing database...")
			if err := database.InitializeDatabase(cfg); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			if err := database.MigrateEnt(ctx, client); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			if err := seedTierSettings(ctx, client); err != nil {
				return fmt.Errorf("failed to seed tier settings: %w", err)
			}

			fmt.Println("Database initialized successfully.")
			return nil
		},
	}

	return cmd
}

// seedTierSettings inserts the default tier thresholds, leaving any
// operator-tuned rows untouched.
func seedTierSettings(ctx context.Context, client *repo.Client) error {
	for _, t := range defaultTiers {
		exists, err := client.TierSetting.Query().
			Where(enttier.TierEQ(enttier.Tier(t.tier))).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check tier %s: %w", t.tier, err)
		}
		if exists {
			continue
		}
		if err := client.TierSetting.Create().
			SetTier(enttier.Tier(t.tier)).
			SetMinShipments(t.minShipments).
			SetDiscountPercent(t.discountPercent).
			Exec(ctx); err != nil {
			return fmt.Errorf("seed tier %s: %w", t.tier, err)
		}
	}
	return nil
}
