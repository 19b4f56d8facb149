package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/murkotick/storefront/internal/app"
	cartdomain "github.com/murkotick/storefront/internal/app/cart/domain"
	"github.com/murkotick/storefront/internal/config"
	"github.com/murkotick/storefront/internal/pkg/logger"
)

var (
	application *app.App
	log         = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Browse the product catalog and manage the shopping cart",
	Long: `storefront is the command-line front end of the storefront core.

The catalog commands filter, search and sort the product dataset.
The cart commands mutate a cart that is saved after every change and
restored on the next run.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}

		log, err = logger.New(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}

		application, err = app.New(cmd.Context(), cfg, log)
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}

		application.Cart.Subscribe(logCartEvents)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		defer func() { _ = log.Sync() }()
		if application == nil {
			return nil
		}
		return application.Close()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "path to a YAML config file")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-format", "", "log format (json, console)")
	pf.String("storage-driver", "", "cart storage driver (sqlite, spanner, memory)")
	pf.String("sqlite-path", "", "SQLite file for the cart snapshot")
	pf.String("spanner-database", "", "Spanner database name")
	pf.String("cart-key", "", "storage key of the cart snapshot")
	pf.String("catalog-source", "", "catalog source (static, spanner)")
	pf.String("dataset", "", "JSON or YAML dataset file (default: built-in dataset)")

	rootCmd.AddCommand(catalogCmd, cartCmd)
}

func logCartEvents(events []cartdomain.DomainEvent) {
	for _, e := range events {
		log.Info("cart changed",
			zap.String("event", e.EventType()),
			zap.String("product_id", e.ProductID()),
			zap.Time("at", e.OccurredAt()),
		)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
