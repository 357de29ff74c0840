package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/yeremiapane/ordering-system/config"
	"github.com/yeremiapane/ordering-system/controllers"
	"github.com/yeremiapane/ordering-system/database"
	"github.com/yeremiapane/ordering-system/models"
	"github.com/yeremiapane/ordering-system/utils"
	"github.com/yeremiapane/ordering-system/views"
)

var errEmptyCatalog = errors.New("catalog has no items")

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := run(context.Background(), cfg, logger, os.Stdin, os.Stdout); err != nil {
		logger.WithError(err).Fatal("ordering session failed")
	}
}

// run wires the catalog store, the console and one ordering session.
func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger, in io.Reader, out io.Writer) error {
	db, err := database.Open(cfg.Catalog.DSN)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.WithError(err).Warn("failed to close catalog database")
		}
	}()

	if err := database.Migrate(db); err != nil {
		return err
	}
	if cfg.Catalog.SeedMenu {
		if _, err := database.SeedMenu(db, models.DefaultMenu(), logger); err != nil {
			return err
		}
	}

	catalog, err := database.LoadCatalog(db)
	if err != nil {
		return err
	}
	if catalog.Len() == 0 {
		return fmt.Errorf("%w: check ORDERING_CATALOG_DSN or enable ORDERING_SEED_MENU", errEmptyCatalog)
	}
	logger.WithField("items", catalog.Len()).Debug("catalog loaded")

	view := views.NewConsoleView(in, out)
	ctrl := controllers.NewOrderingController(catalog, view, logger)
	_, err = ctrl.Run(ctx)
	return err
}
