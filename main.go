package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/hotel-backoffice/assets"
	"github.com/yeremiapane/hotel-backoffice/config"
	"github.com/yeremiapane/hotel-backoffice/database"
	"github.com/yeremiapane/hotel-backoffice/services"
	"github.com/yeremiapane/hotel-backoffice/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.InitLogger("info")
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}
	utils.InitLogger(cfg.LogLevel)

	ctx := context.Background()

	store, err := bootstrap(ctx, cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Startup failed: %v", err)
	}
	defer store.Close()

	svc := services.New(store)
	reportImages(ctx, svc.Menu, assets.NewResolver(cfg.AssetsDir))

	categories, err := svc.Categories.ListActive(ctx)
	if err != nil {
		utils.ErrorLogger.Printf("Cannot list support categories: %v", err)
		return
	}
	utils.InfoLogger.Printf("Support categories: %s", strings.Join(categories, ", "))
}

// bootstrap opens the store, brings the schema up to date and makes sure
// the assets directory exists.
func bootstrap(ctx context.Context, cfg *config.Config) (*database.Store, error) {
	store, err := database.Open(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}

	err = database.InitSchema(ctx, store, database.SchemaOptions{
		Seed:           cfg.Seed.OnInit,
		CategoryPolicy: cfg.Seed.CategoryPolicy,
		SeedFile:       cfg.Seed.File,
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	utils.InfoLogger.WithFields(logrus.Fields{
		"driver": store.Dialect(),
		"seeded": cfg.Seed.OnInit,
	}).Info("Store ready")

	// Pastikan folder assets ada supaya gambar bisa langsung ditaruh
	if err := os.MkdirAll(cfg.AssetsDir, 0o755); err != nil {
		utils.ErrorLogger.Printf("Cannot create assets directory %s: %v", cfg.AssetsDir, err)
	}
	return store, nil
}

// reportImages logs, per active menu item, the image found or the place one
// is expected.
func reportImages(ctx context.Context, menu *services.MenuService, resolver *assets.Resolver) {
	items, err := menu.ListItems(ctx, services.AllCategories, "")
	if err != nil {
		utils.ErrorLogger.Printf("Cannot list menu items: %v", err)
		return
	}

	for _, item := range items {
		hint := ""
		if item.ImageHint != nil {
			hint = *item.ImageHint
		}
		if path, ok := resolver.Resolve(hint); ok {
			utils.InfoLogger.Debugf("Image for %s: %s", item.Name, path)
			continue
		}
		if expected := resolver.Expected(hint); expected != "" {
			utils.InfoLogger.Infof("No image for %s, expected at %s", item.Name, expected)
		} else {
			utils.InfoLogger.Infof("No image for %s", item.Name)
		}
	}
}
