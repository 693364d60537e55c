package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/hotel-backoffice/config"
	"github.com/yeremiapane/hotel-backoffice/models"
	"github.com/yeremiapane/hotel-backoffice/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SchemaOptions struct {
	Seed           bool
	CategoryPolicy config.CategoryPolicy
	// SeedFile overrides the embedded seed catalog when set.
	SeedFile string
}

// Tables in dependency order: a table is created after every table it
// references.
var schemaModels = []interface{}{
	&models.MenuItem{},
	&models.Order{},
	&models.OrderItem{},
	&models.Customer{},
	&models.Room{},
	&models.Booking{},
	&models.Ticket{},
	&models.TicketCategory{},
}

// Columns that older stores may lack.
var legacyColumns = []struct {
	model interface{}
	field string
}{
	{&models.Ticket{}, "Category"},
	{&models.MenuItem{}, "ImageHint"},
}

// InitSchema brings the store to the current schema and optionally seeds the
// reference data. Existing tables are never altered beyond adding the legacy
// columns, so it is safe to run on every start.
func InitSchema(ctx context.Context, store *Store, opts SchemaOptions) error {
	migrator := store.DB(ctx).Migrator()

	for _, model := range schemaModels {
		if migrator.HasTable(model) {
			continue
		}
		if err := migrator.CreateTable(model); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
		utils.InfoLogger.Debugf("created table for %T", model)
	}

	for _, col := range legacyColumns {
		if migrator.HasColumn(col.model, col.field) {
			continue
		}
		if err := migrator.AddColumn(col.model, col.field); err != nil {
			return fmt.Errorf("failed to add column %s to %T: %w", col.field, col.model, err)
		}
		utils.InfoLogger.Infof("added missing column %s to %T", col.field, col.model)
	}

	if !opts.Seed {
		return nil
	}

	catalog, err := LoadSeedCatalog(opts.SeedFile)
	if err != nil {
		return err
	}

	policy := opts.CategoryPolicy
	if policy == "" {
		policy = config.CategoryPolicyMerge
	}

	return store.Transaction(ctx, func(tx *gorm.DB) error {
		if err := seedMenu(tx, catalog); err != nil {
			return err
		}
		if err := seedRooms(tx, catalog); err != nil {
			return err
		}
		return seedCategories(tx, catalog.Categories, policy)
	})
}

func seedMenu(tx *gorm.DB, catalog *SeedCatalog) error {
	for _, item := range catalog.Menu {
		row := models.MenuItem{
			Name:     item.Name,
			Category: item.Category,
			Price:    item.Price,
			Active:   true,
		}
		if item.Image != "" {
			image := item.Image
			row.ImageHint = &image
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed menu item %q: %w", item.Name, err)
		}
	}

	// Items seeded before images existed keep an empty hint until backfilled.
	for name, image := range catalog.ImageHints() {
		err := tx.Model(&models.MenuItem{}).
			Where("name = ? AND (image_path IS NULL OR image_path = '')", name).
			Update("image_path", image).Error
		if err != nil {
			return fmt.Errorf("failed to backfill image for %q: %w", name, err)
		}
	}
	return nil
}

func seedRooms(tx *gorm.DB, catalog *SeedCatalog) error {
	for _, room := range catalog.Rooms {
		row := models.Room{
			RoomNo:        room.RoomNo,
			RoomType:      room.RoomType,
			PricePerNight: room.PricePerNight,
			Active:        true,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed room %s: %w", room.RoomNo, err)
		}
	}
	return nil
}

func seedCategories(tx *gorm.DB, canonical []string, policy config.CategoryPolicy) error {
	switch policy {
	case config.CategoryPolicyMerge:
	case config.CategoryPolicyReset:
		var existing []string
		if err := tx.Model(&models.TicketCategory{}).Order("id").Pluck("name", &existing).Error; err != nil {
			return fmt.Errorf("failed to read ticket categories: %w", err)
		}
		if discarded := missingFrom(existing, canonical); len(discarded) > 0 {
			utils.InfoLogger.WithFields(logrus.Fields{
				"discarded": discarded,
			}).Warn("category reset removes non-canonical ticket categories")
		}
		if err := tx.Where("1 = 1").Delete(&models.TicketCategory{}).Error; err != nil {
			return fmt.Errorf("failed to clear ticket categories: %w", err)
		}
	default:
		return fmt.Errorf("unknown category policy %q", policy)
	}

	for _, name := range canonical {
		row := models.TicketCategory{Name: name, Active: true}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed ticket category %q: %w", name, err)
		}
	}
	return nil
}

// missingFrom returns the names in have that are not in want, keeping order.
func missingFrom(have, want []string) []string {
	keep := make(map[string]struct{}, len(want))
	for _, name := range want {
		keep[name] = struct{}{}
	}
	var out []string
	for _, name := range have {
		if _, ok := keep[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}
