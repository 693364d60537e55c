package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/hotel-backoffice/database"
	"github.com/yeremiapane/hotel-backoffice/models"
	"github.com/yeremiapane/hotel-backoffice/utils"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AllCategories is the pseudo-category that disables the category filter.
const AllCategories = "All"

type MenuService struct {
	store *database.Store
}

func NewMenuService(store *database.Store) *MenuService {
	return &MenuService{store: store}
}

// ListItems returns active items ordered by category then name. An empty
// category or AllCategories lists every category; search is a
// case-sensitive substring of the name.
func (s *MenuService) ListItems(ctx context.Context, category, search string) ([]models.MenuItem, error) {
	query := s.store.DB(ctx).Model(&models.MenuItem{}).Where("is_active = ?", true)
	if category != "" && category != AllCategories {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		query = query.Where(s.store.Contains("name"), database.Pattern(search))
	}

	var items []models.MenuItem
	if err := query.Order("category").Order("name").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

// Categories returns AllCategories followed by the distinct categories of
// active items in ascending order.
func (s *MenuService) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := s.store.DB(ctx).Model(&models.MenuItem{}).
		Where("is_active = ?", true).
		Distinct().
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list menu categories: %w", err)
	}
	return append([]string{AllCategories}, categories...), nil
}

// Item returns one menu item, active or not.
func (s *MenuService) Item(ctx context.Context, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.store.DB(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id %d", ErrItemNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return &item, nil
}

// ImportSimple inserts name→price pairs under one category, title-casing the
// names. Names that already exist are left untouched. It returns the number
// of rows actually inserted.
func (s *MenuService) ImportSimple(ctx context.Context, prices map[string]int64, category, defaultImage string) (int, error) {
	if category == "" {
		category = "Main"
	}

	// Urutkan nama supaya id yang dihasilkan deterministik
	names := make([]string, 0, len(prices))
	for name := range prices {
		names = append(names, name)
	}
	sort.Strings(names)

	title := cases.Title(language.English)
	inserted := 0
	err := s.store.Transaction(ctx, func(tx *gorm.DB) error {
		for _, name := range names {
			price := prices[name]
			if price < 0 {
				return fmt.Errorf("%w: negative price for %q", ErrValidation, name)
			}
			item := models.MenuItem{
				Name:     title.String(name),
				Category: category,
				Price:    price,
				Active:   true,
			}
			if defaultImage != "" {
				image := defaultImage
				item.ImageHint = &image
			}
			result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&item)
			if result.Error != nil {
				return fmt.Errorf("failed to import menu item %q: %w", name, result.Error)
			}
			inserted += int(result.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"category": category,
		"inserted": inserted,
		"skipped":  len(names) - inserted,
	}).Info("menu import finished")
	return inserted, nil
}

// SetImage sets the image hint of the item with exactly this name. It
// reports ErrItemNotFound when no item has that name.
func (s *MenuService) SetImage(ctx context.Context, name, hint string) error {
	result := s.store.DB(ctx).Model(&models.MenuItem{}).
		Where("name = ?", name).
		Update("image_path", hint)
	if result.Error != nil {
		return fmt.Errorf("failed to set menu image: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: name %q", ErrItemNotFound, name)
	}
	return nil
}

// SetActive retires or restores an item. Order history is unaffected.
func (s *MenuService) SetActive(ctx context.Context, id uint, active bool) error {
	result := s.store.DB(ctx).Model(&models.MenuItem{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return fmt.Errorf("failed to update menu item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrItemNotFound, id)
	}
	return nil
}
