package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yeremiapane/hotel-backoffice/database"
	"github.com/yeremiapane/hotel-backoffice/models"
	"github.com/yeremiapane/hotel-backoffice/utils"
	"gorm.io/gorm/clause"
)

// CategoryService manages the support categories offered when filing a
// ticket.
type CategoryService struct {
	store *database.Store
}

func NewCategoryService(store *database.Store) *CategoryService {
	return &CategoryService{store: store}
}

// ListActive returns active category names in insertion order.
func (s *CategoryService) ListActive(ctx context.Context) ([]string, error) {
	var names []string
	err := s.store.DB(ctx).Model(&models.TicketCategory{}).
		Where("is_active = ?", true).
		Order("id").
		Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket categories: %w", err)
	}
	return names, nil
}

// Add registers a category. Adding an existing name is a no-op.
func (s *CategoryService) Add(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCategoryRequired
	}

	result := s.store.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.TicketCategory{Name: name, Active: true})
	if result.Error != nil {
		return fmt.Errorf("failed to add ticket category: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		utils.InfoLogger.Infof("ticket category %q added", name)
	}
	return nil
}
