package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/hotel-backoffice/database"
	"github.com/yeremiapane/hotel-backoffice/models"
	"github.com/yeremiapane/hotel-backoffice/utils"
	"gorm.io/gorm"
)

// CustomerService resolves free-text (name, phone) pairs to customer ids.
type CustomerService struct {
	store *database.Store
}

func NewCustomerService(store *database.Store) *CustomerService {
	return &CustomerService{store: store}
}

// Ensure returns the id of the customer with exactly this name and phone,
// creating the row when none exists. A NULL phone matches "".
// Email is only stored on creation.
func (s *CustomerService) Ensure(ctx context.Context, name, phone, email string) (uint, error) {
	var id uint
	err := s.store.Transaction(ctx, func(tx *gorm.DB) error {
		var err error
		id, err = ensureCustomer(tx, name, phone, email)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ensureCustomer is the transaction-bound form used by the ledgers.
func ensureCustomer(tx *gorm.DB, name, phone, email string) (uint, error) {
	var customer models.Customer
	err := tx.Where("name = ? AND COALESCE(phone, '') = ?", name, phone).
		Order("id").
		Take(&customer).Error
	if err == nil {
		return customer.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("failed to look up customer: %w", err)
	}

	customer = models.Customer{Name: name, Phone: &phone}
	if email != "" {
		customer.Email = &email
	}
	if err := tx.Create(&customer).Error; err != nil {
		return 0, fmt.Errorf("failed to create customer: %w", err)
	}
	utils.InfoLogger.Debugf("created customer %d", customer.ID)
	return customer.ID, nil
}
