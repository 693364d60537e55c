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
	"gorm.io/gorm"
)

// Cart maps a menu item id to the quantity ordered.
type Cart map[uint]int

// OrderService records menu orders. Orders carry the customer as free text
// and do not go through the customer directory.
type OrderService struct {
	store *database.Store
}

func NewOrderService(store *database.Store) *OrderService {
	return &OrderService{store: store}
}

// CreateOrder prices every cart line at the current menu price and writes
// the order with its lines in one transaction. Inactive items can still be
// ordered. Nothing is written when any line is rejected.
func (s *OrderService) CreateOrder(ctx context.Context, customerName, phone string, cart Cart) (uint, error) {
	if len(cart) == 0 {
		return 0, ErrEmptyCart
	}

	itemIDs := make([]uint, 0, len(cart))
	for itemID, qty := range cart {
		if qty < 1 {
			return 0, fmt.Errorf("%w: item %d qty %d", ErrInvalidQuantity, itemID, qty)
		}
		itemIDs = append(itemIDs, itemID)
	}
	sort.Slice(itemIDs, func(i, j int) bool { return itemIDs[i] < itemIDs[j] })

	order := models.Order{CustomerName: customerName, Phone: phone}
	err := s.store.Transaction(ctx, func(tx *gorm.DB) error {
		lines := make([]models.OrderItem, 0, len(itemIDs))
		for _, itemID := range itemIDs {
			var item models.MenuItem
			if err := tx.Select("id", "price").First(&item, itemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: id %d", ErrItemNotFound, itemID)
				}
				return fmt.Errorf("failed to look up menu item: %w", err)
			}
			qty := cart[itemID]
			lineTotal := item.Price * int64(qty)
			order.Total += lineTotal
			lines = append(lines, models.OrderItem{ItemID: itemID, Qty: qty, LineTotal: lineTotal})
		}

		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		for i := range lines {
			lines[i].OrderID = order.ID
		}
		if err := tx.Create(&lines).Error; err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}
		return nil
	})
	if err != nil {
		utils.ErrorLogger.WithError(err).Error("order not created")
		return 0, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id": order.ID,
		"lines":    len(itemIDs),
		"total":    order.Total,
	}).Info("order created")
	return order.ID, nil
}

// ListOrders returns orders newest first.
func (s *OrderService) ListOrders(ctx context.Context, filter OrderFilter) ([]models.OrderRow, error) {
	query := s.store.DB(ctx).Model(&models.Order{}).
		Select("id, created_at, COALESCE(customer_name, '') AS customer_name, COALESCE(phone, '') AS phone, total")
	if filter.Name != "" {
		query = query.Where(s.store.Contains("customer_name"), database.Pattern(filter.Name))
	}
	if filter.Phone != "" {
		query = query.Where(s.store.Contains("COALESCE(phone, '')"), database.Pattern(filter.Phone))
	}

	var rows []models.OrderRow
	if err := query.Order("id DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return rows, nil
}

// OrderLines returns the lines of one order in insertion order.
func (s *OrderService) OrderLines(ctx context.Context, orderID uint) ([]models.OrderLineRow, error) {
	var rows []models.OrderLineRow
	err := s.store.DB(ctx).Table("order_items AS oi").
		Select("oi.id, oi.order_id, oi.item_id, m.name AS item_name, oi.qty, oi.line_total").
		Joins("JOIN menu_items m ON m.id = oi.item_id").
		Where("oi.order_id = ?", orderID).
		Order("oi.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	return rows, nil
}
