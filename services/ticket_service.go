package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/hotel-backoffice/database"
	"github.com/yeremiapane/hotel-backoffice/models"
	"github.com/yeremiapane/hotel-backoffice/utils"
	"gorm.io/gorm"
)

type TicketService struct {
	store *database.Store
}

func NewTicketService(store *database.Store) *TicketService {
	return &TicketService{store: store}
}

// CreateTicket files a support ticket for the (name, phone) customer.
// Category is stored as given, whether or not the registry knows it.
func (s *TicketService) CreateTicket(ctx context.Context, name, phone, category, subject, message string) (uint, error) {
	if strings.TrimSpace(subject) == "" {
		return 0, ErrSubjectRequired
	}

	ticket := models.Ticket{
		Category: category,
		Subject:  subject,
		Message:  message,
		Status:   models.TicketStatusOpen,
	}
	err := s.store.Transaction(ctx, func(tx *gorm.DB) error {
		customerID, err := ensureCustomer(tx, name, phone, "")
		if err != nil {
			return err
		}
		ticket.CustomerID = &customerID
		if err := tx.Create(&ticket).Error; err != nil {
			return fmt.Errorf("failed to create ticket: %w", err)
		}
		return nil
	})
	if err != nil {
		utils.ErrorLogger.WithError(err).Error("ticket not created")
		return 0, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"ticket_id": ticket.ID,
		"category":  category,
	}).Info("ticket created")
	return ticket.ID, nil
}

// ListTickets returns every ticket newest first.
func (s *TicketService) ListTickets(ctx context.Context) ([]models.TicketRow, error) {
	return s.ListTicketsFiltered(ctx, TicketFilter{})
}

// ListTicketsFiltered returns tickets with their customer, if any, newest
// first. Tickets whose customer is gone have a nil Name and Phone.
func (s *TicketService) ListTicketsFiltered(ctx context.Context, filter TicketFilter) ([]models.TicketRow, error) {
	query := s.store.DB(ctx).Table("tickets AS t").
		Select("t.id, t.created_at, c.name, c.phone, COALESCE(t.category, '') AS category, t.subject, t.status").
		Joins("LEFT JOIN customers c ON c.id = t.customer_id")
	if filter.Name != "" {
		query = query.Where(s.store.Contains("c.name"), database.Pattern(filter.Name))
	}
	if filter.Phone != "" {
		query = query.Where(s.store.Contains("COALESCE(c.phone, '')"), database.Pattern(filter.Phone))
	}

	var rows []models.TicketRow
	if err := query.Order("t.id DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return rows, nil
}
