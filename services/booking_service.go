package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/hotel-backoffice/database"
	"github.com/yeremiapane/hotel-backoffice/models"
	"github.com/yeremiapane/hotel-backoffice/utils"
	"gorm.io/gorm"
)

// DateLayout is the calendar date format of check-in and check-out.
const DateLayout = "2006-01-02"

type BookingService struct {
	store *database.Store
}

func NewBookingService(store *database.Store) *BookingService {
	return &BookingService{store: store}
}

// StayNights parses both dates and returns the number of nights between
// them. A span of zero or fewer nights is rejected.
func StayNights(checkIn, checkOut string) (int, error) {
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return 0, fmt.Errorf("%w: check-in %q", ErrInvalidDate, checkIn)
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return 0, fmt.Errorf("%w: check-out %q", ErrInvalidDate, checkOut)
	}

	// Keduanya UTC tengah malam, jadi selisihnya selalu kelipatan 24 jam
	nights := int(out.Sub(in).Hours() / 24)
	if nights <= 0 {
		return 0, ErrNonPositiveStay
	}
	return nights, nil
}

// CreateBooking books a room for the given stay at the room's current
// nightly price. All validation happens before the store is touched; the
// room lookup, customer resolution and insert share one transaction.
func (s *BookingService) CreateBooking(ctx context.Context, customerName, phone string, roomID uint, checkIn, checkOut string) (uint, error) {
	if roomID == 0 {
		return 0, ErrRoomRequired
	}
	nights, err := StayNights(checkIn, checkOut)
	if err != nil {
		return 0, err
	}

	booking := models.Booking{
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Nights:   nights,
		Status:   models.BookingStatusBooked,
	}
	err = s.store.Transaction(ctx, func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Select("id", "price_per_night").First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", ErrRoomNotFound, roomID)
			}
			return fmt.Errorf("failed to look up room: %w", err)
		}

		customerID, err := ensureCustomer(tx, customerName, phone, "")
		if err != nil {
			return err
		}

		booking.CustomerID = customerID
		booking.Total = int64(nights) * room.PricePerNight
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		utils.ErrorLogger.WithError(err).Error("booking not created")
		return 0, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"room_id":    roomID,
		"nights":     nights,
		"total":      booking.Total,
	}).Info("booking created")
	return booking.ID, nil
}

// ListBookings returns every booking newest first.
func (s *BookingService) ListBookings(ctx context.Context) ([]models.BookingRow, error) {
	return s.ListBookingsFiltered(ctx, BookingFilter{})
}

// ListBookingsFiltered returns bookings joined with their customer and room,
// newest first.
func (s *BookingService) ListBookingsFiltered(ctx context.Context, filter BookingFilter) ([]models.BookingRow, error) {
	query := s.store.DB(ctx).Table("bookings AS b").
		Select("b.id, b.created_at, c.name, COALESCE(c.phone, '') AS phone, r.room_no, r.room_type, b.nights, b.total, b.status").
		Joins("JOIN customers c ON c.id = b.customer_id").
		Joins("JOIN rooms r ON r.id = b.room_id")
	if filter.Name != "" {
		query = query.Where(s.store.Contains("c.name"), database.Pattern(filter.Name))
	}
	if filter.Phone != "" {
		query = query.Where(s.store.Contains("COALESCE(c.phone, '')"), database.Pattern(filter.Phone))
	}

	var rows []models.BookingRow
	if err := query.Order("b.id DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return rows, nil
}
