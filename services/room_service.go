package services

import (
	"context"
	"fmt"

	"github.com/yeremiapane/hotel-backoffice/database"
	"github.com/yeremiapane/hotel-backoffice/models"
)

type RoomService struct {
	store *database.Store
}

func NewRoomService(store *database.Store) *RoomService {
	return &RoomService{store: store}
}

// ListActive returns the bookable rooms ordered by room number.
func (s *RoomService) ListActive(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	err := s.store.DB(ctx).
		Where("is_active = ?", true).
		Order("room_no").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// SetActive takes a room out of (or back into) the listing. Existing
// bookings keep referencing it.
func (s *RoomService) SetActive(ctx context.Context, id uint, active bool) error {
	result := s.store.DB(ctx).Model(&models.Room{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return fmt.Errorf("failed to update room: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrRoomNotFound, id)
	}
	return nil
}
