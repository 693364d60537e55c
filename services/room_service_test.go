package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/hotel-backoffice/models"
	"github.com/yeremiapane/hotel-backoffice/services"
)

func roomNos(rooms []models.Room) []string {
	out := make([]string, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.RoomNo)
	}
	return out
}

func TestRooms_ListActive(t *testing.T) {
	svc, _ := setupTestServices(t)

	rooms, err := svc.Rooms.ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"101", "102", "201", "301"}, roomNos(rooms))
	assert.Equal(t, int64(3500), rooms[0].PricePerNight)
}

func TestRooms_DeactivateKeepsBookings(t *testing.T) {
	svc, store := setupTestServices(t)
	ctx := context.Background()
	deluxe := roomID(t, store, "201")

	bookingID, err := svc.Bookings.CreateBooking(ctx, "Ali", "0300", deluxe, "2025-05-01", "2025-05-04")
	require.NoError(t, err)
	var before models.Booking
	require.NoError(t, store.DB(ctx).First(&before, bookingID).Error)

	require.NoError(t, svc.Rooms.SetActive(ctx, deluxe, false))

	rooms, err := svc.Rooms.ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"101", "102", "301"}, roomNos(rooms))

	var after models.Booking
	require.NoError(t, store.DB(ctx).First(&after, bookingID).Error)
	assert.Equal(t, before.RoomID, after.RoomID)
	assert.Equal(t, before.CustomerID, after.CustomerID)
	assert.Equal(t, before.Nights, after.Nights)
	assert.Equal(t, before.Total, after.Total)
	assert.Equal(t, before.Status, after.Status)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))

	bookings, err := svc.Bookings.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "201", bookings[0].RoomNo)

	require.NoError(t, svc.Rooms.SetActive(ctx, deluxe, true))
	rooms, err = svc.Rooms.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 4)
}

func TestRooms_SetActiveUnknown(t *testing.T) {
	svc, _ := setupTestServices(t)
	err := svc.Rooms.SetActive(context.Background(), 9999, false)
	assert.ErrorIs(t, err, services.ErrRoomNotFound)
}
