package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/hotel-backoffice/config"
	"github.com/yeremiapane/hotel-backoffice/database"
	"github.com/yeremiapane/hotel-backoffice/models"
	"gorm.io/gorm"
)

func TestOpen_Drivers(t *testing.T) {
	for _, driver := range []string{config.DriverSQLite, config.DriverSQLitePure} {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			store := openTestStore(t, driver)
			assert.Equal(t, "sqlite", store.Dialect())

			require.NoError(t, database.InitSchema(ctx, store, database.SchemaOptions{}))

			// Foreign keys are enforced on every connection
			err := store.DB(ctx).Create(&models.OrderItem{OrderID: 999, ItemID: 999, Qty: 1, LineTotal: 1}).Error
			assert.Error(t, err)
		})
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := database.Open(context.Background(), config.StoreConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestOpen_MissingDSN(t *testing.T) {
	for _, driver := range []string{config.DriverMySQL, config.DriverPostgres} {
		_, err := database.Open(context.Background(), config.StoreConfig{Driver: driver})
		assert.Error(t, err, driver)
	}
}

func TestContains_CaseSensitive(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, config.DriverSQLite)
	require.NoError(t, database.InitSchema(ctx, store, database.SchemaOptions{}))

	require.NoError(t, store.DB(ctx).Create(&models.Room{RoomNo: "A1", RoomType: "Suite", PricePerNight: 1, Active: true}).Error)

	var count int64
	require.NoError(t, store.DB(ctx).Model(&models.Room{}).
		Where(store.Contains("room_type"), database.Pattern("uit")).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, store.DB(ctx).Model(&models.Room{}).
		Where(store.Contains("room_type"), database.Pattern("suite")).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestTransaction_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, config.DriverSQLite)
	require.NoError(t, database.InitSchema(ctx, store, database.SchemaOptions{}))

	boom := errors.New("boom")
	err := store.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&models.TicketCategory{Name: "Spa", Active: true}).Error; err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, store.DB(ctx).Model(&models.TicketCategory{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPattern(t *testing.T) {
	assert.Equal(t, "%Ali%", database.Pattern("Ali"))
	assert.Equal(t, "%%", database.Pattern(""))
}
