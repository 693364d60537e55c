package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/hotel-backoffice/models"
)

func TestEnsure_Idempotent(t *testing.T) {
	svc, store := setupTestServices(t)
	ctx := context.Background()

	first, err := svc.Customers.Ensure(ctx, "Ali Khan", "0300-1234567", "ali@example.com")
	require.NoError(t, err)
	second, err := svc.Customers.Ensure(ctx, "Ali Khan", "0300-1234567", "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), countRows(t, store, &models.Customer{}))

	var customer models.Customer
	require.NoError(t, store.DB(ctx).First(&customer, first).Error)
	require.NotNil(t, customer.Email)
	assert.Equal(t, "ali@example.com", *customer.Email)
}

func TestEnsure_DistinctIdentities(t *testing.T) {
	svc, store := setupTestServices(t)
	ctx := context.Background()

	a, err := svc.Customers.Ensure(ctx, "Sara", "111", "")
	require.NoError(t, err)
	b, err := svc.Customers.Ensure(ctx, "Sara", "222", "")
	require.NoError(t, err)
	c, err := svc.Customers.Ensure(ctx, "Sara", "", "")
	require.NoError(t, err)
	d, err := svc.Customers.Ensure(ctx, "sara", "111", "")
	require.NoError(t, err)

	assert.Len(t, map[uint]struct{}{a: {}, b: {}, c: {}, d: {}}, 4)
	assert.Equal(t, int64(4), countRows(t, store, &models.Customer{}))
}

func TestEnsure_NullPhoneMatchesEmpty(t *testing.T) {
	svc, store := setupTestServices(t)
	ctx := context.Background()

	// Rows from older stores may carry a NULL phone
	require.NoError(t, store.DB(ctx).Exec("INSERT INTO customers(name, phone) VALUES (?, NULL)", "Walk-in").Error)
	var legacy models.Customer
	require.NoError(t, store.DB(ctx).Where("name = ?", "Walk-in").Take(&legacy).Error)

	id, err := svc.Customers.Ensure(ctx, "Walk-in", "", "")
	require.NoError(t, err)
	assert.Equal(t, legacy.ID, id)
	assert.Equal(t, int64(1), countRows(t, store, &models.Customer{}))
}
