package linkage

import (
	"testing"

	"estatecrm_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetOrderDetails(t *testing.T) {
	db := newTestDB(t)
	client := createClient(t, db, "Jane Doe")
	property := createProperty(t, db, "Detail Home", model.PropertyStatusForSale)
	order := createOrder(t, db, client.ID, property.ID, model.OrderStatusPending)

	details, err := GetOrderDetails(db, testUserID, order.ID)
	require.NoError(t, err)

	assert.Equal(t, order.ID, details.Order.ID)
	require.NotNil(t, details.Client)
	assert.Equal(t, "Jane Doe", details.Client.Name)
	require.NotNil(t, details.Property)
	assert.Equal(t, "Detail Home", details.Property.Name)
}

func TestGetOrderDetailsDeletedProperty(t *testing.T) {
	db := newTestDB(t)
	client := createClient(t, db, "Jane Doe")
	property := createProperty(t, db, "Doomed Home", model.PropertyStatusForSale)
	order := createOrder(t, db, client.ID, property.ID, model.OrderStatusPending)

	require.NoError(t, db.Delete(&model.Property{}, property.ID).Error)

	details, err := GetOrderDetails(db, testUserID, order.ID)
	require.NoError(t, err, "orphaned order must still render, not fail")

	require.NotNil(t, details.Client)
	assert.Nil(t, details.Property, "deleted property renders as a placeholder")
}

func TestGetOrderDetailsUnknownOrder(t *testing.T) {
	db := newTestDB(t)

	_, err := GetOrderDetails(db, testUserID, 42)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSweepOrphanedOrders(t *testing.T) {
	db := newTestDB(t)
	client := createClient(t, db, "Jane Doe")
	kept := createProperty(t, db, "Kept Home", model.PropertyStatusForSale)
	doomed := createProperty(t, db, "Doomed Home", model.PropertyStatusForSale)

	createOrder(t, db, client.ID, kept.ID, model.OrderStatusPending)
	orphan := createOrder(t, db, client.ID, doomed.ID, model.OrderStatusPending)

	require.NoError(t, db.Delete(&model.Property{}, doomed.ID).Error)

	orphans, err := SweepOrphanedOrders(db, testUserID)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, orphan.ID, orphans[0].ID)
}
