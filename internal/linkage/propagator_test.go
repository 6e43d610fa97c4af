package linkage

import (
	"testing"

	"estatecrm_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestChangeOrderStatusToSoldMarksPropertySold(t *testing.T) {
	db := newTestDB(t)
	client := createClient(t, db, "Jane Doe")
	property := createProperty(t, db, "Sold Soon", model.PropertyStatusForSale)
	order := createOrder(t, db, client.ID, property.ID, model.OrderStatusPending)

	err := ChangeOrderStatus(db, testUserID, order.ID, property.ID, model.OrderStatusSold, model.OrderStatusPending)
	require.NoError(t, err)

	assert.Equal(t, model.OrderStatusSold, orderStatus(t, db, order.ID))
	assert.Equal(t, model.PropertyStatusSold, propertyStatus(t, db, property.ID))
}

func TestChangeOrderStatusLeavingSoldRevertsToForSale(t *testing.T) {
	tests := []struct {
		name      string
		newStatus model.OrderStatus
	}{
		{name: "sold to pending", newStatus: model.OrderStatusPending},
		{name: "sold to cancelled", newStatus: model.OrderStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			client := createClient(t, db, "Jane Doe")
			property := createProperty(t, db, "Was Sold", model.PropertyStatusSold)
			order := createOrder(t, db, client.ID, property.ID, model.OrderStatusSold)

			err := ChangeOrderStatus(db, testUserID, order.ID, property.ID, tt.newStatus, model.OrderStatusSold)
			require.NoError(t, err)

			assert.Equal(t, tt.newStatus, orderStatus(t, db, order.ID))
			// The revert target is always For Sale, even when the order
			// moves back to Pending.
			assert.Equal(t, model.PropertyStatusForSale, propertyStatus(t, db, property.ID))
		})
	}
}

func TestChangeOrderStatusBetweenNonSoldLeavesPropertyAlone(t *testing.T) {
	db := newTestDB(t)
	client := createClient(t, db, "Jane Doe")
	property := createProperty(t, db, "Untouched", model.PropertyStatusPending)
	order := createOrder(t, db, client.ID, property.ID, model.OrderStatusPending)

	err := ChangeOrderStatus(db, testUserID, order.ID, property.ID, model.OrderStatusCancelled, model.OrderStatusPending)
	require.NoError(t, err)

	assert.Equal(t, model.PropertyStatusPending, propertyStatus(t, db, property.ID))
}

func TestChangeOrderStatusIdempotentForSameStatus(t *testing.T) {
	db := newTestDB(t)
	client := createClient(t, db, "Jane Doe")
	property := createProperty(t, db, "Stable", model.PropertyStatusSold)
	order := createOrder(t, db, client.ID, property.ID, model.OrderStatusSold)

	err := ChangeOrderStatus(db, testUserID, order.ID, property.ID, model.OrderStatusSold, model.OrderStatusSold)
	require.NoError(t, err)

	assert.Equal(t, model.OrderStatusSold, orderStatus(t, db, order.ID))
	assert.Equal(t, model.PropertyStatusSold, propertyStatus(t, db, property.ID))
}

func TestChangeOrderStatusRejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	client := createClient(t, db, "Jane Doe")
	property := createProperty(t, db, "Safe", model.PropertyStatusForSale)
	order := createOrder(t, db, client.ID, property.ID, model.OrderStatusPending)

	err := ChangeOrderStatus(db, testUserID, order.ID, property.ID, "Archived", model.OrderStatusPending)
	require.Error(t, err)

	assert.Equal(t, model.OrderStatusPending, orderStatus(t, db, order.ID))
	assert.Equal(t, model.PropertyStatusForSale, propertyStatus(t, db, property.ID))
}

func TestChangeOrderStatusLeavesOtherUsersPropertyAlone(t *testing.T) {
	db := newTestDB(t)
	client := createClient(t, db, "Jane Doe")

	victim := model.Property{
		Name: "Not Yours", Address: "Elsewhere 1", Price: 500000,
		Sqft: 100, Status: model.PropertyStatusForSale, UserID: testUserID + 1,
	}
	require.NoError(t, db.Create(&victim).Error)

	// The caller's own order paired with a property id owned by someone
	// else: the order moves, the foreign property does not.
	order := createOrder(t, db, client.ID, victim.ID, model.OrderStatusPending)

	err := ChangeOrderStatus(db, testUserID, order.ID, victim.ID, model.OrderStatusSold, model.OrderStatusPending)
	require.NoError(t, err)

	assert.Equal(t, model.OrderStatusSold, orderStatus(t, db, order.ID))
	assert.Equal(t, model.PropertyStatusForSale, propertyStatus(t, db, victim.ID))
}

func TestChangeOrderStatusRejectsOtherUsersOrder(t *testing.T) {
	db := newTestDB(t)
	client := createClient(t, db, "Jane Doe")
	property := createProperty(t, db, "Scoped", model.PropertyStatusForSale)
	order := createOrder(t, db, client.ID, property.ID, model.OrderStatusPending)

	err := ChangeOrderStatus(db, testUserID+1, order.ID, property.ID, model.OrderStatusSold, model.OrderStatusPending)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.Equal(t, model.OrderStatusPending, orderStatus(t, db, order.ID))
	assert.Equal(t, model.PropertyStatusForSale, propertyStatus(t, db, property.ID))
}

func TestChangeOrderStatusMissingOrderDoesNotTouchProperty(t *testing.T) {
	db := newTestDB(t)
	property := createProperty(t, db, "No Order", model.PropertyStatusForSale)

	err := ChangeOrderStatus(db, testUserID, 9999, property.ID, model.OrderStatusSold, model.OrderStatusPending)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.Equal(t, model.PropertyStatusForSale, propertyStatus(t, db, property.ID))
}
