package linkage

import (
	"testing"

	"estatecrm_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailablePropertiesExcludesSold(t *testing.T) {
	db := newTestDB(t)
	client := createClient(t, db, "Jane Doe")
	forSale := createProperty(t, db, "For Sale Home", model.PropertyStatusForSale)
	pending := createProperty(t, db, "Pending Home", model.PropertyStatusPending)
	createProperty(t, db, "Sold Home", model.PropertyStatusSold)

	available, err := AvailableProperties(db, testUserID, client.ID)
	require.NoError(t, err)
	require.Len(t, available, 2)

	got := map[uint]bool{}
	for _, p := range available {
		got[p.ID] = true
	}
	assert.True(t, got[forSale.ID])
	assert.True(t, got[pending.ID])
}

func TestAvailablePropertiesExcludesAlreadyLinked(t *testing.T) {
	db := newTestDB(t)
	client := createClient(t, db, "Jane Doe")
	linked := createProperty(t, db, "Linked Home", model.PropertyStatusForSale)
	free := createProperty(t, db, "Free Home", model.PropertyStatusForSale)
	createOrder(t, db, client.ID, linked.ID, model.OrderStatusPending)

	available, err := AvailableProperties(db, testUserID, client.ID)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, free.ID, available[0].ID)
}

func TestAvailablePropertiesOtherClientsLinksDoNotExclude(t *testing.T) {
	db := newTestDB(t)
	jane := createClient(t, db, "Jane Doe")
	carlos := createClient(t, db, "Carlos Mendes")
	property := createProperty(t, db, "Shared Interest Home", model.PropertyStatusForSale)
	createOrder(t, db, carlos.ID, property.ID, model.OrderStatusPending)

	available, err := AvailableProperties(db, testUserID, jane.ID)
	require.NoError(t, err)
	require.Len(t, available, 1, "a property linked only to another client stays offerable")
	assert.Equal(t, property.ID, available[0].ID)
}

func TestLinkPropertyToClientCreatesPendingOrder(t *testing.T) {
	db := newTestDB(t)
	client := createClient(t, db, "Jane Doe")
	property := createProperty(t, db, "New Interest", model.PropertyStatusForSale)

	order, err := LinkPropertyToClient(db, testUserID, client.ID, property.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, client.ID, order.ClientID)
	assert.Equal(t, property.ID, order.PropertyID)
	assert.Equal(t, testUserID, order.UserID)
}

// The insert intentionally performs no availability re-check; a property that
// went Sold between form load and submit still gets linked.
func TestLinkPropertyToClientDoesNotRecheck(t *testing.T) {
	db := newTestDB(t)
	client := createClient(t, db, "Jane Doe")
	property := createProperty(t, db, "Raced Home", model.PropertyStatusSold)

	order, err := LinkPropertyToClient(db, testUserID, client.ID, property.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, order.Status)
}

// Full walkthrough of the dashboard's linking flow.
func TestJaneDoeScenario(t *testing.T) {
	db := newTestDB(t)
	jane := createClient(t, db, "Jane Doe")
	p1 := createProperty(t, db, "P1", model.PropertyStatusForSale)
	p2 := createProperty(t, db, "P2", model.PropertyStatusForSale)
	createProperty(t, db, "Already Sold", model.PropertyStatusSold)

	// No orders yet: every non-Sold property is on offer.
	available, err := AvailableProperties(db, testUserID, jane.ID)
	require.NoError(t, err)
	require.Len(t, available, 2)

	// Link Jane to P1: it drops out of her available list.
	order, err := LinkPropertyToClient(db, testUserID, jane.ID, p1.ID)
	require.NoError(t, err)

	available, err = AvailableProperties(db, testUserID, jane.ID)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, p2.ID, available[0].ID)

	// Selling the order marks P1 Sold.
	require.NoError(t, ChangeOrderStatus(db, testUserID, order.ID, p1.ID, model.OrderStatusSold, model.OrderStatusPending))
	assert.Equal(t, model.PropertyStatusSold, propertyStatus(t, db, p1.ID))

	// Cancelling afterwards reverts P1 to For Sale.
	require.NoError(t, ChangeOrderStatus(db, testUserID, order.ID, p1.ID, model.OrderStatusCancelled, model.OrderStatusSold))
	assert.Equal(t, model.PropertyStatusForSale, propertyStatus(t, db, p1.ID))
}
