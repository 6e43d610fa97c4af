package linkage

import (
	"fmt"
	"testing"

	"estatecrm_backend/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testUserID uint = 1

// newTestDB opens an isolated in-memory database per test. The shared cache
// keeps the database alive across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Client{},
		&model.Property{},
		&model.Lead{},
		&model.PurchaseOrder{},
	))

	return db
}

func createClient(t *testing.T, db *gorm.DB, name string) *model.Client {
	t.Helper()

	client := model.Client{Name: name, UserID: testUserID}
	require.NoError(t, db.Create(&client).Error)
	return &client
}

func createProperty(t *testing.T, db *gorm.DB, name string, status model.PropertyStatus) *model.Property {
	t.Helper()

	property := model.Property{
		Name:    name,
		Address: name + " Street 1",
		Price:   450000,
		Beds:    3,
		Baths:   2,
		Sqft:    1400,
		Status:  status,
		UserID:  testUserID,
	}
	require.NoError(t, db.Create(&property).Error)
	return &property
}

func createOrder(t *testing.T, db *gorm.DB, clientID, propertyID uint, status model.OrderStatus) *model.PurchaseOrder {
	t.Helper()

	order := model.PurchaseOrder{
		ClientID:   clientID,
		PropertyID: propertyID,
		Status:     status,
		UserID:     testUserID,
	}
	require.NoError(t, db.Create(&order).Error)
	return &order
}

func propertyStatus(t *testing.T, db *gorm.DB, id uint) model.PropertyStatus {
	t.Helper()

	var property model.Property
	require.NoError(t, db.First(&property, id).Error)
	return property.Status
}

func orderStatus(t *testing.T, db *gorm.DB, id uint) model.OrderStatus {
	t.Helper()

	var order model.PurchaseOrder
	require.NoError(t, db.First(&order, id).Error)
	return order.Status
}
