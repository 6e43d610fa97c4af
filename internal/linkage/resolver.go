// Package linkage navigates the client<->property many-to-many relation
// through the purchase_orders join table. Every lookup is scoped to one
// user's rows; the caller passes the user id explicitly instead of the
// package reading it from request state.
//
// Functions here return errors instead of swallowing them, so callers can
// tell "no links" apart from "the fetch failed". The HTTP layer keeps the
// dashboard's lossy behavior (log and render empty) at the edge.
package linkage

import (
	"estatecrm_backend/internal/model"

	"gorm.io/gorm"
)

// PropertiesLinkedToClient resolves the client's properties of interest in
// two steps: collect the property ids off the client's orders, then fetch
// the full property rows. An unlinked client yields an empty slice.
func PropertiesLinkedToClient(db *gorm.DB, userID, clientID uint) ([]model.Property, error) {
	var propertyIDs []uint
	if err := db.Model(&model.PurchaseOrder{}).
		Where("user_id = ? AND client_id = ?", userID, clientID).
		Pluck("property_id", &propertyIDs).Error; err != nil {
		return nil, err
	}

	if len(propertyIDs) == 0 {
		return []model.Property{}, nil
	}

	var properties []model.Property
	if err := db.Where("user_id = ? AND id IN ?", userID, propertyIDs).
		Find(&properties).Error; err != nil {
		return nil, err
	}

	return properties, nil
}

// ClientLinkedToProperty performs the symmetric lookup. When several orders
// reference the property the most recent one wins. Returns nil, nil when the
// property is unlinked or the linked client row no longer exists.
func ClientLinkedToProperty(db *gorm.DB, userID, propertyID uint) (*model.Client, error) {
	var order model.PurchaseOrder
	err := db.Where("user_id = ? AND property_id = ?", userID, propertyID).
		Order("created_at desc").
		First(&order).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var client model.Client
	err = db.Where("user_id = ?", userID).First(&client, order.ClientID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &client, nil
}
