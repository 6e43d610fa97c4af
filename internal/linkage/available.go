package linkage

import (
	"estatecrm_backend/internal/model"

	"gorm.io/gorm"
)

// AvailableProperties lists the properties the link form may offer for a
// client: everything not already Sold, minus properties the client is
// already linked to through an existing order. The exclusion filter runs in
// memory over the client's order rows; datasets are one user's listings, so
// both reads stay small and unpaginated.
func AvailableProperties(db *gorm.DB, userID, clientID uint) ([]model.Property, error) {
	var linkedIDs []uint
	if err := db.Model(&model.PurchaseOrder{}).
		Where("user_id = ? AND client_id = ?", userID, clientID).
		Pluck("property_id", &linkedIDs).Error; err != nil {
		return nil, err
	}

	excluded := make(map[uint]bool, len(linkedIDs))
	for _, id := range linkedIDs {
		excluded[id] = true
	}

	var candidates []model.Property
	if err := db.Where("user_id = ? AND status <> ?", userID, model.PropertyStatusSold).
		Order("created_at desc").
		Find(&candidates).Error; err != nil {
		return nil, err
	}

	available := make([]model.Property, 0, len(candidates))
	for _, p := range candidates {
		if !excluded[p.ID] {
			available = append(available, p)
		}
	}

	return available, nil
}

// LinkPropertyToClient records a client's interest in a property as a new
// Pending order. The property's availability is not re-checked here; the
// form fetched its options moments earlier and the window between the two
// is accepted.
func LinkPropertyToClient(db *gorm.DB, userID, clientID, propertyID uint) (*model.PurchaseOrder, error) {
	order := model.PurchaseOrder{
		ClientID:   clientID,
		PropertyID: propertyID,
		UserID:     userID,
		Status:     model.OrderStatusPending,
	}

	if err := db.Create(&order).Error; err != nil {
		return nil, err
	}

	return &order, nil
}
