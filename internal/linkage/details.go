package linkage

import (
	"estatecrm_backend/internal/model"

	"gorm.io/gorm"
)

// OrderDetails joins an order with its client and property for the read-only
// detail view. The sub-aggregates are nil when the referenced row has been
// deleted; orders can outlive either side of the link and the view shows
// placeholders instead of failing.
type OrderDetails struct {
	Order    model.PurchaseOrder `json:"order"`
	Client   *model.Client       `json:"client"`
	Property *model.Property     `json:"property"`
}

// GetOrderDetails fetches the order row and then each linked entity
// separately, tolerating missing rows on both sides.
func GetOrderDetails(db *gorm.DB, userID, orderID uint) (*OrderDetails, error) {
	var order model.PurchaseOrder
	if err := db.Where("user_id = ?", userID).First(&order, orderID).Error; err != nil {
		return nil, err
	}

	details := &OrderDetails{Order: order}

	var client model.Client
	err := db.Where("user_id = ?", userID).First(&client, order.ClientID).Error
	if err == nil {
		details.Client = &client
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	var property model.Property
	err = db.Where("user_id = ?", userID).First(&property, order.PropertyID).Error
	if err == nil {
		details.Property = &property
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	return details, nil
}

// SweepOrphanedOrders reports orders whose client or property row no longer
// exists. Reporting only; the rows stay in place so detail views keep
// rendering them with placeholders.
func SweepOrphanedOrders(db *gorm.DB, userID uint) ([]model.PurchaseOrder, error) {
	var orders []model.PurchaseOrder
	err := db.Where("user_id = ?", userID).
		Where("property_id NOT IN (?) OR client_id NOT IN (?)",
			db.Model(&model.Property{}).Select("id").Where("user_id = ?", userID),
			db.Model(&model.Client{}).Select("id").Where("user_id = ?", userID),
		).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
