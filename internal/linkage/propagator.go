package linkage

import (
	"fmt"

	"estatecrm_backend/internal/model"

	"gorm.io/gorm"
)

// ChangeOrderStatus moves an order to newStatus and mirrors the change onto
// the linked property's denormalized status field:
//
//   - newStatus Sold        -> property becomes Sold
//   - leaving Sold          -> property reverts to For Sale
//   - anything else         -> property untouched
//
// The revert target is always For Sale, never Pending, matching what the
// dashboard has always done. Both writes run in one transaction, so the
// order cannot end up Sold while the property write is lost. A failing
// order write aborts before the property is touched.
//
// Both writes are scoped to userID, so an order id or property id belonging
// to another user affects nothing. A property write matching zero rows is
// not an error: orders may reference deleted properties.
//
// Callers re-fetch the order list afterwards; no rows are returned.
func ChangeOrderStatus(db *gorm.DB, userID, orderID, propertyID uint, newStatus, oldStatus model.OrderStatus) error {
	if !newStatus.Valid() {
		return fmt.Errorf("invalid order status %q", newStatus)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.PurchaseOrder{}).
			Where("id = ? AND user_id = ?", orderID, userID).
			Update("status", newStatus)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if newStatus == model.OrderStatusSold {
			return tx.Model(&model.Property{}).
				Where("id = ? AND user_id = ?", propertyID, userID).
				Update("status", model.PropertyStatusSold).Error
		}

		if oldStatus == model.OrderStatusSold {
			return tx.Model(&model.Property{}).
				Where("id = ? AND user_id = ?", propertyID, userID).
				Update("status", model.PropertyStatusForSale).Error
		}

		return nil
	})
}
