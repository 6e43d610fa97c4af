package controller

import (
	"estatecrm_backend/internal/linkage"
	"estatecrm_backend/internal/model"
	"estatecrm_backend/pkg/database"
	"estatecrm_backend/pkg/utils/jwt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const notInformed = "Not informed"

// OrderRow is the joined shape the purchase-orders table renders: the order
// with a summary of each side of the link. Missing rows (deleted property or
// client) come back as placeholders instead of failing the list.
type OrderRow struct {
	ID        uint              `json:"id"`
	Status    model.OrderStatus `json:"status"`
	CreatedAt string            `json:"created_at"`

	ClientID   uint   `json:"client_id"`
	ClientName string `json:"client_name"`

	PropertyID     uint                 `json:"property_id"`
	PropertyName   string               `json:"property_name"`
	PropertyStatus model.PropertyStatus `json:"property_status"`
}

// ListMyOrders returns the user's purchase orders joined with client and
// property summaries, newest first.
func ListMyOrders(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	var orders []model.PurchaseOrder
	if err := database.GetDB().Where("user_id = ?", claims.UserID).
		Preload("Client").
		Preload("Property").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch purchase orders",
		})
	}

	rows := make([]OrderRow, 0, len(orders))
	for _, order := range orders {
		row := OrderRow{
			ID:         order.ID,
			Status:     order.Status,
			CreatedAt:  order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			ClientID:   order.ClientID,
			PropertyID: order.PropertyID,
		}

		if order.Client.ID != 0 {
			row.ClientName = order.Client.Name
		} else {
			row.ClientName = notInformed
		}

		if order.Property.ID != 0 {
			row.PropertyName = order.Property.DisplayName()
			row.PropertyStatus = order.Property.Status
		} else {
			row.PropertyName = notInformed
		}

		rows = append(rows, row)
	}

	return c.JSON(rows)
}

type OrderStatusInput struct {
	PropertyID uint              `json:"property_id" validate:"required"`
	Status     model.OrderStatus `json:"status" validate:"required"`
	OldStatus  model.OrderStatus `json:"old_status" validate:"required"`
}

// UpdateOrderStatus runs the status propagator. The response carries no
// rows; the dashboard re-fetches the order list afterwards.
func UpdateOrderStatus(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	orderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order ID",
		})
	}

	input := new(OrderStatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	// Ownership check before the propagator touches anything.
	var order model.PurchaseOrder
	if err := database.GetDB().Where("user_id = ?", claims.UserID).First(&order, orderID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}

	err = linkage.ChangeOrderStatus(database.GetDB(), claims.UserID, uint(orderID), input.PropertyID, input.Status, input.OldStatus)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Order status updated successfully",
	})
}

// GetOrderDetails returns the read-only aggregate for the detail modal.
// Absent linked rows come back as null; the UI shows "Not informed".
func GetOrderDetails(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	orderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order ID",
		})
	}

	details, err := linkage.GetOrderDetails(database.GetDB(), claims.UserID, uint(orderID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch order details",
		})
	}

	return c.JSON(details)
}
