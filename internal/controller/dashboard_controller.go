package controller

import (
	"time"

	"estatecrm_backend/internal/model"
	"estatecrm_backend/pkg/database"
	"estatecrm_backend/pkg/utils/jwt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DashboardStats backs the metric cards and the sales chart.
type DashboardStats struct {
	TotalSales       float64          `json:"total_sales"`
	NewLeadsCount    int64            `json:"new_leads_count"`
	SoldProperties   int64            `json:"sold_properties_count"`
	ActiveProperties int64            `json:"active_properties_count"`
	RecentListings   []model.Property `json:"recent_listings"`
	MonthlySales     []MonthlySale    `json:"monthly_sales"`
}

type MonthlySale struct {
	Month string  `json:"month"`
	Sales float64 `json:"sales"`
}

// GetDashboardStats aggregates the user's CRM in one response: sales volume
// (sum of Sold listing prices), lead count, sold/active listing counts, the
// three most recent listings, and a per-month sales series for the chart.
func GetDashboardStats(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	db := database.GetDB()

	var stats DashboardStats

	db.Model(&model.Property{}).
		Where("user_id = ? AND status = ?", claims.UserID, model.PropertyStatusSold).
		Select("COALESCE(SUM(price), 0)").
		Scan(&stats.TotalSales)

	db.Model(&model.Lead{}).
		Where("user_id = ?", claims.UserID).
		Count(&stats.NewLeadsCount)

	db.Model(&model.Property{}).
		Where("user_id = ? AND status = ?", claims.UserID, model.PropertyStatusSold).
		Count(&stats.SoldProperties)

	db.Model(&model.Property{}).
		Where("user_id = ? AND status IN ?", claims.UserID,
			[]model.PropertyStatus{model.PropertyStatusForSale, model.PropertyStatusPending}).
		Count(&stats.ActiveProperties)

	if err := db.Where("user_id = ?", claims.UserID).
		Order("created_at desc").
		Limit(3).
		Find(&stats.RecentListings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch recent listings",
		})
	}

	stats.MonthlySales = monthlySales(db, claims.UserID, time.Now().Year())

	return c.JSON(stats)
}

// monthlySales buckets sales volume per month of the given year. Each bucket
// sums the prices of properties on Sold purchase orders created that month,
// so later edits to a sold listing never shift its revenue between months.
func monthlySales(db *gorm.DB, userID uint, year int) []MonthlySale {
	sales := make([]MonthlySale, 0, 12)
	for m := time.January; m <= time.December; m++ {
		start := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)

		var sum float64
		db.Model(&model.PurchaseOrder{}).
			Joins("JOIN properties ON properties.id = purchase_orders.property_id").
			Where("purchase_orders.user_id = ? AND purchase_orders.status = ?", userID, model.OrderStatusSold).
			Where("purchase_orders.created_at >= ? AND purchase_orders.created_at < ?", start, end).
			Select("COALESCE(SUM(properties.price), 0)").
			Scan(&sum)

		sales = append(sales, MonthlySale{
			Month: start.Format("Jan"),
			Sales: sum,
		})
	}
	return sales
}
