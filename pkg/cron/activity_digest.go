package cron

import (
	"log"
	"time"

	"estatecrm_backend/internal/model"
	"estatecrm_backend/pkg/database"
	"estatecrm_backend/pkg/email"

	"github.com/robfig/cron/v3"
)

// InitActivityDigestCron mails every user a summary of their last seven days
// of CRM activity, Sundays at 20:00.
func InitActivityDigestCron() {
	c := cron.New()

	_, err := c.AddFunc("0 20 * * 0", sendWeeklyDigests)
	if err != nil {
		log.Printf("Could not initialize activity digest cron: %v", err)
		return
	}

	c.Start()
}

func sendWeeklyDigests() {
	if email.GlobalEmailService == nil {
		log.Println("Email service not configured, skipping weekly digests")
		return
	}

	weekStart := time.Now().AddDate(0, 0, -7)
	db := database.GetDB()

	var users []model.User
	if err := db.Find(&users).Error; err != nil {
		log.Printf("Error fetching users for digest: %v", err)
		return
	}

	for _, user := range users {
		var newLeads, newOrders, soldCount int64
		var salesVolume float64

		db.Model(&model.Lead{}).
			Where("user_id = ? AND created_at >= ?", user.ID, weekStart).
			Count(&newLeads)

		db.Model(&model.PurchaseOrder{}).
			Where("user_id = ? AND created_at >= ?", user.ID, weekStart).
			Count(&newOrders)

		db.Model(&model.Property{}).
			Where("user_id = ? AND status = ? AND updated_at >= ?", user.ID, model.PropertyStatusSold, weekStart).
			Count(&soldCount)

		db.Model(&model.Property{}).
			Where("user_id = ? AND status = ? AND updated_at >= ?", user.ID, model.PropertyStatusSold, weekStart).
			Select("COALESCE(SUM(price), 0)").
			Scan(&salesVolume)

		if newLeads == 0 && newOrders == 0 && soldCount == 0 {
			continue
		}

		err := email.GlobalEmailService.SendWeeklyDigest(
			user.Email, user.Name, newLeads, newOrders, soldCount, salesVolume, weekStart,
		)
		if err != nil {
			log.Printf("Error sending weekly digest to %s: %v", user.Email, err)
		}
	}
}
