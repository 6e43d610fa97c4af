package seed

import (
	"log"
	"time"

	"estatecrm_backend/internal/linkage"
	"estatecrm_backend/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedSampleData creates a sample client and links it to the user's first
// property through a pending order, so a fresh workspace has something to
// click on. Requires at least one existing property.
func SeedSampleData(db *gorm.DB, userID uint) error {
	client := model.Client{
		Name:        "João Silva",
		Email:       "joao.silva@email.com",
		Phone:       "(11) 99999-9999",
		LastContact: datatypes.Date(time.Now()),
		UserID:      userID,
	}
	if err := db.Create(&client).Error; err != nil {
		return err
	}
	log.Printf("Created sample client %q", client.Name)

	var property model.Property
	if err := db.Where("user_id = ?", userID).Order("created_at asc").First(&property).Error; err != nil {
		return err
	}

	order, err := linkage.LinkPropertyToClient(db, userID, client.ID, property.ID)
	if err != nil {
		return err
	}

	log.Printf("Linked %q to %q via order %d", client.Name, property.DisplayName(), order.ID)
	return nil
}
