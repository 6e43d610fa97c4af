package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Client is a contact actively associated with properties through purchase
// orders. Deleting a client requires a confirmation step on the dashboard;
// its orders are not cascaded.
type Client struct {
	gorm.Model
	Name        string         `json:"name" gorm:"not null"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	LastContact datatypes.Date `json:"last_contact"`

	UserID uint `json:"user_id" gorm:"index"`
	User   User `json:"-" gorm:"foreignKey:UserID"`
}
