package model

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Name     string `json:"name" gorm:"not null"`
	Avatar   string `json:"avatar"`

	Properties []Property      `json:"-"`
	Clients    []Client        `json:"-"`
	Leads      []Lead          `json:"-"`
	Orders     []PurchaseOrder `json:"-" gorm:"foreignKey:UserID"`
}

func (u *User) GetPublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":     u.ID,
		"email":  u.Email,
		"name":   u.Name,
		"avatar": u.Avatar,
	}
}
