package model

import "gorm.io/gorm"

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "New"
	LeadStatusContacted LeadStatus = "Contacted"
	LeadStatusQualified LeadStatus = "Qualified"
	LeadStatusLost      LeadStatus = "Lost"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusLost:
		return true
	}
	return false
}

// Lead is a prospective contact. It carries no relationship to any other
// entity; converting a lead means creating a Client by hand.
type Lead struct {
	gorm.Model
	Name       string     `json:"name" gorm:"not null"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Source     string     `json:"source"`
	AssignedTo string     `json:"assigned_to"`
	Status     LeadStatus `json:"status" gorm:"not null;default:'New'"`

	UserID uint `json:"user_id" gorm:"index"`
	User   User `json:"-" gorm:"foreignKey:UserID"`
}
