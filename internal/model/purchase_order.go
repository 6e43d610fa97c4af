package model

import "gorm.io/gorm"

// OrderStatus has no enforced transition graph: any status can move to any
// other, including back out of Sold.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusSold      OrderStatus = "Sold"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusSold, OrderStatusCancelled:
		return true
	}
	return false
}

// PurchaseOrder links one client to one property. A client may hold several
// orders (one per property of interest). Properties and clients can be
// deleted out from under an order; migration runs without FK constraints so
// the link row survives and detail views render placeholders instead.
type PurchaseOrder struct {
	gorm.Model
	ClientID   uint        `json:"client_id" gorm:"index;not null"`
	PropertyID uint        `json:"property_id" gorm:"index;not null"`
	Status     OrderStatus `json:"status" gorm:"not null;default:'Pending'"`

	UserID uint `json:"user_id" gorm:"index"`

	Client   Client   `json:"client" gorm:"foreignKey:ClientID"`
	Property Property `json:"property" gorm:"foreignKey:PropertyID"`
	User     User     `json:"-" gorm:"foreignKey:UserID"`
}
