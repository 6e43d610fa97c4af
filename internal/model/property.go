package model

import (
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// PropertyStatus is the listing state shown on the dashboard. It is also
// written by the order status propagator: a sold order marks its property
// Sold, and leaving Sold reverts the property to For Sale.
type PropertyStatus string

const (
	PropertyStatusForSale PropertyStatus = "For Sale"
	PropertyStatusPending PropertyStatus = "Pending"
	PropertyStatusSold    PropertyStatus = "Sold"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyStatusForSale, PropertyStatusPending, PropertyStatusSold:
		return true
	}
	return false
}

type Property struct {
	gorm.Model
	Name     string         `json:"name"`
	Slug     string         `json:"slug" gorm:"uniqueIndex:idx_user_property_slug"`
	Address  string         `json:"address" gorm:"not null"`
	Price    float64        `json:"price" gorm:"not null"`
	Beds     int            `json:"beds" gorm:"not null"`
	Baths    int            `json:"baths" gorm:"not null"`
	Sqft     int            `json:"sqft" gorm:"not null"`
	ImageURL string         `json:"image_url"`
	Status   PropertyStatus `json:"status" gorm:"not null;default:'For Sale'"`

	UserID uint `json:"user_id" gorm:"index;uniqueIndex:idx_user_property_slug"`
	User   User `json:"-" gorm:"foreignKey:UserID"`
}

// DisplayName is what tables and emails show for a listing; unnamed
// properties fall back to their address.
func (p *Property) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Address
}

// BeforeCreate derives a URL-friendly slug from the name, or the address for
// unnamed listings. Collisions within a user get the creation date appended.
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.Slug != "" {
		return nil
	}

	source := p.Name
	if source == "" {
		source = p.Address
	}
	s := slug.Make(source)

	var count int64
	tx.Model(&Property{}).Where("user_id = ? AND slug = ?", p.UserID, s).Count(&count)
	if count > 0 {
		s = s + "-" + p.CreatedAt.Format("20060102")
	}

	p.Slug = s
	return nil
}
