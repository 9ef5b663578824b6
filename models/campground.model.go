package models

import "gorm.io/gorm"

// Campground is the primary listing entity. It is the aggregate root for its
// reviews: deleting a campground must also remove every attached review, which
// the campground controller performs inside one transaction.
type Campground struct {
	gorm.Model
	Title       string  `gorm:"not null" json:"title"`
	Price       float64 `gorm:"not null;check:price >= 0" json:"price"`
	Image       string  `gorm:"not null" json:"image"`
	Location    string  `gorm:"not null" json:"location"`
	Description string  `gorm:"type:text;not null" json:"description"`

	// Relations
	Reviews []Review `gorm:"foreignKey:CampgroundID" json:"reviews,omitempty"`
}

func (Campground) TableName() string {
	return "campgrounds"
}
