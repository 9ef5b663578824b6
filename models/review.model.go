package models

import "gorm.io/gorm"

// Review belongs to exactly one campground
type Review struct {
	gorm.Model
	CampgroundID uint   `gorm:"not null;index" json:"campgroundId"`
	Body         string `gorm:"type:text;not null" json:"body"`
	Rating       int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"` // 1–5 rating
}

func (Review) TableName() string {
	return "reviews"
}
