package reviewRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reviewController "yelpcamp/controllers/review"
	reviewValidator "yelpcamp/validators/review"
)

// SetupReviewRoutes registers the review sub-resource routes
func SetupReviewRoutes(app *fiber.App, db *gorm.DB) {
	ct := reviewController.New(db)

	group := app.Group("/campgrounds/:id/reviews")

	group.Post("/", reviewValidator.Create(), ct.Create)
	group.Delete("/:reviewId", ct.Delete)
}
