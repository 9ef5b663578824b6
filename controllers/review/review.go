package reviewController

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yelpcamp/models"
	reviewValidator "yelpcamp/validators/review"
)

// Controller serves the review sub-resource routes
type Controller struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{db: db}
}

// Create persists a validated review against its owning campground and
// redirects to that campground's show page. Looking up the owner and writing
// the review happen in one transaction, so the review is attached atomically
// from the caller's point of view.
func (ct *Controller) Create(c *fiber.Ctx) error {
	campgroundID, err := parseID(c, "id", "Campground not found!")
	if err != nil {
		return err
	}

	form := c.Locals(reviewValidator.CreateFormKey).(*reviewValidator.ReviewForm)

	if err := ct.db.Transaction(func(tx *gorm.DB) error {
		var campground models.Campground
		if err := tx.First(&campground, campgroundID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Campground not found!")
			}
			return err
		}

		review := models.Review{
			CampgroundID: campground.ID,
			Body:         form.Body,
			Rating:       *form.Rating,
		}
		return tx.Create(&review).Error
	}); err != nil {
		return err
	}

	return c.Redirect(fmt.Sprintf("/campgrounds/%d", campgroundID))
}

// Delete removes a review and thereby detaches it from its owner. A review id
// under the wrong campground counts as not found.
func (ct *Controller) Delete(c *fiber.Ctx) error {
	campgroundID, err := parseID(c, "id", "Campground not found!")
	if err != nil {
		return err
	}
	reviewID, err := parseID(c, "reviewId", "Review not found!")
	if err != nil {
		return err
	}

	var review models.Review
	if err := ct.db.Where("id = ? AND campground_id = ?", reviewID, campgroundID).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Review not found!")
		}
		return err
	}

	if err := ct.db.Delete(&review).Error; err != nil {
		return err
	}

	return c.Redirect(fmt.Sprintf("/campgrounds/%d", campgroundID))
}

func parseID(c *fiber.Ctx, param, notFound string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusNotFound, notFound)
	}
	return uint(id), nil
}
