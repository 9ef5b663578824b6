package campgroundController

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yelpcamp/models"
	campgroundValidator "yelpcamp/validators/campground"
)

// Controller serves every campground page. The database handle is injected at
// construction; handlers never reach for a package-level connection.
type Controller struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{db: db}
}

// Index renders the campground list
func (ct *Controller) Index(c *fiber.Ctx) error {
	var campgrounds []models.Campground
	if err := ct.db.Order("created_at DESC").Find(&campgrounds).Error; err != nil {
		return err
	}

	return c.Render("campgrounds/index", fiber.Map{
		"Title":       "All Campgrounds",
		"Campgrounds": campgrounds,
	}, "layouts/main")
}

// NewForm renders an empty creation form
func (ct *Controller) NewForm(c *fiber.Ctx) error {
	return c.Render("campgrounds/new", fiber.Map{
		"Title": "New Campground",
	}, "layouts/main")
}

// Create persists a validated campground and redirects to its show page
func (ct *Controller) Create(c *fiber.Ctx) error {
	form := c.Locals(campgroundValidator.CreateFormKey).(*campgroundValidator.CampgroundForm)

	campground := models.Campground{
		Title:       form.Title,
		Price:       *form.Price,
		Image:       form.Image,
		Location:    form.Location,
		Description: form.Description,
	}
	if err := ct.db.Create(&campground).Error; err != nil {
		return err
	}

	return c.Redirect(fmt.Sprintf("/campgrounds/%d", campground.ID))
}

// Show renders one campground with its resolved reviews
func (ct *Controller) Show(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var campground models.Campground
	if err := ct.db.Preload("Reviews", func(db *gorm.DB) *gorm.DB {
		return db.Order("reviews.created_at ASC")
	}).First(&campground, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Campground not found!")
		}
		return err
	}

	return c.Render("campgrounds/show", fiber.Map{
		"Title":      campground.Title,
		"Campground": campground,
	}, "layouts/main")
}

// EditForm renders the edit form pre-filled
func (ct *Controller) EditForm(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var campground models.Campground
	if err := ct.db.First(&campground, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Campground not found!")
		}
		return err
	}

	return c.Render("campgrounds/edit", fiber.Map{
		"Title":      "Edit " + campground.Title,
		"Campground": campground,
	}, "layouts/main")
}

// Update applies a partial update of only the provided fields
func (ct *Controller) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var campground models.Campground
	if err := ct.db.First(&campground, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Campground not found!")
		}
		return err
	}

	form := c.Locals(campgroundValidator.UpdateFormKey).(*campgroundValidator.CampgroundUpdateForm)

	changes := map[string]interface{}{}
	if form.Title != nil {
		changes["title"] = *form.Title
	}
	if form.Location != nil {
		changes["location"] = *form.Location
	}
	if form.Description != nil {
		changes["description"] = *form.Description
	}
	if form.Image != nil {
		changes["image"] = *form.Image
	}
	if form.Price != nil {
		changes["price"] = *form.Price
	}

	if len(changes) > 0 {
		if err := ct.db.Model(&campground).Updates(changes).Error; err != nil {
			return err
		}
	}

	return c.Redirect(fmt.Sprintf("/campgrounds/%d", campground.ID))
}

// Delete removes the campground and cascades to its reviews. The cascade is
// issued here, not by a store trigger, and runs in one transaction so a fault
// cannot leave reviews orphaned behind a deleted owner.
func (ct *Controller) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var campground models.Campground
	if err := ct.db.First(&campground, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Campground not found!")
		}
		return err
	}

	if err := ct.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("campground_id = ?", campground.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&campground).Error
	}); err != nil {
		return err
	}

	return c.Redirect("/campgrounds")
}

// parseID reads the :id route parameter. An id that does not parse can never
// resolve to a record, so it is reported the same way as a missing one.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusNotFound, "Campground not found!")
	}
	return uint(id), nil
}
