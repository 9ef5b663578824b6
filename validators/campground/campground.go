package campgroundValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"yelpcamp/middleware"
)

// Locals keys where validated payloads are stored for the controllers
const (
	CreateFormKey = "campgroundForm"
	UpdateFormKey = "campgroundUpdateForm"
)

var validate = validator.New()

// CampgroundForm is the declarative schema for campground creation. Extra
// request fields are ignored. Price is a pointer so that 0 passes required
// while a missing price does not.
type CampgroundForm struct {
	Title       string   `json:"title" form:"title" validate:"required"`
	Location    string   `json:"location" form:"location" validate:"required"`
	Description string   `json:"description" form:"description" validate:"required"`
	Image       string   `json:"image" form:"image" validate:"required"`
	Price       *float64 `json:"price" form:"price" validate:"required,gte=0"`
}

// CampgroundUpdateForm is the schema for partial updates: only supplied
// fields are validated and only supplied fields reach the database.
type CampgroundUpdateForm struct {
	Title       *string  `json:"title" form:"title" validate:"omitempty,min=1"`
	Location    *string  `json:"location" form:"location" validate:"omitempty,min=1"`
	Description *string  `json:"description" form:"description" validate:"omitempty,min=1"`
	Image       *string  `json:"image" form:"image" validate:"omitempty,min=1"`
	Price       *float64 `json:"price" form:"price" validate:"omitempty,gte=0"`
}

// Create validates the campground creation payload
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := new(CampgroundForm)
		if err := c.BodyParser(form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
		}

		if err := validate.Struct(form); err != nil {
			return middleware.ValidationError(err)
		}

		c.Locals(CreateFormKey, form)
		return c.Next()
	}
}

// Update validates the campground update payload
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := new(CampgroundUpdateForm)
		if err := c.BodyParser(form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
		}

		if err := validate.Struct(form); err != nil {
			return middleware.ValidationError(err)
		}

		c.Locals(UpdateFormKey, form)
		return c.Next()
	}
}
