package reviewValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"yelpcamp/middleware"
)

// Locals key where the validated payload is stored for the controller
const CreateFormKey = "reviewForm"

var validate = validator.New()

// ReviewForm is the declarative schema for review creation. Rating is a
// pointer so a missing rating fails required instead of defaulting to 0.
type ReviewForm struct {
	Body   string `json:"body" form:"body" validate:"required"`
	Rating *int   `json:"rating" form:"rating" validate:"required,min=1,max=5"`
}

// Create validates the review creation payload
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := new(ReviewForm)
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
