package campgroundRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campgroundController "yelpcamp/controllers/campground"
	campgroundValidator "yelpcamp/validators/campground"
)

// SetupCampgroundRoutes registers the campground CRUD routes
func SetupCampgroundRoutes(app *fiber.App, db *gorm.DB) {
	ct := campgroundController.New(db)

	group := app.Group("/campgrounds")

	group.Get("/", ct.Index)

	// "/new" MUST come before "/:id"
	group.Get("/new", ct.NewForm)

	group.Post("/", campgroundValidator.Create(), ct.Create)
	group.Get("/:id", ct.Show)
	group.Get("/:id/edit", ct.EditForm)
	group.Patch("/:id", campgroundValidator.Update(), ct.Update)
	group.Delete("/:id", ct.Delete)
}
