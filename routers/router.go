package routers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"yelpcamp/middleware"
	campgroundRoutes "yelpcamp/routers/campgroundRoutes"
	reviewRoutes "yelpcamp/routers/reviewRoutes"
	"yelpcamp/views"
)

// New builds the fiber application: view engine, middleware chain, routes and
// the terminal 404 catch-all, with every handler bound to the given database
// handle. Tests construct the same app against an in-memory database.
func New(db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:        views.Engine(),
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE",
		AllowHeaders: "Content-Type",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Use(middleware.MethodOverride)

	// Serve static files from the public folder
	app.Static("/", "./public")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("home", fiber.Map{
			"Title": "YelpCamp",
		}, "layouts/main")
	})

	campgroundRoutes.SetupCampgroundRoutes(app, db)
	reviewRoutes.SetupReviewRoutes(app, db)

	// Anything that reached this far has no handler
	app.Use(middleware.NotFound)

	return app
}
