package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"brewery/docs"
	"brewery/internal/service"
	"brewery/internal/validation"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, beerSvc service.BeerService, v *validation.Validator) {
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.Send(docs.OpenAPI)
	})
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	beers := app.Group(BeerPath)
	beers.Get("/:beerId", GetBeer(beerSvc))
	beers.Post("/", SaveNewBeer(beerSvc, v))
	beers.Put("/:beerId", UpdateBeer(beerSvc, v))
	beers.Delete("/:beerId", DeleteBeer(beerSvc))
}

// HealthCheck godoc
// @Summary Readiness probe
// @Description Checks database connectivity.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe godoc
// @Summary Liveness probe
// @Tags health
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
