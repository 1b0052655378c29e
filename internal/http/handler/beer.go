package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"brewery/internal/model"
	"brewery/internal/service"
	"brewery/internal/validation"
)

// BeerPath is the base path of the v2 beer resource.
const BeerPath = "/api/v2/beer"

// GetBeer godoc
// @Summary Get a beer
// @Tags beer
// @Produce json
// @Param beerId path string true "ID of desired beer to get." format(uuid)
// @Success 200 {object} model.Beer
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/v2/beer/{beerId} [get]
func GetBeer(svc service.BeerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("beerId"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		beer, err := svc.GetBeerByID(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(beer)
	}
}

// SaveNewBeer godoc
// @Summary Create a beer
// @Description The created beer's URL is returned in the Location header.
// @Tags beer
// @Accept json
// @Param beer body model.Beer true "Beer without id"
// @Success 201
// @Header 201 {string} Location "URL of the created beer"
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/v2/beer/ [post]
func SaveNewBeer(svc service.BeerService, v *validation.Validator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		beer, err := bindBeer(c, v)
		if err != nil {
			return err
		}
		if beer == nil {
			return nil
		}
		saved, err := svc.SaveNewBeer(c.UserContext(), *beer)
		if err != nil {
			return writeServiceError(c, err)
		}
		if saved == nil || saved.ID == nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		c.Location(BeerPath + "/" + saved.ID.String())
		c.Status(fiber.StatusCreated)
		return nil
	}
}

// UpdateBeer godoc
// @Summary Update a beer
// @Tags beer
// @Accept json
// @Param beerId path string true "ID of desired beer to update." format(uuid)
// @Param beer body model.Beer true "Beer without id"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/v2/beer/{beerId} [put]
func UpdateBeer(svc service.BeerService, v *validation.Validator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("beerId"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		beer, err := bindBeer(c, v)
		if err != nil {
			return err
		}
		if beer == nil {
			return nil
		}
		if err := svc.UpdateBeer(c.UserContext(), id, *beer); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteBeer godoc
// @Summary Delete a beer
// @Tags beer
// @Param beerId path string true "ID of beer to delete." format(uuid)
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/v2/beer/{beerId} [delete]
func DeleteBeer(svc service.BeerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("beerId"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.DeleteByID(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// bindBeer decodes and validates the request body. A nil beer with a nil
// error means the error response has already been written.
func bindBeer(c *fiber.Ctx, v *validation.Validator) (*model.Beer, error) {
	var beer model.Beer
	if err := c.App().Config().JSONDecoder(c.Body(), &beer); err != nil {
		return nil, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	if err := v.Validate(beer); err != nil {
		var verr *validation.Errors
		if errors.As(err, &verr) {
			return nil, writeValidationError(c, verr)
		}
		return nil, writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
	return &beer, nil
}
