package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"projecthub/models"
	"projecthub/store"
)

// parseID reads the :id route parameter. The caller treats a malformed id the
// same as an absent record.
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

func parseBody(c *fiber.Ctx) (store.Payload, error) {
	return store.ParsePayload(c.Body())
}

// recordNotFound is the uniform 404 body.
func recordNotFound(c *fiber.Ctx, entity string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": entity + " Record not found",
	})
}

// queryFailure is the uniform list-failure body. An empty collection is
// reported this way on purpose; clients depend on the 500.
func queryFailure(c *fiber.Ctx, entity string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"valid":  false,
		"Reason": "Can't query " + entity + " data",
	})
}

// writeFailure maps a failed create/patch/delete onto the wire: absent ids are
// 404s, everything else is a 422 carrying the reason list.
func writeFailure(c *fiber.Ctx, entity string, err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return recordNotFound(c, entity)
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"errors": []string{err.Error()},
	})
}

func deleteConfirmation(c *fiber.Ctx, entity string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": entity + " Record successfully deleted",
	})
}
