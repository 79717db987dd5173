// Package digests implements the REST API handlers for the pre-generated
// daily risk digests. The web layer is read-only over the digest directory.
package digests

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/riskdigest/digest-backend/internal/digest"
)

// ListDigests returns all known digest dates, newest first
func ListDigests(store *digest.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.Index())
	}
}

// GetDigest returns the digest for one date
func GetDigest(store *digest.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := store.Load(c.Params("date"))
		if err != nil {
			if errors.Is(err, digest.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Digest not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.JSON(d)
	}
}
