// Package tools implements the REST API handlers for the security tools
// directory.
package tools

import (
	"github.com/gofiber/fiber/v2"

	directory "github.com/riskdigest/digest-backend/internal/tools"
)

// ListTools returns tools filtered by optional category and search params
func ListTools(dir *directory.Directory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filtered := dir.Filter(c.Query("category"), c.Query("search"))
		return c.JSON(fiber.Map{
			"tools": filtered,
			"total": len(filtered),
		})
	}
}

// ListCategories returns the sorted set of tool categories
func ListCategories(dir *directory.Directory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"categories": dir.Categories(),
		})
	}
}

// GetTool returns one tool by id
func GetTool(dir *directory.Directory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tool := dir.ByID(c.Params("id"))
		if tool == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Tool not found",
			})
		}
		return c.JSON(tool)
	}
}
