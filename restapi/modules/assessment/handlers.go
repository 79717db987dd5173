// Package assessment implements the REST API handlers for the self-assessment
// questionnaire and score calculation.
package assessment

import (
	"github.com/gofiber/fiber/v2"

	scoring "github.com/riskdigest/digest-backend/internal/assessment"
	"github.com/riskdigest/digest-backend/model"
)

// GetQuestions returns the assessment categories with their questions in
// declaration order
func GetQuestions(calc *scoring.Calculator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"categories": calc.Questions(),
		})
	}
}

// PostScore validates a submitted answer set and returns the score result.
// A malformed body is a contract violation and gets a 400, it is not
// silently defaulted.
func PostScore(calc *scoring.Calculator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.AssessmentRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
		if req.Answers == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "answers is required",
			})
		}

		return c.JSON(calc.CalculateScore(req))
	}
}
