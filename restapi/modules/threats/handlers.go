// Package threats implements the REST API handlers for the live CVE feed.
package threats

import (
	"github.com/gofiber/fiber/v2"

	"github.com/riskdigest/digest-backend/internal/threatfeed"
)

const (
	defaultDays             = 7
	defaultLimit            = 50
	defaultDistributionDays = 30
)

// RecentThreats returns the normalized CVE list for a lookback window
func RecentThreats(feed *threatfeed.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		days := c.QueryInt("days", defaultDays)
		limit := c.QueryInt("limit", defaultLimit)
		if days < 1 || limit < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "days and limit must be at least 1",
			})
		}

		cves := feed.FetchRecentCVEs(c.UserContext(), days, limit)
		return c.JSON(fiber.Map{
			"cves":  cves,
			"total": len(cves),
		})
	}
}

// SeverityDistribution returns chart data for severity tiers
func SeverityDistribution(feed *threatfeed.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		days := c.QueryInt("days", defaultDistributionDays)
		if days < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "days must be at least 1",
			})
		}
		return c.JSON(feed.GetSeverityDistribution(c.UserContext(), days))
	}
}

// CategoryDistribution returns chart data for the threat category taxonomy
func CategoryDistribution(feed *threatfeed.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		days := c.QueryInt("days", defaultDistributionDays)
		if days < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "days must be at least 1",
			})
		}
		return c.JSON(feed.GetCategoryDistribution(c.UserContext(), days))
	}
}
