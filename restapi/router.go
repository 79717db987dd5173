// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	scoring "github.com/riskdigest/digest-backend/internal/assessment"
	"github.com/riskdigest/digest-backend/internal/digest"
	"github.com/riskdigest/digest-backend/internal/threatfeed"
	directory "github.com/riskdigest/digest-backend/internal/tools"
	"github.com/riskdigest/digest-backend/restapi/modules/assessment"
	"github.com/riskdigest/digest-backend/restapi/modules/digests"
	"github.com/riskdigest/digest-backend/restapi/modules/threats"
	"github.com/riskdigest/digest-backend/restapi/modules/tools"
)

// Services bundles the service instances the routes depend on
type Services struct {
	Feed       *threatfeed.Service
	Calculator *scoring.Calculator
	Digests    *digest.Store
	Generator  *digest.Generator
	Tools      *directory.Directory
}

// SetupRoutes configures all REST API routes and the GraphQL endpoint
func SetupRoutes(app *fiber.App, svc Services, schema graphql.Schema) {
	// Background task: make sure today's digest exists and keeps existing
	// as the date rolls over.
	go ensureDailyDigest(svc.Digests, svc.Generator)

	// API Group /api/v1
	api := app.Group("/api/v1")

	// GraphQL Route - dashboard chart queries
	api.Post("/graphql", GraphQLHandler(schema))

	// Threat feed
	threatGroup := api.Group("/threats")
	threatGroup.Get("/recent", threats.RecentThreats(svc.Feed))
	threatGroup.Get("/severity", threats.SeverityDistribution(svc.Feed))
	threatGroup.Get("/categories", threats.CategoryDistribution(svc.Feed))

	// Self-assessment
	assessmentGroup := api.Group("/assessment")
	assessmentGroup.Get("/questions", assessment.GetQuestions(svc.Calculator))
	assessmentGroup.Post("/score", assessment.PostScore(svc.Calculator))

	// Daily digests
	api.Get("/digests", digests.ListDigests(svc.Digests))
	api.Get("/digests/:date", digests.GetDigest(svc.Digests))

	// Tools directory
	toolsGroup := api.Group("/tools")
	toolsGroup.Get("/", tools.ListTools(svc.Tools))
	toolsGroup.Get("/categories", tools.ListCategories(svc.Tools))
	toolsGroup.Get("/:id", tools.GetTool(svc.Tools))

	log.Println("API routes initialized successfully")
}

// ensureDailyDigest generates the digest for the current date if it is
// missing, then re-checks every hour as the date rolls over
func ensureDailyDigest(store *digest.Store, gen *digest.Generator) {
	generateToday(store, gen)
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		generateToday(store, gen)
	}
}

func generateToday(store *digest.Store, gen *digest.Generator) {
	today := time.Now().Format("2006-01-02")
	if store.Exists(today) {
		return
	}
	d, err := gen.Generate(today)
	if err != nil {
		log.Printf("Background Task: Failed to generate digest for %s: %v", today, err)
		return
	}
	if err := store.Save(d); err != nil {
		log.Printf("Background Task: Failed to save digest for %s: %v", today, err)
		return
	}
	log.Printf("Background Task: Generated digest for %s", today)
}
