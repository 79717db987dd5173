// Package main is the entry point for the digest-backend microservice: the
// API behind the security awareness dashboard, serving the live CVE threat
// feed, the posture self-assessment, daily risk digests, and the tools
// directory.
package main

import (
	"log"

	"github.com/riskdigest/digest-backend/internal/api"
	"github.com/riskdigest/digest-backend/internal/assessment"
	"github.com/riskdigest/digest-backend/internal/digest"
	"github.com/riskdigest/digest-backend/internal/threatfeed"
	"github.com/riskdigest/digest-backend/internal/tools"
	"github.com/riskdigest/digest-backend/restapi"
	"github.com/riskdigest/digest-backend/util"
)

func main() {
	logger := util.InitLogger()
	defer logger.Sync() //nolint:errcheck

	// Threat feed. A missing NVD API key is fine, the feed just runs at
	// unauthenticated rate limits.
	apiKey := util.GetEnvDefault("NVD_API_KEY", "")
	if apiKey == "" {
		logger.Sugar().Info("NVD_API_KEY not set, using unauthenticated rate limits")
	}
	feed := threatfeed.NewService(apiKey, threatfeed.NewCache(threatfeed.CacheTTL), logger)

	// Scoring engine and static datasets
	calculator, err := assessment.NewCalculator()
	if err != nil {
		logger.Sugar().Fatalf("Failed to load assessment tables: %v", err)
	}

	generator, err := digest.NewGenerator()
	if err != nil {
		logger.Sugar().Fatalf("Failed to load digest pool: %v", err)
	}
	store := digest.NewStore(util.GetEnvDefault("DIGESTS_DIR", "./digests"))

	toolsDir, err := tools.NewDirectory()
	if err != nil {
		logger.Sugar().Fatalf("Failed to load tools directory: %v", err)
	}

	app := api.NewFiberApp(restapi.Services{
		Feed:       feed,
		Calculator: calculator,
		Digests:    store,
		Generator:  generator,
		Tools:      toolsDir,
	})

	port := util.GetEnvDefault("MS_PORT", "3000")
	log.Printf("Starting server on port %s", port)
	log.Printf("GraphQL endpoint available at /api/v1/graphql")
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
