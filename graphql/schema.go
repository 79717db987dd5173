// Package graphql assembles the root schema from the query modules.
package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/riskdigest/digest-backend/graphql/modules/dashboard"
	"github.com/riskdigest/digest-backend/internal/threatfeed"
)

var feed *threatfeed.Service

// InitFeed wires the threat feed service into the resolvers. Must be called
// before CreateSchema.
func InitFeed(service *threatfeed.Service) {
	feed = service
}

// CreateSchema builds the root query schema
func CreateSchema() (graphql.Schema, error) {
	fields := graphql.Fields{}
	for name, field := range dashboard.GetQueryFields(feed) {
		fields[name] = field
	}

	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: fields,
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: rootQuery,
	})
}
