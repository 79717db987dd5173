// Package dashboard defines the GraphQL queries for the dashboard.
package dashboard

import (
	"github.com/graphql-go/graphql"

	"github.com/riskdigest/digest-backend/internal/threatfeed"
)

// GetQueryFields returns the dashboard queries to be mounted in the root schema
func GetQueryFields(feed *threatfeed.Service) graphql.Fields {
	return graphql.Fields{
		// Section 1: Top Cards (Overview)
		"dashboardOverview": &graphql.Field{
			Type: DashboardOverviewType,
			Args: graphql.FieldConfigArgument{
				"days": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 30},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				days := p.Args["days"].(int)
				return ResolveOverview(p.Context, feed, days)
			},
		},
		// Section 2: Charts (Severity)
		"dashboardSeverity": &graphql.Field{
			Type: SeverityDistributionType,
			Args: graphql.FieldConfigArgument{
				"days": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 30},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				days := p.Args["days"].(int)
				return ResolveSeverityDistribution(p.Context, feed, days)
			},
		},
		// Section 3: Radar (Categories)
		"dashboardCategories": &graphql.Field{
			Type: CategoryDistributionType,
			Args: graphql.FieldConfigArgument{
				"days": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 30},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				days := p.Args["days"].(int)
				return ResolveCategoryDistribution(p.Context, feed, days)
			},
		},
		// Section 4: Tables (Recent Threats)
		"dashboardRecentThreats": &graphql.Field{
			Type: graphql.NewList(ThreatRecordType),
			Args: graphql.FieldConfigArgument{
				"days":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 7},
				"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 50},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				days := p.Args["days"].(int)
				limit := p.Args["limit"].(int)
				return ResolveRecentThreats(p.Context, feed, days, limit)
			},
		},
	}
}
