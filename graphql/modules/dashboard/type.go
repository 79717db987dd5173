// Package dashboard defines the GraphQL types for the dashboard charts.
package dashboard

import (
	"github.com/graphql-go/graphql"
)

// DashboardOverviewType represents the high-level metrics for the top cards
var DashboardOverviewType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DashboardOverview",
	Fields: graphql.Fields{
		"total":    &graphql.Field{Type: graphql.Int},
		"critical": &graphql.Field{Type: graphql.Int},
		"high":     &graphql.Field{Type: graphql.Int},
		"medium":   &graphql.Field{Type: graphql.Int},
		"low":      &graphql.Field{Type: graphql.Int},
	},
})

// SeverityDistributionType represents the data for the severity charts
var SeverityDistributionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SeverityDistribution",
	Fields: graphql.Fields{
		"labels":      &graphql.Field{Type: graphql.NewList(graphql.String)},
		"data":        &graphql.Field{Type: graphql.NewList(graphql.Int)},
		"percentages": &graphql.Field{Type: graphql.NewList(graphql.Float)},
		"total":       &graphql.Field{Type: graphql.Int},
	},
})

// CategoryDistributionType represents the data for the category radar chart
var CategoryDistributionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CategoryDistribution",
	Fields: graphql.Fields{
		"labels": &graphql.Field{Type: graphql.NewList(graphql.String)},
		"data":   &graphql.Field{Type: graphql.NewList(graphql.Int)},
	},
})

// ReferenceType represents one advisory link on a threat record
var ReferenceType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Reference",
	Fields: graphql.Fields{
		"url":    &graphql.Field{Type: graphql.String},
		"source": &graphql.Field{Type: graphql.String},
	},
})

// ThreatRecordType represents a normalized CVE row for the threat table
var ThreatRecordType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ThreatRecord",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"cvss_score":  &graphql.Field{Type: graphql.Float},
		"severity":    &graphql.Field{Type: graphql.String},
		"published":   &graphql.Field{Type: graphql.String},
		"references":  &graphql.Field{Type: graphql.NewList(ReferenceType)},
	},
})
