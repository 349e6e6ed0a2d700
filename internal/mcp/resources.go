// ABOUTME: MCP resource implementations for the fitness tracker.
// ABOUTME: Provides fitness://recent and fitness://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fitness://recent - latest entries across all four logs
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitness://recent",
		Name:        "Recent Fitness Entries",
		Description: "Latest cardio workouts, food entries, health records, and strength sessions",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// fitness://summary - dashboard aggregations
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitness://summary",
		Name:        "Fitness Summary Dashboard",
		Description: "Weekly cardio totals and health vitals trends",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	cardio, err := s.repo.ListCardioWorkouts()
	if err != nil {
		return nil, fmt.Errorf("failed to list cardio workouts: %w", err)
	}
	food, err := s.repo.ListFoodEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to list food entries: %w", err)
	}
	health, err := s.repo.ListHealthRecords()
	if err != nil {
		return nil, fmt.Errorf("failed to list health records: %w", err)
	}
	strength, err := s.repo.ListWorkouts()
	if err != nil {
		return nil, fmt.Errorf("failed to list strength workouts: %w", err)
	}

	result := map[string]interface{}{
		"cardio":   cap10(cardio),
		"food":     cap10(food),
		"health":   cap10(health),
		"strength": cap10(strength),
	}

	return resourceResult("fitness://recent", result)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	weeks, err := s.repo.CardioDashboard()
	if err != nil {
		return nil, fmt.Errorf("failed to load cardio dashboard: %w", err)
	}
	vitals, err := s.repo.HealthDashboard()
	if err != nil {
		return nil, fmt.Errorf("failed to load health dashboard: %w", err)
	}

	result := map[string]interface{}{
		"cardio_weeks": weeks,
		"health":       vitals,
	}

	return resourceResult("fitness://summary", result)
}

func resourceResult(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// cap10 limits a listing to its 10 most recent rows. Listings come back
// newest first.
func cap10[T any](rows []T) []T {
	if len(rows) > 10 {
		return rows[:10]
	}
	return rows
}
