// internal/engine/contracts.go
package engine

import "context"

// FeasibilityPayload is the creation contract of a feasibility study.
type FeasibilityPayload struct {
	Name           string  `json:"name"`
	Location       string  `json:"location"`
	PropertyType   string  `json:"propertyType"`
	TotalArea      int     `json:"totalArea"`
	BuildableArea  int     `json:"buildableArea"`
	Budget         float64 `json:"budget"`
	TimelineMonths int     `json:"timelineMonths"`
}

// BusinessPlanPayload is the creation contract of a business plan.
type BusinessPlanPayload struct {
	Name           string  `json:"name"`
	BusinessType   string  `json:"businessType"`
	TargetMarket   string  `json:"targetMarket"`
	RevenueModel   string  `json:"revenueModel"`
	Budget         float64 `json:"budget"`
	TimelineMonths int     `json:"timelineMonths"`
}

// MarketSearchPayload is the creation contract of a market search.
type MarketSearchPayload struct {
	Location     string `json:"location"`
	PropertyType string `json:"propertyType"`
	AnalysisType string `json:"analysisType"`
	Timeframe    string `json:"timeframe"`
}

// DesignPayload is the creation contract of a design project.
type DesignPayload struct {
	Name                string   `json:"name"`
	Location            string   `json:"location"`
	PropertyType        string   `json:"propertyType"`
	Style               string   `json:"style"`
	Layout              string   `json:"layout"`
	TotalArea           int      `json:"totalArea"`
	Rooms               int      `json:"rooms"`
	Budget              float64  `json:"budget"`
	TimelineMonths      int      `json:"timelineMonths"`
	Materials           []string `json:"materials,omitempty"`
	SpecialRequirements []string `json:"specialRequirements,omitempty"`
}

// FeasibilityCreator persists a feasibility study and returns its id.
type FeasibilityCreator interface {
	CreateFeasibilityStudy(ctx context.Context, p FeasibilityPayload) (string, error)
}

// BusinessPlanCreator persists a business plan and returns its id.
type BusinessPlanCreator interface {
	CreateBusinessPlan(ctx context.Context, p BusinessPlanPayload) (string, error)
}

// MarketSearchCreator persists a market search and returns its id.
type MarketSearchCreator interface {
	CreateMarketSearch(ctx context.Context, p MarketSearchPayload) (string, error)
}

// DesignCreator persists a design project and returns its id.
type DesignCreator interface {
	CreateDesignProject(ctx context.Context, p DesignPayload) (string, error)
}

// Creators bundles the per-intent creation backends. Any nil creator makes
// the corresponding intent fall back to a local preview.
type Creators struct {
	Feasibility  FeasibilityCreator
	BusinessPlan BusinessPlanCreator
	Market       MarketSearchCreator
	Design       DesignCreator
}
