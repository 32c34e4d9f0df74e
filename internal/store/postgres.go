// internal/store/postgres.go

// Package store persists created projects in PostgreSQL. It is the default
// creation backend when no remote project service is configured.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"edilia-assistant/internal/common/errors"
	"edilia-assistant/internal/common/logger"
	"edilia-assistant/internal/engine"
)

// ProjectStore writes one row per created project and returns the generated
// id. It satisfies all four engine creator interfaces.
type ProjectStore struct {
	db     *sql.DB
	logger logger.Logger
	newID  func() string
}

func NewProjectStore(db *sql.DB, log logger.Logger) *ProjectStore {
	return &ProjectStore{
		db:     db,
		logger: log,
		newID:  func() string { return uuid.New().String() },
	}
}

func (s *ProjectStore) CreateFeasibilityStudy(ctx context.Context, p engine.FeasibilityPayload) (string, error) {
	id := s.newID()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO feasibility_studies
			(id, name, location, property_type, total_area, buildable_area, budget, timeline_months, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id, p.Name, p.Location, p.PropertyType, p.TotalArea, p.BuildableArea, p.Budget, p.TimelineMonths, time.Now().UTC(),
	)
	if err != nil {
		return "", errors.NewProjectStoreFailedError(err)
	}
	s.logger.Info("feasibility study created", map[string]interface{}{"id": id})
	return id, nil
}

func (s *ProjectStore) CreateBusinessPlan(ctx context.Context, p engine.BusinessPlanPayload) (string, error) {
	id := s.newID()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO business_plans
			(id, name, business_type, target_market, revenue_model, budget, timeline_months, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, p.Name, p.BusinessType, p.TargetMarket, p.RevenueModel, p.Budget, p.TimelineMonths, time.Now().UTC(),
	)
	if err != nil {
		return "", errors.NewProjectStoreFailedError(err)
	}
	s.logger.Info("business plan created", map[string]interface{}{"id": id})
	return id, nil
}

func (s *ProjectStore) CreateMarketSearch(ctx context.Context, p engine.MarketSearchPayload) (string, error) {
	id := s.newID()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO market_searches
			(id, location, property_type, analysis_type, timeframe, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, p.Location, p.PropertyType, p.AnalysisType, p.Timeframe, time.Now().UTC(),
	)
	if err != nil {
		return "", errors.NewProjectStoreFailedError(err)
	}
	s.logger.Info("market search created", map[string]interface{}{"id": id})
	return id, nil
}

func (s *ProjectStore) CreateDesignProject(ctx context.Context, p engine.DesignPayload) (string, error) {
	id := s.newID()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO design_projects
			(id, name, location, property_type, style, layout, total_area, rooms, budget, timeline_months,
			 materials, special_requirements, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		id, p.Name, p.Location, p.PropertyType, p.Style, p.Layout, p.TotalArea, p.Rooms, p.Budget, p.TimelineMonths,
		pq.Array(p.Materials), pq.Array(p.SpecialRequirements), time.Now().UTC(),
	)
	if err != nil {
		return "", errors.NewProjectStoreFailedError(err)
	}
	s.logger.Info("design project created", map[string]interface{}{"id": id})
	return id, nil
}
