// internal/engine/materializer.go
package engine

import (
	"context"
	"fmt"
	"time"

	"edilia-assistant/internal/common/errors"
	"edilia-assistant/internal/common/logger"
	"edilia-assistant/internal/common/metrics"
	"edilia-assistant/internal/common/validation"
	"edilia-assistant/internal/models"
)

const (
	originRemote   = "remote"
	originFallback = "fallback"
)

// Materializer turns a complete slot set into a project. Creation failures
// never surface to the caller: a local preview with a synthetic id takes the
// place of the real project, and the failure is visible only in logs and
// metrics.
type Materializer struct {
	creators Creators
	logger   logger.Logger
	now      func() time.Time
}

func NewMaterializer(creators Creators, log logger.Logger) *Materializer {
	return &Materializer{
		creators: creators,
		logger:   log,
		now:      time.Now,
	}
}

// Materialize validates the payload, invokes the intent's creation backend
// and builds the outward preview. It always returns a preview.
func (m *Materializer) Materialize(ctx context.Context, intent models.IntentType, slots models.SlotMap) *models.ProjectPreview {
	id, err := m.create(ctx, intent, slots)
	origin := originRemote
	if err != nil {
		origin = originFallback
		m.logger.WithError(err).Warn("project creation failed, serving local preview", map[string]interface{}{
			"intent": string(intent),
		})
		id = fmt.Sprintf("local-%d", m.now().UnixMilli())
	}
	metrics.Materializations.WithLabelValues(string(intent), origin).Inc()
	return buildPreview(intent, slots, id)
}

func (m *Materializer) create(ctx context.Context, intent models.IntentType, slots models.SlotMap) (string, error) {
	switch intent {
	case models.IntentFeasibility:
		p := buildFeasibilityPayload(slots)
		if err := m.validate(intent, p); err != nil {
			return "", err
		}
		if m.creators.Feasibility == nil {
			return "", errors.NewCreatorNotConfiguredError(string(intent))
		}
		id, err := m.creators.Feasibility.CreateFeasibilityStudy(ctx, p)
		if err != nil {
			return "", errors.NewMaterializationFailedError(string(intent), err)
		}
		return id, nil

	case models.IntentBusinessPlan:
		p := buildBusinessPlanPayload(slots)
		if err := m.validate(intent, p); err != nil {
			return "", err
		}
		if m.creators.BusinessPlan == nil {
			return "", errors.NewCreatorNotConfiguredError(string(intent))
		}
		id, err := m.creators.BusinessPlan.CreateBusinessPlan(ctx, p)
		if err != nil {
			return "", errors.NewMaterializationFailedError(string(intent), err)
		}
		return id, nil

	case models.IntentMarketIntelligence:
		p := buildMarketSearchPayload(slots)
		if err := m.validate(intent, p); err != nil {
			return "", err
		}
		if m.creators.Market == nil {
			return "", errors.NewCreatorNotConfiguredError(string(intent))
		}
		id, err := m.creators.Market.CreateMarketSearch(ctx, p)
		if err != nil {
			return "", errors.NewMaterializationFailedError(string(intent), err)
		}
		return id, nil

	case models.IntentDesign:
		p := buildDesignPayload(slots)
		if err := m.validate(intent, p); err != nil {
			return "", err
		}
		if m.creators.Design == nil {
			return "", errors.NewCreatorNotConfiguredError(string(intent))
		}
		id, err := m.creators.Design.CreateDesignProject(ctx, p)
		if err != nil {
			return "", errors.NewMaterializationFailedError(string(intent), err)
		}
		return id, nil
	}
	return "", errors.NewCreatorNotConfiguredError(string(intent))
}

func (m *Materializer) validate(intent models.IntentType, payload interface{}) error {
	result := validation.ValidateCreationPayload(intent, payload)
	if !result.Valid {
		return errors.NewPayloadValidationFailedError(string(intent), result.ErrorString())
	}
	return nil
}

// timelineMonths reads the timeline slot into a month count, defaulting to
// 12 when the stored text carries no parsable duration.
func timelineMonths(slots models.SlotMap) int {
	if months, ok := parseTimelineMonths(slots.Get("timeline").Display()); ok {
		return months
	}
	return 12
}

func buildFeasibilityPayload(slots models.SlotMap) FeasibilityPayload {
	return FeasibilityPayload{
		Name:           slots.Get("projectName").Display(),
		Location:       slots.Get("location").Display(),
		PropertyType:   slots.Get("propertyType").Display(),
		TotalArea:      slots.Get("totalArea").Int,
		BuildableArea:  slots.Get("buildableArea").Int,
		Budget:         slots.Get("budget").Money,
		TimelineMonths: timelineMonths(slots),
	}
}

func buildBusinessPlanPayload(slots models.SlotMap) BusinessPlanPayload {
	return BusinessPlanPayload{
		Name:           slots.Get("projectName").Display(),
		BusinessType:   slots.Get("businessType").Display(),
		TargetMarket:   slots.Get("targetMarket").Display(),
		RevenueModel:   slots.Get("revenueModel").Display(),
		Budget:         slots.Get("budget").Money,
		TimelineMonths: timelineMonths(slots),
	}
}

func buildMarketSearchPayload(slots models.SlotMap) MarketSearchPayload {
	return MarketSearchPayload{
		Location:     slots.Get("location").Display(),
		PropertyType: slots.Get("propertyType").Display(),
		AnalysisType: slots.Get("analysisType").Display(),
		Timeframe:    slots.Get("timeframe").Display(),
	}
}

func buildDesignPayload(slots models.SlotMap) DesignPayload {
	return DesignPayload{
		Name:                slots.Get("projectName").Display(),
		Location:            slots.Get("location").Display(),
		PropertyType:        slots.Get("propertyType").Display(),
		Style:               slots.Get("designStyle").Display(),
		Layout:              slots.Get("layoutType").Display(),
		TotalArea:           slots.Get("totalArea").Int,
		Rooms:               slots.Get("rooms").Int,
		Budget:              slots.Get("budget").Money,
		TimelineMonths:      timelineMonths(slots),
		Materials:           slots.Get("materials").List,
		SpecialRequirements: slots.Get("specialRequirements").List,
	}
}
