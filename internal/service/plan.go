package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/meenams/ai-schema-designer-meena-muthu/internal/domain"
	"github.com/meenams/ai-schema-designer-meena-muthu/internal/dto"
	"github.com/meenams/ai-schema-designer-meena-muthu/internal/emit"
	"github.com/meenams/ai-schema-designer-meena-muthu/internal/plan"
)

// PlanService represents the plan generation service. It is stateless:
// every operation re-generates from the request it is given.
type PlanService struct {
	generator          *plan.Generator
	defaultSampleCount int
	maxSampleCount     int
	log                *zap.Logger
}

// NewPlanService creates a new plan service.
func NewPlanService(generator *plan.Generator, defaultSampleCount, maxSampleCount int, log *zap.Logger) *PlanService {
	return &PlanService{
		generator:          generator,
		defaultSampleCount: defaultSampleCount,
		maxSampleCount:     maxSampleCount,
		log:                log,
	}
}

// generate runs the generator and the taxonomy lint for one request.
func (s *PlanService) generate(req *dto.GeneratePlanRequest) (*domain.TrackingPlan, []domain.TaxonomyWarning, error) {
	p, err := s.generator.Generate(req.ToDomain())
	if err != nil {
		s.log.Warn("Plan generation rejected",
			zap.String("feature", req.FeatureName),
			zap.Error(err))
		return nil, nil, err
	}

	warnings := emit.Validate(p)
	s.log.Info("Tracking plan generated",
		zap.String("feature", p.FeatureName),
		zap.String("platform", string(p.Platform)),
		zap.Int("events", len(p.Events)),
		zap.Int("warnings", len(warnings)))

	return p, warnings, nil
}

// GeneratePlan produces the tracking plan and its lint findings.
func (s *PlanService) GeneratePlan(req *dto.GeneratePlanRequest) (*dto.GeneratePlanResponse, error) {
	p, warnings, err := s.generate(req)
	if err != nil {
		return nil, err
	}
	return dto.NewGeneratePlanResponse(p, warnings), nil
}

// GenerateBulkPlans generates plans for multiple features, accumulating
// per-item failures instead of aborting the batch.
func (s *PlanService) GenerateBulkPlans(reqs []dto.GeneratePlanRequest) (*dto.GenerateBulkPlansResponse, error) {
	resp := &dto.GenerateBulkPlansResponse{
		Plans: make([]dto.GeneratePlanResponse, 0, len(reqs)),
	}

	for i := range reqs {
		planResp, err := s.GeneratePlan(&reqs[i])
		if err != nil {
			resp.Failed++
			resp.Errors = append(resp.Errors, fmt.Sprintf("request %d: %v", i, err))
			s.log.Warn("Failed to generate plan in bulk",
				zap.Int("index", i),
				zap.String("feature", reqs[i].FeatureName),
				zap.Error(err))
			continue
		}
		resp.Generated++
		resp.Plans = append(resp.Plans, *planResp)
	}

	return resp, nil
}

// RenderSchema produces the dbt-style schema YAML for a request.
func (s *PlanService) RenderSchema(req *dto.GeneratePlanRequest) ([]byte, error) {
	p, _, err := s.generate(req)
	if err != nil {
		return nil, err
	}
	return emit.Schema(p).YAML()
}

// RenderMarkdown produces the human-readable plan document for a request.
func (s *PlanService) RenderMarkdown(req *dto.GeneratePlanRequest) ([]byte, error) {
	p, warnings, err := s.generate(req)
	if err != nil {
		return nil, err
	}
	return emit.Markdown(p, warnings), nil
}

// GenerateSamples produces synthetic sample events in the requested format
// and returns the payload with its content type. The per-event count is
// clamped to the configured limits.
func (s *PlanService) GenerateSamples(req *dto.GeneratePlanRequest, count int, format SampleFormat) ([]byte, string, error) {
	p, _, err := s.generate(req)
	if err != nil {
		return nil, "", err
	}

	if count <= 0 {
		count = s.defaultSampleCount
	}
	if count > s.maxSampleCount {
		s.log.Warn("Sample count clamped",
			zap.Int("requested", count),
			zap.Int("max", s.maxSampleCount))
		count = s.maxSampleCount
	}

	events := emit.NewSampler().Samples(p, count)

	switch format {
	case SampleFormatCSV:
		data, err := emit.EncodeCSV(events)
		return data, "text/csv", err
	default:
		data, err := emit.EncodeJSON(events)
		return data, "application/json", err
	}
}
