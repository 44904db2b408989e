package service

import (
	"github.com/meenams/ai-schema-designer-meena-muthu/internal/dto"
)

// SampleFormat selects the synthetic event export encoding.
type SampleFormat string

const (
	SampleFormatJSON SampleFormat = "json"
	SampleFormatCSV  SampleFormat = "csv"
)

// PlanServicer defines the interface for plan service operations.
type PlanServicer interface {
	GeneratePlan(req *dto.GeneratePlanRequest) (*dto.GeneratePlanResponse, error)
	GenerateBulkPlans(reqs []dto.GeneratePlanRequest) (*dto.GenerateBulkPlansResponse, error)
	RenderSchema(req *dto.GeneratePlanRequest) ([]byte, error)
	RenderMarkdown(req *dto.GeneratePlanRequest) ([]byte, error)
	GenerateSamples(req *dto.GeneratePlanRequest, count int, format SampleFormat) ([]byte, string, error)
}
