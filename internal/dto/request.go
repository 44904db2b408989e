package dto

import "github.com/meenams/ai-schema-designer-meena-muthu/internal/domain"

// GeneratePlanRequest represents a tracking plan generation request.
//
// Name and description are validated by the generator so a blank value is
// reported against the specific field; platform falls back to a generic
// property set when unrecognized.
type GeneratePlanRequest struct {
	FeatureName        string   `json:"feature_name" yaml:"feature_name"`
	FeatureDescription string   `json:"feature_description" yaml:"feature_description"`
	Platform           string   `json:"platform" yaml:"platform"`
	Actions            []string `json:"actions" yaml:"actions"`
	FunnelStages       []string `json:"funnel_stages,omitempty" yaml:"funnel_stages,omitempty"`
}

// ToDomain converts the wire request into the generator's input type.
func (r *GeneratePlanRequest) ToDomain() domain.FeatureRequest {
	return domain.FeatureRequest{
		Name:         r.FeatureName,
		Description:  r.FeatureDescription,
		Platform:     domain.ParsePlatform(r.Platform),
		Actions:      r.Actions,
		FunnelStages: r.FunnelStages,
	}
}

// GenerateBulkPlansRequest represents a bulk plan generation request.
type GenerateBulkPlansRequest struct {
	Requests []GeneratePlanRequest `json:"requests" binding:"required,min=1,max=100,dive"`
}
