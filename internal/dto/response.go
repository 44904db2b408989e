package dto

import "github.com/meenams/ai-schema-designer-meena-muthu/internal/domain"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}

// EventProperty is one suggested property of a plan event.
type EventProperty struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// PlanEvent is one event of a rendered tracking plan.
type PlanEvent struct {
	EventName    string          `json:"event_name"`
	FriendlyName string          `json:"friendly_name"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Trigger      string          `json:"when_triggered"`
	Properties   []EventProperty `json:"properties"`
}

// TaxonomyWarning is one lint finding for a plan.
type TaxonomyWarning struct {
	EventName string `json:"event_name"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
}

// GeneratePlanResponse is the rendered tracking plan plus its lint findings.
type GeneratePlanResponse struct {
	FeatureName        string            `json:"feature_name"`
	FeatureDescription string            `json:"feature_description"`
	Platform           string            `json:"platform"`
	Events             []PlanEvent       `json:"events"`
	Warnings           []TaxonomyWarning `json:"warnings"`
}

// GenerateBulkPlansResponse summarizes a bulk generation request.
type GenerateBulkPlansResponse struct {
	Generated int                    `json:"generated"`
	Failed    int                    `json:"failed"`
	Plans     []GeneratePlanResponse `json:"plans"`
	Errors    []string               `json:"errors,omitempty"`
}

// NewGeneratePlanResponse converts a domain plan and its warnings into the
// wire shape.
func NewGeneratePlanResponse(plan *domain.TrackingPlan, warnings []domain.TaxonomyWarning) *GeneratePlanResponse {
	events := make([]PlanEvent, 0, len(plan.Events))
	for _, ev := range plan.Events {
		properties := make([]EventProperty, 0, len(ev.Properties))
		for _, p := range ev.Properties {
			properties = append(properties, EventProperty{
				Name:        p.Name,
				Type:        string(p.Type),
				Description: p.Description,
				Required:    p.Required,
			})
		}
		events = append(events, PlanEvent{
			EventName:    ev.EventName,
			FriendlyName: ev.FriendlyName,
			Category:     ev.Category,
			Description:  ev.Description,
			Trigger:      ev.Trigger,
			Properties:   properties,
		})
	}

	warns := make([]TaxonomyWarning, 0, len(warnings))
	for _, w := range warnings {
		warns = append(warns, TaxonomyWarning{
			EventName: w.EventName,
			Kind:      string(w.Kind),
			Message:   w.Message,
		})
	}

	return &GeneratePlanResponse{
		FeatureName:        plan.FeatureName,
		FeatureDescription: plan.FeatureDescription,
		Platform:           string(plan.Platform),
		Events:             events,
		Warnings:           warns,
	}
}
