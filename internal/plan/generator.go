// Package plan turns a feature request into a deterministic tracking plan.
package plan

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/meenams/ai-schema-designer-meena-muthu/internal/domain"
)

// Generator builds tracking plans. It holds no per-request state, so a
// single instance can serve any number of requests.
type Generator struct {
	suggester PropertySuggester
}

// Option customizes Generator construction.
type Option func(*Generator)

// WithPropertySuggester replaces the default keyword rule suggester.
func WithPropertySuggester(s PropertySuggester) Option {
	return func(g *Generator) {
		if s != nil {
			g.suggester = s
		}
	}
}

// NewGenerator creates a generator with the rule-based property suggester.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{suggester: RuleSuggester{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces the tracking plan for a feature request.
//
// The plan always starts with the fixed lifecycle events (viewed, error),
// followed by one event per funnel stage and one per key action, in request
// order. Identical input yields an identical plan; the only validation
// failure is a blank name or description. An empty action list is valid and
// yields just the lifecycle events.
func (g *Generator) Generate(req domain.FeatureRequest) (*domain.TrackingPlan, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, domain.NewMissingField("name")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, domain.NewMissingField("description")
	}

	events := make([]domain.EventDefinition, 0, len(req.Actions)+len(req.FunnelStages)+2)
	events = append(events, g.lifecycleEvents(req)...)

	for _, stage := range req.FunnelStages {
		if strings.TrimSpace(stage) == "" {
			continue
		}
		events = append(events, g.funnelEvent(req, stage))
	}

	for _, action := range req.Actions {
		if strings.TrimSpace(action) == "" {
			continue
		}
		events = append(events, g.actionEvent(req, action))
	}

	return &domain.TrackingPlan{
		FeatureName:        req.Name,
		FeatureDescription: req.Description,
		Platform:           req.Platform,
		Events:             events,
	}, nil
}

// lifecycleEvents are emitted for every feature regardless of its actions.
func (g *Generator) lifecycleEvents(req domain.FeatureRequest) []domain.EventDefinition {
	return []domain.EventDefinition{
		{
			EventName:    EventName(req.Name, "viewed"),
			FriendlyName: fmt.Sprintf("%s - Viewed", req.Name),
			Description:  fmt.Sprintf("Fired when a user views the %s feature.", req.Name),
			Trigger:      fmt.Sprintf("The %s surface is rendered to the user.", req.Name),
			Category:     domain.CategoryLifecycle,
			Properties: mergeProperties(
				baselineProperties(),
				platformProperties(req.Platform),
			),
		},
		{
			EventName:    EventName(req.Name, "error"),
			FriendlyName: fmt.Sprintf("%s - Error", req.Name),
			Description:  fmt.Sprintf("Fired when the %s feature fails with a user-visible error.", req.Name),
			Trigger:      fmt.Sprintf("An operation in the %s flow returns an error.", req.Name),
			Category:     domain.CategoryLifecycle,
			Properties: mergeProperties(
				baselineProperties(),
				platformProperties(req.Platform),
				errorProperties(),
			),
		},
	}
}

func (g *Generator) funnelEvent(req domain.FeatureRequest, stage string) domain.EventDefinition {
	return domain.EventDefinition{
		EventName:    EventName(req.Name, stage),
		FriendlyName: fmt.Sprintf("%s - %s", req.Name, capitalize(stage)),
		Description:  fmt.Sprintf("Fired when a user reaches the %s stage of the %s feature.", stage, req.Name),
		Trigger:      fmt.Sprintf("User %ss the %s flow.", stage, req.Name),
		Category:     domain.CategoryFunnel,
		Properties: mergeProperties(
			baselineProperties(),
			platformProperties(req.Platform),
			g.suggester.Suggest(stage),
		),
	}
}

func (g *Generator) actionEvent(req domain.FeatureRequest, action string) domain.EventDefinition {
	return domain.EventDefinition{
		EventName:    EventName(req.Name, action),
		FriendlyName: fmt.Sprintf("%s - %s", req.Name, capitalize(action)),
		Description:  fmt.Sprintf("Fired when a user performs key action: %s.", action),
		Trigger:      fmt.Sprintf("User completes action: %s.", action),
		Category:     domain.CategoryBehavior,
		Properties: mergeProperties(
			baselineProperties(),
			platformProperties(req.Platform),
			g.suggester.Suggest(action),
		),
	}
}

// capitalize upper-cases the first rune only, matching the friendly-name
// convention in rendered plans.
func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
