package plan

import (
	"strings"

	"github.com/meenams/ai-schema-designer-meena-muthu/internal/domain"
)

// PropertySuggester proposes extra properties for an action or lifecycle
// stage. The default is the keyword rule table below; a richer suggester can
// be injected through WithPropertySuggester without touching the generator.
type PropertySuggester interface {
	Suggest(action string) []domain.Property
}

// RuleSuggester derives properties from keywords in the action text.
type RuleSuggester struct{}

// Suggest implements PropertySuggester.
func (RuleSuggester) Suggest(action string) []domain.Property {
	lower := strings.ToLower(action)

	var props []domain.Property
	if strings.Contains(lower, "error") {
		props = append(props, errorProperties()...)
	}
	if strings.Contains(lower, "click") || strings.Contains(lower, "cta") {
		props = append(props,
			prop("element_id", "Frontend identifier for the clicked element", false),
			prop("page", "Page or screen where the action occurred", false),
		)
	}
	return props
}
