package emit

import (
	"fmt"
	"regexp"

	"github.com/meenams/ai-schema-designer-meena-muthu/internal/domain"
)

// snakeCase accepts lowercase letters, digits and underscores, with no
// leading digit.
var snakeCase = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Validate lints a plan for naming and structural issues. All findings are
// reported, in plan order, so repeated runs produce identical output. An
// empty result means the plan is clean.
func Validate(plan *domain.TrackingPlan) []domain.TaxonomyWarning {
	warnings := make([]domain.TaxonomyWarning, 0)
	seen := make(map[string]bool, len(plan.Events))

	for _, ev := range plan.Events {
		if !snakeCase.MatchString(ev.EventName) {
			warnings = append(warnings, domain.TaxonomyWarning{
				EventName: ev.EventName,
				Kind:      domain.WarnNonSnakeCase,
				Message:   fmt.Sprintf("event name %q is not snake_case", ev.EventName),
			})
		}

		if seen[ev.EventName] {
			warnings = append(warnings, domain.TaxonomyWarning{
				EventName: ev.EventName,
				Kind:      domain.WarnDuplicateName,
				Message:   fmt.Sprintf("duplicate event name: %q", ev.EventName),
			})
		}
		seen[ev.EventName] = true

		present := make(map[string]bool, len(ev.Properties))
		for _, p := range ev.Properties {
			present[p.Name] = true
		}
		for _, required := range domain.BaselineProperties {
			if !present[required] {
				warnings = append(warnings, domain.TaxonomyWarning{
					EventName: ev.EventName,
					Kind:      domain.WarnMissingRequiredProperty,
					Message:   fmt.Sprintf("event %q is missing required property %q", ev.EventName, required),
				})
			}
		}
	}
	return warnings
}
