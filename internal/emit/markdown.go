package emit

import (
	"fmt"
	"strings"

	"github.com/meenams/ai-schema-designer-meena-muthu/internal/domain"
)

// Markdown renders a plan as a document an analyst can paste into a review.
// Warnings are appended when present.
func Markdown(plan *domain.TrackingPlan, warnings []domain.TaxonomyWarning) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# Tracking Plan: %s\n\n", plan.FeatureName)
	fmt.Fprintf(&b, "%s\n\n", plan.FeatureDescription)
	fmt.Fprintf(&b, "Platform: %s\n\n", plan.Platform)
	b.WriteString("## Events\n\n")

	for _, ev := range plan.Events {
		fmt.Fprintf(&b, "### %s\n", ev.EventName)
		fmt.Fprintf(&b, "- **Friendly name:** %s\n", ev.FriendlyName)
		fmt.Fprintf(&b, "- **Category:** %s\n", ev.Category)
		fmt.Fprintf(&b, "- **When triggered:** %s\n", ev.Trigger)
		fmt.Fprintf(&b, "- **Description:** %s\n", ev.Description)
		b.WriteString("- **Properties:**\n")
		for _, p := range ev.Properties {
			requirement := "optional"
			if p.Required {
				requirement = "required"
			}
			fmt.Fprintf(&b, "  - `%s` (%s, %s) - %s\n", p.Name, p.Type, requirement, p.Description)
		}
		b.WriteString("\n")
	}

	if len(warnings) > 0 {
		b.WriteString("## Taxonomy Warnings\n\n")
		for _, w := range warnings {
			fmt.Fprintf(&b, "- %s\n", w.Message)
		}
	}

	return []byte(b.String())
}
