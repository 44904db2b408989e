package plan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meenams/ai-schema-designer-meena-muthu/internal/domain"
)

func bulkExportRequest() domain.FeatureRequest {
	return domain.FeatureRequest{
		Name:        "Bulk Export",
		Description: "Export all workspace records in one run",
		Platform:    domain.PlatformWeb,
		Actions:     []string{"click export button", "confirm export"},
	}
}

func eventNames(p *domain.TrackingPlan) []string {
	names := make([]string, 0, len(p.Events))
	for _, ev := range p.Events {
		names = append(names, ev.EventName)
	}
	return names
}

func TestGenerator_Generate_BulkExportScenario(t *testing.T) {
	generator := NewGenerator()

	plan, err := generator.Generate(bulkExportRequest())

	assert.NoError(t, err)
	assert.Equal(t, []string{
		"bulk_export_viewed",
		"bulk_export_error",
		"bulk_export_click_export_button",
		"bulk_export_confirm_export",
	}, eventNames(plan))
}

func TestGenerator_Generate_Deterministic(t *testing.T) {
	generator := NewGenerator()

	first, err := generator.Generate(bulkExportRequest())
	assert.NoError(t, err)
	second, err := generator.Generate(bulkExportRequest())
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerator_Generate_EmptyActions(t *testing.T) {
	generator := NewGenerator()

	req := bulkExportRequest()
	req.Actions = nil

	plan, err := generator.Generate(req)

	assert.NoError(t, err)
	assert.Equal(t, []string{"bulk_export_viewed", "bulk_export_error"}, eventNames(plan))
}

func TestGenerator_Generate_BlankActionsSkipped(t *testing.T) {
	generator := NewGenerator()

	req := bulkExportRequest()
	req.Actions = []string{"  ", "confirm export", ""}

	plan, err := generator.Generate(req)

	assert.NoError(t, err)
	assert.Equal(t, []string{
		"bulk_export_viewed",
		"bulk_export_error",
		"bulk_export_confirm_export",
	}, eventNames(plan))
}

func TestGenerator_Generate_MissingName(t *testing.T) {
	generator := NewGenerator()

	req := bulkExportRequest()
	req.Name = "   "

	plan, err := generator.Generate(req)

	assert.Nil(t, plan)
	var verr *domain.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "name", verr.Field)
	assert.Equal(t, domain.ErrKindMissingField, verr.Kind)
}

func TestGenerator_Generate_MissingDescription(t *testing.T) {
	generator := NewGenerator()

	req := bulkExportRequest()
	req.Description = ""

	plan, err := generator.Generate(req)

	assert.Nil(t, plan)
	var verr *domain.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "description", verr.Field)
}

func TestGenerator_Generate_BaselineProperties(t *testing.T) {
	generator := NewGenerator()

	plan, err := generator.Generate(bulkExportRequest())
	assert.NoError(t, err)

	for _, ev := range plan.Events {
		names := make(map[string]bool)
		for _, p := range ev.Properties {
			names[p.Name] = true
		}
		for _, required := range domain.BaselineProperties {
			assert.True(t, names[required], "event %s missing %s", ev.EventName, required)
		}
	}
}

func TestGenerator_Generate_ErrorEventProperties(t *testing.T) {
	generator := NewGenerator()

	plan, err := generator.Generate(bulkExportRequest())
	assert.NoError(t, err)

	props := func(name string) map[string]domain.Property {
		for _, ev := range plan.Events {
			if ev.EventName != name {
				continue
			}
			out := make(map[string]domain.Property)
			for _, p := range ev.Properties {
				out[p.Name] = p
			}
			return out
		}
		t.Fatalf("event %s not found", name)
		return nil
	}

	errorProps := props("bulk_export_error")
	assert.Contains(t, errorProps, "error_code")
	assert.Contains(t, errorProps, "error_message")
	assert.Equal(t, domain.TypeNumber, errorProps["error_code"].Type)

	viewedProps := props("bulk_export_viewed")
	assert.NotContains(t, viewedProps, "error_code")
}

func TestGenerator_Generate_ClickActionProperties(t *testing.T) {
	generator := NewGenerator()

	plan, err := generator.Generate(bulkExportRequest())
	assert.NoError(t, err)

	var clickEvent *domain.EventDefinition
	for i := range plan.Events {
		if plan.Events[i].EventName == "bulk_export_click_export_button" {
			clickEvent = &plan.Events[i]
		}
	}
	assert.NotNil(t, clickEvent)

	names := make(map[string]bool)
	for _, p := range clickEvent.Properties {
		names[p.Name] = true
	}
	assert.True(t, names["element_id"])
	assert.True(t, names["page"])
}

func TestGenerator_Generate_PlatformProperties(t *testing.T) {
	generator := NewGenerator()

	tests := []struct {
		platform domain.Platform
		expected string
	}{
		{domain.PlatformWeb, "page_url"},
		{domain.PlatformIOS, "device_type"},
		{domain.PlatformAndroid, "device_type"},
		{domain.PlatformBackend, "endpoint"},
	}

	for _, tc := range tests {
		req := bulkExportRequest()
		req.Platform = tc.platform

		plan, err := generator.Generate(req)
		assert.NoError(t, err)

		names := make(map[string]bool)
		for _, p := range plan.Events[0].Properties {
			names[p.Name] = true
		}
		assert.True(t, names[tc.expected], "platform %s should add %s", tc.platform, tc.expected)
	}
}

func TestGenerator_Generate_UnknownPlatformFallsBack(t *testing.T) {
	generator := NewGenerator()

	req := bulkExportRequest()
	req.Platform = domain.ParsePlatform("smartwatch")

	plan, err := generator.Generate(req)

	assert.NoError(t, err)
	assert.Equal(t, domain.PlatformUnknown, plan.Platform)

	// Generic degradation: only the baseline set on the viewed event.
	assert.Len(t, plan.Events[0].Properties, len(domain.BaselineProperties))
}

func TestGenerator_Generate_FunnelStages(t *testing.T) {
	generator := NewGenerator()

	req := bulkExportRequest()
	req.Actions = nil
	req.FunnelStages = []string{"view", "start", "complete"}

	plan, err := generator.Generate(req)

	assert.NoError(t, err)
	assert.Equal(t, []string{
		"bulk_export_viewed",
		"bulk_export_error",
		"bulk_export_view",
		"bulk_export_start",
		"bulk_export_complete",
	}, eventNames(plan))
	assert.Equal(t, domain.CategoryFunnel, plan.Events[2].Category)
}

type staticSuggester struct {
	props []domain.Property
}

func (s staticSuggester) Suggest(action string) []domain.Property {
	return s.props
}

func TestGenerator_WithPropertySuggester(t *testing.T) {
	custom := staticSuggester{props: []domain.Property{
		{Name: "export_format", Type: domain.TypeString, Description: "Chosen export format"},
	}}
	generator := NewGenerator(WithPropertySuggester(custom))

	plan, err := generator.Generate(bulkExportRequest())
	assert.NoError(t, err)

	names := make(map[string]bool)
	for _, p := range plan.Events[2].Properties {
		names[p.Name] = true
	}
	assert.True(t, names["export_format"])
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"Click Export!!", "click_export"},
		{"  Bulk Export  ", "bulk_export"},
		{"a--b__c", "a_b_c"},
		{"UPPER case 42", "upper_case_42"},
		{"___", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.out, Slug(tc.in), "Slug(%q)", tc.in)
	}
}
