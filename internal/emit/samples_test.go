package emit

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/meenams/ai-schema-designer-meena-muthu/internal/domain"
	"github.com/meenams/ai-schema-designer-meena-muthu/internal/plan"
)

func webPlan(t *testing.T) *domain.TrackingPlan {
	t.Helper()
	generator := plan.NewGenerator()
	p, err := generator.Generate(domain.FeatureRequest{
		Name:        "Bulk Export",
		Description: "Export all workspace records",
		Platform:    domain.PlatformWeb,
		Actions:     []string{"click export button"},
	})
	assert.NoError(t, err)
	return p
}

func fixedSampler() *Sampler {
	return NewSampler(
		WithSeed(42),
		WithBaseTime(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
	)
}

func TestSampler_CountPerEvent(t *testing.T) {
	p := webPlan(t)

	events := fixedSampler().Samples(p, 5)

	assert.Len(t, events, len(p.Events)*5)
	assert.Empty(t, fixedSampler().Samples(p, 0))
}

func TestSampler_SeededRunsAreIdentical(t *testing.T) {
	p := webPlan(t)

	first := fixedSampler().Samples(p, 4)
	second := fixedSampler().Samples(p, 4)

	assert.Equal(t, first, second)
}

func TestSampler_BaselinePropertiesNeverNull(t *testing.T) {
	events := fixedSampler().Samples(webPlan(t), 3)

	for _, ev := range events {
		for _, required := range domain.BaselineProperties {
			v, ok := ev.Properties[required]
			assert.True(t, ok, "event %s missing %s", ev.EventName, required)
			assert.NotNil(t, v)
			assert.NotEqual(t, "", v)
		}
	}
}

func TestSampler_ErrorCodeOnlyOnErrorEvents(t *testing.T) {
	events := fixedSampler().Samples(webPlan(t), 3)

	for _, ev := range events {
		_, hasCode := ev.Properties["error_code"]
		if ev.EventName == "bulk_export_error" {
			assert.True(t, hasCode)
			assert.IsType(t, 0, ev.Properties["error_code"])
		} else {
			assert.False(t, hasCode, "event %s should not carry error_code", ev.EventName)
		}
	}
}

func TestSampler_TimestampsIncrease(t *testing.T) {
	events := fixedSampler().Samples(webPlan(t), 3)

	for i := 1; i < len(events); i++ {
		assert.True(t, events[i].Timestamp.After(events[i-1].Timestamp))
	}

	// The timestamp property mirrors the record timestamp.
	assert.Equal(t,
		events[0].Timestamp.Format(time.RFC3339),
		events[0].Properties["timestamp"])
}

func TestSampler_UniqueEventIDs(t *testing.T) {
	events := fixedSampler().Samples(webPlan(t), 5)

	seen := make(map[string]bool)
	for _, ev := range events {
		assert.False(t, seen[ev.EventID])
		seen[ev.EventID] = true
	}
}

func TestEncodeJSON_FlattensProperties(t *testing.T) {
	events := fixedSampler().Samples(webPlan(t), 2)

	data, err := EncodeJSON(events)
	assert.NoError(t, err)

	var decoded []map[string]any
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded, len(events))

	first := decoded[0]
	assert.Equal(t, events[0].EventName, first["event_name"])
	assert.Equal(t, events[0].EventID, first["event_id"])
	assert.Contains(t, first, "user_id")
	assert.Contains(t, first, "workspace_id")
}

func TestEncodeCSV_HeaderAndRows(t *testing.T) {
	events := fixedSampler().Samples(webPlan(t), 2)

	data, err := EncodeCSV(events)
	assert.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, len(events)+1)

	header := records[0]
	assert.Equal(t, []string{"event_id", "event_name", "timestamp"}, header[:3])

	// Property columns are sorted and shared across all rows.
	properties := header[3:]
	assert.True(t, sortedStrings(properties), "columns should be sorted: %v", properties)
	for _, row := range records[1:] {
		assert.Len(t, row, len(header))
	}
}

func TestEncodeCSV_BlankCellForAbsentProperty(t *testing.T) {
	events := fixedSampler().Samples(webPlan(t), 1)

	data, err := EncodeCSV(events)
	assert.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	assert.NoError(t, err)

	colIndex := -1
	for i, name := range records[0] {
		if name == "error_code" {
			colIndex = i
		}
	}
	assert.NotEqual(t, -1, colIndex)

	// Row 1 is the viewed event, which has no error_code.
	assert.Equal(t, "", records[1][colIndex])
	// Row 2 is the error event, which always has one.
	assert.NotEqual(t, "", records[2][colIndex])
}

func sortedStrings(values []string) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return false
		}
	}
	return true
}
