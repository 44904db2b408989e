package emit

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/meenams/ai-schema-designer-meena-muthu/internal/domain"
)

// Sampler generates synthetic sample events. Randomness is confined here:
// the plan and schema are never affected by it. Tests inject a seed and a
// base time to get byte-for-byte reproducible output.
type Sampler struct {
	rnd  *rand.Rand
	base time.Time
}

// SamplerOption customizes Sampler construction.
type SamplerOption func(*Sampler)

// WithSeed makes the sampler fully deterministic.
func WithSeed(seed int64) SamplerOption {
	return func(s *Sampler) {
		s.rnd = rand.New(rand.NewSource(seed))
	}
}

// WithBaseTime fixes the timestamp the sample sequence starts from.
func WithBaseTime(t time.Time) SamplerOption {
	return func(s *Sampler) {
		s.base = t.UTC().Truncate(time.Second)
	}
}

// NewSampler creates a sampler seeded from the clock unless WithSeed is given.
func NewSampler(opts ...SamplerOption) *Sampler {
	s := &Sampler{
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
		base: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Samples produces countPerEvent records per event definition, in plan
// order. Timestamps increase monotonically from the base time. Baseline
// properties always get a value; error properties only appear on events
// that define them.
func (s *Sampler) Samples(plan *domain.TrackingPlan, countPerEvent int) []domain.SyntheticEvent {
	if countPerEvent <= 0 {
		return nil
	}

	events := make([]domain.SyntheticEvent, 0, len(plan.Events)*countPerEvent)
	seq := 0
	for _, def := range plan.Events {
		for i := 0; i < countPerEvent; i++ {
			ts := s.base.Add(time.Duration(seq) * time.Minute)
			seq++

			// rand.Rand implements io.Reader, so seeded runs produce
			// reproducible IDs.
			id, err := uuid.NewRandomFromReader(s.rnd)
			if err != nil {
				id = uuid.Nil
			}

			props := make(map[string]any, len(def.Properties))
			for _, p := range def.Properties {
				props[p.Name] = s.value(p, ts)
			}

			events = append(events, domain.SyntheticEvent{
				EventID:    id.String(),
				EventName:  def.EventName,
				Timestamp:  ts,
				Properties: props,
			})
		}
	}
	return events
}

var (
	errorCodes    = []int{400, 408, 500, 503}
	errorMessages = []string{"Timeout", "Internal server error", "Permission denied"}
	elementIDs    = []string{"cta_primary", "secondary_button", "link_text"}
	pages         = []string{"settings", "dashboard", "feature_page"}
	pageURLs      = []string{"/settings", "/dashboard", "/features/overview"}
	deviceTypes   = []string{"phone", "tablet"}
	osVersions    = []string{"17.4", "14.0", "13.1"}
	appVersions   = []string{"3.12.0", "3.11.2", "3.10.7"}
	endpoints     = []string{"/api/v1/events", "/api/v1/export", "/api/v1/workspaces"}
	statusCodes   = []int{200, 201, 400, 500}
)

func (s *Sampler) pick(values []string) string {
	return values[s.rnd.Intn(len(values))]
}

// value produces a type-appropriate sample for one property.
func (s *Sampler) value(p domain.Property, ts time.Time) any {
	switch p.Name {
	case "user_id":
		return fmt.Sprintf("user_%d", 1+s.rnd.Intn(50))
	case "workspace_id":
		return fmt.Sprintf("ws_%d", 1+s.rnd.Intn(10))
	case "timestamp":
		return ts.Format(time.RFC3339)
	case "error_code":
		return errorCodes[s.rnd.Intn(len(errorCodes))]
	case "error_message":
		return s.pick(errorMessages)
	case "element_id":
		return s.pick(elementIDs)
	case "page":
		return s.pick(pages)
	case "page_url":
		return s.pick(pageURLs)
	case "device_type":
		return s.pick(deviceTypes)
	case "os_version":
		return s.pick(osVersions)
	case "app_version":
		return s.pick(appVersions)
	case "endpoint":
		return s.pick(endpoints)
	case "status_code":
		return statusCodes[s.rnd.Intn(len(statusCodes))]
	}

	switch domain.InferPropertyType(p.Name) {
	case domain.TypeTimestamp:
		return ts.Format(time.RFC3339)
	case domain.TypeNumber:
		return s.rnd.Intn(100)
	default:
		return fmt.Sprintf("%s_%d", p.Name, 1+s.rnd.Intn(1000))
	}
}

// EncodeJSON renders events as an indented JSON array with the properties
// flattened into each object, matching the downloadable export format.
func EncodeJSON(events []domain.SyntheticEvent) ([]byte, error) {
	flat := make([]map[string]any, 0, len(events))
	for _, ev := range events {
		flat = append(flat, flatten(ev))
	}
	return json.MarshalIndent(flat, "", "  ")
}

// EncodeCSV renders events with fixed leading columns followed by the
// sorted union of property names across all events. Events lacking a
// property get an empty cell.
func EncodeCSV(events []domain.SyntheticEvent) ([]byte, error) {
	columns := propertyColumns(events)
	header := append([]string{"event_id", "event_name", "timestamp"}, columns...)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, ev := range events {
		row := []string{ev.EventID, ev.EventName, ev.Timestamp.Format(time.RFC3339)}
		for _, col := range columns {
			v, ok := ev.Properties[col]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, fmt.Sprint(v))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func flatten(ev domain.SyntheticEvent) map[string]any {
	m := make(map[string]any, len(ev.Properties)+3)
	for k, v := range ev.Properties {
		m[k] = v
	}
	m["event_id"] = ev.EventID
	m["event_name"] = ev.EventName
	m["timestamp"] = ev.Timestamp.Format(time.RFC3339)
	return m
}

// propertyColumns is the sorted union of property names, minus the fixed
// leading columns.
func propertyColumns(events []domain.SyntheticEvent) []string {
	seen := make(map[string]bool)
	for _, ev := range events {
		for name := range ev.Properties {
			if name == "timestamp" {
				continue
			}
			seen[name] = true
		}
	}
	columns := make([]string, 0, len(seen))
	for name := range seen {
		columns = append(columns, name)
	}
	sort.Strings(columns)
	return columns
}
