// Package emit renders a tracking plan into its exportable artifacts: a
// dbt-style schema, synthetic sample events and taxonomy lint warnings.
// Every function here is a pure transform of its plan.
package emit

import (
	"gopkg.in/yaml.v3"

	"github.com/meenams/ai-schema-designer-meena-muthu/internal/domain"
)

// SchemaDocument is a dbt-style schema configuration for a tracking plan.
type SchemaDocument struct {
	Version int           `yaml:"version" json:"version"`
	Models  []SchemaModel `yaml:"models" json:"models"`
}

// SchemaModel suggests one dbt model per event.
type SchemaModel struct {
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description" json:"description"`
	Columns     []SchemaColumn `yaml:"columns" json:"columns"`
}

// SchemaColumn is one typed column of a model.
type SchemaColumn struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Type        string   `yaml:"type" json:"type"`
	Tests       []string `yaml:"tests,omitempty" json:"tests,omitempty"`
}

// Schema maps each event to a model with typed columns. Column types come
// from the name-based inference rule; required properties get a not_null
// test. The document is built from ordered slices only, so rendering it
// twice yields byte-identical output.
func Schema(plan *domain.TrackingPlan) SchemaDocument {
	models := make([]SchemaModel, 0, len(plan.Events))
	for _, ev := range plan.Events {
		columns := make([]SchemaColumn, 0, len(ev.Properties))
		for _, p := range ev.Properties {
			var tests []string
			if p.Required {
				tests = []string{"not_null"}
			}
			columns = append(columns, SchemaColumn{
				Name:        p.Name,
				Description: p.Description,
				Type:        string(domain.InferPropertyType(p.Name)),
				Tests:       tests,
			})
		}
		models = append(models, SchemaModel{
			Name:        ev.EventName,
			Description: ev.Description,
			Columns:     columns,
		})
	}
	return SchemaDocument{Version: 2, Models: models}
}

// YAML serializes the document in the dbt schema file convention.
func (d SchemaDocument) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}
