package domain

import (
	"strings"
	"time"
)

// Platform identifies where a feature's events are emitted from.
type Platform string

const (
	PlatformWeb     Platform = "web"
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformBackend Platform = "backend"
	PlatformUnknown Platform = "unknown"
)

// ParsePlatform maps free-form input to a known platform. Unrecognized
// values degrade to PlatformUnknown so the generator can fall back to the
// generic property set instead of rejecting the request.
func ParsePlatform(s string) Platform {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformWeb:
		return PlatformWeb
	case PlatformIOS:
		return PlatformIOS
	case PlatformAndroid:
		return PlatformAndroid
	case PlatformBackend:
		return PlatformBackend
	default:
		return PlatformUnknown
	}
}

// PropertyType is the inferred column type of an event property.
type PropertyType string

const (
	TypeString    PropertyType = "string"
	TypeNumber    PropertyType = "number"
	TypeTimestamp PropertyType = "timestamp"
)

// InferPropertyType derives a type from a property name. The same rule
// drives the plan listing, the schema columns and the sample values, so the
// three artifacts can never disagree about a property's type.
func InferPropertyType(name string) PropertyType {
	if name == "timestamp" || strings.HasSuffix(name, "_at") {
		return TypeTimestamp
	}
	if strings.HasSuffix(name, "_count") || strings.HasSuffix(name, "_code") {
		return TypeNumber
	}
	return TypeString
}

// BaselineProperties are required on every event regardless of platform.
var BaselineProperties = []string{"user_id", "workspace_id", "timestamp"}

// FeatureRequest describes the feature a tracking plan is generated for.
// Input only; never persisted.
type FeatureRequest struct {
	Name         string
	Description  string
	Platform     Platform
	Actions      []string
	FunnelStages []string
}

// Property is a suggested event property with an inferred type.
type Property struct {
	Name        string
	Type        PropertyType
	Description string
	Required    bool
}

// Event categories.
const (
	CategoryLifecycle = "lifecycle"
	CategoryFunnel    = "funnel"
	CategoryBehavior  = "behavior"
)

// EventDefinition is one generated analytics event. Immutable once created.
type EventDefinition struct {
	EventName    string
	FriendlyName string
	Description  string
	Trigger      string
	Category     string
	Properties   []Property
}

// TrackingPlan is the ordered set of events generated for one feature
// request. It owns its EventDefinitions exclusively.
type TrackingPlan struct {
	FeatureName        string
	FeatureDescription string
	Platform           Platform
	Events             []EventDefinition
}

// WarningKind classifies a taxonomy lint finding.
type WarningKind string

const (
	WarnNonSnakeCase            WarningKind = "non_snake_case"
	WarnDuplicateName           WarningKind = "duplicate_name"
	WarnMissingRequiredProperty WarningKind = "missing_required_property"
)

// TaxonomyWarning is a single lint finding, recomputed on every request.
type TaxonomyWarning struct {
	EventName string
	Kind      WarningKind
	Message   string
}

// SyntheticEvent is a fabricated sample record matching an event's schema.
type SyntheticEvent struct {
	EventID    string
	EventName  string
	Timestamp  time.Time
	Properties map[string]any
}
