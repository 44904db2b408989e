package plan

import "github.com/meenams/ai-schema-designer-meena-muthu/internal/domain"

// prop builds a property with its type inferred from the name.
func prop(name, description string, required bool) domain.Property {
	return domain.Property{
		Name:        name,
		Type:        domain.InferPropertyType(name),
		Description: description,
		Required:    required,
	}
}

// baselineProperties are attached to every event before anything else.
func baselineProperties() []domain.Property {
	return []domain.Property{
		prop("user_id", "Unique identifier for the user", true),
		prop("workspace_id", "Workspace or account identifier", true),
		prop("timestamp", "Event timestamp in ISO 8601", true),
	}
}

// errorProperties are attached to error-type events only.
func errorProperties() []domain.Property {
	return []domain.Property{
		prop("error_code", "Machine-readable error code", false),
		prop("error_message", "Human-readable error message", false),
	}
}

func mobileProperties() []domain.Property {
	return []domain.Property{
		prop("device_type", "Device form factor, e.g. phone or tablet", false),
		prop("os_version", "Operating system version", false),
		prop("app_version", "Installed application version", false),
	}
}

// platformProperties returns the platform-specific additions. Unknown
// platforms get no additions, which is the documented degradation.
func platformProperties(p domain.Platform) []domain.Property {
	switch p {
	case domain.PlatformWeb:
		return []domain.Property{
			prop("page_url", "URL of the page where the event fired", false),
		}
	case domain.PlatformIOS, domain.PlatformAndroid:
		return mobileProperties()
	case domain.PlatformBackend:
		return []domain.Property{
			prop("endpoint", "API endpoint that handled the request", false),
			prop("status_code", "HTTP status code returned", false),
		}
	default:
		return nil
	}
}

// mergeProperties concatenates property sets, dropping later duplicates by
// name. Order is stable: baseline first, then platform, then suggestions.
func mergeProperties(sets ...[]domain.Property) []domain.Property {
	var merged []domain.Property
	seen := make(map[string]bool)
	for _, set := range sets {
		for _, p := range set {
			if seen[p.Name] {
				continue
			}
			seen[p.Name] = true
			merged = append(merged, p)
		}
	}
	return merged
}
