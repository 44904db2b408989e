package plan

import "strings"

// Slug normalizes free text into a snake_case identifier: lower-cased, every
// run of non-alphanumeric characters collapsed to a single underscore, no
// leading or trailing underscore.
func Slug(text string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// EventName builds the fixed naming convention <feature_slug>_<part_slug>.
// The join is fixed so identical input always yields identical names.
func EventName(feature, part string) string {
	return Slug(feature) + "_" + Slug(part)
}
