package classify

import "strings"

// UnknownGroup is returned when no release group can be identified at all.
const UnknownGroup = "UNKnownSub"

// IdentifyGroup resolves the release group for a cleaned filename. Registry
// membership is authoritative: a single match is returned with registry
// casing, and multiple matches (co-releases) are joined with "&" in registry
// order. When the registry is silent, the first segment advertising a sub or
// studio role wins, then the first segment outright, then the sentinel.
func IdentifyGroup(cleaned string, segments []string, registry *Registry) string {
	if matches := registry.MatchAll(cleaned); len(matches) > 0 {
		return strings.Join(matches, "&")
	}
	for _, segment := range segments {
		lower := strings.ToLower(segment)
		if strings.Contains(lower, "sub") || strings.Contains(lower, "studio") {
			return segment
		}
	}
	if len(segments) > 0 {
		return segments[0]
	}
	return UnknownGroup
}
