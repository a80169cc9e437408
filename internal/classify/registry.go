package classify

import "strings"

// defaultGroups is the embedded registry of known release groups. Iteration
// order matters: multi-group co-releases are joined in registry order.
var defaultGroups = []string{
	"VCB-Studio", "Kamigami", "FANSUB", "UHA-WINGS", "ReinForce", "DMG",
	"SweetSub", "Nekomoe kissaten", "Sakurato", "Airota", "LPSub",
	"KitaujiSub", "LoliHouse", "Haruhana", "KTXP", "Moozzi2", "THORA",
	"Fussoir", "LittleBakas", ".subbers project", "Lilith-Raws", "NC-Raws",
	"FLsnow", "DHR", "MakariHoshiyume", "TxxZ", "A.I.R.nesSub", "B-Global",
	"新Sub", "XKsub", "SumiSora", "Mabors", "UCCUSS", "Skymoon-Raws",
}

// Registry is an ordered set of known release-group names compared
// case-insensitively as substrings of cleaned filenames.
type Registry struct {
	groups  []string
	lowered []string
}

// NewRegistry builds a registry from the given group names, preserving order.
func NewRegistry(groups []string) *Registry {
	r := &Registry{
		groups:  make([]string, 0, len(groups)),
		lowered: make([]string, 0, len(groups)),
	}
	for _, group := range groups {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}
		r.groups = append(r.groups, group)
		r.lowered = append(r.lowered, strings.ToLower(group))
	}
	return r
}

// DefaultRegistry returns the embedded registry, optionally extended with
// additional group names appended after the defaults.
func DefaultRegistry(extra ...string) *Registry {
	if len(extra) == 0 {
		return NewRegistry(defaultGroups)
	}
	merged := make([]string, 0, len(defaultGroups)+len(extra))
	merged = append(merged, defaultGroups...)
	merged = append(merged, extra...)
	return NewRegistry(merged)
}

// MatchAll returns every registry entry whose name appears in s ignoring
// case, in registry order and with registry casing.
func (r *Registry) MatchAll(s string) []string {
	lower := strings.ToLower(s)
	var matches []string
	for i, group := range r.lowered {
		if strings.Contains(lower, group) {
			matches = append(matches, r.groups[i])
		}
	}
	return matches
}

// ContainsAny reports whether s contains any registry entry, ignoring case.
func (r *Registry) ContainsAny(s string) bool {
	lower := strings.ToLower(s)
	for _, group := range r.lowered {
		if strings.Contains(lower, group) {
			return true
		}
	}
	return false
}

// Groups returns a copy of the registry entries in iteration order.
func (r *Registry) Groups() []string {
	return append([]string(nil), r.groups...)
}
