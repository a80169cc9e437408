package classify

import (
	"regexp"
	"strings"
)

// UnknownTitle is returned when no segment survives metadata stripping.
const UnknownTitle = "UnknownAnime"

var (
	titleSeasonPattern  = regexp.MustCompile(`(?i)\b(?:season\s*\d{1,2}|s\d{1,2})\b`)
	titleEpisodePattern = regexp.MustCompile(`(?i)\be(?:p)?\d{1,2}\b|\b\d{1,2}\b`)
)

// IdentifyTitle selects the show title from the tokenized segments. Segments
// branded with a registry group are removed, season and episode markers are
// stripped from the rest, and the longest survivor wins. Length is a proxy
// for "most descriptive"; ties keep the earliest segment.
func IdentifyTitle(segments []string, registry *Registry) string {
	best := ""
	for _, segment := range segments {
		if registry.ContainsAny(segment) {
			continue
		}
		stripped := titleSeasonPattern.ReplaceAllString(segment, "")
		stripped = titleEpisodePattern.ReplaceAllString(stripped, "")
		stripped = strings.TrimSpace(stripped)
		if stripped == "" {
			continue
		}
		if len(stripped) > len(best) {
			best = stripped
		}
	}
	if best == "" {
		return UnknownTitle
	}
	return best
}
