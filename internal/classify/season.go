package classify

import "regexp"

// DefaultSeason is assumed when a filename carries no season marker.
// Single-season releases are the common case; absence must not read as
// season zero.
const DefaultSeason = "01"

// seasonPattern accepts "Season 2" and "S02" style markers, ignoring case.
var seasonPattern = regexp.MustCompile(`(?i)(?:season\s*(\d+)|s(\d+))`)

// IdentifySeason extracts the zero-padded season number from a cleaned
// filename, defaulting to "01" when no marker is present. Markers longer
// than two digits pass through unpadded.
func IdentifySeason(cleaned string) string {
	match := seasonPattern.FindStringSubmatch(cleaned)
	if match == nil {
		return DefaultSeason
	}
	digits := match[1]
	if digits == "" {
		digits = match[2]
	}
	return padNumber(digits)
}

// padNumber zero-pads a digit string to at least two characters.
func padNumber(digits string) string {
	if len(digits) == 1 {
		return "0" + digits
	}
	return digits
}
