package classify

import "regexp"

// DefaultEpisode is returned when no pattern yields a usable episode number.
const DefaultEpisode = "01"

// episodePattern pairs a compiled expression with the index of the capture
// group holding the episode digits.
type episodePattern struct {
	re    *regexp.Regexp
	group int
}

// episodePatterns is evaluated as a short-circuiting cascade: the first
// pattern with a match wins, and within a pattern the leftmost match wins.
// Explicit E/Ep markers outrank the CJK episode marker, numeric ranges
// (first number taken), and finally bare one or two digit numbers, which are
// the most likely to be title or year fragments.
var episodePatterns = []episodePattern{
	{regexp.MustCompile(`(?i)e(?:p)?(\d{1,2})`), 1},
	{regexp.MustCompile(`第(\d{1,2})话`), 1},
	{regexp.MustCompile(`\b(\d{1,2})-(\d{1,2})\b`), 1},
	{regexp.MustCompile(`\b(\d{1,2})\b`), 1},
}

// IdentifyEpisode scans a cleaned filename with each pattern in priority
// order and returns the first zero-padded two-digit candidate. Candidates
// longer than two digits are skipped. Defaults to "01".
func IdentifyEpisode(cleaned string) string {
	for _, pattern := range episodePatterns {
		for _, match := range pattern.re.FindAllStringSubmatch(cleaned, -1) {
			digits := match[pattern.group]
			if digits == "" || len(digits) > 2 {
				continue
			}
			return padNumber(digits)
		}
	}
	return DefaultEpisode
}
