package classify

import (
	"regexp"
	"strings"
)

var (
	// releaseHashPattern matches the opaque 8-character CRC tags release
	// groups append, e.g. "[9F2E8A1C]".
	releaseHashPattern   = regexp.MustCompile(`\[[a-zA-Z0-9]{8}\]`)
	emptyBracketsPattern = regexp.MustCompile(`\[\s*\]`)
	multiSpacePattern    = regexp.MustCompile(`\s{2,}`)
)

// Normalize produces the cleaned form of a raw base name (extension already
// removed): release hashes stripped, technical keywords erased, bracket
// pairs left empty collapsed to a literal "[]", and whitespace runs
// squeezed. The result is never longer than the input.
func Normalize(raw string, keywords *KeywordSet) string {
	cleaned := releaseHashPattern.ReplaceAllString(raw, "")
	cleaned = keywords.Erase(cleaned)
	cleaned = emptyBracketsPattern.ReplaceAllString(cleaned, "[]")
	cleaned = multiSpacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
