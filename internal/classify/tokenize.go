package classify

import "strings"

// segmentSeparator replaces every delimiter during tokenization. A pipe is
// unlikely to occur naturally in a title, so splitting on it is safe.
const segmentSeparator = "|"

var delimiterReplacer = strings.NewReplacer(
	".", segmentSeparator,
	"-", segmentSeparator,
	"_", segmentSeparator,
	"[", segmentSeparator,
	"]", segmentSeparator,
	"(", segmentSeparator,
	")", segmentSeparator,
	"&", segmentSeparator,
	"/", segmentSeparator,
)

// Tokenize rewrites the delimiter punctuation of a cleaned name into a
// single separator and splits it into trimmed segments. Empty segments and
// segments containing a technical keyword are dropped; order is preserved
// because the first segment carries weight in group and title fallbacks.
func Tokenize(cleaned string, keywords *KeywordSet) (string, []string) {
	rewritten := delimiterReplacer.Replace(cleaned)
	parts := strings.Split(rewritten, segmentSeparator)
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || keywords.ContainsAny(part) {
			continue
		}
		segments = append(segments, part)
	}
	return rewritten, segments
}
