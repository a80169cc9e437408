package classify

import (
	"regexp"
	"strings"
)

// defaultKeywords lists quality, codec, and container tokens that carry no
// show identity. Order is significant: longer variants such as "1080p" must
// come before their bare prefixes so erasure consumes the full token first.
var defaultKeywords = []string{
	"1080p", "720p", "2160p", "x265", "x264", "ac3", "flac", "hevc", "ma10p",
	"web-dl", "bdrip", "webrip", "big5", "hi10p", "aac", "avc", "web",
	"multisub", "multi-subs", "1080", "1920",
}

// KeywordSet is a fixed, case-insensitive collection of technical tokens.
// The normalizer erases them from filenames and the tokenizer drops segments
// that contain them.
type KeywordSet struct {
	words    []string
	lowered  []string
	patterns []*regexp.Regexp
}

// NewKeywordSet builds a keyword set from the given tokens, preserving order.
func NewKeywordSet(words []string) *KeywordSet {
	ks := &KeywordSet{
		words:    make([]string, 0, len(words)),
		lowered:  make([]string, 0, len(words)),
		patterns: make([]*regexp.Regexp, 0, len(words)),
	}
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		ks.words = append(ks.words, word)
		ks.lowered = append(ks.lowered, strings.ToLower(word))
		ks.patterns = append(ks.patterns, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(word)))
	}
	return ks
}

// DefaultKeywords returns the built-in keyword set, optionally extended with
// additional tokens appended after the defaults.
func DefaultKeywords(extra ...string) *KeywordSet {
	if len(extra) == 0 {
		return NewKeywordSet(defaultKeywords)
	}
	merged := make([]string, 0, len(defaultKeywords)+len(extra))
	merged = append(merged, defaultKeywords...)
	merged = append(merged, extra...)
	return NewKeywordSet(merged)
}

// Erase removes every case-insensitive occurrence of each keyword from s.
// Matching is plain substring, not word-anchored: a keyword may consume part
// of an adjacent token.
func (k *KeywordSet) Erase(s string) string {
	for _, pattern := range k.patterns {
		s = pattern.ReplaceAllString(s, "")
	}
	return s
}

// ContainsAny reports whether s contains any keyword, ignoring case.
func (k *KeywordSet) ContainsAny(s string) bool {
	lower := strings.ToLower(s)
	for _, word := range k.lowered {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// Words returns a copy of the keyword list in matching order.
func (k *KeywordSet) Words() []string {
	return append([]string(nil), k.words...)
}
