package classify

// Scoped holds the classification fields shared by every file in a
// directory. The rename orchestrator caches these per directory; episode is
// excluded because it varies per file.
type Scoped struct {
	Title  string
	Season string
	Group  string
}

// Classification is the full canonical identity of one filename.
type Classification struct {
	Scoped
	Episode string
}

// Analysis carries the normalized forms of one base name so the scoped and
// per-file identifiers can share a single normalization pass.
type Analysis struct {
	// Cleaned is the base name after hash and keyword removal.
	Cleaned string
	// Rewritten is Cleaned with all delimiters unified to the separator.
	Rewritten string
	// Segments are the ordered non-empty, non-technical pieces of Rewritten.
	Segments []string
}

// Classifier bundles the keyword set and release-group registry and drives
// the classification pipeline over individual base names.
type Classifier struct {
	keywords *KeywordSet
	registry *Registry
}

// New constructs a classifier. Nil arguments fall back to the embedded
// defaults.
func New(keywords *KeywordSet, registry *Registry) *Classifier {
	if keywords == nil {
		keywords = DefaultKeywords()
	}
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Classifier{keywords: keywords, registry: registry}
}

// Analyze normalizes and tokenizes a base name.
func (c *Classifier) Analyze(base string) Analysis {
	cleaned := Normalize(base, c.keywords)
	rewritten, segments := Tokenize(cleaned, c.keywords)
	return Analysis{Cleaned: cleaned, Rewritten: rewritten, Segments: segments}
}

// Identify resolves the directory-scoped fields from an analysis.
func (c *Classifier) Identify(analysis Analysis) Scoped {
	return Scoped{
		Title:  IdentifyTitle(analysis.Segments, c.registry),
		Season: IdentifySeason(analysis.Cleaned),
		Group:  IdentifyGroup(analysis.Cleaned, analysis.Segments, c.registry),
	}
}

// Episode resolves the per-file episode number from an analysis.
func (c *Classifier) Episode(analysis Analysis) string {
	return IdentifyEpisode(analysis.Cleaned)
}

// Classify runs the full pipeline over a single base name.
func (c *Classifier) Classify(base string) Classification {
	analysis := c.Analyze(base)
	return Classification{
		Scoped:  c.Identify(analysis),
		Episode: c.Episode(analysis),
	}
}
