package symbols

import (
	"context"
	"sort"
	"unicode/utf8"

	"github.com/pidcanvas/pidcanvas/pkg/observability"
)

// Default tuning values for the blended similarity. These are empirical:
// token overlap is weighted higher than raw character similarity because
// domain names share vocabulary more reliably than spelling.
const (
	DefaultTokenWeight = 0.65
	DefaultEditWeight  = 0.35
	DefaultThreshold   = 0.4

	// maxNormalizedLen caps normalized labels fed to the matcher,
	// measured in runes to match the edit-distance computation.
	// Longer input cannot be a plausible equipment label.
	maxNormalizedLen = 500
)

// Config carries the matcher tuning values. The weights and threshold
// have no documented derivation; keep them configurable rather than
// assuming a different threshold behaves equivalently.
type Config struct {
	// TokenWeight scales the token-overlap score.
	TokenWeight float64
	// EditWeight scales the edit-distance score.
	EditWeight float64
	// Threshold is the minimum blended score for a scored match to be
	// accepted. A score exactly at the threshold is accepted.
	Threshold float64
	// Synonyms maps normalized jargon to catalog families.
	// Nil means DefaultSynonyms().
	Synonyms map[string]string
}

// DefaultConfig returns the tuning values used in production.
func DefaultConfig() Config {
	return Config{
		TokenWeight: DefaultTokenWeight,
		EditWeight:  DefaultEditWeight,
		Threshold:   DefaultThreshold,
		Synonyms:    DefaultSynonyms(),
	}
}

// Candidate is a scored catalog entry, used for explain-style output.
type Candidate struct {
	Name    string  `json:"name"`
	Token   float64 `json:"token_score"`
	Edit    float64 `json:"edit_score"`
	Blended float64 `json:"blended_score"`
}

// Matcher resolves free-text labels to catalog symbol names.
// It is read-only after construction and safe for concurrent use.
type Matcher struct {
	catalog *Catalog
	cfg     Config
}

// NewMatcher creates a matcher over catalog with the given config.
// Zero-valued weights fall back to the defaults so an empty Config is usable.
func NewMatcher(catalog *Catalog, cfg Config) *Matcher {
	if cfg.TokenWeight == 0 && cfg.EditWeight == 0 {
		cfg.TokenWeight = DefaultTokenWeight
		cfg.EditWeight = DefaultEditWeight
	}
	if cfg.Threshold == 0 {
		cfg.Threshold = DefaultThreshold
	}
	if cfg.Synonyms == nil {
		cfg.Synonyms = DefaultSynonyms()
	}
	return &Matcher{catalog: catalog, cfg: cfg}
}

// Catalog returns the matcher's catalog.
func (m *Matcher) Catalog() *Catalog { return m.catalog }

// FindBest returns the catalog name best matching label, or ("", false)
// when no confident match exists.
//
// Resolution order:
//  1. Exact membership of the normalized label in the catalog
//  2. Synonym lookup, if the synonym's target is in the catalog
//  3. Blended similarity against every catalog name; the top candidate is
//     accepted only if its score is at or above the threshold
//
// Ties break by catalog iteration order (stable sort, first seen wins).
func (m *Matcher) FindBest(label string) (string, bool) {
	name, score, ok := m.findBest(label)
	observability.Catalog().OnMatch(context.Background(), label, name, score, ok)
	return name, ok
}

func (m *Matcher) findBest(label string) (string, float64, bool) {
	norm := Normalize(label)
	if norm == "" || utf8.RuneCountInString(norm) > maxNormalizedLen {
		return "", 0, false
	}

	if m.catalog.Has(norm) {
		return norm, 1, true
	}

	if target, ok := m.cfg.Synonyms[norm]; ok && m.catalog.Has(target) {
		return target, 1, true
	}

	candidates := m.score(norm)
	if len(candidates) == 0 {
		return "", 0, false
	}
	best := candidates[0]
	if best.Blended < m.cfg.Threshold {
		return "", best.Blended, false
	}
	return best.Name, best.Blended, true
}

// Explain scores label against the whole catalog and returns all
// candidates, best first. Unlike FindBest it does not short-circuit on
// exact or synonym hits; it exists to show why the matcher decided what
// it decided.
func (m *Matcher) Explain(label string) []Candidate {
	norm := Normalize(label)
	if norm == "" || utf8.RuneCountInString(norm) > maxNormalizedLen {
		return nil
	}
	return m.score(norm)
}

// Similarity returns the blended similarity of two canonical names.
func (m *Matcher) Similarity(a, b string) float64 {
	return m.cfg.TokenWeight*tokenScore(a, b) + m.cfg.EditWeight*editScore(a, b)
}

// score ranks every catalog name against norm, best first.
// The sort is stable so equal scores keep catalog order.
func (m *Matcher) score(norm string) []Candidate {
	names := m.catalog.Names()
	out := make([]Candidate, 0, len(names))
	for _, name := range names {
		c := Candidate{
			Name:  name,
			Token: tokenScore(norm, name),
			Edit:  editScore(norm, name),
		}
		c.Blended = m.cfg.TokenWeight*c.Token + m.cfg.EditWeight*c.Edit
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Blended > out[j].Blended
	})
	return out
}

// tokenScore is the fraction of a's tokens that appear among b's tokens.
// Membership, not count: repeated tokens in a score once each against the
// set of b's tokens. Zero when a has no tokens.
func tokenScore(a, b string) float64 {
	aTokens := Tokens(a)
	if len(aTokens) == 0 {
		return 0
	}
	bSet := make(map[string]struct{})
	for _, t := range Tokens(b) {
		bSet[t] = struct{}{}
	}
	hits := 0
	for _, t := range aTokens {
		if _, ok := bSet[t]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(aTokens))
}
