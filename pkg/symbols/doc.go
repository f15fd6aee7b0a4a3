// Package symbols maps free-text equipment labels to catalog icon names.
//
// The package has two halves: a catalog of known symbol names loaded once
// per process from a pluggable [Source], and a matcher that scores
// normalized labels against the catalog using a blended token-overlap /
// edit-distance similarity.
//
// # Catalog
//
// The catalog is an explicit store with three states: unloaded, loading,
// and loaded. [Catalog.Load] is idempotent and at-most-once across
// concurrent callers - a second caller waits for the in-flight fetch
// instead of issuing a duplicate one. A failed load leaves the catalog
// unloaded so a later call can re-attempt.
//
//	cat := symbols.NewCatalog(symbols.NewHTTPSource(url, nil), logger)
//	if err := cat.Load(ctx); err != nil {
//	    // catalog stays unloaded, matching falls back to no-match
//	}
//
// # Matching
//
// Matching resolves in three stages, cheapest first:
//
//  1. Exact membership of the normalized label in the catalog
//
//  2. Synonym lookup (domain jargon → catalog family)
//
//  3. Blended similarity against every catalog name, accepting the top
//     candidate only above a configurable threshold
//
//     m := symbols.NewMatcher(cat, symbols.DefaultConfig())
//     name, ok := m.FindBest("Ball Valve A1") // "valve", true
//
// The similarity weights and acceptance threshold are empirical tuning
// values carried in [Config] rather than constants.
package symbols
