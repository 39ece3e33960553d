// Package resolver matches free-text movie references against the catalog.
//
// Resolution is strictly tiered: an exact normalized-title match wins
// outright, then a substring match, and only then a full-catalog fuzzy scan
// with a hybrid edit-distance/token-overlap score. The caller always gets at
// most one record back.
package resolver

import (
	"strings"

	"github.com/kinomaniac/kinoagent/internal/catalog"
)

// Tier identifies which resolution strategy produced a match.
type Tier int

const (
	TierNone Tier = iota
	TierExact
	TierSubstring
	TierFuzzy
)

func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierSubstring:
		return "substring"
	case TierFuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

// Result is the outcome of one resolution call. A nil Record means NoMatch.
type Result struct {
	Record *catalog.Record
	Tier   Tier
	Score  float64
}

// Matched reports whether a record was found.
func (r Result) Matched() bool {
	return r.Record != nil
}

// Options carry the fuzzy scoring policy. The weights and threshold are
// tunable configuration, not fixed semantics.
type Options struct {
	EditWeight  float64
	TokenWeight float64
	MetaWeight  float64
	Threshold   float64
}

// DefaultOptions returns the stock scoring policy.
func DefaultOptions() Options {
	return Options{
		EditWeight:  0.6,
		TokenWeight: 0.25,
		MetaWeight:  0.15,
		Threshold:   0.45,
	}
}

type indexedRecord struct {
	record     *catalog.Record
	titleNorm  string
	titleToks  map[string]struct{}
	metaToks   map[string]struct{}
}

// Resolver resolves queries against a fixed snapshot of the catalog.
type Resolver struct {
	records []indexedRecord
	opts    Options
}

// New builds a Resolver over the catalog records. The slice order is the
// dataset order used for tie-breaking and must stay stable.
func New(records []catalog.Record, opts Options) *Resolver {
	indexed := make([]indexedRecord, len(records))
	for i := range records {
		rec := &records[i]
		indexed[i] = indexedRecord{
			record:    rec,
			titleNorm: Normalize(rec.Title),
			titleToks: tokenSet(rec.Title),
			metaToks:  tokenSet(rec.MetaText()),
		}
	}
	return &Resolver{records: indexed, opts: opts}
}

// Resolve returns the single best catalog match for the query, or NoMatch.
func (r *Resolver) Resolve(query string) Result {
	q := Normalize(query)
	if q == "" {
		return Result{}
	}

	if res := r.resolveExact(q); res.Matched() {
		return res
	}
	if res := r.resolveSubstring(q); res.Matched() {
		return res
	}
	return r.resolveFuzzy(query, q)
}

// resolveExact returns the first record whose normalized title equals the
// query, in dataset order.
func (r *Resolver) resolveExact(q string) Result {
	for i := range r.records {
		if r.records[i].titleNorm == q {
			return Result{Record: r.records[i].record, Tier: TierExact, Score: 1}
		}
	}
	return Result{}
}

// resolveSubstring picks among substring hits by rating, then tightest title,
// then dataset order.
func (r *Resolver) resolveSubstring(q string) Result {
	var best *indexedRecord
	for i := range r.records {
		cand := &r.records[i]
		if !strings.Contains(cand.titleNorm, q) {
			continue
		}
		if best == nil ||
			cand.record.Rating > best.record.Rating ||
			(cand.record.Rating == best.record.Rating && len(cand.titleNorm) < len(best.titleNorm)) {
			best = cand
		}
	}
	if best == nil {
		return Result{}
	}
	return Result{Record: best.record, Tier: TierSubstring, Score: 1}
}

// resolveFuzzy scans the full catalog with the hybrid score. Ties are broken
// by rating, then dataset order.
func (r *Resolver) resolveFuzzy(raw, q string) Result {
	queryToks := tokenSet(raw)

	var best *indexedRecord
	bestScore := 0.0
	for i := range r.records {
		cand := &r.records[i]
		score := r.hybridScore(q, queryToks, cand)
		if score < r.opts.Threshold {
			continue
		}
		if best == nil || score > bestScore ||
			(score == bestScore && cand.record.Rating > best.record.Rating) {
			best = cand
			bestScore = score
		}
	}
	if best == nil {
		return Result{}
	}
	return Result{Record: best.record, Tier: TierFuzzy, Score: bestScore}
}

func (r *Resolver) hybridScore(q string, queryToks map[string]struct{}, cand *indexedRecord) float64 {
	edit := editComponent(q, cand.titleNorm)
	token := jaccard(queryToks, cand.titleToks)
	meta := metaComponent(queryToks, cand.metaToks)
	return r.opts.EditWeight*edit + r.opts.TokenWeight*token + r.opts.MetaWeight*meta
}

// editComponent is the length-normalized Levenshtein similarity, in [0,1].
func editComponent(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	score := 1 - float64(levenshtein(a, b))/float64(maxLen)
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func metaComponent(queryToks, metaToks map[string]struct{}) float64 {
	if len(queryToks) == 0 {
		return 0
	}
	hits := 0
	for tok := range queryToks {
		if _, ok := metaToks[tok]; ok {
			hits++
		}
	}
	score := float64(hits) / float64(len(queryToks))
	if score > 1 {
		return 1
	}
	return score
}

// Normalize lowercases, trims and collapses internal whitespace.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "of": {}, "in": {}, "on": {}, "and": {}, "to": {},
	"и": {}, "в": {}, "на": {}, "не": {}, "с": {}, "о": {}, "я": {},
}

func tokenSet(s string) map[string]struct{} {
	toks := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		tok = strings.Trim(tok, ".,!?:;\"'()")
		if tok == "" {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		toks[tok] = struct{}{}
	}
	return toks
}
