// Package query manages the persistence and retrieval of search keyword history and suggestions.
package query

import (
	"strings"

	"github.com/anishere/SocialReels/filesystem"
	"github.com/anishere/SocialReels/key"
	"github.com/anishere/SocialReels/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var cacher = gache.New[map[string]*queryRecord](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// suggestionCache memoizes fuzzy matches per partial input within a run.
var suggestionCache = make(map[string][]*queryRecord)

// load returns the persisted keyword history, or an empty map when the
// cache file is missing, stale, or unreadable.
func load() map[string]*queryRecord {
	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*queryRecord)
	}
	return cached
}

// Remember records a search keyword in the persistent history or increments
// its popularity rank by the given weight.
func Remember(q string, weight int) error {
	q = sanitize(q)
	history := load()

	if record, ok := history[q]; ok {
		record.Rank += weight
	} else {
		history[q] = &queryRecord{Rank: weight, Query: q}
	}

	return cacher.Set(history)
}

// Suggest returns the most relevant historical keyword for a partial input.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns historical keywords fuzzy-matching the partial input,
// most popular first. Returns nothing when suggestions are disabled.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)
	records, ok := suggestionCache[q]
	if !ok {
		records = lo.Filter(lo.Values(load()), func(r *queryRecord, _ int) bool {
			return fuzzy.Match(q, r.Query)
		})

		slices.SortFunc(records, func(a, b *queryRecord) int {
			return b.Rank - a.Rank
		})

		suggestionCache[q] = records
	}

	return lo.Map(records, func(r *queryRecord, _ int) string {
		return r.Query
	})
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
