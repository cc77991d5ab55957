// Package fetch aggregates search results across the requested provider sources.
package fetch

import (
	"github.com/anishere/SocialReels/log"
	"github.com/anishere/SocialReels/source"
	"github.com/anishere/SocialReels/util"
)

// Options parameterizes one aggregated search.
type Options struct {
	Keyword  string
	Limit    int
	MinWidth int
	// Sources in request order. Order decides both concatenation order and
	// which record wins on a cross-provider URL collision.
	Sources []source.Source
}

// Result carries the merged records plus provider attribution, so the caller
// can explain an empty result instead of failing silently.
type Result struct {
	Videos []*source.Video
	// Queried lists providers that were actually searched.
	Queried []string
	// Skipped lists providers excluded for a missing credential.
	Skipped []string
}

// Fetch queries each source with the same limit and floor, concatenates the
// results in request order, drops URL duplicates (first occurrence wins) and
// truncates to the limit. It performs no network calls of its own.
func Fetch(opts *Options) (*Result, error) {
	result := &Result{}

	var all []*source.Video
	for _, src := range opts.Sources {
		if !src.Available() {
			log.Infof("fetch: skipping %s, no credential", src.Name())
			result.Skipped = append(result.Skipped, src.Name())
			continue
		}

		result.Queried = append(result.Queried, src.Name())

		videos, err := src.Search(opts.Keyword, opts.Limit, opts.MinWidth)
		if err != nil {
			return nil, err
		}
		all = append(all, videos...)
	}

	result.Videos = dedupe(all, opts.Limit)

	log.Infof("fetch: %s for %q after merge", util.Quantify(len(result.Videos), "record", "records"), opts.Keyword)
	return result, nil
}

// dedupe removes later records sharing a URL with an earlier one, then caps
// the sequence at limit while preserving order.
func dedupe(videos []*source.Video, limit int) []*source.Video {
	seen := make(map[string]struct{}, len(videos))
	out := make([]*source.Video, 0, util.Min(len(videos), limit))

	for _, v := range videos {
		if _, dup := seen[v.URL]; dup {
			continue
		}
		seen[v.URL] = struct{}{}

		out = append(out, v)
		if len(out) >= limit {
			break
		}
	}

	return out
}
