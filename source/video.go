// Package source defines the domain models and interfaces for stock-footage discovery and retrieval.
package source

import "fmt"

// Video represents one matched stock video, normalized from a provider's
// native response shape. Records are immutable after construction.
type Video struct {
	// Provider that produced this record ("pexels" or "pixabay").
	Provider string `json:"provider"`
	// Provider-assigned identifier, kept opaque as a string.
	ID string `json:"id"`
	// Display title; a synthesized placeholder when the provider gives none.
	Title string `json:"title"`
	// Resolution of the chosen variant.
	Width  int `json:"width"`
	Height int `json:"height"`
	// Direct download URL of the chosen variant. Unique within a result set.
	URL string `json:"url"`
	// Fixed label for the provider's license terms.
	License string `json:"license"`
	// URL of the provider's web page for the asset.
	Permalink string `json:"permalink"`
}

// String returns the canonical display form used in summaries.
func (v *Video) String() string {
	return fmt.Sprintf("%s: %s | %dx%d | %s", v.Provider, v.Title, v.Width, v.Height, v.Permalink)
}

// Filename builds the destination file name for a record at the given
// 1-based position within a run, e.g. "001_Sunset over dunes_pexels.mp4".
func (v *Video) Filename(index int, shorten func(string) string) string {
	return fmt.Sprintf("%03d_%s_%s.mp4", index, shorten(v.Title), v.Provider)
}
