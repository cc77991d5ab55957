// Package provider implements the closed set of stock-footage provider adapters.
package provider

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/anishere/SocialReels/constant"
	"github.com/anishere/SocialReels/log"
	"github.com/anishere/SocialReels/network"
	"github.com/anishere/SocialReels/source"
	"github.com/anishere/SocialReels/util"
	"golang.org/x/exp/slices"
)

const (
	pixabayEndpoint = "https://pixabay.com/api/videos/"
	pixabayLicense  = "Pixabay License"

	// Pixabay allows per_page up to 200 and rejects values below 3.
	pixabayMaxPerPage = 200
	pixabayMinPerPage = 3
)

// pixabayVariantOrder fixes the iteration order over the named rendition map
// so tie-breaks between equal widths stay deterministic across runs.
var pixabayVariantOrder = []string{"large", "medium", "small", "tiny"}

// Pixabay adapts the Pixabay video search API to the Source interface.
type Pixabay struct {
	apiKey string

	// Endpoint and Client are overridable for tests.
	Endpoint string
	Client   *http.Client
}

// NewPixabay constructs a Pixabay adapter with the given API key.
// An empty key produces a disabled source.
func NewPixabay(apiKey string) *Pixabay {
	return &Pixabay{
		apiKey:   apiKey,
		Endpoint: pixabayEndpoint,
		Client:   network.Client,
	}
}

func (p *Pixabay) Name() string {
	return PixabayName
}

func (p *Pixabay) License() string {
	return pixabayLicense
}

func (p *Pixabay) Available() bool {
	return p.apiKey != ""
}

// pixabayVariant is one encoded rendition of a video at a specific resolution.
type pixabayVariant struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type pixabayHit struct {
	ID      int64                     `json:"id"`
	PageURL string                    `json:"pageURL"`
	Tags    string                    `json:"tags"`
	Videos  map[string]pixabayVariant `json:"videos"`
}

type pixabayResponse struct {
	Hits []pixabayHit `json:"hits"`
}

// Search pages through Pixabay results, normalizing each qualifying hit.
// Pagination stops once limit records are collected or a page comes back empty.
func (p *Pixabay) Search(keyword string, limit, minWidth int) ([]*source.Video, error) {
	if !p.Available() {
		log.Debugf("pixabay: no credential, skipping search for %q", keyword)
		return []*source.Video{}, nil
	}

	perPage := util.Min(pixabayMaxPerPage, util.Max(pixabayMinPerPage, limit))
	out := make([]*source.Video, 0, limit)

	for page := 1; len(out) < limit; page++ {
		resp, err := p.fetchPage(keyword, page, perPage)
		if err != nil {
			return nil, err
		}

		for _, hit := range resp.Hits {
			variant, ok := bestPixabayVariant(hit.Videos, minWidth)
			if !ok {
				continue
			}

			id := strconv.FormatInt(hit.ID, 10)
			title := hit.Tags
			if title == "" {
				title = fmt.Sprintf("Pixabay %s", id)
			}

			out = append(out, &source.Video{
				Provider:  PixabayName,
				ID:        id,
				Title:     title,
				Width:     variant.Width,
				Height:    variant.Height,
				URL:       variant.URL,
				License:   pixabayLicense,
				Permalink: hit.PageURL,
			})
			if len(out) >= limit {
				break
			}
		}

		if len(resp.Hits) == 0 {
			// Provider exhausted.
			break
		}
	}

	log.Infof("pixabay: %s for %q", util.Quantify(len(out), "result", "results"), keyword)
	return out, nil
}

func (p *Pixabay) fetchPage(keyword string, page, perPage int) (*pixabayResponse, error) {
	params := url.Values{}
	params.Set("key", p.apiKey)
	params.Set("q", keyword)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("page", strconv.Itoa(page))
	params.Set("safesearch", "true")
	params.Set("video_type", "all")

	req, err := http.NewRequest(http.MethodGet, p.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pixabay: search %q page %d: %w", keyword, page, err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pixabay: search %q page %d: HTTP %d", keyword, page, resp.StatusCode)
	}

	var decoded pixabayResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("pixabay: decode page %d: %w", page, err)
	}

	return &decoded, nil
}

// bestPixabayVariant flattens the named rendition map in a fixed order and
// picks the widest entry still satisfying the floor.
func bestPixabayVariant(variants map[string]pixabayVariant, minWidth int) (pixabayVariant, bool) {
	names := make([]string, 0, len(variants))
	for name := range variants {
		if !slices.Contains(pixabayVariantOrder, name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	names = append(append([]string{}, pixabayVariantOrder...), names...)

	candidates := make([]pixabayVariant, 0, len(variants))
	for _, name := range names {
		if v, ok := variants[name]; ok {
			candidates = append(candidates, v)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Width > candidates[j].Width
	})

	for _, v := range candidates {
		if v.Width >= minWidth {
			return v, true
		}
	}
	return pixabayVariant{}, false
}
