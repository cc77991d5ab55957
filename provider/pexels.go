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
)

const (
	pexelsEndpoint = "https://api.pexels.com/videos/search"
	pexelsLicense  = "Pexels License"

	// Pexels caps per_page at 80.
	pexelsMaxPerPage = 80
	pexelsMinPerPage = 1
)

// Pexels adapts the Pexels video search API to the Source interface.
type Pexels struct {
	apiKey string

	// Endpoint and Client are overridable for tests.
	Endpoint string
	Client   *http.Client
}

// NewPexels constructs a Pexels adapter with the given API key.
// An empty key produces a disabled source.
func NewPexels(apiKey string) *Pexels {
	return &Pexels{
		apiKey:   apiKey,
		Endpoint: pexelsEndpoint,
		Client:   network.Client,
	}
}

func (p *Pexels) Name() string {
	return PexelsName
}

func (p *Pexels) License() string {
	return pexelsLicense
}

func (p *Pexels) Available() bool {
	return p.apiKey != ""
}

// pexelsFile is one encoded rendition of a video at a specific resolution.
type pexelsFile struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Link   string `json:"link"`
}

type pexelsHit struct {
	ID   int64  `json:"id"`
	URL  string `json:"url"`
	User struct {
		Name string `json:"name"`
	} `json:"user"`
	VideoFiles []pexelsFile `json:"video_files"`
}

type pexelsResponse struct {
	Videos []pexelsHit `json:"videos"`
}

// Search pages through Pexels results, normalizing each qualifying hit.
// Pagination stops once limit records are collected or a page comes back empty.
func (p *Pexels) Search(keyword string, limit, minWidth int) ([]*source.Video, error) {
	if !p.Available() {
		log.Debugf("pexels: no credential, skipping search for %q", keyword)
		return []*source.Video{}, nil
	}

	perPage := util.Min(pexelsMaxPerPage, util.Max(pexelsMinPerPage, limit))
	out := make([]*source.Video, 0, limit)

	for page := 1; len(out) < limit; page++ {
		resp, err := p.fetchPage(keyword, page, perPage)
		if err != nil {
			return nil, err
		}

		for _, hit := range resp.Videos {
			file, ok := bestPexelsFile(hit.VideoFiles, minWidth)
			if !ok {
				continue
			}

			id := strconv.FormatInt(hit.ID, 10)
			title := hit.User.Name
			if title == "" {
				title = fmt.Sprintf("Pexels %s", id)
			}

			out = append(out, &source.Video{
				Provider:  PexelsName,
				ID:        id,
				Title:     title,
				Width:     file.Width,
				Height:    file.Height,
				URL:       file.Link,
				License:   pexelsLicense,
				Permalink: hit.URL,
			})
			if len(out) >= limit {
				break
			}
		}

		if len(resp.Videos) == 0 {
			// Provider exhausted.
			break
		}
	}

	log.Infof("pexels: %s for %q", util.Quantify(len(out), "result", "results"), keyword)
	return out, nil
}

func (p *Pexels) fetchPage(keyword string, page, perPage int) (*pexelsResponse, error) {
	params := url.Values{}
	params.Set("query", keyword)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("page", strconv.Itoa(page))

	req, err := http.NewRequest(http.MethodGet, p.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", p.apiKey)
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pexels: search %q page %d: %w", keyword, page, err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pexels: search %q page %d: HTTP %d", keyword, page, resp.StatusCode)
	}

	var decoded pexelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("pexels: decode page %d: %w", page, err)
	}

	return &decoded, nil
}

// bestPexelsFile picks the widest rendition still satisfying the floor.
// The underlying list order breaks ties between equal widths.
func bestPexelsFile(files []pexelsFile, minWidth int) (pexelsFile, bool) {
	sorted := make([]pexelsFile, len(files))
	copy(sorted, files)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Width > sorted[j].Width
	})

	for _, f := range sorted {
		if f.Width >= minWidth {
			return f, true
		}
	}
	return pexelsFile{}, false
}
