package provider

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFromNames(t *testing.T) {
	Convey("FromNames", t, func() {
		creds := Credentials{Pexels: "pk", Pixabay: "xk"}

		Convey("Should construct sources in request order", func() {
			sources, err := FromNames([]string{"pixabay", "pexels"}, creds)
			So(err, ShouldBeNil)
			So(sources, ShouldHaveLength, 2)
			So(sources[0].Name(), ShouldEqual, "pixabay")
			So(sources[1].Name(), ShouldEqual, "pexels")
		})

		Convey("Should normalize case and whitespace", func() {
			sources, err := FromNames([]string{" Pexels "}, creds)
			So(err, ShouldBeNil)
			So(sources[0].Name(), ShouldEqual, "pexels")
		})

		Convey("Should reject unknown names with a suggestion", func() {
			_, err := FromNames([]string{"pexel"}, creds)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "did you mean")
		})
	})
}

func TestCredentials(t *testing.T) {
	Convey("Credentials", t, func() {
		So(Credentials{}.Any(), ShouldBeFalse)
		So(Credentials{Pexels: "k"}.Any(), ShouldBeTrue)
		So(Credentials{Pixabay: "k"}.Any(), ShouldBeTrue)
	})
}

// pexelsServer simulates the Pexels search API with a finite hit pool.
func pexelsServer(hits []pexelsHit) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

		start := (page - 1) * perPage
		end := start + perPage
		var pageHits []pexelsHit
		if start < len(hits) {
			if end > len(hits) {
				end = len(hits)
			}
			pageHits = hits[start:end]
		}

		_ = json.NewEncoder(w).Encode(pexelsResponse{Videos: pageHits})
	}))
}

func makePexelsHits(n int, widths ...int) []pexelsHit {
	hits := make([]pexelsHit, n)
	for i := range hits {
		var files []pexelsFile
		for _, w := range widths {
			files = append(files, pexelsFile{
				Width:  w,
				Height: w * 9 / 16,
				Link:   fmt.Sprintf("https://cdn.example/%d-%d.mp4", i, w),
			})
		}
		hits[i] = pexelsHit{ID: int64(i + 1), URL: fmt.Sprintf("https://pexels.example/video/%d", i+1), VideoFiles: files}
		hits[i].User.Name = fmt.Sprintf("Author %d", i+1)
	}
	return hits
}

func TestPexelsSearch(t *testing.T) {
	Convey("Pexels search", t, func() {
		Convey("Should return empty without a credential", func() {
			p := NewPexels("")
			videos, err := p.Search("ocean", 5, 0)
			So(err, ShouldBeNil)
			So(videos, ShouldBeEmpty)
		})

		Convey("Should stop when the provider is exhausted", func() {
			srv := pexelsServer(makePexelsHits(4, 1920))
			defer srv.Close()

			p := NewPexels("test-key")
			p.Endpoint = srv.URL
			p.Client = srv.Client()

			videos, err := p.Search("ocean", 10, 0)
			So(err, ShouldBeNil)
			So(videos, ShouldHaveLength, 4)
		})

		Convey("Should stop at the limit", func() {
			srv := pexelsServer(makePexelsHits(10, 1920))
			defer srv.Close()

			p := NewPexels("test-key")
			p.Endpoint = srv.URL
			p.Client = srv.Client()

			videos, err := p.Search("ocean", 3, 0)
			So(err, ShouldBeNil)
			So(videos, ShouldHaveLength, 3)
		})

		Convey("Should never include a variant below the floor", func() {
			srv := pexelsServer(makePexelsHits(5, 640, 1280))
			defer srv.Close()

			p := NewPexels("test-key")
			p.Endpoint = srv.URL
			p.Client = srv.Client()

			videos, err := p.Search("ocean", 10, 1080)
			So(err, ShouldBeNil)
			So(videos, ShouldHaveLength, 5)
			for _, v := range videos {
				So(v.Width, ShouldBeGreaterThanOrEqualTo, 1080)
			}
		})

		Convey("Should drop hits with no qualifying variant", func() {
			srv := pexelsServer(makePexelsHits(5, 640))
			defer srv.Close()

			p := NewPexels("test-key")
			p.Endpoint = srv.URL
			p.Client = srv.Client()

			videos, err := p.Search("ocean", 10, 1080)
			So(err, ShouldBeNil)
			So(videos, ShouldBeEmpty)
		})

		Convey("Should surface non-200 responses as errors", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			}))
			defer srv.Close()

			p := NewPexels("test-key")
			p.Endpoint = srv.URL
			p.Client = srv.Client()

			_, err := p.Search("ocean", 3, 0)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "HTTP 429")
		})

		Convey("Should synthesize a title when the author is missing", func() {
			hits := makePexelsHits(1, 1920)
			hits[0].User.Name = ""
			srv := pexelsServer(hits)
			defer srv.Close()

			p := NewPexels("test-key")
			p.Endpoint = srv.URL
			p.Client = srv.Client()

			videos, err := p.Search("ocean", 1, 0)
			So(err, ShouldBeNil)
			So(videos[0].Title, ShouldEqual, "Pexels 1")
		})
	})
}

func TestBestPexelsFile(t *testing.T) {
	Convey("bestPexelsFile", t, func() {
		files := []pexelsFile{
			{Width: 640, Link: "sd"},
			{Width: 1920, Link: "fhd"},
			{Width: 1280, Link: "hd"},
		}

		Convey("Should pick the widest variant meeting the floor", func() {
			f, ok := bestPexelsFile(files, 0)
			So(ok, ShouldBeTrue)
			So(f.Link, ShouldEqual, "fhd")
		})

		Convey("Should honor the floor", func() {
			f, ok := bestPexelsFile(files, 1000)
			So(ok, ShouldBeTrue)
			So(f.Width, ShouldEqual, 1920)

			_, ok = bestPexelsFile(files, 4000)
			So(ok, ShouldBeFalse)
		})

		Convey("Should break width ties by list order", func() {
			tied := []pexelsFile{
				{Width: 1920, Link: "first"},
				{Width: 1920, Link: "second"},
			}
			f, ok := bestPexelsFile(tied, 0)
			So(ok, ShouldBeTrue)
			So(f.Link, ShouldEqual, "first")
		})
	})
}

// pixabayServer simulates the Pixabay videos API with a finite hit pool.
func pixabayServer(hits []pixabayHit) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

		start := (page - 1) * perPage
		end := start + perPage
		var pageHits []pixabayHit
		if start < len(hits) {
			if end > len(hits) {
				end = len(hits)
			}
			pageHits = hits[start:end]
		}

		_ = json.NewEncoder(w).Encode(pixabayResponse{Hits: pageHits})
	}))
}

func makePixabayHits(n int, widths map[string]int) []pixabayHit {
	hits := make([]pixabayHit, n)
	for i := range hits {
		variants := make(map[string]pixabayVariant, len(widths))
		for name, w := range widths {
			variants[name] = pixabayVariant{
				URL:    fmt.Sprintf("https://cdn.example/px-%d-%s.mp4", i, name),
				Width:  w,
				Height: w * 9 / 16,
			}
		}
		hits[i] = pixabayHit{
			ID:      int64(i + 1),
			PageURL: fmt.Sprintf("https://pixabay.example/videos/%d", i+1),
			Tags:    fmt.Sprintf("tags %d", i+1),
			Videos:  variants,
		}
	}
	return hits
}

func TestPixabaySearch(t *testing.T) {
	Convey("Pixabay search", t, func() {
		Convey("Should return empty without a credential", func() {
			p := NewPixabay("")
			videos, err := p.Search("ocean", 5, 0)
			So(err, ShouldBeNil)
			So(videos, ShouldBeEmpty)
		})

		Convey("Should terminate on a finite provider", func() {
			srv := pixabayServer(makePixabayHits(4, map[string]int{"large": 1920, "medium": 1280}))
			defer srv.Close()

			p := NewPixabay("test-key")
			p.Endpoint = srv.URL
			p.Client = srv.Client()

			videos, err := p.Search("ocean", 10, 0)
			So(err, ShouldBeNil)
			So(videos, ShouldHaveLength, 4)
		})

		Convey("Should pick the widest qualifying named variant", func() {
			srv := pixabayServer(makePixabayHits(1, map[string]int{"large": 1920, "medium": 1280, "small": 640}))
			defer srv.Close()

			p := NewPixabay("test-key")
			p.Endpoint = srv.URL
			p.Client = srv.Client()

			videos, err := p.Search("ocean", 1, 1000)
			So(err, ShouldBeNil)
			So(videos, ShouldHaveLength, 1)
			So(videos[0].Width, ShouldEqual, 1920)
			So(videos[0].License, ShouldEqual, "Pixabay License")
		})

		Convey("Should surface non-200 responses as errors", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			}))
			defer srv.Close()

			p := NewPixabay("test-key")
			p.Endpoint = srv.URL
			p.Client = srv.Client()

			_, err := p.Search("ocean", 3, 0)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "HTTP 403")
		})

		Convey("Should synthesize a title from the id when tags are empty", func() {
			hits := makePixabayHits(1, map[string]int{"large": 1920})
			hits[0].Tags = ""
			srv := pixabayServer(hits)
			defer srv.Close()

			p := NewPixabay("test-key")
			p.Endpoint = srv.URL
			p.Client = srv.Client()

			videos, err := p.Search("ocean", 1, 0)
			So(err, ShouldBeNil)
			So(videos[0].Title, ShouldEqual, "Pixabay 1")
		})
	})
}

func TestBestPixabayVariant(t *testing.T) {
	Convey("bestPixabayVariant", t, func() {
		variants := map[string]pixabayVariant{
			"tiny":   {URL: "t", Width: 480},
			"small":  {URL: "s", Width: 640},
			"medium": {URL: "m", Width: 1280},
			"large":  {URL: "l", Width: 1920},
		}

		Convey("Should pick the widest meeting the floor", func() {
			v, ok := bestPixabayVariant(variants, 700)
			So(ok, ShouldBeTrue)
			So(v.URL, ShouldEqual, "l")
		})

		Convey("Should report no match below the floor", func() {
			_, ok := bestPixabayVariant(variants, 4000)
			So(ok, ShouldBeFalse)
		})

		Convey("Should break width ties deterministically by canonical name order", func() {
			tied := map[string]pixabayVariant{
				"medium": {URL: "m", Width: 1920},
				"large":  {URL: "l", Width: 1920},
			}
			v, ok := bestPixabayVariant(tied, 0)
			So(ok, ShouldBeTrue)
			So(v.URL, ShouldEqual, "l")
		})
	})
}
