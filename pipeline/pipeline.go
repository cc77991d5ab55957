// Package pipeline orchestrates a full fetch-and-download run.
package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anishere/SocialReels/download"
	"github.com/anishere/SocialReels/fetch"
	"github.com/anishere/SocialReels/filesystem"
	"github.com/anishere/SocialReels/icon"
	"github.com/anishere/SocialReels/key"
	"github.com/anishere/SocialReels/log"
	"github.com/anishere/SocialReels/query"
	"github.com/anishere/SocialReels/source"
	"github.com/anishere/SocialReels/style"
	"github.com/anishere/SocialReels/util"
	humanize "github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// MetadataFilename is the per-run metadata file written next to the videos.
const MetadataFilename = "metadata.json"

// ErrNoCredentials indicates that none of the requested providers has a usable API key.
var ErrNoCredentials = errors.New("no provider credentials configured")

// Options parameterizes one pipeline run.
type Options struct {
	Keyword  string
	Limit    int
	MinWidth int
	// Out is the root output directory; a sanitized per-keyword
	// subdirectory is created beneath it.
	Out string
	// DryRun lists results without downloading anything.
	DryRun bool
	// Sources in request order, constructed by the caller with explicit credentials.
	Sources []source.Source
	// Writer receives console output. Defaults to os.Stdout.
	Writer io.Writer
	// Download overrides transfer tuning; mainly for tests.
	Download *download.Options
}

// Run executes the pipeline: credential check, aggregation, metadata
// persistence, then either a dry-run summary or sequential downloads.
// Any single failed download aborts the run; the atomic transfer discipline
// makes a re-run safe without manual cleanup.
func Run(options *Options) error {
	w := options.Writer
	if w == nil {
		w = os.Stdout
	}

	if strings.TrimSpace(options.Keyword) == "" {
		return errors.New("keyword must not be blank")
	}
	if options.Limit < 1 {
		return fmt.Errorf("limit must be at least 1, got %d", options.Limit)
	}

	available := lo.Filter(options.Sources, func(s source.Source, _ int) bool {
		return s.Available()
	})
	if len(available) == 0 {
		return fmt.Errorf("%w; set PEXELS_API_KEY or PIXABAY_API_KEY, or run \"socialreels auth set <provider>\"", ErrNoCredentials)
	}

	result, err := fetch.Fetch(&fetch.Options{
		Keyword:  options.Keyword,
		Limit:    options.Limit,
		MinWidth: options.MinWidth,
		Sources:  options.Sources,
	})
	if err != nil {
		return err
	}

	reportProviders(w, result)

	if len(result.Videos) == 0 {
		return fmt.Errorf("no results for %q (queried: %s)", options.Keyword, strings.Join(result.Queried, ", "))
	}

	dir := filepath.Join(options.Out, util.SafeFilename(options.Keyword))
	if err := filesystem.API().MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	metaPath := filepath.Join(dir, MetadataFilename)
	if err := writeMetadata(metaPath, result.Videos); err != nil {
		return err
	}

	if err := query.Remember(options.Keyword, 1); err != nil {
		log.Warnf("failed to remember keyword %q: %v", options.Keyword, err)
	}

	fmt.Fprintf(w, "%s Found %s. Metadata -> %s\n",
		icon.Get(icon.Search),
		util.Quantify(len(result.Videos), "video", "videos"),
		metaPath,
	)

	if options.DryRun {
		for i, v := range result.Videos {
			fmt.Fprintf(w, "[%d] %s\n", i+1, v)
		}
		return nil
	}

	for i, v := range result.Videos {
		name := v.Filename(i+1, util.ShortenFilename)
		dest := filepath.Join(dir, name)

		fmt.Fprintf(w, "%s Downloading %d/%d -> %s\n", icon.Get(icon.Download), i+1, len(result.Videos), name)

		written, err := download.File(v.URL, dest, downloadOptions(options))
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s %s (%s)\n", icon.Get(icon.Success), name, humanize.Bytes(uint64(written)))
	}

	fmt.Fprintf(w, "%s Done. Check %s\n", icon.Get(icon.Success), dir)
	return nil
}

// reportProviders names the providers that were actually searched, so an
// empty result set is never a mystery.
func reportProviders(w io.Writer, result *fetch.Result) {
	if len(result.Queried) > 0 {
		fmt.Fprintln(w, style.Faint("queried: "+strings.Join(result.Queried, ", ")))
	}
	if len(result.Skipped) > 0 {
		fmt.Fprintf(w, "%s %s\n", icon.Get(icon.Skip), style.Faint("skipped (no credential): "+strings.Join(result.Skipped, ", ")))
	}
}

// writeMetadata serializes the ordered record list as human-readable JSON.
// HTML escaping is disabled so Unicode titles and URLs pass through verbatim.
func writeMetadata(path string, videos []*source.Video) error {
	f, err := filesystem.API().Create(path)
	if err != nil {
		return fmt.Errorf("create metadata file: %w", err)
	}

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(videos); err != nil {
		_ = f.Close()
		return fmt.Errorf("write metadata: %w", err)
	}
	return f.Close()
}

func downloadOptions(options *Options) *download.Options {
	if options.Download != nil {
		return options.Download
	}
	return &download.Options{
		Retries: uint(viper.GetInt(key.DownloadRetries)),
	}
}
