// Package download implements atomic, retrying transfers of binary resources to the filesystem.
package download

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/anishere/SocialReels/filesystem"
	"github.com/anishere/SocialReels/log"
	"github.com/anishere/SocialReels/network"
	"github.com/avast/retry-go/v4"
)

const (
	// partSuffix marks the provisional sibling a body is streamed into before
	// the final rename. A reader never observes a partial file at dest.
	partSuffix = ".part"

	defaultChunkSize = 1 << 20 // 1 MiB
	defaultRetries   = 3

	// backoffStep scales the linearly increasing wait between attempts.
	backoffStep = 1500 * time.Millisecond
)

// Options tunes a single file transfer. The zero value uses sane defaults.
type Options struct {
	// Headers added to the GET request.
	Headers map[string]string
	// Retries is the total number of attempts before failing. Default 3.
	Retries uint
	// ChunkSize is the copy buffer size in bytes. Default 1 MiB.
	ChunkSize int
	// Client overrides the shared download HTTP client.
	Client *http.Client
	// BackoffStep overrides the linear backoff unit. Tests shorten it.
	BackoffStep time.Duration
}

func (o *Options) withDefaults() *Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.Retries == 0 {
		out.Retries = defaultRetries
	}
	if out.ChunkSize == 0 {
		out.ChunkSize = defaultChunkSize
	}
	if out.Client == nil {
		out.Client = network.Download
	}
	if out.BackoffStep == 0 {
		out.BackoffStep = backoffStep
	}
	return &out
}

// statusError records a non-200 response so the final error can name the
// last-seen HTTP status.
type statusError struct {
	url    string
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("download %s: HTTP %d", e.url, e.status)
}

// File streams a resource to dest, writing through a .part sibling and
// renaming into place on completion. Non-200 responses and transport errors
// are retried with a linearly increasing backoff; once attempts are exhausted
// the error names the URL and the last-seen HTTP status. On failure nothing
// is left at dest. Returns the number of bytes written.
func File(rawURL, dest string, opts *Options) (int64, error) {
	o := opts.withDefaults()
	fs := filesystem.API()

	if err := fs.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
		return 0, fmt.Errorf("create destination directory: %w", err)
	}

	part := dest + partSuffix

	var written int64
	err := retry.Do(
		func() error {
			n, err := fetchOnce(rawURL, dest, part, o)
			written = n
			return err
		},
		retry.Attempts(o.Retries),
		retry.DelayType(func(n uint, _ error, _ *retry.Config) time.Duration {
			// 1.5s, 3s, 4.5s, ... after the 1st, 2nd, 3rd attempt.
			return time.Duration(n+1) * o.BackoffStep
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		// Each retry overwrites the same .part path; drop the residue once
		// no further attempt will reuse it.
		if exists, _ := fs.Exists(part); exists {
			_ = fs.Remove(part)
		}
		return 0, fmt.Errorf("%w after %d attempts", err, o.Retries)
	}

	return written, nil
}

// fetchOnce performs a single GET attempt: stream to the provisional path,
// then atomically rename onto dest.
func fetchOnce(rawURL, dest, part string, o *Options) (int64, error) {
	fs := filesystem.API()

	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, retry.Unrecoverable(err)
	}
	for k, v := range o.Headers {
		req.Header.Set(k, v)
	}

	resp, err := o.Client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Warnf("download %s: HTTP %d, will retry", rawURL, resp.StatusCode)
		return 0, &statusError{url: rawURL, status: resp.StatusCode}
	}

	f, err := fs.Create(part)
	if err != nil {
		return 0, retry.Unrecoverable(err)
	}

	written, err := io.CopyBuffer(f, resp.Body, make([]byte, o.ChunkSize))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = fs.Remove(part)
		return 0, fmt.Errorf("download %s: %w", rawURL, err)
	}

	// The rename is the sole operation making the file visible at dest.
	if err := fs.Rename(part, dest); err != nil {
		_ = fs.Remove(part)
		return 0, retry.Unrecoverable(fmt.Errorf("finalize %s: %w", dest, err))
	}

	return written, nil
}
