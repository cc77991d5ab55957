package download

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/anishere/SocialReels/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

// fastOpts keeps the linear backoff out of test wall time.
func fastOpts(retries uint) *Options {
	return &Options{Retries: retries, BackoffStep: time.Millisecond, ChunkSize: 8}
}

func TestFile(t *testing.T) {
	Convey("download.File", t, func() {
		filesystem.SetMemMapFs()
		payload := strings.Repeat("stock footage bytes ", 64)

		Convey("Should write the body atomically on first success", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(payload))
			}))
			defer srv.Close()

			dest := filepath.Join("out", "ocean", "001_clip_pexels.mp4")
			opts := fastOpts(3)
			opts.Client = srv.Client()

			written, err := File(srv.URL, dest, opts)
			So(err, ShouldBeNil)
			So(written, ShouldEqual, int64(len(payload)))

			content := lo.Must(filesystem.API().ReadFile(dest))
			So(string(content), ShouldEqual, payload)

			exists := lo.Must(filesystem.API().Exists(dest + ".part"))
			So(exists, ShouldBeFalse)
		})

		Convey("Should create missing parent directories", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("x"))
			}))
			defer srv.Close()

			dest := filepath.Join("deeply", "nested", "dir", "file.mp4")
			opts := fastOpts(3)
			opts.Client = srv.Client()

			_, err := File(srv.URL, dest, opts)
			So(err, ShouldBeNil)
			So(lo.Must(filesystem.API().Exists(dest)), ShouldBeTrue)
		})

		Convey("Should recover after consecutive failures", func() {
			var calls int
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				if calls <= 3 {
					w.WriteHeader(http.StatusServiceUnavailable)
					return
				}
				_, _ = w.Write([]byte(payload))
			}))
			defer srv.Close()

			dest := "retried.mp4"
			opts := fastOpts(4)
			opts.Client = srv.Client()

			_, err := File(srv.URL, dest, opts)
			So(err, ShouldBeNil)
			So(calls, ShouldEqual, 4)

			content := lo.Must(filesystem.API().ReadFile(dest))
			So(string(content), ShouldEqual, payload)
			So(lo.Must(filesystem.API().Exists(dest+".part")), ShouldBeFalse)
		})

		Convey("Should fail after exactly the configured attempts", func() {
			var calls int
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(http.StatusNotFound)
			}))
			defer srv.Close()

			dest := "never.mp4"
			opts := fastOpts(3)
			opts.Client = srv.Client()

			_, err := File(srv.URL, dest, opts)
			So(err, ShouldNotBeNil)
			So(calls, ShouldEqual, 3)
			So(err.Error(), ShouldContainSubstring, srv.URL)
			So(err.Error(), ShouldContainSubstring, "HTTP 404")

			So(lo.Must(filesystem.API().Exists(dest)), ShouldBeFalse)
			So(lo.Must(filesystem.API().Exists(dest+".part")), ShouldBeFalse)
		})

		Convey("Should send the configured headers", func() {
			var got string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Header.Get("Authorization")
				_, _ = w.Write([]byte("x"))
			}))
			defer srv.Close()

			opts := fastOpts(1)
			opts.Client = srv.Client()
			opts.Headers = map[string]string{"Authorization": "secret"}

			_, err := File(srv.URL, "auth.mp4", opts)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "secret")
		})
	})
}
