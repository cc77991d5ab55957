package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})

		Convey("Should accept an arbitrary backend", func() {
			SetBackend(afero.NewReadOnlyFs(afero.NewMemMapFs()))
			err := API().MkdirAll("/nope", 0o755)
			So(err, ShouldNotBeNil)
			SetOsFs()
		})
	})
}
