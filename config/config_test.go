package config

import (
	"testing"

	"github.com/anishere/SocialReels/filesystem"
	"github.com/anishere/SocialReels/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("providers.pexels.key")
			So(result, ShouldEqual, "providers_pexels_key")
		})

		Convey("Credential fields should expose their canonical env names", func() {
			pexels := Default[key.PexelsKey]
			So(pexels.Env(), ShouldEqual, "PEXELS_API_KEY")

			pixabay := Default[key.PixabayKey]
			So(pixabay.Env(), ShouldEqual, "PIXABAY_API_KEY")
		})

		Convey("Regular fields should get the app prefix", func() {
			limit := Default[key.FetchLimit]
			So(limit.Env(), ShouldEqual, "SOCIALREELS_FETCH_LIMIT")
		})
	})
}
