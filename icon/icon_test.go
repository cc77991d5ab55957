package icon

import (
	"testing"

	"github.com/anishere/SocialReels/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Icon rendering", t, func() {
		Convey("Should honor the configured variant", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Success), ShouldEqual, "[ok]")

			viper.Set(key.IconsVariant, "emoji")
			So(Get(Fail), ShouldEqual, "❌")
		})

		Convey("Should fall back to plain for unknown variants", func() {
			viper.Set(key.IconsVariant, "bogus")
			So(Get(Download), ShouldEqual, "[v]")
		})

		Convey("Every icon should render in every variant", func() {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				for i := Fail; i <= Skip; i++ {
					So(Get(i), ShouldNotBeEmpty)
				}
			}
		})
	})
}
