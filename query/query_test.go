package query

import (
	"testing"

	"github.com/anishere/SocialReels/filesystem"
	"github.com/anishere/SocialReels/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given keyword history", t, func() {
		q1 := "ocean waves"
		q2 := "city traffic"

		Convey("When remembering keywords", func() {
			err := Remember(q1, 1)
			So(err, ShouldBeNil)
			err = Remember(q2, 10) // Higher weight
			So(err, ShouldBeNil)

			Convey("Then suggestions should be sorted by rank", func() {
				// Drop the in-memory layer to force a read from the cache file
				suggestionCache = make(map[string][]*queryRecord)
				viper.Set(key.SearchShowQuerySuggestions, true)

				s := SuggestMany("city")
				So(len(s), ShouldBeGreaterThanOrEqualTo, 1)
				So(s[0], ShouldEqual, "city traffic")
			})

			Convey("Suggestions can be disabled", func() {
				viper.Set(key.SearchShowQuerySuggestions, false)
				So(SuggestMany("ocean"), ShouldBeEmpty)
				viper.Set(key.SearchShowQuerySuggestions, true)
			})

			Convey("It sanitizes input", func() {
				So(sanitize("  Ocean Waves  "), ShouldEqual, "ocean waves")
			})
		})
	})
}
