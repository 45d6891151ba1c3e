package icon

import (
	"testing"

	"github.com/kipdayo/kipdayo/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		all := []Icon{Success, Fail, Link, Lock, Question, Server}

		for _, variant := range AvailableVariants() {
			Convey("When the variant is "+variant, func() {
				viper.Set(key.IconsVariant, variant)

				Convey("Then each icon should render", func() {
					for _, i := range all {
						So(Get(i), ShouldNotBeEmpty)
					}
				})
			})
		}

		Convey("When the variant is unknown", func() {
			viper.Set(key.IconsVariant, "braille")

			Convey("Then nothing should render", func() {
				So(Get(Success), ShouldBeEmpty)
			})
		})
	})
}
