package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRenderers(t *testing.T) {
	Convey("Given a terminal without color support", t, func() {
		lipgloss.SetColorProfile(termenv.Ascii)

		Convey("Then renderers should keep the text", func() {
			So(Bold("MP4"), ShouldEqual, "MP4")
			So(Faint("hint"), ShouldEqual, "hint")
			So(Fg(lipgloss.Color("1"))("red"), ShouldEqual, "red")
		})

		Convey("Then tags should be padded", func() {
			So(Title("DASH"), ShouldEqual, " DASH ")
		})
	})
}
