package util

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("request failed"), ShouldEqual, "Request failed")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestWrap(t *testing.T) {
	Convey("Given a long message", t, func() {
		msg := strings.Repeat("word ", 20)

		Convey("When wrapped with a hanging indent", func() {
			out := Wrap(msg, 30, 2)
			lines := strings.Split(out, "\n")

			Convey("Then it should span several lines", func() {
				So(len(lines), ShouldBeGreaterThan, 1)
			})

			Convey("Then continuation lines should be indented", func() {
				for _, l := range lines[1:] {
					So(l, ShouldStartWith, "  ")
				}
			})
		})

		Convey("When it fits", func() {
			Convey("Then it should be unchanged", func() {
				So(Wrap("short", 80, 2), ShouldEqual, "short")
			})
		})
	})
}

func TestPrintErasable(t *testing.T) {
	Convey("Given an erasable message", t, func() {
		var buf bytes.Buffer
		erase := PrintErasable(&buf, "checking")

		Convey("Then erasing should blank it out", func() {
			So(buf.String(), ShouldEqual, "\rchecking")
			erase()
			So(buf.String(), ShouldEqual, "\rchecking\r        \r")
		})
	})
}
