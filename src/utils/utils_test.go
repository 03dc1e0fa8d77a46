package utils_test

import (
	"testing"
	"time"

	"stress-insights-api/src/utils"

	. "github.com/smartystreets/goconvey/convey"
)

func TestOrdinalDayOfYear(t *testing.T) {
	Convey("Given calendar dates", t, func() {
		Convey("January 1st is ordinal day 1", func() {
			d, err := utils.ParseDate("2024-01-01")
			So(err, ShouldBeNil)
			So(utils.OrdinalDayOfYear(d), ShouldEqual, 1)
		})

		Convey("December 31st of a leap year is day 366", func() {
			d, err := utils.ParseDate("2024-12-31")
			So(err, ShouldBeNil)
			So(utils.OrdinalDayOfYear(d), ShouldEqual, 366)
		})

		Convey("December 31st of a common year is day 365", func() {
			d, err := utils.ParseDate("2023-12-31")
			So(err, ShouldBeNil)
			So(utils.OrdinalDayOfYear(d), ShouldEqual, 365)
		})

		Convey("May 22nd 2024 is day 143", func() {
			d, err := utils.ParseDate("2024-05-22")
			So(err, ShouldBeNil)
			So(utils.OrdinalDayOfYear(d), ShouldEqual, 143)
		})
	})
}

func TestParseDate(t *testing.T) {
	Convey("Given date strings", t, func() {
		Convey("A YYYY-MM-DD string parses", func() {
			d, err := utils.ParseDate("2024-05-22")
			So(err, ShouldBeNil)
			So(d.Year(), ShouldEqual, 2024)
			So(d.Month(), ShouldEqual, time.May)
			So(d.Day(), ShouldEqual, 22)
		})

		Convey("A non-ISO ordering is rejected", func() {
			_, err := utils.ParseDate("22-05-2024")
			So(err, ShouldNotBeNil)
		})

		Convey("Garbage is rejected", func() {
			_, err := utils.ParseDate("not-a-date")
			So(err, ShouldNotBeNil)
		})

		Convey("An impossible day is rejected", func() {
			_, err := utils.ParseDate("2024-02-30")
			So(err, ShouldNotBeNil)
		})

		Convey("FormatDate round-trips", func() {
			d, err := utils.ParseDate("2024-05-22")
			So(err, ShouldBeNil)
			So(utils.FormatDate(d), ShouldEqual, "2024-05-22")
		})
	})
}
