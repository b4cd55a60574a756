package num

import (
	"math"
	"strconv"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestOrdinalSuffix(t *testing.T) {
	cases := []struct {
		number int
		suffix string
	}{
		{0, "th"}, {1, "st"}, {2, "nd"}, {3, "rd"}, {4, "th"}, {10, "th"},
		{11, "th"}, {12, "th"}, {13, "th"}, {14, "th"},
		{21, "st"}, {22, "nd"}, {23, "rd"}, {33, "rd"},
		{100, "th"}, {101, "st"}, {102, "nd"}, {111, "th"}, {112, "th"}, {113, "th"},
		{1001, "st"}, {1011, "th"}, {2013, "th"}, {2023, "rd"},
	}
	for _, c := range cases {
		Convey("ordinal suffix of "+strconv.Itoa(c.number), t, func() {
			So(OrdinalSuffix(c.number), ShouldEqual, c.suffix)
		})
	}

	Convey("suffix follows the last two digits for every non-negative number", t, func() {
		var mismatches []string
		for n := 0; n <= 10000; n++ {
			digits := strconv.Itoa(n)
			last := digits[len(digits)-1]
			teen := len(digits) > 1 && digits[len(digits)-2] == '1'

			expected := "th"
			if !teen {
				switch last {
				case '1':
					expected = "st"
				case '2':
					expected = "nd"
				case '3':
					expected = "rd"
				}
			}
			if got := OrdinalSuffix(n); got != expected {
				mismatches = append(mismatches, digits+got)
			}
		}
		So(mismatches, ShouldBeEmpty)
	})

	Convey("negative numbers use the suffix of their absolute value", t, func() {
		So(OrdinalSuffix(-1), ShouldEqual, "st")
		So(OrdinalSuffix(-2), ShouldEqual, "nd")
		So(OrdinalSuffix(-11), ShouldEqual, "th")
		So(OrdinalSuffix(-113), ShouldEqual, "th")
		So(OrdinalSuffix(-123), ShouldEqual, "rd")
		So(OrdinalSuffix(math.MinInt), ShouldEqual, OrdinalSuffix(8))
		So(OrdinalSuffix(math.MaxInt), ShouldEqual, OrdinalSuffix(7))
	})
}

func TestOrdinal(t *testing.T) {
	Convey("ordinal joins the number and its suffix", t, func() {
		So(Ordinal(1), ShouldEqual, "1st")
		So(Ordinal(2), ShouldEqual, "2nd")
		So(Ordinal(10), ShouldEqual, "10th")
		So(Ordinal(33), ShouldEqual, "33rd")
		So(Ordinal(112), ShouldEqual, "112th")
		So(Ordinal(-21), ShouldEqual, "-21st")
	})
}
