package num

import (
	"errors"
	"testing"

	"github.com/fatih/color"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDiagnostic(t *testing.T) {
	Convey("diagnostic rendering", t, func() {
		noColor := color.NoColor
		color.NoColor = true
		defer func() { color.NoColor = noColor }()

		d := CreateErrorDiagnostic(InvalidArgument, "places", "decimal places must not be negative, got -1")
		So(d.String(), ShouldEqual, " Error  places: decimal places must not be negative, got -1")
		So(d.Error(), ShouldEqual, d.String())
	})

	Convey("diagnostic unwrapping", t, func() {
		var err error = CreateErrorDiagnostic(InvalidArgument, "mode", "unknown rounding mode RoundingMode(0)")
		So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)

		var d *Diagnostic
		So(errors.As(err, &d), ShouldBeTrue)
		So(d.Arg, ShouldEqual, "mode")

		err = CreateErrorDiagnostic(UnknownError, "value", "unexpected")
		So(errors.Is(err, ErrInvalidArgument), ShouldBeFalse)
	})
}
