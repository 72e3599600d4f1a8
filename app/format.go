package app

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

const maxDigits = 15

var ten = decimal.NewFromInt(10)

// FormatResult renders v the way the display shows it: at most digits
// significant digits, no trailing zeros, and mantissa "E" exponent once the
// value no longer fits.
func FormatResult(v float64, digits int) string {
	if digits <= 0 || digits > maxDigits {
		digits = DefaultDigits
	}
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case v == 0:
		return "0"
	}

	d := decimal.NewFromFloat(v)
	mag := magnitude(d)
	if mag < digits && mag >= -digits {
		r := d.Round(int32(digits - 1 - mag))
		if magnitude(r) < digits {
			return r.String()
		}
	}
	return scientific(d, mag, digits)
}

// magnitude is the power of ten of the leading digit of a non-zero d.
func magnitude(d decimal.Decimal) int {
	return d.Abs().NumDigits() + int(d.Exponent()) - 1
}

func scientific(d decimal.Decimal, mag, digits int) string {
	m := d.Shift(int32(-mag)).Round(int32(digits - 1))
	if m.Abs().GreaterThanOrEqual(ten) {
		mag++
		m = d.Shift(int32(-mag)).Round(int32(digits - 1))
	}
	return m.String() + "E" + strconv.Itoa(mag)
}
