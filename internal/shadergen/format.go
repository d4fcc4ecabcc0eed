package shadergen

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat returns the shortest text that parses back to f, always
// distinguishable from an integer literal:
//
//	1      -> "1.0"
//	0.25   -> "0.25"
//	1e-05  -> "1e-05"
//	1e+16  -> "1e+16"
//
// Values with a decimal exponent in [-4, 16) use plain decimal notation,
// all others use scientific notation with at least two exponent digits.
// Infinities and NaN are written as "inf", "-inf" and "nan".
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
