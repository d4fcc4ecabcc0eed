package shadergen

import (
	"strconv"
	"strings"
)

// WGSLArray formats values as a fixed-size WGSL array constructor:
//
//	array<f32, N>(v0, v1, ..., vN-1, )
//
// Each value is printed in fixed-point notation with DefaultPrecision
// decimals (see WithPrecision). Every element, including the last, is
// followed by ", ".
func WGSLArray(values []float64, opts ...Option) string {
	o := applyOptions(opts)

	var sb strings.Builder
	sb.Grow(16 + len(values)*(o.precision+4))

	sb.WriteString("array<f32, ")
	sb.WriteString(strconv.Itoa(len(values)))
	sb.WriteString(">(")
	for _, v := range values {
		sb.WriteString(strconv.FormatFloat(v, 'f', o.precision, 64))
		sb.WriteString(", ")
	}
	sb.WriteString(")")

	return sb.String()
}
