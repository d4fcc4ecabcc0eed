package shadergen

import (
	"strconv"
	"strings"
)

// GLSLKernel formats values as a GLSL size macro, an array declaration and
// one assignment per element:
//
//	#define KERNEL_SIZE 2
//	float KERNEL[KERNEL_SIZE];
//	KERNEL[0] = 0.5;
//	KERNEL[1] = 0.25;
//
// Values are printed with FormatFloat. Every line ends with a newline.
// An empty slice still yields the macro and the declaration.
func GLSLKernel(values []float64, opts ...Option) string {
	o := applyOptions(opts)
	size := o.name + "_SIZE"

	var sb strings.Builder
	sb.WriteString("#define ")
	sb.WriteString(size)
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(len(values)))
	sb.WriteByte('\n')

	sb.WriteString("float ")
	sb.WriteString(o.name)
	sb.WriteByte('[')
	sb.WriteString(size)
	sb.WriteString("];\n")

	for i, v := range values {
		sb.WriteString(o.name)
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString("] = ")
		sb.WriteString(FormatFloat(v))
		sb.WriteString(";\n")
	}

	return sb.String()
}
