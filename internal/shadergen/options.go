package shadergen

// Option configures snippet generation.
//
// Example:
//
//	src := shadergen.GLSLKernel(values, shadergen.WithName("BLUR"))
type Option func(*options)

// options holds optional configuration for snippet generation.
type options struct {
	name      string
	precision int
}

// DefaultName is the array name used by GLSLKernel unless WithName is given.
const DefaultName = "KERNEL"

// DefaultPrecision is the number of decimals WGSLArray prints.
const DefaultPrecision = 6

// MaxPrecision is the largest accepted decimal count. 17 decimals already
// exceed what an f32 constant can hold.
const MaxPrecision = 17

func defaultOptions() options {
	return options{
		name:      DefaultName,
		precision: DefaultPrecision,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithName sets the array name. The size macro is named NAME_SIZE.
// Use ValidName to check user-supplied names first.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithPrecision sets the number of decimals used by WGSLArray.
// Values outside [0, MaxPrecision] are ignored.
func WithPrecision(decimals int) Option {
	return func(o *options) {
		if decimals >= 0 && decimals <= MaxPrecision {
			o.precision = decimals
		}
	}
}

// ValidName reports whether name is usable as a GLSL/WGSL identifier:
// an ASCII letter or underscore followed by letters, digits or underscores,
// and not starting with the reserved "gl_" prefix.
func ValidName(name string) bool {
	if name == "" || len(name) >= 3 && name[:3] == "gl_" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
