package kernel

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/kernelgen"
)

var (
	// ErrInvalidCount is returned when the requested tap count is below 1.
	ErrInvalidCount = errors.New("kernel: tap count must be at least 1")

	// ErrInvalidSpread is returned when the spread is zero, negative or not finite.
	ErrInvalidSpread = errors.New("kernel: spread must be a positive finite number")

	// ErrDegenerateKernel is returned when a kernel cannot be normalized
	// because its weights sum to zero or overflow.
	ErrDegenerateKernel = errors.New("kernel: weights do not sum to a positive finite value")
)

// Gaussian returns the normal probability density with standard deviation c
// evaluated at x:
//
//	g(x) = exp(-x²/(2c²)) / sqrt(2πc²)
//
// c² is never formed, so spreads near the float64 limits do not underflow
// into NaN. Gaussian does not validate c; see Sample.
func Gaussian(x, c float64) float64 {
	z := x / c
	return math.Exp(-0.5*z*z) / (c * math.Sqrt(2*math.Pi))
}

// Sample returns g(x) for every integer x in [0, n), in order.
//
// The weights are not rescaled: for n wide relative to c the two-sided
// sum w[0] + 2*(w[1] + ... + w[n-1]) approaches 1.0. Use Normalize when
// the kernel is truncated.
//
// Every weight must fit an f32 shader constant; a spread so small that the
// peak overflows f32 is rejected with ErrInvalidSpread.
func Sample(n int, c float64) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}
	if c <= 0 || math.IsNaN(c) || math.IsInf(c, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSpread, c)
	}

	kernel := make([]float64, n)
	for x := range kernel {
		v := Gaussian(float64(x), c)
		if !(v <= math.MaxFloat32) {
			return nil, fmt.Errorf("%w: got %v (weight %d = %v)", ErrInvalidSpread, c, x, v)
		}
		kernel[x] = v
	}

	kernelgen.Logger().Debug("sampled gaussian kernel",
		"taps", n, "spread", c, "sum", TwoSidedSum(kernel))

	return kernel, nil
}

// TwoSidedSum returns w[0] + 2*(w[1] + ... + w[n-1]), the total weight a
// symmetric blur applies when using the one-sided kernel w.
func TwoSidedSum(w []float64) float64 {
	if len(w) == 0 {
		return 0
	}
	sum := w[0]
	for _, v := range w[1:] {
		sum += 2 * v
	}
	return sum
}

// Normalize returns a copy of the one-sided kernel w scaled so that its
// two-sided sum is 1.0. The input is not modified.
func Normalize(w []float64) ([]float64, error) {
	sum := TwoSidedSum(w)
	if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return nil, fmt.Errorf("%w: sum = %v", ErrDegenerateKernel, sum)
	}

	inv := 1 / sum
	out := make([]float64, len(w))
	for i, v := range w {
		out[i] = v * inv
	}
	return out, nil
}
