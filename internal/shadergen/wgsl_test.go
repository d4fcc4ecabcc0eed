package shadergen

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/gogpu/kernelgen/internal/kernel"
)

func TestWGSLArrayExample(t *testing.T) {
	w, err := kernel.Sample(3, 1)
	if err != nil {
		t.Fatal(err)
	}

	got := WGSLArray(w)
	want := "array<f32, 3>(0.398942, 0.241971, 0.053991, )"
	if got != want {
		t.Errorf("WGSLArray() = %q, want %q", got, want)
	}
}

func TestWGSLArrayEmpty(t *testing.T) {
	if got, want := WGSLArray(nil), "array<f32, 0>()"; got != want {
		t.Errorf("WGSLArray(nil) = %q, want %q", got, want)
	}
}

func TestWGSLArrayOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{"precision", []Option{WithPrecision(2)}, "array<f32, 2>(0.50, 0.25, )"},
		{"zero precision", []Option{WithPrecision(0)}, "array<f32, 2>(0, 0, )"},
		{"negative precision ignored", []Option{WithPrecision(-1)}, "array<f32, 2>(0.500000, 0.250000, )"},
		{"max precision", []Option{WithPrecision(MaxPrecision)}, "array<f32, 2>(0.50000000000000000, 0.25000000000000000, )"},
		{"precision above max ignored", []Option{WithPrecision(MaxPrecision + 1)}, "array<f32, 2>(0.500000, 0.250000, )"},
		{"huge precision ignored", []Option{WithPrecision(math.MaxInt)}, "array<f32, 2>(0.500000, 0.250000, )"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WGSLArray([]float64{0.5, 0.25}, tt.opts...); got != tt.want {
				t.Errorf("WGSLArray() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestWGSLArrayValues checks that the i-th element is g(i) rounded to
// 6 decimals and that exactly n elements are printed.
func TestWGSLArrayValues(t *testing.T) {
	for _, tc := range []struct {
		n int
		c float64
	}{{1, 1}, {5, 2}, {16, 4}, {33, 10}} {
		w, err := kernel.Sample(tc.n, tc.c)
		if err != nil {
			t.Fatal(err)
		}
		got := WGSLArray(w)

		prefix := "array<f32, " + strconv.Itoa(tc.n) + ">("
		if !strings.HasPrefix(got, prefix) || !strings.HasSuffix(got, ", )") {
			t.Fatalf("WGSLArray() = %q, want %q...%q", got, prefix, ", )")
		}

		body := strings.TrimSuffix(strings.TrimPrefix(got, prefix), ", )")
		tokens := strings.Split(body, ", ")
		if len(tokens) != tc.n {
			t.Fatalf("WGSLArray() has %d values, want %d", len(tokens), tc.n)
		}
		for i, tok := range tokens {
			want := strconv.FormatFloat(kernel.Gaussian(float64(i), tc.c), 'f', 6, 64)
			if tok != want {
				t.Errorf("value %d = %s, want %s", i, tok, want)
			}
		}
	}
}

func BenchmarkWGSLArray(b *testing.B) {
	w, _ := kernel.Sample(64, 16)
	b.ReportAllocs()
	for b.Loop() {
		_ = WGSLArray(w)
	}
}
