// Command kernel prints a one-sided Gaussian blur kernel as a WGSL array.
//
// Usage:
//
//	kernel [flags] <count> <spread>
//
// Example:
//
//	$ kernel 3 1
//	array<f32, 3>(0.398942, 0.241971, 0.053991, )
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/kernelgen"
	"github.com/gogpu/kernelgen/internal/kernel"
	"github.com/gogpu/kernelgen/internal/shadergen"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// validateWGSL compiles generated expressions; replaced in tests.
var validateWGSL = shadergen.ValidateWGSL

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process boundary.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("kernel", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: kernel [flags] <count> <spread>")
		fs.PrintDefaults()
	}

	var (
		normalize = fs.Bool("normalize", false, "scale weights so the two-sided sum is 1.0")
		linear    = fs.Bool("linear", false, "print bilinear offsets and weights instead of discrete taps")
		validate  = fs.Bool("validate", false, "compile the generated WGSL with naga before printing")
		precision = fs.Int("precision", shadergen.DefaultPrecision, "decimals per value")
		verbose   = fs.Bool("v", false, "log diagnostics to stderr")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return exitUsage
	}
	if *precision < 0 || *precision > shadergen.MaxPrecision {
		fmt.Fprintf(stderr, "kernel: invalid precision %d (want 0..%d)\n", *precision, shadergen.MaxPrecision)
		return exitUsage
	}

	if *verbose {
		kernelgen.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer kernelgen.SetLogger(nil)
	}

	out, err := generate(fs.Arg(0), fs.Arg(1), *normalize, *linear, *precision)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	if *validate {
		for _, expr := range out {
			if err := validateWGSL(expr); err != nil {
				fmt.Fprintln(stderr, fmt.Errorf("kernel: %w", err))
				return exitError
			}
		}
	}

	if _, err := io.WriteString(stdout, strings.Join(out, "\n")+"\n"); err != nil {
		fmt.Fprintf(stderr, "kernel: %v\n", err)
		return exitError
	}
	return exitOK
}

// generate returns the WGSL expressions to print, one per output line.
// Errors carry a "kernel: " prefix.
func generate(countArg, spreadArg string, normalize, linear bool, precision int) ([]string, error) {
	n, err := strconv.Atoi(countArg)
	if err != nil {
		return nil, fmt.Errorf("kernel: invalid count %q: %w", countArg, err)
	}
	c, err := strconv.ParseFloat(spreadArg, 64)
	if err != nil {
		return nil, fmt.Errorf("kernel: invalid spread %q: %w", spreadArg, err)
	}

	w, err := kernel.Sample(n, c)
	if err != nil {
		return nil, err
	}
	if normalize {
		if w, err = kernel.Normalize(w); err != nil {
			return nil, err
		}
	}

	opt := shadergen.WithPrecision(precision)
	if !linear {
		return []string{shadergen.WGSLArray(w, opt)}, nil
	}

	offsets, weights := kernel.LinearSample(w)
	kernelgen.Logger().Debug("linear sampling", "taps", len(w), "fetches", len(weights))
	return []string{
		shadergen.WGSLArray(offsets, opt),
		shadergen.WGSLArray(weights, opt),
	}, nil
}
