// Command kern2glsl turns whitespace-separated numbers on stdin into a GLSL
// kernel declaration.
//
// Usage:
//
//	kern2glsl [-name NAME] < weights.txt
//
// Output:
//
//	#define KERNEL_SIZE 3
//	float KERNEL[KERNEL_SIZE];
//	KERNEL[0] = 1.0;
//	KERNEL[1] = 2.0;
//	KERNEL[2] = 3.0;
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/kernelgen"
	"github.com/gogpu/kernelgen/internal/shadergen"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process boundary. All of stdin is consumed
// before anything is written to stdout.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("kern2glsl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: kern2glsl [flags] < input")
		fs.PrintDefaults()
	}

	var (
		name    = fs.String("name", shadergen.DefaultName, "array name; the size macro is NAME_SIZE")
		verbose = fs.Bool("v", false, "log diagnostics to stderr")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return exitUsage
	}
	if !shadergen.ValidName(*name) {
		fmt.Fprintf(stderr, "kern2glsl: invalid array name %q\n", *name)
		return exitUsage
	}

	if *verbose {
		kernelgen.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer kernelgen.SetLogger(nil)
	}

	values, err := shadergen.ParseValues(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "kern2glsl: %v\n", err)
		return exitError
	}
	if len(values) == 0 {
		kernelgen.Logger().Warn("no values on input, emitting empty kernel")
	}

	if _, err := io.WriteString(stdout, shadergen.GLSLKernel(values, shadergen.WithName(*name))); err != nil {
		fmt.Fprintf(stderr, "kern2glsl: %v\n", err)
		return exitError
	}
	return exitOK
}
