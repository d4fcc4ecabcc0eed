package shadergen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/gogpu/kernelgen"
)

// ParseError describes a token that could not be parsed as a number.
type ParseError struct {
	Line  int    // 1-based line number
	Token string // offending token
	Err   error  // underlying strconv error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("shadergen: line %d: invalid number %q", e.Line, e.Token)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseValues reads whitespace-separated numbers from r until EOF and
// returns them in input order. Tokens may be spread over any number of
// lines. A leading UTF-8 or UTF-16 byte-order mark selects the input
// encoding; without one the input is read as UTF-8.
//
// Tokens are decimal floats, "inf", "infinity" or "nan" in any case.
// Underscores are allowed between digits ("1_000"); hexadecimal floats
// ("0x1p-2") are not. Out-of-range magnitudes such as "1e400" saturate to
// ±Inf instead of failing.
//
// The first invalid token aborts parsing with a *ParseError; no partial
// result is returned.
func ParseValues(r io.Reader) ([]float64, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	br := bufio.NewReader(transform.NewReader(r, dec))

	var values []float64
	for line := 1; ; line++ {
		text, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("shadergen: read input: %w", err)
		}

		for _, tok := range strings.Fields(text) {
			v, perr := parseNumber(tok)
			if perr != nil {
				return nil, &ParseError{Line: line, Token: tok, Err: perr}
			}
			values = append(values, v)
		}

		if err != nil {
			break
		}
	}

	kernelgen.Logger().Debug("parsed kernel values", "count", len(values))
	return values, nil
}

// parseNumber parses one decimal float token.
func parseNumber(tok string) (float64, error) {
	digits := strings.TrimLeft(tok, "+-")
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, strconv.ErrSyntax
	}

	if strings.IndexByte(tok, '_') >= 0 {
		for i := 0; i < len(tok); i++ {
			if tok[i] == '_' && (i == 0 || i == len(tok)-1 || !isDigit(tok[i-1]) || !isDigit(tok[i+1])) {
				return 0, strconv.ErrSyntax
			}
		}
		tok = strings.ReplaceAll(tok, "_", "")
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return v, nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
