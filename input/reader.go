// SPDX-License-Identifier: MIT

package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/simpleiter/matrix"
	"github.com/katalvlaran/simpleiter/numeric"
)

// MaxSize is the default upper bound on the number of equations.
const MaxSize = 20

// Prompts written before each read when a prompt writer is configured.
const (
	promptSize     = "Enter the number of equations (1-%d):\n"
	promptAccuracy = "Enter the required accuracy:\n"
	promptMatrix   = "Enter %d rows of %d values (coefficients, then the constant term):\n"
)

// Reader reads a system from a line-oriented stream. It keeps its position
// across calls, so a retried read continues with the next line.
// A Reader is not safe for concurrent use.
type Reader struct {
	br      *bufio.Reader
	prompt  io.Writer
	ctx     numeric.Context
	maxSize int
}

// Option configures a Reader.
type Option func(*Reader)

// WithPrompt writes human prompts to w before every read.
// A nil w disables prompting.
func WithPrompt(w io.Writer) Option {
	return func(r *Reader) { r.prompt = w }
}

// WithMaxSize overrides MaxSize. Panics if n < 1.
func WithMaxSize(n int) Option {
	if n < 1 {
		panic("input: WithMaxSize(n<1)")
	}

	return func(r *Reader) { r.maxSize = n }
}

// WithContext sets the context values are parsed in. Panics on an exact
// context: literals longer than the working precision must be rounded.
func WithContext(ctx numeric.Context) Option {
	if ctx.IsExact() {
		panic("input: WithContext(exact)")
	}

	return func(r *Reader) { r.ctx = ctx }
}

// NewReader wraps src.
func NewReader(src io.Reader, opts ...Option) *Reader {
	r := &Reader{
		br:      bufio.NewReader(src),
		ctx:     numeric.Iteration(),
		maxSize: MaxSize,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// MaxSize reports the configured size bound.
func (r *Reader) MaxSize() int { return r.maxSize }

// Interactive reports whether prompts are written, i.e. whether a failed
// read should be retried rather than ending the session.
func (r *Reader) Interactive() bool { return r.prompt != nil }

func (r *Reader) promptf(format string, args ...interface{}) {
	if r.prompt != nil {
		_, _ = fmt.Fprintf(r.prompt, format, args...)
	}
}

// readLine returns the next line without its terminator. A final line
// without a newline is returned normally; only a fully drained stream
// yields ErrUnexpectedEOF.
func (r *Reader) readLine() (string, error) {
	line, err := r.br.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %w", ErrRead, err)
		}
		if line == "" {
			return "", ErrUnexpectedEOF
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// ReadSize reads one line holding the number of equations.
//
// Errors: ErrUnexpectedEOF, ErrNotANumber, ErrSizeOutOfRange.
func (r *Reader) ReadSize() (int, error) {
	r.promptf(promptSize, r.maxSize)
	line, err := r.readLine()
	if err != nil {
		return 0, fmt.Errorf("ReadSize: %w", err)
	}
	text := strings.TrimSpace(line)
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("ReadSize: %q: %w", text, ErrNotANumber)
	}
	if n < 1 || n > r.maxSize {
		return 0, fmt.Errorf("ReadSize: %d not in 1..%d: %w", n, r.maxSize, ErrSizeOutOfRange)
	}

	return n, nil
}

// ReadAccuracy reads one line holding ε > 0.
//
// Errors: ErrUnexpectedEOF, ErrNotANumber, ErrInvalidAccuracy.
func (r *Reader) ReadAccuracy() (*apd.Decimal, error) {
	r.promptf(promptAccuracy)
	line, err := r.readLine()
	if err != nil {
		return nil, fmt.Errorf("ReadAccuracy: %w", err)
	}
	text := strings.TrimSpace(line)
	eps, err := r.ctx.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("ReadAccuracy: %q: %w", text, ErrNotANumber)
	}
	if eps.Sign() <= 0 {
		return nil, fmt.Errorf("ReadAccuracy: %s: %w", eps, ErrInvalidAccuracy)
	}

	return eps, nil
}

// ReadMatrix reads exactly n lines of n+1 whitespace-separated decimals.
//
// Errors: *LineError wrapping ErrUnexpectedEOF, ErrTokenCount or ErrBadNumber;
// ErrSizeOutOfRange for n outside 1..MaxSize.
// Complexity: O(n²) tokens.
func (r *Reader) ReadMatrix(n int) (*matrix.Dense, error) {
	if n < 1 || n > r.maxSize {
		return nil, fmt.Errorf("ReadMatrix: %d not in 1..%d: %w", n, r.maxSize, ErrSizeOutOfRange)
	}
	r.promptf(promptMatrix, n, n+1)

	m, err := matrix.NewAugmented(n)
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix: %w", err)
	}
	for i := 0; i < n; i++ {
		line, err := r.readLine()
		if err != nil {
			if errors.Is(err, ErrUnexpectedEOF) {
				err = fmt.Errorf("expected %d lines: %w", n, ErrUnexpectedEOF)
			}
			return nil, &LineError{Line: i + 1, Err: err}
		}
		tokens := strings.Fields(line)
		if len(tokens) != n+1 {
			return nil, &LineError{
				Line: i + 1,
				Err:  fmt.Errorf("expected %d, got %d: %w", n+1, len(tokens), ErrTokenCount),
			}
		}
		for j, tok := range tokens {
			v, err := r.ctx.Parse(tok)
			if err != nil {
				return nil, &LineError{Line: i + 1, Column: j + 1, Token: tok, Err: ErrBadNumber}
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, &LineError{Line: i + 1, Column: j + 1, Token: tok, Err: err}
			}
		}
	}

	return m, nil
}

// Retry calls fn until it succeeds. Only Retryable errors of an interactive
// session are retried; anything else (end of input, a failing stream, every
// error of a file session) is returned as is.
// Every retried error is passed to report first.
func Retry[T any](interactive bool, report func(error), fn func() (T, error)) (T, error) {
	for {
		v, err := fn()
		if err == nil || !interactive || !Retryable(err) {
			return v, err
		}
		if report != nil {
			report(err)
		}
	}
}
