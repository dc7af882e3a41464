package keypad

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// MaxWordLength bounds a word source line, terminator included.
const MaxWordLength = 100

type RejectFunc func(line int, word string, err error)

type buildOptions struct {
	onReject RejectFunc
}

type BuildOption func(*buildOptions)

// WithRejectHandler is called for every line that could not be inserted.
func WithRejectHandler(fn RejectFunc) BuildOption {
	return func(o *buildOptions) {
		o.onReject = fn
	}
}

// Build inserts every line of r as a word. One trailing newline per line is
// stripped, empty lines are skipped and lines that fail validation are
// reported to the reject handler. At most MaxWordLength bytes of a line are
// held in memory; the rest of an overlong line is discarded. A read failure returns the words
// inserted so far along with an error wrapping ErrUnreadableSource.
func Build(r io.Reader, opts ...BuildOption) (*Trie, error) {
	o := &buildOptions{}
	for _, opt := range opts {
		opt(o)
	}

	t := New()
	if r == nil {
		return t, fmt.Errorf("%w: nil reader", ErrUnreadableSource)
	}

	br := bufio.NewReaderSize(r, MaxWordLength)
	for line := 1; ; line++ {
		chunk, err := br.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			word := string(chunk)
			if o.onReject != nil {
				o.onReject(line, word, fmt.Errorf("%w: more than %d bytes, limit %d", ErrWordTooLong, len(word), MaxWordLength-1))
			}

			if err = skipLine(br); errors.Is(err, io.EOF) {
				return t, nil
			} else if err != nil {
				return t, fmt.Errorf("%w: line %d: %w", ErrUnreadableSource, line, err)
			}
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return t, fmt.Errorf("%w: line %d: %w", ErrUnreadableSource, line, err)
		}

		if word := strings.TrimSuffix(string(chunk), "\n"); word != "" {
			insertErr := checkLength(word)
			if insertErr == nil {
				insertErr = t.Insert(word)
			}
			if insertErr != nil && o.onReject != nil {
				o.onReject(line, word, insertErr)
			}
		}

		if err != nil {
			return t, nil
		}
	}
}

// skipLine discards input up to and including the next newline.
func skipLine(br *bufio.Reader) error {
	for {
		_, err := br.ReadSlice('\n')
		if !errors.Is(err, bufio.ErrBufferFull) {
			return err
		}
	}
}

// BuildFile opens path and builds a trie from it. An unopenable file yields
// an empty trie and an error wrapping ErrUnreadableSource.
func BuildFile(path string, opts ...BuildOption) (*Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return New(), fmt.Errorf("%w: %w", ErrUnreadableSource, err)
	}
	defer f.Close()

	return Build(f, opts...)
}

// checkLength catches overlong lines when r is already a *bufio.Reader with a
// larger buffer, which NewReaderSize returns unchanged.
func checkLength(word string) error {
	if len(word) >= MaxWordLength {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrWordTooLong, len(word), MaxWordLength-1)
	}
	return nil
}
