package app

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/unicode"

	"sparkcalc/calc"
)

// Entry is one expression from a batch file with its 1-based line number.
type Entry struct {
	Line int
	Expr string
}

type Result struct {
	Entry
	Value float64
	Err   error
}

// ParseBatch splits text into entries, skipping blank lines and lines
// starting with '#'.
func ParseBatch(text string) []Entry {
	var out []Entry
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		t := strings.TrimSpace(line)
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		out = append(out, Entry{Line: i + 1, Expr: t})
	}
	return out
}

// EvalBatch evaluates entries on up to workers goroutines. Results keep the
// order of entries; a failed expression is reported in its Result, only
// cancellation of ctx fails the batch.
func EvalBatch(ctx context.Context, ev *calc.Evaluator, entries []Entry, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]Result, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range entries {
		i := i
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := ev.Evaluate(entries[i].Expr)
			out[i] = Result{Entry: entries[i], Value: v, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeInput returns the text of an expression file. UTF-16 files, with a
// BOM or without one (little-endian assumed), are converted to UTF-8.
func DecodeInput(b []byte) (string, error) {
	if !looksUTF16(b) {
		return string(bytes.TrimPrefix(b, utf8BOM)), nil
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode utf-16: %w", err)
	}
	return string(out), nil
}

func looksUTF16(b []byte) bool {
	if len(b) >= 2 && ((b[0] == 0xFF && b[1] == 0xFE) || (b[0] == 0xFE && b[1] == 0xFF)) {
		return true
	}
	if len(b) < 8 {
		return false
	}
	return b[1] == 0 && b[3] == 0 && b[5] == 0 && b[7] == 0
}
