package main

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"sparkcalc/app"
	"sparkcalc/calc"
)

func TestWriteResults(t *testing.T) {
	entries := app.ParseBatch("2+3*4\n# skipped\n(1+2\nsin(30)\n")
	res, err := app.EvalBatch(context.Background(), calc.NewEvaluator(calc.DefaultConfig()), entries, 1)
	if err != nil {
		t.Fatalf("EvalBatch error: %v", err)
	}

	var buf bytes.Buffer
	failed, err := writeResults(&buf, res, 10)
	if err != nil {
		t.Fatalf("writeResults error: %v", err)
	}
	if failed != 1 {
		t.Fatalf("failed=%d; want 1", failed)
	}
	want := "2+3*4\t14\n(1+2\tERR:SYNTAX\nsin(30)\t0.5\n"
	if got := buf.String(); got != want {
		t.Fatalf("output=%q; want %q", got, want)
	}
}

func TestWriteOutput_File(t *testing.T) {
	entries := app.ParseBatch("1/0\n2^3^2\n")
	res, err := app.EvalBatch(context.Background(), calc.NewEvaluator(calc.DefaultConfig()), entries, 2)
	if err != nil {
		t.Fatalf("EvalBatch error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.txt")
	failed, err := writeOutput(path, res, 10)
	if err != nil {
		t.Fatalf("writeOutput error: %v", err)
	}
	if failed != 1 {
		t.Fatalf("failed=%d; want 1", failed)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if want := "1/0\tERR:DIVIDE BY 0\n2^3^2\t64\n"; string(got) != want {
		t.Fatalf("file=%q; want %q", got, want)
	}

	_, err = writeOutput(filepath.Join(t.TempDir(), "missing", "out.txt"), res, 10)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("writeOutput into missing dir err=%v; want not-exist", err)
	}
}
