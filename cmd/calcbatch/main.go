package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"sparkcalc/app"
	"sparkcalc/calc"
)

var logger = log.New(os.Stderr, "calcbatch: ", 0)

func main() {
	var (
		inPath  = flag.String("in", "", "File of expressions, one per line.")
		outPath = flag.String("out", "", "Output file (default stdout).")
		workers = flag.Int("j", 0, "Parallel evaluations (0 = GOMAXPROCS).")
		radians = flag.Bool("rad", false, "Interpret trigonometric arguments as radians.")
		digits  = flag.Int("digits", app.DefaultDigits, "Significant digits shown for results.")
	)
	flag.Parse()

	if *inPath == "" {
		fatalf("usage: calcbatch -in exprs.txt [-out results.txt] [-j N] [-rad] [-digits 10]")
	}

	cfg := calc.DefaultConfig()
	if *radians {
		cfg.Angle = calc.Radians
	}

	raw, err := os.ReadFile(*inPath)
	if err != nil {
		fatalf("read: %v", err)
	}
	text, err := app.DecodeInput(raw)
	if err != nil {
		fatalf("%s: %v", *inPath, err)
	}
	entries := app.ParseBatch(text)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	results, err := app.EvalBatch(ctx, calc.NewEvaluator(cfg), entries, *workers)
	if err != nil {
		fatalf("evaluate: %v", err)
	}

	failed, err := writeOutput(*outPath, results, *digits)
	if err != nil {
		fatalf("%v", err)
	}
	if failed > 0 {
		logger.Printf("%d of %d expressions failed", failed, len(results))
		os.Exit(1)
	}
}

// writeOutput writes results to path, or stdout when path is empty. The file
// is closed before returning so a failed close is reported, not lost.
func writeOutput(path string, results []app.Result, digits int) (int, error) {
	if path == "" {
		failed, err := writeResults(os.Stdout, results, digits)
		if err != nil {
			return failed, fmt.Errorf("write: %w", err)
		}
		return failed, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create: %w", err)
	}
	failed, err := writeResults(f, results, digits)
	if err != nil {
		_ = f.Close()
		return failed, fmt.Errorf("write: %w", err)
	}
	if err := f.Close(); err != nil {
		return failed, fmt.Errorf("close: %w", err)
	}
	return failed, nil
}

func writeResults(w io.Writer, results []app.Result, digits int) (failed int, err error) {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.Printf("line %d: %v", r.Line, r.Err)
			fmt.Fprintf(bw, "%s\t%s\n", r.Expr, calc.Label(r.Err))
			continue
		}
		fmt.Fprintf(bw, "%s\t%s\n", r.Expr, app.FormatResult(r.Value, digits))
	}
	return failed, bw.Flush()
}

func fatalf(format string, args ...any) {
	logger.Printf(format, args...)
	os.Exit(2)
}
