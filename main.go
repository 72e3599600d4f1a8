package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"sparkcalc/app"
	"sparkcalc/calc"
	"sparkcalc/internal/buildinfo"
)

func main() {
	cfg := app.DefaultConfig()
	var (
		radians bool
		expr    string
		version bool
	)
	flag.BoolVar(&radians, "rad", false, "Interpret trigonometric arguments as radians.")
	flag.IntVar(&cfg.Digits, "digits", app.DefaultDigits, "Significant digits shown for results.")
	flag.IntVar(&cfg.Calc.MaxInput, "max-input", calc.DefaultMaxInput, "Longest accepted expression in bytes.")
	flag.IntVar(&cfg.Calc.MaxDepth, "max-depth", calc.DefaultMaxDepth, "Maximum entries on each evaluation stack.")
	flag.BoolVar(&cfg.Calc.ClampDivZero, "clamp-div0", false, "Evaluate x/0 as 0 instead of failing.")
	flag.StringVar(&expr, "e", "", "Evaluate one expression and exit.")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}
	if radians {
		cfg.Calc.Angle = calc.Radians
	}
	cfg.Log = log.New(os.Stderr, "sparkcalc: ", 0)

	if expr != "" {
		v, err := calc.Eval(expr, cfg.Calc)
		if err != nil {
			fmt.Fprintln(os.Stderr, calc.Label(err), err)
			os.Exit(1)
		}
		fmt.Println(app.FormatResult(v, cfg.Digits))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := app.New(os.Stdin, os.Stdout, cfg).Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
