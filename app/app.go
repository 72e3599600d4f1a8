package app

import (
	"io"
	"log"

	"sparkcalc/calc"
)

// DefaultDigits is the number of significant digits shown for a result.
const DefaultDigits = 10

type Config struct {
	Calc   calc.Config
	Digits int
	Prompt string

	// Log receives diagnostics (recovered panics). Nil discards them.
	Log *log.Logger
}

func DefaultConfig() Config {
	return Config{
		Calc:   calc.DefaultConfig(),
		Digits: DefaultDigits,
		Prompt: "> ",
	}
}

// New returns a console reading expressions from in and writing results to out.
func New(in io.Reader, out io.Writer, cfg Config) *Console {
	if cfg.Digits <= 0 || cfg.Digits > maxDigits {
		cfg.Digits = DefaultDigits
	}
	if cfg.Log == nil {
		cfg.Log = log.New(io.Discard, "", 0)
	}
	limit := cfg.Calc.MaxInput
	if limit <= 0 {
		limit = calc.DefaultMaxInput
	}
	return &Console{
		ev:     calc.NewEvaluator(cfg.Calc),
		in:     in,
		out:    out,
		digits: cfg.Digits,
		prompt: cfg.Prompt,
		log:    cfg.Log,
		line:   NewLine(limit),
	}
}
