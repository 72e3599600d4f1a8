package calc

import (
	"math"
	"sort"
)

type mathFunc func(x float64, mode AngleMode) (float64, error)

var functions = map[string]mathFunc{
	"sin":  trig(math.Sin),
	"cos":  trig(math.Cos),
	"tan":  trig(math.Tan),
	"log":  positive(math.Log10),
	"ln":   positive(math.Log),
	"sqrt": sqrt,
}

// Functions returns the recognised function names in sorted order.
func Functions() []string {
	out := make([]string, 0, len(functions))
	for name := range functions {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func trig(f func(float64) float64) mathFunc {
	return func(x float64, mode AngleMode) (float64, error) {
		if mode == Degrees {
			x = x * math.Pi / 180
		}
		return f(x), nil
	}
}

func positive(f func(float64) float64) mathFunc {
	return func(x float64, _ AngleMode) (float64, error) {
		if x <= 0 {
			return 0, ErrDomain
		}
		return f(x), nil
	}
}

func sqrt(x float64, _ AngleMode) (float64, error) {
	if x < 0 {
		return 0, ErrDomain
	}
	return math.Sqrt(x), nil
}
