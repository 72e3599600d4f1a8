//go:build gofuzz

package calc

import (
	"errors"

	// go-fuzz support
	_ "github.com/dvyukov/go-fuzz/go-fuzz-dep"
)

// Fuzz feeds arbitrary input to Eval. Any failure other than *Error is a bug.
func Fuzz(data []byte) int {
	_, err := Eval(string(data), DefaultConfig())
	if err == nil {
		return 1
	}
	var ce *Error
	if !errors.As(err, &ce) {
		panic(err)
	}
	return 0
}
