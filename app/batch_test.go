package app

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/text/encoding/unicode"

	"sparkcalc/calc"
)

func TestParseBatch(t *testing.T) {
	got := ParseBatch("# header\n1+1\n\n 2^3^2 \r\n5/0\n")
	want := []Entry{{Line: 2, Expr: "1+1"}, {Line: 4, Expr: "2^3^2"}, {Line: 5, Expr: "5/0"}}
	if len(got) != len(want) {
		t.Fatalf("ParseBatch entries=%v; want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("entry[%d]=%+v; want %+v", i, got[i], want[i])
		}
	}
}

func TestEvalBatch_OrderAndErrors(t *testing.T) {
	ev := calc.NewEvaluator(calc.DefaultConfig())
	entries := []Entry{{Line: 1, Expr: "1+1"}, {Line: 2, Expr: "2^3^2"}, {Line: 3, Expr: "5/0"}, {Line: 4, Expr: "sin(30)"}}

	res, err := EvalBatch(context.Background(), ev, entries, 2)
	if err != nil {
		t.Fatalf("EvalBatch error: %v", err)
	}
	if len(res) != len(entries) {
		t.Fatalf("results=%d; want %d", len(res), len(entries))
	}
	for i, r := range res {
		if r.Entry != entries[i] {
			t.Fatalf("result[%d] entry=%+v; want %+v", i, r.Entry, entries[i])
		}
	}
	if res[0].Value != 2 || res[1].Value != 64 {
		t.Fatalf("values=%v,%v; want 2,64", res[0].Value, res[1].Value)
	}
	if !errors.Is(res[2].Err, calc.ErrDivisionByZero) {
		t.Fatalf("result[2] err=%v; want ErrDivisionByZero", res[2].Err)
	}
	if got := FormatResult(res[3].Value, 10); got != "0.5" {
		t.Fatalf("sin(30)=%s; want 0.5", got)
	}
}

func TestEvalBatch_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ev := calc.NewEvaluator(calc.DefaultConfig())
	if _, err := EvalBatch(ctx, ev, []Entry{{Line: 1, Expr: "1"}}, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("EvalBatch err=%v; want context.Canceled", err)
	}
}

func TestDecodeInput(t *testing.T) {
	withBOM, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String("1+2\n")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	noBOM, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().String("2*3\n")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	bigEndian, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().String("4/2\n")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	tests := []struct {
		in   []byte
		want string
	}{
		{in: []byte("sin(30)\n"), want: "sin(30)\n"},
		{in: append([]byte{0xEF, 0xBB, 0xBF}, "1"...), want: "1"},
		{in: []byte(withBOM), want: "1+2\n"},
		{in: []byte(noBOM), want: "2*3\n"},
		{in: []byte(bigEndian), want: "4/2\n"},
	}
	for _, tt := range tests {
		got, err := DecodeInput(tt.in)
		if err != nil {
			t.Fatalf("DecodeInput(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("DecodeInput(%q)=%q; want %q", tt.in, got, tt.want)
		}
	}
}
