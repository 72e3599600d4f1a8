package calc

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// AngleMode selects how trigonometric arguments are interpreted.
type AngleMode uint8

const (
	Degrees AngleMode = iota
	Radians
)

func (m AngleMode) String() string {
	switch m {
	case Degrees:
		return "deg"
	case Radians:
		return "rad"
	default:
		return fmt.Sprintf("AngleMode(%d)", uint8(m))
	}
}

// ParseAngleMode accepts deg/degree(s) and rad/radian(s), case-insensitively.
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deg", "degree", "degrees":
		return Degrees, nil
	case "rad", "radian", "radians":
		return Radians, nil
	}
	return Degrees, fmt.Errorf("unknown angle mode %q (want deg or rad)", s)
}

const (
	// DefaultMaxInput matches the size of the display's expression buffer.
	DefaultMaxInput = 256
	DefaultMaxDepth = 64
)

// Config controls a single evaluation.
type Config struct {
	Angle AngleMode

	// MaxInput is the longest accepted line in bytes.
	MaxInput int
	// MaxDepth bounds each of the operand, operator and function stacks.
	MaxDepth int

	// ClampDivZero makes x/0 evaluate to 0 instead of failing with
	// ErrDivisionByZero.
	ClampDivZero bool
}

func DefaultConfig() Config {
	return Config{
		Angle:    Degrees,
		MaxInput: DefaultMaxInput,
		MaxDepth: DefaultMaxDepth,
	}
}

func (c Config) withDefaults() Config {
	if c.MaxInput <= 0 {
		c.MaxInput = DefaultMaxInput
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	return c
}

// Evaluator is a calculator session: a fixed Config plus an angle mode the
// surrounding UI may change between evaluations. It is safe for concurrent
// use; each Evaluate call works on a snapshot of the mode.
type Evaluator struct {
	cfg   Config
	angle uint32
}

func NewEvaluator(cfg Config) *Evaluator {
	cfg = cfg.withDefaults()
	return &Evaluator{cfg: cfg, angle: uint32(cfg.Angle)}
}

func (e *Evaluator) SetAngleMode(m AngleMode) {
	atomic.StoreUint32(&e.angle, uint32(m))
}

func (e *Evaluator) AngleMode() AngleMode {
	return AngleMode(atomic.LoadUint32(&e.angle))
}

// Config returns the session configuration with the current angle mode.
func (e *Evaluator) Config() Config {
	c := e.cfg
	c.Angle = e.AngleMode()
	return c
}

func (e *Evaluator) Evaluate(line string) (float64, error) {
	return Eval(line, e.Config())
}
