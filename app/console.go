package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/shlex"

	"sparkcalc/calc"
)

// Console is a line-oriented calculator: each input line is typed into the
// Line buffer and evaluated as if Enter was pressed. Lines starting with ':'
// are commands.
type Console struct {
	ev     *calc.Evaluator
	in     io.Reader
	out    io.Writer
	digits int
	prompt string
	log    *log.Logger
	line   *Line
}

func (c *Console) Evaluator() *calc.Evaluator { return c.ev }

// Run reads lines until EOF, :quit, or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(c.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- sc.Err()
		close(lines)
	}()

	c.showPrompt()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case text, ok := <-lines:
			if !ok {
				return <-errc
			}
			if c.handle(text) {
				return nil
			}
			c.showPrompt()
		}
	}
}

func (c *Console) showPrompt() {
	if c.prompt != "" {
		_, _ = io.WriteString(c.out, c.prompt)
	}
}

// handle processes one input line and reports whether the console should stop.
func (c *Console) handle(text string) bool {
	trimmed := strings.TrimSpace(text)
	switch {
	case trimmed == "":
		return false
	case strings.HasPrefix(trimmed, ":"):
		return c.command(trimmed[1:])
	}

	if !c.line.Set(text) {
		c.lineFull()
		return false
	}
	c.enter()
	return false
}

// enter evaluates the current line. A good result clears the line; an error
// leaves it in place with the cursor on the offending position.
func (c *Console) enter() {
	if c.line.Len() == 0 {
		return
	}
	text := c.line.String()
	v, err := c.evaluate(text)
	if err != nil {
		c.printf("%s %v\n", calc.Label(err), err)
		var ce *calc.Error
		if errors.As(err, &ce) && ce.Pos <= len(text) {
			c.line.SetCursor(utf8.RuneCountInString(text[:ce.Pos]))
		}
		return
	}
	c.printf("%s\n", FormatResult(v, c.digits))
	c.line.Clear()
}

// evaluate guards the display loop against a panic inside the engine.
func (c *Console) evaluate(text string) (v float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Printf("panic evaluating %q: %v", text, r)
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	return c.ev.Evaluate(text)
}

func (c *Console) command(cmd string) bool {
	args, err := shlex.Split(cmd)
	if err != nil {
		c.printf("bad command: %v\n", err)
		return false
	}
	if len(args) == 0 {
		return false
	}

	name := strings.ToLower(args[0])
	switch name {
	case "q", "quit", "exit":
		return true
	case "mode":
		if len(args) > 1 {
			m, err := calc.ParseAngleMode(args[1])
			if err != nil {
				c.printf("%v\n", err)
				return false
			}
			c.ev.SetAngleMode(m)
		}
		c.printf("mode %s\n", c.ev.AngleMode())
	case "digits":
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 || n > maxDigits {
				c.printf("digits must be 1..%d\n", maxDigits)
				return false
			}
			c.digits = n
		}
		c.printf("digits %d\n", c.digits)
	case "last":
		c.showLine()
	case "clear":
		c.line.Clear()
	case "left", "right":
		n := 1
		if len(args) > 1 {
			if v, err := strconv.Atoi(args[1]); err == nil && v > 0 {
				n = v
			}
		}
		for i := 0; i < n; i++ {
			if name == "left" {
				c.line.Left()
			} else {
				c.line.Right()
			}
		}
		c.showLine()
	case "home":
		c.line.Home()
		c.showLine()
	case "end":
		c.line.End()
		c.showLine()
	case "del":
		c.line.Delete()
		c.showLine()
	case "bs":
		c.line.Backspace()
		c.showLine()
	case "ins":
		for _, r := range strings.Join(args[1:], " ") {
			if !c.line.Insert(r) {
				c.lineFull()
				break
			}
		}
		c.showLine()
	case "enter":
		c.enter()
	case "help":
		c.printf("operators: + - * / ^ ( )   negate: ~ or neg\n")
		c.printf("functions: %s\n", strings.Join(calc.Functions(), " "))
		c.printf("commands: :mode [deg|rad] :digits [n] :last :clear :quit\n")
		c.printf("editing: :left [n] :right [n] :home :end :del :bs :ins text :enter\n")
	default:
		c.printf("unknown command :%s\n", args[0])
	}
	return false
}

// showLine prints the kept line with a caret under the cursor.
func (c *Console) showLine() {
	c.printf("%s\n%s^\n", c.line.String(), strings.Repeat(" ", c.line.Cursor()))
}

func (c *Console) lineFull() {
	c.printf("%s input longer than %d bytes\n", calc.Label(calc.ErrCapacityExceeded), c.line.limit)
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
