package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/phrazzld/authors-api/internal/devsetup"
)

// console prints operator-facing messages: info in green, warnings in yellow
// and plain lines uncoloured so they can be copied.
type console struct {
	out  io.Writer
	info *color.Color
	warn *color.Color
}

var _ devsetup.Reporter = (*console)(nil)

func newConsole(out io.Writer) *console {
	return &console{
		out:  out,
		info: color.New(color.FgGreen),
		warn: color.New(color.FgYellow),
	}
}

func (c *console) Info(format string, args ...any) {
	_, _ = c.info.Fprintf(c.out, format+"\n", args...)
}

func (c *console) Warn(format string, args ...any) {
	_, _ = c.warn.Fprintf(c.out, format+"\n", args...)
}

func (c *console) Line(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format+"\n", args...)
}
