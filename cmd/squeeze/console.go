package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type consoleOptions struct {
	verbose bool
	quiet   bool
	noColor bool
	stdout  io.Writer
	stderr  io.Writer
}

// console renders styled status lines. Color is an explicit decision made at
// construction time from the flag, config, NO_COLOR, and TTY detection; no
// ambient process-wide toggle is consulted afterwards.
type console struct {
	verbose bool
	quiet   bool
	stdout  io.Writer
	stderr  io.Writer

	blue   *color.Color
	green  *color.Color
	yellow *color.Color
	red    *color.Color
	cyan   *color.Color
	dim    *color.Color
}

func newConsole(opts consoleOptions) *console {
	stdout := opts.stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	c := &console{
		verbose: opts.verbose,
		quiet:   opts.quiet,
		stdout:  stdout,
		stderr:  stderr,
		blue:    color.New(color.FgBlue),
		green:   color.New(color.FgHiGreen),
		yellow:  color.New(color.FgYellow),
		red:     color.New(color.FgHiRed),
		cyan:    color.New(color.FgCyan),
		dim:     color.New(color.Faint),
	}

	if !colorEnabled(opts.noColor) {
		for _, col := range []*color.Color{c.blue, c.green, c.yellow, c.red, c.cyan, c.dim} {
			col.DisableColor()
		}
	} else {
		for _, col := range []*color.Color{c.blue, c.green, c.yellow, c.red, c.cyan, c.dim} {
			col.EnableColor()
		}
	}
	return c
}

func colorEnabled(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (c *console) info(msg string) {
	if c.quiet {
		return
	}
	fmt.Fprintln(c.stdout, c.blue.Sprint("i"), msg)
}

func (c *console) success(msg string) {
	if c.quiet {
		return
	}
	fmt.Fprintln(c.stdout, c.green.Sprint("+"), msg)
}

func (c *console) warning(msg string) {
	fmt.Fprintln(c.stderr, c.yellow.Sprint("!"), msg)
}

func (c *console) error(msg string) {
	fmt.Fprintln(c.stderr, c.red.Sprint("x"), c.red.Sprint(msg))
}

func (c *console) status(msg string) {
	if c.quiet {
		return
	}
	fmt.Fprintln(c.stdout, c.cyan.Sprint(">"), msg)
}

func (c *console) result(label, value string) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.stdout, "  %s %s\n", c.dim.Sprint(label+":"), value)
}

func (c *console) debug(msg string) {
	if c.verbose {
		fmt.Fprintln(c.stdout, c.dim.Sprint("  "+msg))
	}
}

func (c *console) blank() {
	if !c.quiet {
		fmt.Fprintln(c.stdout)
	}
}
