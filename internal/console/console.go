// Package console renders organizer output on a terminal: plain lines on
// stdout, red error lines and a progress bar on stderr. Color and the bar
// are only used when stderr is a TTY, so piped output stays clean.
package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Console writes organizer output to a pair of streams.
type Console struct {
	out         io.Writer
	errOut      io.Writer
	interactive bool
	errColor    *color.Color

	label string
	bar   *progressbar.ProgressBar
}

// New returns a Console writing to out and errOut. Interactive features
// turn on when errOut is a terminal.
func New(out, errOut io.Writer) *Console {
	return newConsole(out, errOut, isTerminal(errOut))
}

func newConsole(out, errOut io.Writer, interactive bool) *Console {
	c := &Console{
		out:         out,
		errOut:      errOut,
		interactive: interactive,
		errColor:    color.New(color.FgRed),
	}
	if interactive {
		c.errColor.EnableColor()
	} else {
		c.errColor.DisableColor()
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (c *Console) Println(line string) {
	fmt.Fprintln(c.out, line)
}

func (c *Console) Errorln(line string) {
	_, _ = c.errColor.Fprintln(c.errOut, line)
}

// StartProgress draws a bar of total steps; a no-op off a terminal.
func (c *Console) StartProgress(label string, total int) {
	c.label = label
	if !c.interactive {
		return
	}
	c.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(c.errOut),
		progressbar.OptionSetDescription(label),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]#[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func (c *Console) Advance(item string) {
	if c.bar == nil {
		return
	}
	c.bar.Describe(c.label + "  " + item)
	_ = c.bar.Add(1)
}

func (c *Console) FinishProgress() {
	if c.bar == nil {
		return
	}
	_ = c.bar.Finish()
	fmt.Fprintln(c.errOut)
	c.bar = nil
}
