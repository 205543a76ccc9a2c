// Package prompt collects and validates laptop parameters from a console.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

const invalidValueMsg = "Invalid value! Try again..."

type inputLine struct {
	text string
	err  error
}

// Collector reads answers line by line from in and writes prompts to out.
// Lines are read on a background goroutine so that a pending prompt gives up
// as soon as the caller's context is done.
type Collector struct {
	scanner *bufio.Scanner
	out     io.Writer
	warn    *color.Color
	logger  zerolog.Logger

	once  sync.Once
	lines chan inputLine
}

// NewCollector creates a collector over the given console streams.
func NewCollector(in io.Reader, out io.Writer, logger zerolog.Logger) *Collector {
	return &Collector{
		scanner: bufio.NewScanner(in),
		out:     out,
		warn:    color.New(color.FgRed),
		logger:  logger,
		lines:   make(chan inputLine),
	}
}

// Collect asks for every field in order. An invalid answer is rejected and the
// same field is asked again, without limit. It fails only when input runs out
// or ctx is done.
func (c *Collector) Collect(ctx context.Context) (Params, error) {
	values := make([]string, 0, len(Fields))
	for _, f := range Fields {
		v, err := c.ask(ctx, f)
		if err != nil {
			return Params{}, fmt.Errorf("reading %s: %w", f.Column, err)
		}
		values = append(values, v)
	}
	return ParseParams(values)
}

func (c *Collector) ask(ctx context.Context, f Field) (string, error) {
	for {
		line, err := c.Ask(ctx, f.Prompt)
		if err != nil {
			return "", err
		}
		if err := f.Validate(line); err != nil {
			c.logger.Debug().Err(err).Str("field", f.Column).Msg("rejected input")
			c.warn.Fprintln(c.out, invalidValueMsg)
			continue
		}
		return line, nil
	}
}

// Ask prints prompt and returns the next input line without its line ending.
// It returns io.ErrUnexpectedEOF once input is exhausted and ctx.Err() if ctx
// is done first.
func (c *Collector) Ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprintln(c.out, prompt)
	c.once.Do(func() { go c.read() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", io.ErrUnexpectedEOF
		}
		return l.text, l.err
	}
}

func (c *Collector) read() {
	defer close(c.lines)
	for c.scanner.Scan() {
		c.lines <- inputLine{text: strings.TrimRight(c.scanner.Text(), "\r")}
	}
	if err := c.scanner.Err(); err != nil {
		c.lines <- inputLine{err: err}
	}
}
