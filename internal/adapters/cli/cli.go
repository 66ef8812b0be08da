// Package cli is the command-line front end of the translator: it reads text
// from its arguments or standard input and prints the Shyriiwook form.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"wookiee/internal/domain/shyriiwook"
	"wookiee/internal/ports/output"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitIOError    = 1
	ExitUsageError = 2
)

// Streams bundles the process I/O so tests can substitute buffers.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run executes the command with args (without the program name) and returns
// the process exit code. defaultLocale selects messages unless -lang is set.
func Run(args []string, streams Streams, t output.T, defaultLocale string) int {
	fs := flag.NewFlagSet("wookiee", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	lang := fs.String("lang", defaultLocale, "message language (en, fr)")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(streams.Err, t.T(*lang, "cli_usage", nil))
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsageError
	}

	if fs.NArg() > 0 {
		text := strings.Join(fs.Args(), " ")
		if _, err := fmt.Fprintln(streams.Out, shyriiwook.Translate(text)); err != nil {
			return ExitIOError
		}
		return ExitOK
	}

	raw, err := io.ReadAll(streams.In)
	if err != nil {
		fmt.Fprintln(streams.Err, t.T(*lang, "cli_read_failed", map[string]any{"Error": err}))
		return ExitIOError
	}
	if _, err := io.WriteString(streams.Out, shyriiwook.Translate(string(raw))); err != nil {
		return ExitIOError
	}
	return ExitOK
}
