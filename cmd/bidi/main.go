// Command bidi reorders text per the Unicode Bidirectional Algorithm,
// grounded on python-bidi's console_scripts entry point (bidi/__init__.py).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bidiorder/bidi/bidi"
	"github.com/bidiorder/bidi/bidi/bidiencoding"
)

// usageError marks a bad flag value, exiting non-zero with its message on
// stderr instead of a stack trace or a bare flag.Usage dump.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "bidi:", err)
		if _, ok := err.(*usageError); ok {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bidi", flag.ContinueOnError)
	fs.SetOutput(stderr)

	encoding := fs.String("e", "utf-8", "text encoding")
	fs.StringVar(encoding, "encoding", "utf-8", "text encoding")
	baseDir := fs.String("b", "", "base direction override: L or R")
	fs.StringVar(baseDir, "base-dir", "", "base direction override: L or R")
	debug := fs.Bool("d", false, "trace each resolution pass to stderr")
	fs.BoolVar(debug, "debug", false, "trace each resolution pass to stderr")

	if err := fs.Parse(args); err != nil {
		return &usageError{msg: err.Error()}
	}

	opts := bidi.Options{Debug: *debug, DebugWriter: stderr}
	switch *baseDir {
	case "":
		opts.BaseDirection = bidi.DirectionAuto
	case "L":
		opts.BaseDirection = bidi.DirectionLTR
	case "R":
		opts.BaseDirection = bidi.DirectionRTL
	default:
		return &usageError{msg: fmt.Sprintf("invalid -base-dir %q, want L or R", *baseDir)}
	}

	rest := fs.Args()
	if len(rest) > 0 {
		for _, line := range rest {
			out, err := bidiencoding.Display([]byte(line), *encoding, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, string(out))
		}
		return nil
	}

	reader := bufio.NewReader(stdin)
	for {
		raw, readErr := reader.ReadString('\n')
		if len(raw) > 0 {
			text, terminator := raw, ""
			switch {
			case strings.HasSuffix(raw, "\r\n"):
				text, terminator = strings.TrimSuffix(raw, "\r\n"), "\r\n"
			case strings.HasSuffix(raw, "\n"):
				text, terminator = strings.TrimSuffix(raw, "\n"), "\n"
			}

			out, err := bidiencoding.Display([]byte(text), *encoding, opts)
			if err != nil {
				return err
			}
			fmt.Fprint(stdout, string(out)+terminator)
		}
		if readErr != nil {
			if readErr == io.EOF {
				return nil
			}
			return readErr
		}
	}
}
