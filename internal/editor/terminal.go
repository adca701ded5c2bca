package editor

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// restoreFunc undoes whatever EnableRawMode did; nil once already restored.
type restoreFunc func() error

// EnableRawMode switches stdin into an unbuffered, non-echoing byte stream
// for the duration of the session. It is the only place this package
// touches terminal attributes directly.
func (e *Editor) EnableRawMode() error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("stdin is not a terminal")
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}
	e.term.saved = func() error { return term.Restore(fd, state) }
	return nil
}

// RestoreTerminal puts the TTY back the way EnableRawMode found it. Safe to
// call more than once; only the first call after EnableRawMode does
// anything.
func (e *Editor) RestoreTerminal() {
	if e.term == nil || e.term.saved == nil {
		return
	}
	_ = e.term.saved()
	e.term.saved = nil
}

// Die implements the Fatal I/O path of spec.md §7: restore the terminal,
// clear the screen, report the error, and exit 1. It always runs on the
// calling goroutine; there is no other thread of control to race with.
func (e *Editor) Die(reason string, err error) {
	e.log.Error("fatal", zapErrorFields(reason, err)...)
	e.RestoreTerminal()
	os.Stdout.Write([]byte(clearScreen))
	os.Stdout.Write([]byte(cursorHome))
	fmt.Fprintf(os.Stderr, "goedit: %s: %v\n", reason, err)
	os.Exit(1)
}

// WindowSize asks the TTY for its current size; used at startup and on
// Ctrl-L initiated redraw is intentionally not wired (Ctrl-L is ignored
// per spec.md §4.9, the dispatch table).
func WindowSize() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(int(os.Stdout.Fd()))
	return rows, cols, err
}
