package editor

import (
	"bufio"
	"fmt"
	"os"
)

// InsertChar implements spec.md §4.5's insertChar: append a fresh row when
// the cursor sits at the past-the-end row, then insert the byte and
// advance cx.
func (e *Editor) InsertChar(c byte) {
	if e.cy == len(e.rows) {
		e.insertRow(len(e.rows), nil)
	}
	e.rowInsertChar(e.cy, e.cx, c)
	e.cx++
}

// InsertNewline implements spec.md §4.5's insertNewline: splitting the
// current row at cx, or inserting an empty row when cx is 0.
func (e *Editor) InsertNewline() {
	if e.cx == 0 {
		e.insertRow(e.cy, nil)
	} else {
		tail := append([]byte{}, e.rows[e.cy].chars[e.cx:]...)
		e.insertRow(e.cy+1, tail)
		e.rows[e.cy].chars = e.rows[e.cy].chars[:e.cx]
		e.updateRow(e.cy)
	}
	e.cy++
	e.cx = 0
}

// DeleteChar implements spec.md §4.5's delChar: no-op at the past-the-end
// row or at the buffer's very start; otherwise deletes the byte before cx,
// or joins the current row into the previous one at cx==0.
func (e *Editor) DeleteChar() {
	if e.cy == len(e.rows) {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	if e.cx > 0 {
		e.rowDeleteChar(e.cy, e.cx-1)
		e.cx--
		return
	}

	e.cx = len(e.rows[e.cy-1].chars)
	e.rowAppendString(e.cy-1, e.rows[e.cy].chars)
	e.deleteRow(e.cy)
	e.cy--
}

// RowsToString serializes every row as chars + '\n', per spec.md §4.5.
func (e *Editor) RowsToString() []byte {
	total := 0
	for _, r := range e.rows {
		total += len(r.chars) + 1
	}
	buf := make([]byte, 0, total)
	for _, r := range e.rows {
		buf = append(buf, r.chars...)
		buf = append(buf, '\n')
	}
	return buf
}

// Open loads filename into the buffer, selecting syntax highlighting and
// clearing the dirty counter, per spec.md §4.5.
func (e *Editor) Open(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("opening %q: %w", filename, err)
	}
	defer file.Close()

	e.filename = filename
	e.rows = e.rows[:0]
	e.cx, e.cy = 0, 0
	e.rowOffset, e.colOffset = 0, 0
	e.selectSyntaxHighlight()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		e.insertRow(len(e.rows), []byte(line))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %q: %w", filename, err)
	}
	e.dirty = 0
	return nil
}

// Save implements spec.md §4.5's save path: prompt for a filename if
// unset, serialize, truncate-then-write, and report success/failure
// through the status bar (and, on failure, the supplementary log).
func (e *Editor) Save() {
	if e.filename == "" {
		name := e.Prompt("Save as: %s (ESC to cancel)", nil)
		if name == "" {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.filename = name
		e.selectSyntaxHighlight()
	}

	buf := e.RowsToString()

	file, err := os.OpenFile(e.filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		e.saveFailed(err)
		return
	}
	defer file.Close()

	if err := file.Truncate(int64(len(buf))); err != nil {
		e.saveFailed(err)
		return
	}
	n, err := file.Write(buf)
	if err != nil {
		e.saveFailed(err)
		return
	}
	if n != len(buf) {
		e.saveFailed(fmt.Errorf("partial write: %d/%d bytes", n, len(buf)))
		return
	}

	e.SetStatusMessage("%d bytes written to disk", len(buf))
	e.dirty = 0
}

func (e *Editor) saveFailed(err error) {
	e.log.Warn("save failed", zapErrorFields("save", err)...)
	e.SetStatusMessage("Can't save! I/O error: %v", err)
}

// Run is the main loop of spec.md §4.9: refresh, read key, dispatch, until
// the user quits cleanly (exit 0) or a read failure forces the fatal path
// (exit 1, via Die).
func (e *Editor) Run() {
	e.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find | Ctrl-G = help")

	for {
		e.RefreshScreen()
		if err := e.ProcessKeypress(); err != nil {
			if err == errQuit {
				e.RestoreTerminal()
				os.Stdout.Write([]byte(clearScreen))
				os.Stdout.Write([]byte(cursorHome))
				return
			}
			e.Die("reading key", err)
		}
	}
}
