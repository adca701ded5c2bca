package editor

import (
	"fmt"
	"time"
)

func isControlByte(c byte) bool { return c < 32 || c == 127 }

// drawRows walks the visible window of rows, per spec.md §4.4.
func (e *Editor) drawRows(ab *appendBuffer) {
	for y := 0; y < e.screenRows; y++ {
		filerow := y + e.rowOffset
		switch {
		case len(e.rows) == 0 && y == e.screenRows/3:
			e.drawWelcome(ab)
		case filerow >= len(e.rows):
			ab.append("~")
		default:
			e.drawRowSlice(ab, &e.rows[filerow])
		}
		ab.append(clearLine)
		ab.append("\r\n")
	}
}

func (e *Editor) drawWelcome(ab *appendBuffer) {
	welcome := fmt.Sprintf("goedit editor -- version %s", Version)
	if len(welcome) > e.screenCols {
		welcome = welcome[:e.screenCols]
	}
	padding := (e.screenCols - len(welcome)) / 2
	if padding > 0 {
		ab.append("~")
		padding--
	}
	for i := 0; i < padding; i++ {
		ab.append(" ")
	}
	ab.append(welcome)
}

func (e *Editor) drawRowSlice(ab *appendBuffer, r *row) {
	start := e.colOffset
	n := len(r.render) - start
	if n < 0 {
		n = 0
	}
	if n > e.screenCols {
		n = e.screenCols
	}

	currentColor := -1
	for j := 0; j < n; j++ {
		c := r.render[start+j]
		h := r.hl[start+j]

		if isControlByte(c) {
			sym := "?"
			if c <= 26 {
				sym = string([]byte{'@' + c})
			}
			ab.append(sgrInvert)
			ab.append(sym)
			ab.append(sgrReset)
			if currentColor != -1 {
				ab.append(fmt.Sprintf("\x1b[%dm", currentColor))
			}
			continue
		}

		if h == hlNormal {
			if currentColor != -1 {
				ab.append(sgrFg39)
				currentColor = -1
			}
			ab.appendBytes([]byte{c})
			continue
		}

		color := sgrColor(h)
		if color != currentColor {
			currentColor = color
			ab.append(fmt.Sprintf("\x1b[%dm", color))
		}
		ab.appendBytes([]byte{c})
	}
	ab.append(sgrFg39)
}

func (e *Editor) drawStatusBar(ab *appendBuffer) {
	ab.append(sgrInvert)

	filename := "[No Name]"
	if e.filename != "" {
		filename = e.filename
		if len(filename) > 20 {
			filename = filename[:20]
		}
	}
	modified := ""
	if e.dirty > 0 {
		modified = "(modified)"
	}
	status := fmt.Sprintf("%s - %d lines %s", filename, len(e.rows), modified)
	if len(status) > e.screenCols {
		status = status[:e.screenCols]
	}

	filetype := "no ft"
	if e.syntax != nil {
		filetype = e.syntax.filetype
	}
	rstatus := fmt.Sprintf("%s | %d/%d", filetype, e.cy+1, len(e.rows))

	ab.append(status)
	col := len(status)
	for col < e.screenCols {
		if e.screenCols-col == len(rstatus) {
			ab.append(rstatus)
			break
		}
		ab.append(" ")
		col++
	}

	ab.append(sgrReset)
	ab.append("\r\n")
}

func (e *Editor) drawMessageBar(ab *appendBuffer) {
	ab.append(clearLine)
	if time.Since(e.statusMessageTime) >= e.tun.messageTTL() {
		return
	}
	msg := e.statusMessage
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	ab.append(msg)
}

// RefreshScreen resolves scrolling and redraws the entire frame into one
// append buffer, then flushes it in a single write, per spec.md §4.4's
// frame envelope.
func (e *Editor) RefreshScreen() {
	e.scroll()

	var ab appendBuffer
	ab.append(cursorHide)
	ab.append(cursorHome)

	e.drawRows(&ab)
	e.drawStatusBar(&ab)
	e.drawMessageBar(&ab)

	ab.append(fmt.Sprintf(cursorPositionFmt, e.cy-e.rowOffset+1, e.rx-e.colOffset+1))
	ab.append(cursorShow)

	e.out.Write(ab.b)
}

// SetStatusMessage publishes a message bar entry with a fresh timestamp,
// per spec.md §3 ("shown for 5 seconds after being set", overridable via
// Tunables.MessageTTL).
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMessage = fmt.Sprintf(format, args...)
	e.statusMessageTime = time.Now()
}
