package editor

import "bytes"

// promptCallback is invoked on every keystroke of a Prompt session with
// the buffer built so far and the key that just arrived.
type promptCallback func(buf []byte, key int)

// Prompt displays a status-bar-hosted line prompt, per spec.md §4.8.
// format must contain exactly one %s for the running input. Returns the
// confirmed string, or "" if the user cancelled with ESC.
func (e *Editor) Prompt(format string, cb promptCallback) string {
	buf := make([]byte, 0, 128)

	for {
		e.SetStatusMessage(format, string(buf))
		e.RefreshScreen()

		key, err := e.readKey()
		if err != nil {
			e.SetStatusMessage("%v", err)
			continue
		}

		switch key {
		case deleteKey, backspace, withControlKey('h'):
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case '\x1b':
			e.SetStatusMessage("")
			if cb != nil {
				cb(buf, key)
			}
			return ""
		case '\r':
			if len(buf) > 0 {
				e.SetStatusMessage("")
				if cb != nil {
					cb(buf, key)
				}
				return string(buf)
			}
		default:
			if !isControlByte(byte(key)) && key < 128 {
				buf = append(buf, byte(key))
			}
		}
		if cb != nil {
			cb(buf, key)
		}
	}
}

// searchState is the per-session state the incremental search callback
// needs across keystrokes: which row matched last, which direction to
// continue in, and the highlight bytes it clobbered so they can be
// restored before the next match is drawn. Owned by the search driver, not
// process-global, per spec.md §9's design note.
type searchState struct {
	lastMatch int
	direction int
	savedLine int
	savedHl   []byte
}

func newSearchState() *searchState {
	return &searchState{lastMatch: -1, direction: 1}
}

// callback implements spec.md §4.8's search callback: restore any
// previously highlighted match, resolve direction from the key, then walk
// rows from lastMatch+direction (wrapping) for the first render containing
// query.
func (s *searchState) callback(e *Editor) promptCallback {
	return func(query []byte, key int) {
		if s.savedHl != nil {
			copy(e.rows[s.savedLine].hl, s.savedHl)
			s.savedHl = nil
		}

		switch key {
		case '\r', '\x1b':
			s.lastMatch = -1
			s.direction = 1
			return
		case arrowRight, arrowDown:
			s.direction = 1
		case arrowLeft, arrowUp:
			s.direction = -1
		default:
			s.lastMatch = -1
			s.direction = 1
		}

		if s.lastMatch == -1 {
			s.direction = 1
		}
		current := s.lastMatch

		n := len(e.rows)
		for i := 0; i < n; i++ {
			current += s.direction
			switch current {
			case -1:
				current = n - 1
			case n:
				current = 0
			}

			r := &e.rows[current]
			match := bytes.Index(r.render, query)
			if match == -1 {
				continue
			}

			s.lastMatch = current
			e.cy = current
			e.cx = r.rxToCx(match, e.tun.tabStop())
			e.rowOffset = n

			s.savedLine = current
			s.savedHl = append([]byte{}, r.hl...)
			for k := match; k < match+len(query) && k < len(r.hl); k++ {
				r.hl[k] = hlMatch
			}
			break
		}
	}
}

// Find runs an incremental search prompt, restoring the pre-search
// viewport on cancellation, per spec.md §4.8.
func (e *Editor) Find() {
	savedCx, savedCy := e.cx, e.cy
	savedColOffset, savedRowOffset := e.colOffset, e.rowOffset

	s := newSearchState()
	query := e.Prompt("Search: %s (Use ESC/Arrows/Enter)", s.callback(e))

	if query == "" {
		e.cx, e.cy = savedCx, savedCy
		e.colOffset, e.rowOffset = savedColOffset, savedRowOffset
	}
}
