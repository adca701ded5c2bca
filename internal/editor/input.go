package editor

import "errors"

// readKey reads one logical keystroke from e.reader: a raw byte, or a
// decoded ANSI CSI/SS3 sequence mapped to one of the wide key codes, per
// spec.md §4.7. A lone, unrecognised ESC is returned as the literal escape
// byte.
func (e *Editor) readKey() (int, error) {
	buf := make([]byte, 1)
	for {
		n, err := e.reader.Read(buf)
		if n == 1 {
			break
		}
		if err != nil {
			return 0, err
		}
	}

	c := buf[0]
	if c != '\x1b' {
		return int(c), nil
	}

	seq := make([]byte, 1)
	if n, err := e.reader.Read(seq); n != 1 || err != nil {
		return '\x1b', nil
	}
	first := seq[0]
	if n, err := e.reader.Read(seq); n != 1 || err != nil {
		return '\x1b', nil
	}
	second := seq[0]

	switch first {
	case '[':
		if second >= '0' && second <= '9' {
			third := make([]byte, 1)
			if n, err := e.reader.Read(third); n != 1 || err != nil {
				return '\x1b', nil
			}
			if third[0] != '~' {
				return '\x1b', nil
			}
			switch second {
			case '1', '7':
				return homeKey, nil
			case '3':
				return deleteKey, nil
			case '4', '8':
				return endKey, nil
			case '5':
				return pageUp, nil
			case '6':
				return pageDown, nil
			}
			return '\x1b', nil
		}
		switch second {
		case 'A':
			return arrowUp, nil
		case 'B':
			return arrowDown, nil
		case 'C':
			return arrowRight, nil
		case 'D':
			return arrowLeft, nil
		case 'H':
			return homeKey, nil
		case 'F':
			return endKey, nil
		}
	case 'O':
		switch second {
		case 'H':
			return homeKey, nil
		case 'F':
			return endKey, nil
		}
	}
	return '\x1b', nil
}

// withControlKey computes the control-key byte for c, per spec.md §4.7.
func withControlKey(c byte) int { return int(c & 0x1f) }

// moveCursor implements spec.md §4.9's editorMoveCursor: wraps left/right
// at row boundaries, clamps up at row 0 and down at the past-the-end row,
// and clamps cx to the landing row's length.
func (e *Editor) moveCursor(key int) {
	switch key {
	case arrowLeft:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = len(e.rows[e.cy].chars)
		}
	case arrowRight:
		if e.cy < len(e.rows) {
			if e.cx < len(e.rows[e.cy].chars) {
				e.cx++
			} else {
				e.cy++
				e.cx = 0
			}
		}
	case arrowUp:
		if e.cy != 0 {
			e.cy--
		}
	case arrowDown:
		if e.cy < len(e.rows) {
			e.cy++
		}
	}

	rowlen := 0
	if e.cy < len(e.rows) {
		rowlen = len(e.rows[e.cy].chars)
	}
	if e.cx > rowlen {
		e.cx = rowlen
	}
}

// ProcessKeypress decodes one key and dispatches it, per spec.md §4.9's
// table. Returns errQuit when the user has quit cleanly (main loop exits
// 0); any other error is a read failure that the caller should route
// through Die.
var errQuit = errors.New("quit")

func (e *Editor) ProcessKeypress() error {
	key, err := e.readKey()
	if err != nil {
		return err
	}

	switch key {
	case '\r':
		e.InsertNewline()

	case withControlKey('q'):
		if e.dirty > 0 && e.quitTimes > 1 {
			e.quitTimes--
			e.SetStatusMessage("WARNING: File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
			return nil
		}
		return errQuit

	case withControlKey('s'):
		e.Save()

	case homeKey:
		e.cx = 0

	case endKey:
		if e.cy < len(e.rows) {
			e.cx = len(e.rows[e.cy].chars)
		}

	case withControlKey('e'):
		e.ShowFilePicker()

	case withControlKey('f'):
		e.Find()

	case withControlKey('g'):
		e.ShowHelp()

	case backspace, withControlKey('h'), deleteKey:
		if key == deleteKey {
			e.moveCursor(arrowRight)
		}
		e.DeleteChar()

	case pageUp:
		e.cy = e.rowOffset
		for i := 0; i < e.screenRows; i++ {
			e.moveCursor(arrowUp)
		}

	case pageDown:
		e.cy = e.rowOffset + e.screenRows - 1
		if e.cy > len(e.rows) {
			e.cy = len(e.rows)
		}
		for i := 0; i < e.screenRows; i++ {
			e.moveCursor(arrowDown)
		}

	case arrowLeft, arrowRight, arrowUp, arrowDown:
		e.moveCursor(key)

	case withControlKey('l'), '\x1b':
		// ignored, per spec.md §4.9

	default:
		e.InsertChar(byte(key))
	}

	e.quitTimes = e.tun.quitTimes()
	return nil
}
