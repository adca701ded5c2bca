package editor

import "testing"

func hundredRowsOfX() *Editor {
	e := newTestEditor()
	for i := 0; i < 100; i++ {
		e.insertRow(i, []byte("x"))
	}
	e.Resize(12, 80) // screenRows = 10 after reserving the two bottom bars
	return e
}

func TestPageDownThenArrowDownScrollsPastScreen(t *testing.T) {
	e := hundredRowsOfX()
	e.cy = 0

	// PAGE_DOWN once -> cy = 9 (rowOffset+screenRows-1 with rowOffset=0).
	e.cy = e.rowOffset + e.screenRows - 1
	if e.cy != 9 {
		t.Fatalf("cy after PAGE_DOWN = %d, want 9", e.cy)
	}

	// ...then PAGE_DOWN repeats ARROW_DOWN screenRows (10) times.
	for i := 0; i < e.screenRows; i++ {
		e.moveCursor(arrowDown)
	}
	if e.cy != 19 {
		t.Fatalf("cy after 10 ARROW_DOWN = %d, want 19", e.cy)
	}

	e.scroll()
	if e.rowOffset != 10 {
		t.Fatalf("rowOffset = %d, want 10", e.rowOffset)
	}
}

func TestScrollKeepsCursorWithinWindow(t *testing.T) {
	e := hundredRowsOfX()
	e.cy = 55

	e.scroll()

	if e.cy < e.rowOffset || e.cy >= e.rowOffset+e.screenRows {
		t.Fatalf("cy=%d outside [%d,%d)", e.cy, e.rowOffset, e.rowOffset+e.screenRows)
	}
}

func TestMoveCursorWrapsAtRowBoundaries(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("ab"))
	e.insertRow(1, []byte("cd"))

	e.cy, e.cx = 1, 0
	e.moveCursor(arrowLeft)
	if e.cy != 0 || e.cx != 2 {
		t.Fatalf("left-wrap -> (%d,%d), want (0,2)", e.cy, e.cx)
	}

	e.moveCursor(arrowRight)
	if e.cy != 1 || e.cx != 0 {
		t.Fatalf("right-wrap -> (%d,%d), want (1,0)", e.cy, e.cx)
	}
}

func TestReadKeyDecodesArrowSequence(t *testing.T) {
	e := newTestEditor()
	e.reader = &fakeReader{data: []byte("\x1b[A")}

	key, err := e.readKey()
	if err != nil {
		t.Fatalf("readKey error: %v", err)
	}
	if key != arrowUp {
		t.Fatalf("key = %d, want ARROW_UP", key)
	}
}

func TestReadKeyDecodesDeleteSequence(t *testing.T) {
	e := newTestEditor()
	e.reader = &fakeReader{data: []byte("\x1b[3~")}

	key, err := e.readKey()
	if err != nil {
		t.Fatalf("readKey error: %v", err)
	}
	if key != deleteKey {
		t.Fatalf("key = %d, want DELETE_KEY", key)
	}
}

func TestReadKeyBareEscape(t *testing.T) {
	e := newTestEditor()
	e.reader = &fakeReader{data: []byte{'\x1b'}}

	key, err := e.readKey()
	if err != nil {
		t.Fatalf("readKey error: %v", err)
	}
	if key != '\x1b' {
		t.Fatalf("key = %d, want bare ESC", key)
	}
}
