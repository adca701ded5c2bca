package editor

import "testing"

func TestFindWalksMatchesAndWraps(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("alpha"))
	e.insertRow(1, []byte("beta"))
	e.insertRow(2, []byte("gamma"))

	s := newSearchState()
	cb := s.callback(e)

	cb([]byte("a"), 0) // first keystroke, no directional key yet
	if e.cy != 0 {
		t.Fatalf("first match row = %d, want 0", e.cy)
	}

	cb([]byte("a"), arrowDown)
	if e.cy != 1 {
		t.Fatalf("second match row = %d, want 1", e.cy)
	}

	cb([]byte("a"), arrowDown)
	if e.cy != 2 {
		t.Fatalf("third match row = %d, want 2", e.cy)
	}

	cb([]byte("a"), arrowDown) // past the last row, wraps to the top
	if e.cy != 0 {
		t.Fatalf("wrapped match row = %d, want 0", e.cy)
	}
}

func TestFindRestoresHighlightOnExit(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("alpha"))
	e.filename = "f.go"
	e.selectSyntaxHighlight()

	before := append([]byte{}, e.rows[0].hl...)

	s := newSearchState()
	cb := s.callback(e)
	cb([]byte("a"), 0)

	if e.rows[0].hl[0] != hlMatch {
		t.Fatalf("expected match highlight at offset 0")
	}

	cb([]byte("a"), '\x1b') // cancel restores saved highlight
	if string(e.rows[0].hl) != string(before) {
		t.Fatalf("highlight not restored: got %v want %v", e.rows[0].hl, before)
	}
}

func TestFindCancelRestoresViewport(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("alpha"))
	e.insertRow(1, []byte("beta"))
	e.cx, e.cy = 2, 1

	e.reader = &fakeReader{data: []byte{'\x1b'}}
	e.Find()

	if e.cx != 2 || e.cy != 1 {
		t.Fatalf("cursor after cancel = (%d,%d), want (2,1)", e.cx, e.cy)
	}
}
