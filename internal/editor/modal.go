package editor

// ModalScreen generalizes the Prompt Driver's pluggable callback to a
// full-screen view: the File Picker and Help Screen are both one of these
// (spec.md §4.8's "Design Notes" calls out the prompt callback as a small
// state object; a ModalScreen is the same idea widened to own the whole
// row slice for the duration of its session).
type ModalScreen interface {
	Content() []row
	StatusMessage() string
	// HandleKey processes one key. close reports whether the modal should
	// exit; restore (only meaningful when close is true) reports whether
	// the editor's saved state should be put back, or kept as-is (e.g. a
	// file was just loaded into the buffer).
	HandleKey(key int, e *Editor) (close bool, restore bool)
	Initialize(e *Editor)
}

// modalState is the snapshot restored when a ModalScreen exits with
// restore=true.
type modalState struct {
	rows      []row
	cx, cy    int
	rowOffset int
	colOffset int
}

func (e *Editor) snapshotState() modalState {
	return modalState{
		rows:      e.rows,
		cx:        e.cx,
		cy:        e.cy,
		rowOffset: e.rowOffset,
		colOffset: e.colOffset,
	}
}

func (e *Editor) restoreState(s modalState) {
	e.rows = s.rows
	e.cx, e.cy = s.cx, s.cy
	e.rowOffset, e.colOffset = s.rowOffset, s.colOffset
	e.mode = EditMode
}

// runModal hosts screen's interaction loop: swap in its content, let it
// initialize the cursor, then refresh/read/dispatch until it asks to
// close. Exactly one modal runs at a time (spec.md §4.10: nesting is not
// supported).
func (e *Editor) runModal(screen ModalScreen) {
	saved := e.snapshotState()

	e.mode = modalMode
	e.rows = screen.Content()
	e.cx, e.cy = 0, 0
	e.rowOffset, e.colOffset = 0, 0
	e.SetStatusMessage("%s", screen.StatusMessage())

	screen.Initialize(e)

	for {
		e.RefreshScreen()

		key, err := e.readKey()
		if err != nil {
			e.SetStatusMessage("%v", err)
			continue
		}

		close, restore := screen.HandleKey(key, e)
		if close {
			if restore {
				e.restoreState(saved)
				e.SetStatusMessage("Returned to editor")
			}
			e.mode = EditMode
			return
		}
	}
}

// staticRow builds an unhighlighted display-only row from a plain string,
// used by modal screens that have no syntax to derive.
func staticRow(idx int, text string) row {
	r := row{idx: idx, chars: []byte(text)}
	r.render = append([]byte{}, r.chars...)
	r.hl = make([]byte, len(r.render))
	return r
}
