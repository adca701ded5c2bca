package editor

import "fmt"

var helpLines = []string{
	"=== GOEDIT HELP ===",
	"",
	"NAVIGATION:",
	"  Arrow Keys       - Move cursor",
	"  Page Up/Down     - Scroll by page",
	"  Home/End         - Move to line start/end",
	"",
	"EDITING:",
	"  Ctrl-S           - Save file",
	"  Ctrl-Q           - Quit (3x confirmation if unsaved)",
	"  Backspace/Delete - Delete characters",
	"",
	"SEARCH:",
	"  Ctrl-F           - Find text",
	"  Arrow Up/Down    - Navigate search results",
	"  Escape           - Cancel search",
	"",
	"FILE:",
	"  Ctrl-E           - Open file picker",
	"",
	"OTHER:",
	"  Ctrl-G           - Show this help",
	"",
	"Press 'q' or Escape to close this help screen.",
}

// helpScreen is the static ModalScreen backing Ctrl-G.
type helpScreen struct {
	content []row
}

func newHelpScreen() *helpScreen {
	lines := append(append([]string{}, helpLines...), fmt.Sprintf("goedit %s", Version))
	content := make([]row, len(lines))
	for i, line := range lines {
		content[i] = staticRow(i, line)
	}
	return &helpScreen{content: content}
}

func (h *helpScreen) Content() []row        { return h.content }
func (h *helpScreen) StatusMessage() string { return "Help - Arrow keys to scroll, q/Escape to exit" }

func (h *helpScreen) Initialize(e *Editor) {
	e.cy = 0
	e.rowOffset = 0
}

func (h *helpScreen) HandleKey(key int, e *Editor) (bool, bool) {
	switch key {
	case 'q', 'Q', '\x1b':
		return true, true

	case arrowUp:
		if e.cy > 0 {
			e.cy--
		} else if e.rowOffset > 0 {
			e.rowOffset--
		}

	case arrowDown:
		maxCy := len(h.content) - 1
		if e.cy < e.screenRows-1 && e.cy < maxCy {
			e.cy++
		} else if e.rowOffset+e.screenRows < len(h.content) {
			e.rowOffset++
		}

	case pageUp:
		for i := 0; i < e.screenRows && (e.cy > 0 || e.rowOffset > 0); i++ {
			if e.cy > 0 {
				e.cy--
			} else {
				e.rowOffset--
			}
		}

	case pageDown:
		for i := 0; i < e.screenRows && e.rowOffset+e.cy < len(h.content)-1; i++ {
			maxCy := len(h.content) - 1
			if e.cy < e.screenRows-1 && e.cy < maxCy {
				e.cy++
			} else if e.rowOffset+e.screenRows < len(h.content) {
				e.rowOffset++
			}
		}

	case homeKey:
		e.cy, e.rowOffset = 0, 0

	case endKey:
		last := len(h.content)
		if last <= e.screenRows {
			e.cy, e.rowOffset = last-1, 0
		} else {
			e.cy, e.rowOffset = e.screenRows-1, last-e.screenRows
		}
	}
	return false, false
}

// ShowHelp opens the Ctrl-G help screen.
func (e *Editor) ShowHelp() {
	e.runModal(newHelpScreen())
}
