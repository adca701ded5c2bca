// Package editor implements the core text buffer, viewport, syntax
// highlighter, and modal input loop of the goedit terminal editor.
package editor

import (
	"time"

	"go.uber.org/zap"
)

// Compile-time tunables; overridable per-instance via Tunables.
const (
	Version         = "1.0.0"
	defaultTabStop  = 8
	defaultQuitTime = 3
	defaultMsgTTL   = 5 * time.Second
)

// Key codes. Wide codes start at 1000 so they never collide with a raw byte
// value; BACKSPACE sits at its ASCII position.
const backspace = 127

const (
	arrowLeft = iota + 1000
	arrowRight
	arrowUp
	arrowDown
	deleteKey
	homeKey
	endKey
	pageUp
	pageDown
)

// Highlight classes, one per render byte.
const (
	hlNormal = iota
	hlComment
	hlMLComment
	hlKeyword1
	hlKeyword2
	hlString
	hlNumber
	hlMatch
)

// Syntax flags controlling which classifier passes run.
const (
	hlHighlightNumbers = 1 << 0
	hlHighlightStrings = 1 << 1
)

// Editor modes. EditMode is the only one that owns the real buffer; the
// others host a ModalScreen's content in the same row slice.
const (
	EditMode = iota
	modalMode
)

// Tunables overrides the compiled-in constants above, sourced from an
// optional config file. The zero value reproduces the spec defaults.
type Tunables struct {
	TabStop       int
	QuitTimes     int
	MessageTTL    time.Duration
	ExtraKeywords map[string][]string
}

func (t Tunables) tabStop() int {
	if t.TabStop > 0 {
		return t.TabStop
	}
	return defaultTabStop
}

func (t Tunables) quitTimes() int {
	if t.QuitTimes > 0 {
		return t.QuitTimes
	}
	return defaultQuitTime
}

func (t Tunables) messageTTL() time.Duration {
	if t.MessageTTL > 0 {
		return t.MessageTTL
	}
	return defaultMsgTTL
}

// syntax describes one compiled-in filetype's highlighting rules. A
// keyword with a trailing '|' is KEYWORD2 (types); the rest are KEYWORD1
// (control keywords), per spec.md §3.
type syntax struct {
	filetype    string
	filematch   []string
	keywords    []string
	slComment   string
	mlCommentLo string
	mlCommentHi string
	flags       int
}

// row is one logical line: source bytes, its tab-expanded render form, and
// a parallel per-render-byte highlight class.
type row struct {
	idx           int
	chars         []byte
	render        []byte
	hl            []byte
	hlOpenComment bool
}

// terminal owns the saved TTY state so it can be restored exactly once.
type terminal struct {
	saved restoreFunc
}

// Editor is the full in-process state of one editing session: cursor,
// scroll offsets, the row store, dirty accounting, and the active syntax.
type Editor struct {
	cx, cy    int
	rx        int
	rowOffset int
	colOffset int

	screenRows int
	screenCols int

	rows  []row
	dirty int

	filename          string
	statusMessage     string
	statusMessageTime time.Time

	syntax *syntax

	mode      int
	quitTimes int

	term   *terminal
	tun    Tunables
	log    *zap.Logger
	out    writer
	reader keyReader
}

// writer is the single TTY sink a frame is flushed to. Satisfied by
// *os.File in production and a fakeWriter in tests.
type writer interface {
	Write(p []byte) (int, error)
}

// keyReader abstracts the raw byte source so Input Decoder tests can feed
// canned sequences without a real TTY.
type keyReader interface {
	Read(p []byte) (int, error)
}

// New constructs an Editor ready to run: dimensions must be filled in by
// the caller (via Resize) before the first RefreshScreen.
func New(tun Tunables, log *zap.Logger, out writer, in keyReader) *Editor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Editor{
		rows:      make([]row, 0),
		tun:       tun,
		log:       log,
		out:       out,
		reader:    in,
		term:      &terminal{},
		quitTimes: tun.quitTimes(),
	}
}

// Resize records the drawable window, reserving the bottom two lines for
// the status and message bars.
func (e *Editor) Resize(rows, cols int) {
	e.screenRows = rows - 2
	e.screenCols = cols
}

// NumRows returns the current row count (N in spec.md's notation).
func (e *Editor) NumRows() int { return len(e.rows) }

// Dirty reports whether the buffer has unsaved edits.
func (e *Editor) Dirty() bool { return e.dirty > 0 }
