package editor

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// filePicker is the ModalScreen backing Ctrl-E: browse the working
// directory and load a file into the current (single) buffer, per
// SPEC_FULL.md §4.10.
type filePicker struct {
	dir     string
	entries []os.DirEntry
	hasUp   bool
	content []row
}

func newFilePicker(dir string) (*filePicker, error) {
	fp := &filePicker{dir: dir}
	if err := fp.reload(); err != nil {
		return nil, err
	}
	return fp, nil
}

func (fp *filePicker) reload() error {
	entries, err := os.ReadDir(fp.dir)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name() < entries[j].Name()
	})
	fp.entries = entries

	abs, _ := filepath.Abs(fp.dir)
	fp.hasUp = abs != string(filepath.Separator)

	rows := make([]row, 0, len(entries)+2)
	rows = append(rows, staticRow(0, fmt.Sprintf("File Picker: %s", fp.dir)))
	if fp.hasUp {
		rows = append(rows, staticRow(len(rows), ".."))
	}
	for _, entry := range entries {
		label := entry.Name()
		if entry.IsDir() {
			label += "/"
		}
		rows = append(rows, staticRow(len(rows), label))
	}
	fp.content = rows
	return nil
}

func (fp *filePicker) Content() []row { return fp.content }

func (fp *filePicker) StatusMessage() string {
	return fmt.Sprintf("%s - %d items (Enter=open, ESC/q=cancel)", fp.dir, len(fp.entries))
}

func (fp *filePicker) Initialize(e *Editor) {
	e.cy = fp.firstSelectable()
	fp.highlightSelection(e)
}

func (fp *filePicker) firstSelectable() int {
	if len(fp.content) > 1 {
		return 1
	}
	return 0
}

func (fp *filePicker) highlightSelection(e *Editor) {
	for i := 1; i < len(fp.content); i++ {
		for j := range fp.content[i].hl {
			fp.content[i].hl[j] = hlNormal
		}
	}
	if e.cy > 0 && e.cy < len(fp.content) {
		r := &fp.content[e.cy]
		for j := range r.hl {
			r.hl[j] = hlMatch
		}
	}
	e.rows = fp.content
}

func (fp *filePicker) HandleKey(key int, e *Editor) (bool, bool) {
	switch key {
	case 'q', 'Q', '\x1b':
		return true, true

	case arrowUp:
		if e.cy > 1 {
			e.cy--
		}
		fp.highlightSelection(e)

	case arrowDown:
		if e.cy < len(fp.content)-1 {
			e.cy++
		}
		fp.highlightSelection(e)

	case '\r':
		opened, err := fp.activate(e)
		if err != nil {
			e.SetStatusMessage("%v", err)
			return false, false
		}
		if opened {
			return true, false
		}
		e.cy = fp.firstSelectable()
		e.rowOffset = 0
		fp.highlightSelection(e)
		e.SetStatusMessage("%s", fp.StatusMessage())
	}
	return false, false
}

// activate opens the selected directory in place or loads the selected
// file into the buffer. Returns (true, nil) only when a file was loaded
// and the modal should close without restoring the prior buffer; a file
// pick refused because the buffer is dirty is returned as an error so the
// caller shows it in the status bar.
func (fp *filePicker) activate(e *Editor) (bool, error) {
	selected := e.cy - 1
	if fp.hasUp {
		if selected == 0 {
			fp.dir = filepath.Dir(fp.dir)
			return false, fp.reload()
		}
		selected--
	}
	if selected < 0 || selected >= len(fp.entries) {
		return false, nil
	}

	entry := fp.entries[selected]
	if entry.IsDir() {
		fp.dir = filepath.Join(fp.dir, entry.Name())
		return false, fp.reload()
	}

	if e.dirty > 0 {
		return false, fmt.Errorf("File has unsaved changes")
	}

	if err := e.Open(filepath.Join(fp.dir, entry.Name())); err != nil {
		return false, err
	}
	return true, nil
}

// ShowFilePicker opens the Ctrl-E file browser over the working directory.
func (e *Editor) ShowFilePicker() {
	fp, err := newFilePicker(".")
	if err != nil {
		e.SetStatusMessage("Failed to read directory: %v", err)
		return
	}
	e.runModal(fp)
}
