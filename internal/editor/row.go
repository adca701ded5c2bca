package editor

// cxToRx sums 1 for each non-tab byte in chars[0..cx) and jumps to the next
// tab stop boundary for each tab byte, per spec.md §4.3.
func (r *row) cxToRx(cx int, tabStop int) int {
	rx := 0
	for j := 0; j < cx; j++ {
		if r.chars[j] == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// rxToCx is cxToRx's inverse: the first cx whose running rx exceeds the
// argument, or len(chars) if rx is never exceeded.
func (r *row) rxToCx(rx int, tabStop int) int {
	curRx := 0
	cx := 0
	for ; cx < len(r.chars); cx++ {
		if r.chars[cx] == '\t' {
			curRx += (tabStop - 1) - (curRx % tabStop)
		}
		curRx++
		if curRx > rx {
			return cx
		}
	}
	return cx
}

// updateRow re-derives render from chars (tab expansion to tabStop) and
// re-highlights the row, cascading forward while hlOpenComment keeps
// flipping. Every mutator in this file ends by calling this.
func (e *Editor) updateRow(idx int) {
	r := &e.rows[idx]
	tabStop := e.tun.tabStop()

	tabs := 0
	for _, c := range r.chars {
		if c == '\t' {
			tabs++
		}
	}
	render := make([]byte, 0, len(r.chars)+tabs*(tabStop-1))
	for _, c := range r.chars {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%tabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	r.render = render

	prevOpen := idx > 0 && e.rows[idx-1].hlOpenComment
	r.updateSyntax(e.syntax, prevOpen)

	// Iterative cascade (design note: avoids deep recursion on long files
	// with a flipped comment flag near the top).
	for i := idx; i+1 < len(e.rows); i++ {
		changed := e.rows[i+1].updateSyntax(e.syntax, e.rows[i].hlOpenComment)
		if !changed {
			break
		}
	}
}

// insertRow inserts a new row at at, which must lie in [0, N] (anything
// outside is a no-op); rows at >= at shift up and their idx increments.
func (e *Editor) insertRow(at int, chars []byte) {
	if at < 0 || at > len(e.rows) {
		return
	}
	e.rows = append(e.rows, row{})
	copy(e.rows[at+1:], e.rows[at:len(e.rows)-1])
	e.rows[at] = row{idx: at, chars: append([]byte{}, chars...)}
	for i := at + 1; i < len(e.rows); i++ {
		e.rows[i].idx = i
	}
	e.updateRow(at)
	e.dirty++
}

// deleteRow releases the row at at; rows at > at shift down and idx
// decrements. at == N (len(e.rows)) is a documented no-op, per spec.md §9's
// Open Questions.
func (e *Editor) deleteRow(at int) {
	if at < 0 || at >= len(e.rows) {
		return
	}
	e.rows = append(e.rows[:at], e.rows[at+1:]...)
	for i := at; i < len(e.rows); i++ {
		e.rows[i].idx = i
	}
	e.dirty++
	if at < len(e.rows) {
		e.updateRow(at)
	}
}

func (e *Editor) rowInsertChar(ri int, at int, c byte) {
	r := &e.rows[ri]
	if at < 0 || at > len(r.chars) {
		at = len(r.chars)
	}
	r.chars = append(r.chars, 0)
	copy(r.chars[at+1:], r.chars[at:len(r.chars)-1])
	r.chars[at] = c
	e.updateRow(ri)
	e.dirty++
}

func (e *Editor) rowAppendString(ri int, s []byte) {
	r := &e.rows[ri]
	r.chars = append(r.chars, s...)
	e.updateRow(ri)
	e.dirty++
}

func (e *Editor) rowDeleteChar(ri int, at int) {
	r := &e.rows[ri]
	if at < 0 || at >= len(r.chars) {
		return
	}
	r.chars = append(r.chars[:at], r.chars[at+1:]...)
	e.updateRow(ri)
	e.dirty++
}
