package editor

import (
	"bytes"
	"strings"
)

// hldbEntries is the small compiled-in syntax table; spec.md's Non-goals
// explicitly rule out a user-pluggable definitions, so this is the only
// way new filetypes are added (see Tunables.ExtraKeywords for the one
// permitted extension point: bolting more keywords onto an existing
// filetype from a config file).
var hldbEntries = []syntax{
	{
		filetype:  "c",
		filematch: []string{".c", ".h", ".cpp"},
		keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "class", "case",
			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|", "void|",
		},
		slComment:   "//",
		mlCommentLo: "/*",
		mlCommentHi: "*/",
		flags:       hlHighlightNumbers | hlHighlightStrings,
	},
	{
		filetype:  "go",
		filematch: []string{".go", ".mod", ".sum"},
		keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer", "else",
			"fallthrough", "for", "go", "goto", "if", "import", "package",
			"range", "return", "select", "switch", "type", "var",
			"interface|", "func|", "map|", "struct|",
		},
		slComment:   "//",
		mlCommentLo: "/*",
		mlCommentHi: "*/",
		flags:       hlHighlightNumbers | hlHighlightStrings,
	},
}

// isSeparator reports whether c belongs to spec.md §4.6's separator set:
// whitespace, NUL, or one of the listed punctuation bytes.
func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0:
		return true
	}
	return bytes.IndexByte([]byte(",.()+-/*=~%<>[];"), c) != -1
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// updateSyntax is the row-at-a-time classifier of spec.md §4.6. It mutates
// row.hl in place and returns whether row.hlOpenComment flipped, so the
// caller (Editor.updateRow, via the row store) can decide whether to
// cascade to the next row.
func (r *row) updateSyntax(sy *syntax, prevOpenComment bool) bool {
	r.hl = make([]byte, len(r.render))
	if sy == nil {
		return false
	}

	scs, mcs, mce := []byte(sy.slComment), []byte(sy.mlCommentLo), []byte(sy.mlCommentHi)
	prevSep := true
	var inString byte
	inComment := prevOpenComment

	for i := 0; i < len(r.render); {
		c := r.render[i]
		prevHl := byte(hlNormal)
		if i > 0 {
			prevHl = r.hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment && bytes.HasPrefix(r.render[i:], scs) {
			for j := i; j < len(r.render); j++ {
				r.hl[j] = hlComment
			}
			break
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				r.hl[i] = hlMLComment
				if bytes.HasPrefix(r.render[i:], mce) {
					for j := 0; j < len(mce) && i+j < len(r.render); j++ {
						r.hl[i+j] = hlMLComment
					}
					inComment = false
					i += len(mce)
					continue
				}
				i++
				continue
			}
			if bytes.HasPrefix(r.render[i:], mcs) {
				inComment = true
				for j := 0; j < len(mcs) && i+j < len(r.render); j++ {
					r.hl[i+j] = hlMLComment
				}
				i += len(mcs)
				continue
			}
		}

		if sy.flags&hlHighlightStrings != 0 {
			if inString != 0 {
				r.hl[i] = hlString
				if c == '\\' && i+1 < len(r.render) {
					r.hl[i+1] = hlString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				r.hl[i] = hlString
				i++
				continue
			}
		}

		if sy.flags&hlHighlightNumbers != 0 {
			if (isDigit(c) && (prevSep || prevHl == hlNumber)) || (c == '.' && prevHl == hlNumber) {
				r.hl[i] = hlNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if klen, kw2 := matchKeyword(sy.keywords, r.render[i:]); klen > 0 {
				cls := byte(hlKeyword1)
				if kw2 {
					cls = hlKeyword2
				}
				for k := 0; k < klen; k++ {
					r.hl[i+k] = cls
				}
				i += klen
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	changed := r.hlOpenComment != inComment
	r.hlOpenComment = inComment
	return changed
}

// matchKeyword returns the match length (excluding any trailing '|') and
// whether the keyword was marked KEYWORD2, for the first configured
// keyword that matches at the start of rest and is followed by a
// separator (or end of row).
func matchKeyword(keywords []string, rest []byte) (int, bool) {
	for _, kw := range keywords {
		kw2 := strings.HasSuffix(kw, "|")
		if kw2 {
			kw = kw[:len(kw)-1]
		}
		klen := len(kw)
		if klen == 0 || klen > len(rest) {
			continue
		}
		if !bytes.Equal(rest[:klen], []byte(kw)) {
			continue
		}
		if klen < len(rest) && !isSeparator(rest[klen]) {
			continue
		}
		return klen, kw2
	}
	return 0, false
}

// selectSyntaxHighlight walks hldbEntries (extended by e.tun.ExtraKeywords)
// looking for a pattern matching e.filename; first match wins, per
// spec.md §4.6's "Filetype selection". Every row is then re-highlighted.
func (e *Editor) selectSyntaxHighlight() {
	e.syntax = nil
	if e.filename == "" {
		return
	}

	ext := ""
	if dot := strings.LastIndex(e.filename, "."); dot != -1 {
		ext = e.filename[dot:]
	}

	for i := range hldbEntries {
		s := hldbEntries[i]
		for _, pattern := range s.filematch {
			isExt := pattern[0] == '.'
			matched := (isExt && ext != "" && ext == pattern) ||
				(!isExt && strings.Contains(e.filename, pattern))
			if !matched {
				continue
			}
			if extra := e.tun.ExtraKeywords[s.filetype]; len(extra) > 0 {
				s.keywords = append(append([]string{}, s.keywords...), extra...)
			}
			e.syntax = &s
			e.rehighlightAll()
			return
		}
	}
}

// rehighlightAll re-runs the classifier over every row in store order,
// which is sufficient to resolve any cascade since later rows always
// observe their already-updated predecessor.
func (e *Editor) rehighlightAll() {
	var prevOpen bool
	for i := range e.rows {
		e.rows[i].updateSyntax(e.syntax, prevOpen)
		prevOpen = e.rows[i].hlOpenComment
	}
}
