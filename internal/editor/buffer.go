package editor

// appendBuffer stages one full frame so it can be flushed to the TTY in a
// single write, per spec.md §4.1. Created fresh per frame.
type appendBuffer struct {
	b []byte
}

func (ab *appendBuffer) append(s string) {
	ab.b = append(ab.b, s...)
}

func (ab *appendBuffer) appendBytes(s []byte) {
	ab.b = append(ab.b, s...)
}
