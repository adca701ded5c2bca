package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveRoundTripScenario(t *testing.T) {
	// Empty buffer + "abcd" + CR + "ef" + save -> "abcd\nef\n" (8 bytes).
	e := newTestEditor()
	for _, c := range []byte("abcd") {
		e.InsertChar(c)
	}
	e.InsertNewline()
	for _, c := range []byte("ef") {
		e.InsertChar(c)
	}

	dir := t.TempDir()
	e.filename = filepath.Join(dir, "x")
	e.Save()

	data, err := os.ReadFile(e.filename)
	require.NoError(t, err)
	assert.Equal(t, "abcd\nef\n", string(data))
	assert.Equal(t, "8 bytes written to disk", e.statusMessage)
	assert.False(t, e.Dirty())
}

func TestOpenRoundTripPreservesTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orig.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0644))

	e := newTestEditor()
	require.NoError(t, e.Open(path))
	assert.False(t, e.Dirty())

	e.Save()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
}

func TestSaveWithoutFilenamePrompts(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "new.txt")

	e := newTestEditor()
	e.insertRow(0, []byte("hi"))

	// Feed the prompt the full path of new.txt + CR.
	e.reader = &fakeReader{data: append([]byte(target), '\r')}
	e.Save()

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "hi\n", string(data))
}

func TestSaveAbortedOnEscape(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("hi"))
	e.reader = &fakeReader{data: []byte{'\x1b'}}

	e.Save()

	assert.Equal(t, "Save aborted", e.statusMessage)
	assert.True(t, e.Dirty())
}

func TestQuitTimesCounterRequiresThreePresses(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("x"))
	e.dirty = 1

	e.reader = &fakeReader{data: []byte{withControlKeyByte('q'), withControlKeyByte('q')}}

	err := e.ProcessKeypress()
	require.NoError(t, err)
	assert.Equal(t, 2, e.quitTimes)

	err = e.ProcessKeypress()
	require.NoError(t, err)
	assert.Equal(t, 1, e.quitTimes)
}

func withControlKeyByte(c byte) byte { return c & 0x1f }
