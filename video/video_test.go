package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullSinkDiscardsFrame(t *testing.T) {
	var f Frame
	f[0][0] = 0xFF
	assert.NotPanics(t, func() { NullSink{}.Present(f) })
}

type recordingSink struct {
	got Frame
	n   int
}

func (r *recordingSink) Present(f Frame) {
	r.got = f
	r.n++
}

func TestSinkReceivesFullFrame(t *testing.T) {
	var f Frame
	f[Height-1][Width-1] = 0x42

	s := &recordingSink{}
	s.Present(f)

	assert.Equal(t, 1, s.n)
	assert.Equal(t, uint8(0x42), s.got[Height-1][Width-1])
}

func TestFrameDimensionsMatchScreenConstants(t *testing.T) {
	var f Frame
	assert.Len(t, f, Height)
	assert.Len(t, f[0], Width)
}
