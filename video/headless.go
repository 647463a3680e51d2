//go:build headless

package video

// NewEbitenSink is stubbed out under the headless build tag: headless
// builds (CI, the test ROM harness) never link ebiten and its windowing/GL
// dependencies at all.
func NewEbitenSink(scale int) Sink {
	return NullSink{}
}
