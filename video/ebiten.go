//go:build !headless

package video

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenSink is the windowed Sink backend: take a grayscale frame, show
// it. It implements ebiten.Game so a host can hand it straight to
// ebiten.RunGame.
type EbitenSink struct {
	mu     sync.Mutex
	pixels Frame
	scale  int
	img    *ebiten.Image
}

// NewEbitenSink constructs a windowed sink at the given integer scale
// factor, clamped to [1,8] so an absurd scale request can't blow up the
// window.
func NewEbitenSink(scale int) *EbitenSink {
	if scale < 1 {
		scale = 1
	}
	if scale > 8 {
		scale = 8
	}
	return &EbitenSink{scale: scale, img: ebiten.NewImage(Width, Height)}
}

// Present implements Sink. It is safe to call from the pacer goroutine;
// Update/Draw run on ebiten's own loop and read the buffer under the same
// lock.
func (s *EbitenSink) Present(pixels Frame) {
	s.mu.Lock()
	s.pixels = pixels
	s.mu.Unlock()
}

// Update implements ebiten.Game. This sink has no input handling of its
// own; the input package writes directly to the bus's joypad byte.
func (s *EbitenSink) Update() error { return nil }

// Draw implements ebiten.Game, blitting the latest presented frame.
func (s *EbitenSink) Draw(screen *ebiten.Image) {
	s.mu.Lock()
	pixels := s.pixels
	s.mu.Unlock()

	img := image.NewGray(image.Rect(0, 0, Width, Height))
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			img.SetGray(x, y, color.Gray{Y: pixels[y][x]})
		}
	}
	s.img.WritePixels(grayToRGBA(img))
	screen.DrawImage(s.img, nil)
}

// Layout implements ebiten.Game, fixing the logical screen to the native
// console resolution times the configured scale.
func (s *EbitenSink) Layout(outsideWidth, outsideHeight int) (int, int) {
	return Width * s.scale, Height * s.scale
}

// Run implements Runner: it sizes the window to the console's native
// resolution times the configured scale and hands the sink to
// ebiten.RunGame, blocking until the window is closed.
func (s *EbitenSink) Run() error {
	ebiten.SetWindowSize(Width*s.scale, Height*s.scale)
	ebiten.SetWindowTitle("gonebody")
	return ebiten.RunGame(s)
}

func grayToRGBA(img *image.Gray) []byte {
	out := make([]byte, Width*Height*4)
	for i, g := range img.Pix {
		out[i*4], out[i*4+1], out[i*4+2], out[i*4+3] = g, g, g, 0xFF
	}
	return out
}
