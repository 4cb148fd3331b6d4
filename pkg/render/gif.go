package render

import (
	"fmt"
	"image"
	"image/gif"
	"io"
	"log"

	"github.com/antoinefournier/Eulerian-Fluid-Simulation/pkg/fluid"
)

// Stimulus is applied to the grid before each exported frame is stepped.
type Stimulus func(f *fluid.Fluid, frame int)

// FrameImage renders the interior density of f, clamped to [0, 1].
func FrameImage(f *fluid.Fluid, p *Palette) *image.Paletted {
	n := f.GridSize()
	img := image.NewPaletted(image.Rect(0, 0, n, n), p.Colors())
	dens := f.Density()
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			img.SetColorIndex(x, y, p.Index(dens.At(x+1, y+1), 0, 1))
		}
	}
	return img
}

// ExportGIF steps f frames times, delay hundredths of a second per frame,
// and encodes the density of every frame to w as a looping GIF.
func ExportGIF(w io.Writer, f *fluid.Fluid, p *Palette, frames, delay int, stimulate Stimulus) error {
	if frames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", frames)
	}
	if delay < 1 {
		return fmt.Errorf("delay must be at least 1, got %d", delay)
	}
	dt := float64(delay) / 100.0

	anim := gif.GIF{}
	for i := 0; i < frames; i++ {
		if stimulate != nil {
			stimulate(f, i)
		}
		f.Update(dt)

		anim.Image = append(anim.Image, FrameImage(f, p))
		anim.Delay = append(anim.Delay, delay)

		if ((i + 1) & i) == 0 {
			log.Printf("Frame %v", i+1)
		}
	}
	log.Printf("Completed %v frames.", len(anim.Image))

	if err := gif.EncodeAll(w, &anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}
