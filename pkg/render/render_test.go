package render

import (
	"bytes"
	"image/color"
	"image/gif"
	"sync/atomic"
	"testing"

	"github.com/antoinefournier/Eulerian-Fluid-Simulation/pkg/fluid"
)

func TestNewPalette(t *testing.T) {
	names := Names()
	if names[0] != "sci" {
		t.Fatalf("first palette = %q, want sci", names[0])
	}
	for _, name := range names {
		p, err := NewPalette(name)
		if err != nil {
			t.Fatalf("NewPalette(%q): %v", name, err)
		}
		if p.Name != name {
			t.Errorf("Name = %q, want %q", p.Name, name)
		}
		if got := len(p.Colors()); got != paletteSize {
			t.Errorf("%s has %d colours, want %d", name, got, paletteSize)
		}
		for i, c := range p.lut {
			if c.A != 0xff {
				t.Fatalf("%s colour %d is not opaque: %v", name, i, c)
			}
		}
	}
	if _, err := NewPalette("rainbow-unicorn"); err == nil {
		t.Error("unknown palette accepted")
	}
}

func TestSciPaletteEnds(t *testing.T) {
	p, err := NewPalette("sci")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Color(0, 0, 1); got != (color.RGBA{B: 0xff, A: 0xff}) {
		t.Errorf("low end = %v, want blue", got)
	}
	if got := p.Color(1, 0, 1); got != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("high end = %v, want red", got)
	}
}

func TestPaletteIndexClamps(t *testing.T) {
	p, _ := NewPalette("sci")
	cases := []struct {
		val, lo, hi float64
		want        uint8
	}{
		{-5, 0, 1, 0},
		{0, 0, 1, 0},
		{0.5, 0, 1, 127},
		{1, 0, 1, 255},
		{7, 0, 1, 255},
		{0, -2, 2, 127},
		{3, 1, 1, 0},
	}
	for _, c := range cases {
		if got := p.Index(c.val, c.lo, c.hi); got != c.want {
			t.Errorf("Index(%v, %v, %v) = %d, want %d", c.val, c.lo, c.hi, got, c.want)
		}
	}
}

func TestParallelRowsVisitsEveryRowOnce(t *testing.T) {
	for _, rows := range []int{0, 1, 7, 100} {
		counts := make([]int32, rows)
		parallelRows(rows, func(y int) {
			atomic.AddInt32(&counts[y], 1)
		})
		for y, c := range counts {
			if c != 1 {
				t.Errorf("rows=%d: row %d visited %d times", rows, y, c)
			}
		}
	}
}

func TestFill(t *testing.T) {
	f := fluid.New(3, fluid.Seed{})
	f.SetDensity(1, 1, 1)
	f.SetDensity(3, 2, 0.5)
	p, _ := NewPalette("sci")

	pixels := make([]byte, 3*3*4)
	Fill(pixels, f.Density(), p, 0, 1)

	at := func(x, y int) color.RGBA {
		o := (y*3 + x) * 4
		return color.RGBA{R: pixels[o], G: pixels[o+1], B: pixels[o+2], A: pixels[o+3]}
	}
	if got, want := at(0, 0), p.Color(1, 0, 1); got != want {
		t.Errorf("pixel (0,0) = %v, want %v", got, want)
	}
	if got, want := at(2, 1), p.Color(0.5, 0, 1); got != want {
		t.Errorf("pixel (2,1) = %v, want %v", got, want)
	}
	if got, want := at(1, 2), p.Color(0, 0, 1); got != want {
		t.Errorf("pixel (1,2) = %v, want %v", got, want)
	}
}

func TestSymmetricRange(t *testing.T) {
	f := fluid.New(4, fluid.Seed{})
	f.SetDensity(2, 2, -3)
	f.SetDensity(3, 1, 2)
	f.SetDensity(0, 0, 100) // ghost cells are ignored
	lo, hi := SymmetricRange(f.Density())
	if lo != -3 || hi != 3 {
		t.Errorf("range = [%v, %v], want [-3, 3]", lo, hi)
	}

	lo, hi = SymmetricRange(fluid.New(2, fluid.Seed{}).Density())
	if lo >= 0 || hi <= 0 {
		t.Errorf("empty field range = [%v, %v], want a non-empty interval", lo, hi)
	}
}

func TestExportGIF(t *testing.T) {
	f := fluid.New(8, fluid.Seed{})
	p, _ := NewPalette("viridis")

	calls := 0
	stimulate := func(f *fluid.Fluid, frame int) {
		if frame != calls {
			t.Errorf("stimulus frame = %d, want %d", frame, calls)
		}
		calls++
		f.Inject(4, 4, 0, -1, 5)
	}

	var buf bytes.Buffer
	if err := ExportGIF(&buf, f, p, 3, 2, stimulate); err != nil {
		t.Fatalf("ExportGIF: %v", err)
	}
	if calls != 3 {
		t.Errorf("stimulus called %d times, want 3", calls)
	}

	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(anim.Image) != 3 {
		t.Fatalf("frames = %d, want 3", len(anim.Image))
	}
	for i, img := range anim.Image {
		if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
			t.Errorf("frame %d bounds = %v", i, b)
		}
		if anim.Delay[i] != 2 {
			t.Errorf("frame %d delay = %d", i, anim.Delay[i])
		}
	}
	if f.TotalDensity() == 0 {
		t.Error("stimulus did not reach the grid")
	}
}

func TestExportGIFRejectsBadArguments(t *testing.T) {
	f := fluid.New(4, fluid.Seed{})
	p, _ := NewPalette("sci")
	var buf bytes.Buffer
	if err := ExportGIF(&buf, f, p, 0, 2, nil); err == nil {
		t.Error("zero frames accepted")
	}
	if err := ExportGIF(&buf, f, p, 2, 0, nil); err == nil {
		t.Error("zero delay accepted")
	}
	if buf.Len() != 0 {
		t.Error("rejected export wrote output")
	}
}

func TestFrameImageClampsDensity(t *testing.T) {
	f := fluid.New(2, fluid.Seed{})
	f.SetDensity(1, 1, 4)
	f.SetDensity(2, 2, -1)
	p, _ := NewPalette("sci")
	img := FrameImage(f, p)
	if got := img.ColorIndexAt(0, 0); got != paletteSize-1 {
		t.Errorf("overfull cell index = %d", got)
	}
	if got := img.ColorIndexAt(1, 1); got != 0 {
		t.Errorf("negative cell index = %d", got)
	}
}
