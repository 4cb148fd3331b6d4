package render

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/mazznoer/colorgrad"
)

const paletteSize = 256

// Palette maps a value in a range to one of 256 colours.
type Palette struct {
	Name string
	lut  [paletteSize]color.RGBA
}

var gradients = map[string]func() colorgrad.Gradient{
	"viridis": colorgrad.Viridis,
	"inferno": colorgrad.Inferno,
	"turbo":   colorgrad.Turbo,
}

// Names lists the available palettes, "sci" first.
func Names() []string {
	names := []string{"sci"}
	for name := range gradients {
		names = append(names, name)
	}
	sort.Strings(names[1:])
	return names
}

func NewPalette(name string) (*Palette, error) {
	p := &Palette{Name: name}
	if name == "sci" {
		for i := range p.lut {
			p.lut[i] = getSciValue(float64(i)/(paletteSize-1), 0, 1)
		}
		return p, nil
	}

	grad, ok := gradients[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q", name)
	}
	for i, c := range grad().Colors(paletteSize) {
		p.lut[i] = color.RGBAModel.Convert(c).(color.RGBA)
	}
	return p, nil
}

// Index returns the palette slot for val within [minVal, maxVal]. Values
// outside the range are clamped.
func (p *Palette) Index(val, minVal, maxVal float64) uint8 {
	d := maxVal - minVal
	if d <= 0 || math.IsNaN(val) {
		return 0
	}
	t := (min(max(val, minVal), maxVal) - minVal) / d
	return uint8(t * (paletteSize - 1))
}

func (p *Palette) Color(val, minVal, maxVal float64) color.RGBA {
	return p.lut[p.Index(val, minVal, maxVal)]
}

// Colors returns the palette for use with image.Paletted.
func (p *Palette) Colors() color.Palette {
	pal := make(color.Palette, 0, paletteSize)
	for _, c := range p.lut {
		pal = append(pal, c)
	}
	return pal
}

// getSciValue is the blue-cyan-green-yellow-red scientific colour map.
func getSciValue(val, minVal, maxVal float64) color.RGBA {
	val = min(max(val, minVal), maxVal-0.0001)
	d := maxVal - minVal
	if d <= 0 {
		val = 0.5
	} else {
		val = (val - minVal) / d
	}
	m := 0.25
	num := math.Floor(val / m)
	s := (val - num*m) / m
	var r, g, b float64

	switch num {
	case 0:
		r = 0.0
		g = s
		b = 1.0
	case 1:
		r = 0.0
		g = 1.0
		b = 1.0 - s
	case 2:
		r = s
		g = 1.0
		b = 0.0
	case 3:
		r = 1.0
		g = 1.0 - s
		b = 0.0
	}

	return color.RGBA{
		R: uint8(255 * r),
		G: uint8(255 * g),
		B: uint8(255 * b),
		A: 0xff,
	}
}
