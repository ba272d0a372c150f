package fov

import (
	"fmt"
	"math"
)

// Hue range of the score scale: a clear view is green and a blocked one red.
const (
	ClearHue   = 140
	BlockedHue = 0
)

// Fixed saturation and lightness of every score color, in percent.
const (
	Saturation = 70
	Lightness  = 45
)

// HSL is a color in the hue, saturation, lightness space.
type HSL struct {
	Hue        int // degrees
	Saturation int // percent
	Lightness  int // percent
}

// Color maps a score to its color on the legend's scale, linearly
// interpolating the hue between BlockedHue and ClearHue.
func Color(score float64) HSL {
	return HSL{
		Hue:        int(math.Round(score * ClearHue)),
		Saturation: Saturation,
		Lightness:  Lightness,
	}
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.Hue, c.Saturation, c.Lightness)
}

// RGB converts the color to its red, green, and blue components.
func (c HSL) RGB() (r, g, b uint8) {
	h := math.Mod(float64(c.Hue), 360) / 360
	if h < 0 {
		h++
	}

	s := float64(c.Saturation) / 100
	l := float64(c.Lightness) / 100

	if s == 0 {
		v := uint8(math.Round(l * 255))
		return v, v, v
	}

	q := l * (1 + s)
	if l >= 0.5 {
		q = l + s - l*s
	}
	p := 2*l - q

	channel := func(t float64) uint8 {
		switch {
		case t < 0:
			t++
		case t > 1:
			t--
		}

		var v float64
		switch {
		case t < 1.0/6:
			v = p + (q-p)*6*t
		case t < 1.0/2:
			v = q
		case t < 2.0/3:
			v = p + (q-p)*(2.0/3-t)*6
		default:
			v = p
		}

		return uint8(math.Round(v * 255))
	}

	return channel(h + 1.0/3), channel(h), channel(h - 1.0/3)
}

// Hex returns the color as a #rrggbb string.
func (c HSL) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
