package qedplot

import (
	"image/color"
	"math"
)

//hsv2rgb converts hue (0-360), saturation and value (both 0-1) to 8-bit
//RGB channels.
func hsv2rgb(h, s, v float64) (uint8, uint8, uint8) {
	if s == 0 {
		c := uint8(255 * v)
		return c, c, c
	}
	h /= 60
	f := h - math.Floor(h)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float64
	switch int(math.Floor(h)) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return uint8(255 * r), uint8(255 * g), uint8(255 * b)
}

//lineColor spreads the lines of one plot over the hue circle, jumping over
//the pale yellows that read poorly on a white background.
func lineColor(key, steps int) color.RGBA {
	h := float64(key)*260.0/float64(steps) + 20.0
	if h < 55 {
		h -= 20.0
	} else {
		h += 20.0
	}
	r, g, b := hsv2rgb(h, 1, 1)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
