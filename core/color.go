package core

import "image/color"

// Color is one of the eight cell colors. The values form a cycle used by the
// line clear wave.
type Color uint8

const (
	Black Color = iota
	Green
	Yellow
	Red
	Blue
	Pink
	White
	Aqua
)

// NumColors is the length of the color cycle.
const NumColors = 8

var colorNames = [NumColors]string{"black", "green", "yellow", "red", "blue", "pink", "white", "aqua"}

var colorValues = [NumColors]color.RGBA{
	Black:  {R: 0, G: 0, B: 0, A: 255},
	Green:  {R: 0, G: 255, B: 34, A: 255},
	Yellow: {R: 255, G: 255, B: 0, A: 255},
	Red:    {R: 255, G: 0, B: 0, A: 255},
	Blue:   {R: 0, G: 0, B: 255, A: 255},
	Pink:   {R: 255, G: 0, B: 255, A: 255},
	White:  {R: 255, G: 255, B: 255, A: 255},
	Aqua:   {R: 0, G: 173, B: 254, A: 255},
}

// ColorAt returns the color following position i of the cycle.
func ColorAt(i int) Color {
	return Color((i%NumColors + NumColors + 1) % NumColors)
}

// Next advances c one step around the cycle.
func (c Color) Next() Color {
	return ColorAt(int(c))
}

// RGBA is the on-screen value of c.
func (c Color) RGBA() color.RGBA {
	return colorValues[c%NumColors]
}

func (c Color) String() string {
	return colorNames[c%NumColors]
}
