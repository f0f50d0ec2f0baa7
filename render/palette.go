package render

import (
	"fmt"
	"image/color"
)

// palette is the Tableau 10 scheme. Lines sharing a Group share a color.
var palette = []color.RGBA{
	{0x4e, 0x79, 0xa7, 0xff},
	{0xf2, 0x8e, 0x2b, 0xff},
	{0xe1, 0x57, 0x59, 0xff},
	{0x76, 0xb7, 0xb2, 0xff},
	{0x59, 0xa1, 0x4f, 0xff},
	{0xed, 0xc9, 0x48, 0xff},
	{0xb0, 0x7a, 0xa1, 0xff},
	{0xff, 0x9d, 0xa7, 0xff},
	{0x9c, 0x75, 0x5f, 0xff},
	{0xba, 0xb0, 0xac, 0xff},
}

func colorFor(group int) color.RGBA {
	if group < 0 {
		group = -group
	}
	return palette[group%len(palette)]
}

func hexFor(group int) string {
	c := colorFor(group)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
