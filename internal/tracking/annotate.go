package tracking

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	boxColor   = color.RGBA{G: 255, A: 255} // green bounding box
	labelColor = color.RGBA{B: 255, A: 255} // blue name label
)

const boxStroke = 2 // px

// toRGBA returns img as a mutable RGBA copy.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	dst := image.NewRGBA(img.Bounds())
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}

// annotate draws the bounding box and the recognized name onto frame.
func annotate(frame *image.RGBA, box image.Rectangle, name string) {
	drawRect(frame, box)
	drawLabel(frame, name, box.Min.X, box.Min.Y-4)
}

func drawRect(dst *image.RGBA, box image.Rectangle) {
	box = box.Intersect(dst.Bounds())
	for s := 0; s < boxStroke; s++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			dst.SetRGBA(x, box.Min.Y+s, boxColor)
			dst.SetRGBA(x, box.Max.Y-1-s, boxColor)
		}
		for y := box.Min.Y; y < box.Max.Y; y++ {
			dst.SetRGBA(box.Min.X+s, y, boxColor)
			dst.SetRGBA(box.Max.X-1-s, y, boxColor)
		}
	}
}

func drawLabel(dst *image.RGBA, text string, x, y int) {
	if y < dst.Bounds().Min.Y+basicfont.Face7x13.Height {
		y = dst.Bounds().Min.Y + basicfont.Face7x13.Height
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
