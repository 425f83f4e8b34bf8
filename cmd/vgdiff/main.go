// Command vgdiff renders the same scene with two rasterizer backends
// and reports the per-channel pixel differences between the results.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"github.com/vgpaint/vgpaint"
	_ "github.com/vgpaint/vgpaint/backend/fogleman"
	_ "github.com/vgpaint/vgpaint/backend/ximage"
)

func main() {
	var (
		width     = flag.Int("width", 400, "canvas width")
		height    = flag.Int("height", 400, "canvas height")
		a         = flag.String("a", "software", "first rasterizer")
		b         = flag.String("b", "ximage", "second rasterizer")
		output    = flag.String("output", "", "PNG output prefix (empty disables)")
		tolerance = flag.Int("tolerance", 5, "max channel difference before a pixel counts as divergent")
	)
	flag.Parse()

	log.Printf("available rasterizers: %s", strings.Join(vgpaint.AvailableRasterizers(), ", "))

	ca := render(*width, *height, *a)
	cb := render(*width, *height, *b)

	if *output != "" {
		save(ca, *output+"-"+*a+".png")
		save(cb, *output+"-"+*b+".png")
	}

	maxDiff, divergent := compare(ca, cb, uint8(*tolerance))
	total := *width * *height
	pct := 100 * float64(divergent) / float64(total)
	fmt.Printf("%s vs %s: max channel diff %d, %d/%d pixels (%.2f%%) beyond tolerance %d\n",
		*a, *b, maxDiff, divergent, total, pct, *tolerance)
	if pct > 5 {
		os.Exit(1)
	}
}

// render draws the comparison scene: overlapping fills, gradients, a
// dashed stroke, a clip and rotated text-free shapes; enough to
// exercise most of the paint pipeline.
func render(w, h int, rasterizer string) *vgpaint.Canvas {
	canvas, err := vgpaint.NewCanvas(w, h, vgpaint.WithRasterizer(rasterizer))
	if err != nil {
		log.Fatalf("create canvas with %q: %v", rasterizer, err)
	}
	p, err := canvas.Painter()
	if err != nil {
		log.Fatalf("painter: %v", err)
	}
	defer p.End()

	fw := float64(w)
	fh := float64(h)

	// Linear gradient background.
	grad := vgpaint.NewLinearGradient(0, 0, fw, fh)
	grad.AddColorStop(0, vgpaint.RGB(0.1, 0.2, 0.4))
	grad.AddColorStop(1, vgpaint.RGB(0.5, 0.4, 0.2))
	bg := vgpaint.NewBrush()
	bg.SetLinearGradient(grad)
	p.SetBrush(bg)
	p.DrawRect(0, 0, fw, fh)

	// Translucent overlapping circles.
	brush := vgpaint.NewBrush()
	for i, c := range []vgpaint.RGBA{
		{R: 1, G: 0.3, B: 0.3, A: 0.8},
		{R: 0.3, G: 1, B: 0.3, A: 0.8},
		{R: 0.3, G: 0.3, B: 1, A: 0.8},
	} {
		brush.SetColor(c)
		p.SetBrush(brush)
		p.DrawEllipse(fw*0.25+float64(i)*20, fh*0.25, 50, 50)
	}

	// Dashed rotated stroke.
	p.Save()
	p.Translate(fw*0.7, fh*0.3)
	p.Rotate(math.Pi / 6)
	pen := vgpaint.NewPen()
	pen.SetColor(vgpaint.White)
	pen.SetWidth(4)
	pen.SetDashArray([]float64{12, 6})
	pen.SetCap(vgpaint.LineCapRound)
	p.SetPen(pen)
	p.ResetBrush()
	p.DrawRect(-40, -40, 80, 80)
	p.Restore()

	// Clipped radial gradient.
	p.Save()
	p.SetClipRect(fw*0.1, fh*0.6, fw*0.8, fh*0.3)
	radial := vgpaint.NewRadialGradient(fw*0.5, fh*0.75, fh*0.25, fw*0.5, fh*0.75, 0)
	radial.AddColorStop(0, vgpaint.RGBA{R: 1, G: 1, B: 0.6, A: 1})
	radial.AddColorStop(1, vgpaint.RGBA{R: 1, G: 0.2, B: 0.2, A: 0})
	brush.SetRadialGradient(radial)
	p.ResetPen()
	p.SetBrush(brush)
	p.DrawRect(0, 0, fw, fh)
	p.Restore()

	return canvas
}

func compare(a, b *vgpaint.Canvas, tolerance uint8) (maxDiff uint8, divergent int) {
	pa := a.Pixels()
	pb := b.Pixels()
	for i := 0; i < len(pa); i += 4 {
		var worst uint8
		for c := 0; c < 4; c++ {
			d := pa[i+c] - pb[i+c]
			if pb[i+c] > pa[i+c] {
				d = pb[i+c] - pa[i+c]
			}
			if d > worst {
				worst = d
			}
		}
		if worst > maxDiff {
			maxDiff = worst
		}
		if worst > tolerance {
			divergent++
		}
	}
	return maxDiff, divergent
}

func save(c *vgpaint.Canvas, path string) {
	if err := c.SavePNG(path); err != nil {
		log.Fatalf("save %s: %v", path, err)
	}
	log.Printf("wrote %s", path)
}
