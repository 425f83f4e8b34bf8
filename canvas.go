package vgpaint

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	_ "image/gif" // register decoder for NewCanvasFromData
)

// AlphaMode selects the alpha representation of a canvas pixel buffer.
type AlphaMode int

const (
	// AlphaPremultiplied stores color channels multiplied by alpha.
	// This is the fastest mode for compositing and the default.
	AlphaPremultiplied AlphaMode = iota
	// AlphaStraight stores color channels independent of alpha.
	AlphaStraight
)

// Canvas is a 32-bit RGBA pixel surface. Drawing goes through a
// Painter obtained from the Painter method; at most one painter may be
// active on a canvas at a time.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width, height int
	alpha         AlphaMode
	pix           []uint8 // RGBA order, width*height*4
	rast          Rasterizer
	painter       *Painter
}

func resolveConfig(opts []CanvasOption) (canvasConfig, error) {
	cfg := canvasConfig{alpha: AlphaPremultiplied}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rastMissing {
		return cfg, ErrNoRasterizer
	}
	if cfg.rasterizer == nil {
		cfg.rasterizer = DefaultRasterizer()
		if cfg.rasterizer == nil {
			return cfg, ErrNoRasterizer
		}
	}
	return cfg, nil
}

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(width, height int, opts ...CanvasOption) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}
	Logger().Debug("canvas created",
		"width", width, "height", height, "rasterizer", cfg.rasterizer.Name())
	return &Canvas{
		width:  width,
		height: height,
		alpha:  cfg.alpha,
		pix:    make([]uint8, width*height*4),
		rast:   cfg.rasterizer,
	}, nil
}

// NewCanvasFromImage creates a canvas holding a copy of the image.
func NewCanvasFromImage(img image.Image, opts ...CanvasOption) (*Canvas, error) {
	b := img.Bounds()
	c, err := NewCanvas(b.Dx(), b.Dy(), opts...)
	if err != nil {
		return nil, err
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, b16, a := img.At(x, y).RGBA()
			// RGBA() returns premultiplied 16-bit channels.
			c.pix[i] = uint8(r >> 8)
			c.pix[i+1] = uint8(g >> 8)
			c.pix[i+2] = uint8(b16 >> 8)
			c.pix[i+3] = uint8(a >> 8)
			i += 4
		}
	}
	if c.alpha == AlphaStraight {
		unpremultiplyBuffer(c.pix)
	}
	return c, nil
}

// NewCanvasFromData decodes an encoded image (PNG, JPEG or GIF) into a
// new canvas.
func NewCanvasFromData(data []byte, opts ...CanvasOption) (*Canvas, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("vgpaint: decode image: %w", err)
	}
	Logger().Debug("image decoded", "format", format)
	return NewCanvasFromImage(img, opts...)
}

// NewCanvasFromFile loads an encoded image file into a new canvas.
func NewCanvasFromFile(path string, opts ...CanvasOption) (*Canvas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vgpaint: read %s: %w", path, err)
	}
	return NewCanvasFromData(data, opts...)
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// AlphaMode returns the alpha representation of the pixel buffer.
func (c *Canvas) AlphaMode() AlphaMode { return c.alpha }

// RasterizerName returns the name of the rasterizer the canvas draws
// with.
func (c *Canvas) RasterizerName() string { return c.rast.Name() }

// Pixels returns the underlying pixel buffer in RGBA byte order,
// 4 bytes per pixel, rows top to bottom with no padding. The slice
// aliases canvas memory; writes to it are visible in the canvas.
func (c *Canvas) Pixels() []uint8 { return c.pix }

// Fill sets every pixel to the given color, replacing existing
// content.
func (c *Canvas) Fill(col RGBA) {
	var r, g, b, a uint8
	if c.alpha == AlphaPremultiplied {
		r, g, b, a = col.premul8()
	} else {
		r, g, b, a = col.straight8()
	}
	for i := 0; i < len(c.pix); i += 4 {
		c.pix[i] = r
		c.pix[i+1] = g
		c.pix[i+2] = b
		c.pix[i+3] = a
	}
}

// Clear resets every pixel to transparent black.
func (c *Canvas) Clear() {
	for i := range c.pix {
		c.pix[i] = 0
	}
}

// Clone returns a deep copy of the canvas. The clone has no active
// painter.
func (c *Canvas) Clone() *Canvas {
	pix := make([]uint8, len(c.pix))
	copy(pix, c.pix)
	return &Canvas{
		width:  c.width,
		height: c.height,
		alpha:  c.alpha,
		pix:    pix,
		rast:   c.rast,
	}
}

// CopyRegion extracts a rectangular region into a new canvas with the
// region's top-left corner at the origin. The result always uses
// straight alpha so the pixels can be consumed directly. The region
// must lie fully inside the canvas.
func (c *Canvas) CopyRegion(x, y, w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 || x < 0 || y < 0 || x+w > c.width || y+h > c.height {
		return nil, fmt.Errorf("%w: %d,%d %dx%d of %dx%d",
			ErrInvalidRegion, x, y, w, h, c.width, c.height)
	}
	out := &Canvas{
		width:  w,
		height: h,
		alpha:  AlphaStraight,
		pix:    make([]uint8, w*h*4),
		rast:   c.rast,
	}
	for row := 0; row < h; row++ {
		src := ((y+row)*c.width + x) * 4
		dst := row * w * 4
		copy(out.pix[dst:dst+w*4], c.pix[src:src+w*4])
	}
	if c.alpha == AlphaPremultiplied {
		unpremultiplyBuffer(out.pix)
	}
	return out, nil
}

// Image returns a copy of the canvas as a standard library image.
// The concrete type is *image.RGBA for premultiplied canvases and
// *image.NRGBA for straight-alpha canvases.
func (c *Canvas) Image() image.Image {
	r := image.Rect(0, 0, c.width, c.height)
	pix := make([]uint8, len(c.pix))
	copy(pix, c.pix)
	if c.alpha == AlphaPremultiplied {
		return &image.RGBA{Pix: pix, Stride: c.width * 4, Rect: r}
	}
	return &image.NRGBA{Pix: pix, Stride: c.width * 4, Rect: r}
}

// rgbaImage returns a premultiplied copy for use as a compositing
// source.
func (c *Canvas) rgbaImage() *image.RGBA {
	pix := make([]uint8, len(c.pix))
	copy(pix, c.pix)
	if c.alpha == AlphaStraight {
		premultiplyBuffer(pix)
	}
	return &image.RGBA{Pix: pix, Stride: c.width * 4, Rect: image.Rect(0, 0, c.width, c.height)}
}

// EncodePNG writes the canvas to w in PNG format.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.Image()); err != nil {
		return fmt.Errorf("vgpaint: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("vgpaint: create %s: %w", path, err)
	}
	defer f.Close()
	if err := c.EncodePNG(f); err != nil {
		return err
	}
	return f.Close()
}

// EncodeJPEG writes the canvas to w in JPEG format. Quality ranges
// from 1 to 100; alpha is dropped.
func (c *Canvas) EncodeJPEG(w io.Writer, quality int) error {
	if err := jpeg.Encode(w, c.Image(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("vgpaint: encode jpeg: %w", err)
	}
	return nil
}

// SaveJPEG writes the canvas to a JPEG file.
func (c *Canvas) SaveJPEG(path string, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("vgpaint: create %s: %w", path, err)
	}
	defer f.Close()
	if err := c.EncodeJPEG(f, quality); err != nil {
		return err
	}
	return f.Close()
}

// Painter starts a drawing session on the canvas. Only one painter may
// be active per canvas; ErrPainterActive is returned until the current
// painter's End is called.
func (c *Canvas) Painter() (*Painter, error) {
	if c.painter != nil {
		return nil, ErrPainterActive
	}
	p := newPainter(c)
	c.painter = p
	return p, nil
}

// premultiplyBuffer converts an RGBA buffer from straight to
// premultiplied alpha in place.
func premultiplyBuffer(pix []uint8) {
	for i := 0; i < len(pix); i += 4 {
		a := uint16(pix[i+3])
		if a == 255 {
			continue
		}
		if a == 0 {
			pix[i], pix[i+1], pix[i+2] = 0, 0, 0
			continue
		}
		pix[i] = uint8((uint16(pix[i])*a + 127) / 255)
		pix[i+1] = uint8((uint16(pix[i+1])*a + 127) / 255)
		pix[i+2] = uint8((uint16(pix[i+2])*a + 127) / 255)
	}
}

// unpremultiplyBuffer converts an RGBA buffer from premultiplied to
// straight alpha in place.
func unpremultiplyBuffer(pix []uint8) {
	for i := 0; i < len(pix); i += 4 {
		a := uint16(pix[i+3])
		if a == 255 {
			continue
		}
		if a == 0 {
			pix[i], pix[i+1], pix[i+2] = 0, 0, 0
			continue
		}
		pix[i] = unmul8(pix[i], a)
		pix[i+1] = unmul8(pix[i+1], a)
		pix[i+2] = unmul8(pix[i+2], a)
	}
}

func unmul8(c uint8, a uint16) uint8 {
	v := (uint16(c)*255 + a/2) / a
	if v > 255 {
		return 255
	}
	return uint8(v)
}
