// Package vgpaint is a backend-agnostic 2D vector drawing library.
//
// It exposes the drawing protocol used by vector-document renderers:
// canvases (offscreen RGBA pixel buffers), painters (stateful drawing
// contexts), paths, pens, brushes, gradients and affine transforms.
// Rasterization is delegated to interchangeable backends that all
// satisfy the same coverage contract, so the visual result of a
// command sequence is backend-independent within a small tolerance.
//
// A minimal session:
//
//	canvas, err := vgpaint.NewCanvas(200, 200)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, err := canvas.Painter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	brush := vgpaint.NewBrush()
//	brush.SetColor(vgpaint.RGB(1, 0, 0))
//	p.SetBrush(brush)
//	p.DrawRect(20, 20, 100, 100)
//	p.End()
//	_ = canvas.SavePNG("out.png")
//
// All painter operations follow a "painter never fails" contract: only
// constructors return errors. An operation that cannot be honored
// (non-invertible transform, empty clip, zero-size geometry) degrades
// to a no-op or an identity fallback instead of failing.
//
// Concurrency: a Canvas and its Painter are not safe for concurrent
// use. Hand a Canvas to another goroutine only after Painter.End.
package vgpaint
