package vgpaint

import "sync"

// Rasterizer converts filled polygons into a per-pixel coverage mask.
//
// This is the entire backend contract: transformation, curve
// flattening, stroke expansion, brush shading, clipping and
// compositing are shared code, so two rasterizers that produce the
// same coverage produce the same image. Polygons are in device
// coordinates and are closed implicitly.
//
// The returned mask holds one byte per pixel in row-major order,
// width*height long, 0 for uncovered and 255 for fully covered. With
// antialias disabled every byte must be 0 or 255.
type Rasterizer interface {
	// Name returns the registry name of this rasterizer.
	Name() string

	// FillCoverage rasterizes the polygons with the given fill rule.
	FillCoverage(polys [][]Point, width, height int, rule FillRule, antialias bool) []uint8
}

// RasterizerFactory creates a new rasterizer instance.
type RasterizerFactory func() Rasterizer

// Registry names of the rasterizers this module and its backend
// packages provide.
const (
	RasterizerSoftware = "software"
	RasterizerXImage   = "ximage"
	RasterizerFogleman = "fogleman"
)

var (
	registryMu  sync.RWMutex
	rasterizers = make(map[string]RasterizerFactory)
	// Priority order for default selection (first registered wins).
	rasterizerPriority = []string{RasterizerSoftware, RasterizerXImage, RasterizerFogleman}
)

// RegisterRasterizer registers a rasterizer factory under the given
// name, replacing any previous registration. Backend packages call
// this from init().
func RegisterRasterizer(name string, factory RasterizerFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	rasterizers[name] = factory
}

// UnregisterRasterizer removes a rasterizer from the registry.
// This is useful for testing.
func UnregisterRasterizer(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(rasterizers, name)
}

// AvailableRasterizers returns the registered rasterizer names.
func AvailableRasterizers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(rasterizers))
	for name := range rasterizers {
		names = append(names, name)
	}
	return names
}

// GetRasterizer returns a rasterizer instance by name, or nil if the
// name is not registered.
func GetRasterizer(name string) Rasterizer {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := rasterizers[name]
	if !ok {
		return nil
	}
	return factory()
}

// DefaultRasterizer returns the best available rasterizer based on
// priority, or nil if none are registered.
func DefaultRasterizer() Rasterizer {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range rasterizerPriority {
		if factory, ok := rasterizers[name]; ok {
			if r := factory(); r != nil {
				return r
			}
		}
	}
	for _, factory := range rasterizers {
		if r := factory(); r != nil {
			return r
		}
	}
	return nil
}
