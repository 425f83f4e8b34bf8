package vgpaint

// canvasConfig collects the options applied at canvas construction.
type canvasConfig struct {
	alpha       AlphaMode
	rasterizer  Rasterizer
	rastMissing bool
}

// CanvasOption configures a canvas at construction time.
type CanvasOption func(*canvasConfig)

// WithAlphaMode selects the alpha representation of the canvas pixel
// buffer. The default is AlphaPremultiplied.
func WithAlphaMode(mode AlphaMode) CanvasOption {
	return func(c *canvasConfig) {
		c.alpha = mode
	}
}

// WithRasterizer selects a registered rasterizer by name. Canvas
// construction fails with ErrNoRasterizer if the name is unknown.
// The default is the highest-priority registered rasterizer.
func WithRasterizer(name string) CanvasOption {
	return func(c *canvasConfig) {
		c.rasterizer = GetRasterizer(name)
		c.rastMissing = c.rasterizer == nil
	}
}

// WithRasterizerInstance installs a specific rasterizer instance,
// bypassing the registry.
func WithRasterizerInstance(r Rasterizer) CanvasOption {
	return func(c *canvasConfig) {
		c.rasterizer = r
		c.rastMissing = r == nil
	}
}
