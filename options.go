package wlshm

// Option configures a SurfaceManager during creation.
//
// Example:
//
//	// Defaults: triple buffering, ARGB pixels.
//	sm := wlshm.NewSurfaceManager(win, remote)
//
//	// Double buffering with opaque pixels:
//	sm := wlshm.NewSurfaceManager(win, remote,
//	    wlshm.WithBackBufferDepth(2),
//	    wlshm.WithFormat(wlshm.FormatXRGB8888))
type Option func(*managerOptions)

// managerOptions holds optional configuration for SurfaceManager creation.
type managerOptions struct {
	backBufferDepth int
	minimalCopyAge  int
	format          PixelFormat
}

// defaultManagerOptions returns the default manager options.
func defaultManagerOptions() managerOptions {
	return managerOptions{
		backBufferDepth: 3,
		minimalCopyAge:  2,
		format:          FormatARGB8888,
	}
}

// WithBackBufferDepth sets how many spare buffers the pool may keep resident
// for reuse. Higher values trade memory for fewer allocations when the
// compositor is slow to release buffers. The default is 3 (triple
// buffering). Values below 1 are ignored.
func WithBackBufferDepth(n int) Option {
	return func(o *managerOptions) {
		if n >= 1 {
			o.backBufferDepth = n
		}
	}
}

// WithMinimalCopyAge sets the buffer age at which a recycled buffer is
// assumed to hold the frame before last, so that only the previous frame's
// damage needs copying forward. Any other age falls back to a conservative
// full-frame copy. The default of 2 matches the standard damage-tracking
// double-buffer invariant; this is a tuning choice tied to the buffering
// depth, not a correctness requirement.
func WithMinimalCopyAge(n int) Option {
	return func(o *managerOptions) {
		if n >= 1 {
			o.minimalCopyAge = n
		}
	}
}

// WithFormat sets the pixel format of all buffers the manager allocates.
// The default is FormatARGB8888.
func WithFormat(f PixelFormat) Option {
	return func(o *managerOptions) {
		o.format = f
	}
}
