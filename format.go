package wlshm

// PixelFormat identifies the pixel layout of a shared-memory buffer, using
// the wire values of the shm protocol.
type PixelFormat uint32

const (
	// FormatARGB8888 is 32-bit ARGB with a meaningful alpha channel.
	FormatARGB8888 PixelFormat = 0
	// FormatXRGB8888 is 32-bit RGB with the high byte ignored.
	FormatXRGB8888 PixelFormat = 1
)

// BytesPerPixel returns the per-pixel byte count for the format.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case FormatARGB8888, FormatXRGB8888:
		return 4
	default:
		return 4
	}
}

// String returns the format name for logging.
func (f PixelFormat) String() string {
	switch f {
	case FormatARGB8888:
		return "ARGB8888"
	case FormatXRGB8888:
		return "XRGB8888"
	default:
		return "Unknown"
	}
}
