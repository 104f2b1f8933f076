package wlshm

import "testing"

// TestDefaultOptions verifies the triple-buffering defaults.
func TestDefaultOptions(t *testing.T) {
	o := defaultManagerOptions()
	if o.backBufferDepth != 3 {
		t.Errorf("backBufferDepth = %d, want 3", o.backBufferDepth)
	}
	if o.minimalCopyAge != 2 {
		t.Errorf("minimalCopyAge = %d, want 2", o.minimalCopyAge)
	}
	if o.format != FormatARGB8888 {
		t.Errorf("format = %v, want ARGB8888", o.format)
	}
}

// TestOptions verifies that each option lands in the manager configuration.
func TestOptions(t *testing.T) {
	o := defaultManagerOptions()
	for _, opt := range []Option{
		WithBackBufferDepth(2),
		WithMinimalCopyAge(1),
		WithFormat(FormatXRGB8888),
	} {
		opt(&o)
	}

	if o.backBufferDepth != 2 {
		t.Errorf("backBufferDepth = %d, want 2", o.backBufferDepth)
	}
	if o.minimalCopyAge != 1 {
		t.Errorf("minimalCopyAge = %d, want 1", o.minimalCopyAge)
	}
	if o.format != FormatXRGB8888 {
		t.Errorf("format = %v, want XRGB8888", o.format)
	}
}

// TestOptions_InvalidValuesIgnored verifies that nonsense depths and ages
// keep the defaults.
func TestOptions_InvalidValuesIgnored(t *testing.T) {
	o := defaultManagerOptions()
	WithBackBufferDepth(0)(&o)
	WithMinimalCopyAge(-1)(&o)

	if o.backBufferDepth != 3 {
		t.Errorf("backBufferDepth = %d, want default 3", o.backBufferDepth)
	}
	if o.minimalCopyAge != 2 {
		t.Errorf("minimalCopyAge = %d, want default 2", o.minimalCopyAge)
	}
}
