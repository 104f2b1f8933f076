package shm

import "testing"

// TestCreateRoundTrip verifies that the mapping is writable and sized as
// requested.
func TestCreateRoundTrip(t *testing.T) {
	const size = 4096
	p, err := Create(size)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer p.Close()

	if got := p.Size(); got != size {
		t.Errorf("Size = %d, want %d", got, size)
	}
	if got := len(p.Data()); got != size {
		t.Errorf("len(Data) = %d, want %d", got, size)
	}
	if p.Fd() < 0 {
		t.Errorf("Fd = %d, want >= 0", p.Fd())
	}

	data := p.Data()
	data[0] = 0xAB
	data[size-1] = 0xCD
	if data[0] != 0xAB || data[size-1] != 0xCD {
		t.Error("mapping did not retain writes")
	}
}

// TestCreateInvalidSize verifies that non-positive sizes fail cleanly.
func TestCreateInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := Create(size); err == nil {
			t.Errorf("Create(%d) succeeded, want error", size)
		}
	}
}

// TestCloseIdempotent verifies that Close can be called more than once.
func TestCloseIdempotent(t *testing.T) {
	p, err := Create(64)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if p.Data() != nil {
		t.Error("Data not nil after Close")
	}
}
