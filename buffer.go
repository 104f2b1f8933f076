package wlshm

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/wlshm/internal/shm"
)

// ErrAllocationFailed reports that shared memory for a buffer could not be
// allocated. It is non-fatal: the manager drops the frame and the caller
// retries on the next paint request.
var ErrAllocationFailed = errors.New("wlshm: buffer allocation failed")

// Age counters only ever need to distinguish a handful of small values, so
// incrementing saturates well before overflow matters.
const maxBufferAge = 64

// Buffer is one presentable surface: a shared-memory pixel store plus the
// protocol-visible handle the remote layer creates for it on first attach.
//
// A buffer is attached from the moment it is handed to the compositor until
// the protocol layer observes the release event and calls Release. While
// attached it must not be drawn into or destroyed.
type Buffer struct {
	pool   *shm.Pool
	size   image.Point
	format PixelFormat

	// handle is created lazily by the remote layer on first attach and
	// destroyed together with the buffer.
	handle BufferHandle

	// attached is flipped off by the protocol event goroutine, concurrently
	// with pool scans under the manager lock.
	attached atomic.Bool

	// age counts presentation cycles since this buffer last held validated
	// front-surface content. Mutated only during Commit, under the manager
	// lock.
	age int
}

// newBuffer allocates a buffer for the given pixel size and format.
// Allocation failure is non-fatal to the manager; it wraps
// ErrAllocationFailed.
func newBuffer(size image.Point, format PixelFormat) (*Buffer, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("wlshm: invalid buffer size %dx%d", size.X, size.Y)
	}
	pool, err := shm.Create(size.X * size.Y * format.BytesPerPixel())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocationFailed, err)
	}
	Logger().Debug("wlshm: buffer allocated",
		slog.Int("width", size.X), slog.Int("height", size.Y),
		slog.String("format", format.String()))
	return &Buffer{pool: pool, size: size, format: format}, nil
}

// Lock returns a CPU-writable draw target aliasing the buffer's shared
// memory. The target is valid until the buffer is attached or destroyed.
//
// Locking an attached buffer is a programming error and panics: the
// compositor may be reading the memory concurrently.
func (b *Buffer) Lock() *image.RGBA {
	if b.IsAttached() {
		panic("wlshm: Lock called on attached buffer")
	}
	return &image.RGBA{
		Pix:    b.pool.Data(),
		Stride: b.Stride(),
		Rect:   image.Rectangle{Max: b.size},
	}
}

// IsAttached reports whether the compositor currently holds the buffer.
func (b *Buffer) IsAttached() bool {
	return b.attached.Load()
}

// Release marks the buffer as no longer held by the compositor. The
// protocol layer calls this from its event goroutine when the buffer
// release event arrives.
func (b *Buffer) Release() {
	b.attached.Store(false)
}

// markAttached records the hand-off to the compositor.
func (b *Buffer) markAttached() {
	b.attached.Store(true)
}

// Size returns the buffer's pixel dimensions.
func (b *Buffer) Size() image.Point {
	return b.size
}

// SizeMatches reports whether the buffer has exactly the given dimensions.
func (b *Buffer) SizeMatches(size image.Point) bool {
	return b.size == size
}

// Format returns the buffer's pixel format.
func (b *Buffer) Format() PixelFormat {
	return b.format
}

// Stride returns the byte length of one pixel row.
func (b *Buffer) Stride() int {
	return b.size.X * b.format.BytesPerPixel()
}

// ShmFd returns the descriptor backing the buffer's shared memory, for the
// protocol layer to pass to the compositor when creating the handle.
func (b *Buffer) ShmFd() int {
	return b.pool.Fd()
}

// Bytes returns the raw mapped pixel data.
func (b *Buffer) Bytes() []byte {
	return b.pool.Data()
}

// Handle returns the protocol buffer handle, or nil if the buffer has never
// been attached.
func (b *Buffer) Handle() BufferHandle {
	return b.handle
}

// SetHandle caches the protocol handle created by the remote layer on first
// attach.
func (b *Buffer) SetHandle(h BufferHandle) {
	b.handle = h
}

// Age returns the number of commits since the buffer last held fresh
// front-surface content. Zero means just committed or unknown content.
func (b *Buffer) Age() int {
	return b.age
}

// IncrementAge advances the age counter, saturating.
func (b *Buffer) IncrementAge() {
	if b.age < maxBufferAge {
		b.age++
	}
}

// ResetAge marks the buffer as holding the freshest content. Called right
// after the buffer is committed.
func (b *Buffer) ResetAge() {
	b.age = 0
}

// destroy releases the buffer's shared memory and protocol handle.
// Destroying an attached buffer would hand freed memory to the compositor,
// so by construction only unattached buffers ever reach this point.
func (b *Buffer) destroy() {
	if b.IsAttached() {
		panic("wlshm: destroy called on attached buffer")
	}
	if b.handle != nil {
		b.handle.Destroy()
		b.handle = nil
	}
	if err := b.pool.Close(); err != nil {
		Logger().Warn("wlshm: releasing buffer memory failed", slog.Any("error", err))
	}
}
