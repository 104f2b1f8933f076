package wlshm

import (
	"image"
	"log/slog"
	"slices"
)

// bufferPool partitions the resident buffers into three buckets. Every
// buffer the pool knows about is in exactly one of them:
//
//   - available: unattached, size-matching, ready for reuse (LIFO)
//   - inUse: handed to the manager as in-progress or front buffer
//   - pending: returned while still attached; waiting for the compositor
//     to release them
//
// All methods run under the surface manager's lock.
type bufferPool struct {
	format PixelFormat

	available []*Buffer
	inUse     []*Buffer
	pending   []*Buffer
}

// obtain returns a buffer for drawing at the given size, recycling the most
// recently freed buffer when one is available and allocating otherwise. The
// result is moved to the in-use bucket. Returns nil on allocation failure.
func (p *bufferPool) obtain(size image.Point) *Buffer {
	if n := len(p.available); n > 0 {
		buf := p.available[n-1]
		p.available = p.available[:n-1]
		p.inUse = append(p.inUse, buf)
		return buf
	}

	buf, err := newBuffer(size, p.format)
	if err != nil {
		Logger().Warn("wlshm: no buffer for this frame", slog.Any("error", err))
		return nil
	}
	p.inUse = append(p.inUse, buf)
	return buf
}

// release takes buf out of the in-use bucket. Attached buffers park in
// pending until the compositor lets go; unattached ones are recycled if
// they still match the current window size and destroyed otherwise.
func (p *bufferPool) release(buf *Buffer, currentSize image.Point) {
	if buf.IsAttached() {
		p.pending = append(p.pending, buf)
	} else if buf.SizeMatches(currentSize) {
		p.available = append(p.available, buf)
	} else {
		buf.destroy()
	}
	if i := slices.Index(p.inUse, buf); i >= 0 {
		p.inUse = slices.Delete(p.inUse, i, i+1)
	}
}

// collectPending reclaims pending buffers the compositor has released since
// the last scan. Must run before obtain so a just-released buffer is reused
// instead of forcing a fresh allocation.
func (p *bufferPool) collectPending(currentSize image.Point) {
	p.pending = slices.DeleteFunc(p.pending, func(buf *Buffer) bool {
		if buf.IsAttached() {
			return false
		}
		if buf.SizeMatches(currentSize) {
			p.available = append(p.available, buf)
		} else {
			buf.destroy()
		}
		return true
	})
}

// enforceLimit trims the available bucket down to maxAvailable entries,
// destroying the least recently used (front) entries first.
func (p *bufferPool) enforceLimit(maxAvailable int) {
	for len(p.available) > maxAvailable {
		p.available[0].destroy()
		p.available = slices.Delete(p.available, 0, 1)
	}

	if len(p.pending) >= maxAvailable {
		Logger().Warn("wlshm: pending buffers not being released; leaking?",
			slog.Int("pending", len(p.pending)))
	}
	if len(p.inUse) >= maxAvailable {
		Logger().Warn("wlshm: in-use buffers piling up; leaking?",
			slog.Int("inUse", len(p.inUse)))
	}
}

// incrementAges advances the age of every pooled buffer. Called once per
// successful commit.
func (p *bufferPool) incrementAges() {
	for _, buf := range p.inUse {
		buf.IncrementAge()
	}
	for _, buf := range p.pending {
		buf.IncrementAge()
	}
	for _, buf := range p.available {
		buf.IncrementAge()
	}
}

// clearAvailable destroys every available buffer. Used on resize, when all
// of them stopped matching the window size at once.
func (p *bufferPool) clearAvailable() {
	for _, buf := range p.available {
		buf.destroy()
	}
	p.available = p.available[:0]
}
