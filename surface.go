package wlshm

import (
	"context"
	"image"
	"log/slog"
	"sync"

	xdraw "golang.org/x/image/draw"
)

// SurfaceManager implements the Lock/Commit contract consumed by the
// rasterizer for one window. It owns the in-progress and front buffer
// references, damage bookkeeping, resize handling, and the deferred-commit
// retry that runs when the remote surface is not yet ready for a frame.
//
// Lock and Commit are called in pairs by a single rasterizing goroutine.
// The deferred-commit callback may additionally run Commit from the
// protocol event goroutine, so all state is guarded by one mutex.
type SurfaceManager struct {
	mu     sync.Mutex
	win    Window
	remote RemoteSurface
	opts   managerOptions
	pool   bufferPool

	windowSize       image.Point
	inProgressBuffer *Buffer
	frontBuffer      *Buffer

	// frontBufferInvalidRegion is the damage of the most recent commit,
	// kept to compute the minimal copy-forward on the next frame.
	frontBufferInvalidRegion Region

	// frameInProcess is true between Lock and Commit. It also cancels a
	// stale deferred-commit callback: if a new frame started before the
	// callback fired, re-committing the old region would present stale data.
	frameInProcess bool

	// callbackRequested is true while a deferred-commit callback is
	// registered with the remote surface and has not fired yet.
	callbackRequested bool
}

// NewSurfaceManager creates a manager presenting win through remote.
func NewSurfaceManager(win Window, remote RemoteSurface, opts ...Option) *SurfaceManager {
	o := defaultManagerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &SurfaceManager{
		win:    win,
		remote: remote,
		opts:   o,
		pool:   bufferPool{format: o.format},
	}
}

// maybeUpdateWindowSize polls the window for its current client size and
// reports whether it changed since the last frame.
func (sm *SurfaceManager) maybeUpdateWindowSize() bool {
	newSize := sm.win.ClientSize()
	if sm.windowSize != newSize {
		sm.windowSize = newSize
		return true
	}
	return false
}

// Lock begins a frame and returns a draw target for the caller to
// rasterize into. invalid is the region the caller is about to repaint.
//
// Lock returns nil when the window is not drawable or no buffer could be
// obtained; the caller must skip painting this frame and retry on the next
// paint request. Lock must not be called again before Commit.
func (sm *SurfaceManager) Lock(invalid Region) *image.RGBA {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if log := Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		b := invalid.Bounds()
		log.Debug("wlshm: lock",
			slog.Any("damageBounds", b), slog.Int("rects", invalid.NumRects()))
	}

	if !sm.win.Drawable() {
		return nil
	}
	sm.frameInProcess = true

	sm.pool.collectPending(sm.windowSize)

	if sm.maybeUpdateWindowSize() {
		Logger().Info("wlshm: window resized",
			slog.Int("width", sm.windowSize.X), slog.Int("height", sm.windowSize.Y))
		// Every old-size buffer is useless now. Returning them to the pool
		// with the new size discards the unattached ones outright; the
		// available bucket goes wholesale.
		if sm.inProgressBuffer != nil {
			sm.pool.release(sm.inProgressBuffer, sm.windowSize)
			sm.inProgressBuffer = nil
		}
		if sm.frontBuffer != nil {
			sm.pool.release(sm.frontBuffer, sm.windowSize)
			sm.frontBuffer = nil
		}
		sm.pool.clearAvailable()
	}

	if sm.inProgressBuffer == nil {
		if sm.frontBuffer != nil && !sm.frontBuffer.IsAttached() {
			// Cheapest path: the compositor already released the last
			// committed buffer, so draw straight into it.
			sm.inProgressBuffer = sm.frontBuffer
		} else {
			sm.inProgressBuffer = sm.pool.obtain(sm.windowSize)
			if sm.inProgressBuffer == nil {
				return nil
			}
			if sm.frontBuffer != nil {
				sm.handlePartialUpdate(invalid)
				sm.pool.release(sm.frontBuffer, sm.windowSize)
			}
		}
		sm.frontBuffer = nil
		sm.frontBufferInvalidRegion = Region{}
	}

	return sm.inProgressBuffer.Lock()
}

// copyForwardRegion computes the part of the previous frame that is still
// valid and must be carried into a recycled buffer before the caller
// repaints invalid. A buffer of exactly minimalCopyAge holds the frame
// before last, so only the previous commit's damage outside the new damage
// is missing; any other age means the content generation is unknown (pool
// churn, post-resize reuse) and the whole front area minus the new damage
// is copied.
func copyForwardRegion(frontInvalid, invalid Region, frontSize image.Point, bufferAge, minimalCopyAge int) Region {
	if bufferAge == minimalCopyAge {
		return frontInvalid.Sub(invalid)
	}
	return SizeRegion(frontSize).Sub(invalid)
}

// handlePartialUpdate copies still-valid pixels from the front buffer into
// the freshly obtained in-progress buffer. The front buffer may still be
// attached; the compositor only reads it, so copying out is safe.
func (sm *SurfaceManager) handlePartialUpdate(invalid Region) {
	copyRegion := copyForwardRegion(
		sm.frontBufferInvalidRegion, invalid, sm.frontBuffer.Size(),
		sm.inProgressBuffer.Age(), sm.opts.minimalCopyAge)
	if copyRegion.Empty() {
		return
	}

	src := &image.RGBA{
		Pix:    sm.frontBuffer.Bytes(),
		Stride: sm.frontBuffer.Stride(),
		Rect:   image.Rectangle{Max: sm.frontBuffer.Size()},
	}
	dst := sm.inProgressBuffer.Lock()
	for _, r := range copyRegion.Rects() {
		xdraw.Copy(dst, r.Min, src, r, xdraw.Src, nil)
	}
}

// Commit ends the frame begun by Lock and presents the in-progress buffer.
// invalid is the region the caller actually repainted.
//
// If the remote surface is not mapped yet, the frame is queued: a one-shot
// ready callback re-runs the commit with the same region, unless a newer
// frame started in the meantime. Commit after a nil Lock is a no-op.
func (sm *SurfaceManager) Commit(invalid Region) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.commitLocked(invalid)
}

func (sm *SurfaceManager) commitLocked(invalid Region) {
	if log := Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("wlshm: commit",
			slog.Any("damageBounds", invalid.Bounds()),
			slog.Int("width", sm.windowSize.X), slog.Int("height", sm.windowSize.Y))
	}

	if sm.inProgressBuffer == nil {
		// Invisible window or dropped frame.
		return
	}
	sm.frameInProcess = false

	remote := sm.remote.Lock()
	defer remote.Unlock()

	if !remote.IsMapped() {
		Logger().Debug("wlshm: frame queued; surface not mapped yet")
		if !sm.callbackRequested {
			region := invalid
			remote.AddReadyCallback(func() {
				sm.mu.Lock()
				defer sm.mu.Unlock()
				if !sm.frameInProcess {
					sm.commitLocked(region)
				}
				sm.callbackRequested = false
			})
			sm.callbackRequested = true
		}
		return
	}

	remote.InvalidateRegion(invalid)
	sm.inProgressBuffer.markAttached()
	remote.Attach(sm.inProgressBuffer)
	remote.Commit(true, true)

	sm.inProgressBuffer.ResetAge()
	sm.frontBuffer = sm.inProgressBuffer
	sm.frontBufferInvalidRegion = invalid
	sm.inProgressBuffer = nil

	sm.pool.enforceLimit(sm.opts.backBufferDepth)
	sm.pool.incrementAges()
}
