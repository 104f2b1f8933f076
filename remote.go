package wlshm

import "image"

// Window is the manager's view of the window being presented. ClientSize is
// polled once per Lock to detect resizes.
type Window interface {
	// ClientSize returns the current target dimensions in pixels.
	ClientSize() image.Point

	// Drawable reports whether the window can be painted at all. Invisible
	// windows make Lock a no-op frame.
	Drawable() bool
}

// BufferHandle is the protocol-visible buffer object created by the remote
// layer the first time a Buffer is attached. The manager destroys it
// together with the Buffer.
type BufferHandle interface {
	Destroy()
}

// RemoteSurface is the protocol-side surface that consumes committed
// buffers. Implementations are owned by the protocol layer; the manager
// only ever talks to it while holding the lock returned by Lock.
type RemoteSurface interface {
	// Lock acquires the surface for an attach+commit sequence and returns
	// the held lock. Acquisition always succeeds; whether the surface can
	// accept a frame is reported by the lock's IsMapped.
	Lock() RemoteSurfaceLock
}

// RemoteSurfaceLock is a held remote-surface lock. All methods may only be
// called before Unlock. Attach and Commit are asynchronous protocol
// messages and must not block on the compositor.
type RemoteSurfaceLock interface {
	// IsMapped reports whether the surface is ready to accept a frame.
	IsMapped() bool

	// InvalidateRegion merges region into the surface's accumulated damage.
	InvalidateRegion(region Region)

	// Attach hands buf to the compositor. The protocol layer creates the
	// buffer's handle on first attach (see Buffer.Handle) and must call
	// Buffer.Release once the compositor releases it.
	Attach(buf *Buffer)

	// Commit presents the attached buffer. With forceCommit and forceFlush
	// set, the attach+commit pair reaches the compositor atomically rather
	// than as a torn update.
	Commit(forceCommit, forceFlush bool)

	// AddReadyCallback registers fn to run exactly once, off the calling
	// goroutine, when the surface becomes mapped.
	AddReadyCallback(fn func())

	// Unlock releases the surface lock.
	Unlock()
}
