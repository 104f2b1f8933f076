// Package wlshm manages multi-buffered shared-memory presentation surfaces
// for a Wayland-style compositor.
//
// # Overview
//
// wlshm sits between a software rasterizer that draws into CPU-visible
// memory and a remote compositor process that asynchronously consumes the
// resulting buffers. It owns buffer lifecycle and presentation timing only:
// window creation, event dispatch, and the raster algorithms themselves are
// the caller's business.
//
// # Quick Start
//
//	sm := wlshm.NewSurfaceManager(win, remote)
//
//	// Each frame:
//	dt := sm.Lock(damage)
//	if dt == nil {
//	    return // invisible window or no buffer this frame; retry next paint
//	}
//	paint(dt) // caller-supplied rasterization into the draw target
//	sm.Commit(damage)
//
// # Architecture
//
// The package is organized into three layers, leaves first:
//
//   - internal/shm: one anonymous process-shared memory mapping per buffer,
//     created with memfd and mmap.
//   - Buffer: one presentable surface. Wraps a shm pool, the protocol-visible
//     buffer handle, an attached flag, and an age counter (frames since the
//     buffer last held fresh front-surface content).
//   - SurfaceManager: the Lock/Commit contract. Obtains buffers from an
//     internal pool that partitions them into available, in-use, and
//     pending-release sets, copies still-valid pixels forward from the
//     previous frame, and retries commits that arrive before the remote
//     surface is mapped.
//
// A committed buffer stays attached to the compositor until the protocol
// layer observes the corresponding release event and calls [Buffer.Release];
// until then the buffer must not be drawn into, and the pool parks it in the
// pending-release set.
//
// # Buffer age and partial presents
//
// Every commit advances the age of every pooled buffer and resets the
// committed buffer's age to zero. When the manager hands out a recycled
// buffer whose age equals the configured minimal-copy age (see
// [WithMinimalCopyAge]), only the previous frame's damage minus the new
// damage needs to be copied forward; any other age falls back to copying the
// whole previous frame minus the new damage.
//
// # Concurrency
//
// Lock and Commit are called by a single rasterizing goroutine, but the
// remote surface's ready callback may invoke the deferred commit path from
// the protocol event goroutine, so all manager state is guarded by one
// mutex. Attach and commit are asynchronous protocol messages; nothing
// blocks on the compositor while the lock is held.
//
// # Logging
//
// wlshm produces no log output by default. Call [SetLogger] to enable
// per-frame diagnostics.
package wlshm
