// Package shm provides anonymous, process-shared memory mappings used as
// pixel storage for compositor-visible buffers. Each Pool owns exactly one
// file descriptor and one mapping; the descriptor is what gets handed to the
// protocol layer, the mapping is what the rasterizer writes into.
package shm

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Pool is a single shared-memory mapping. It is not safe for concurrent
// Close; callers own serialization.
type Pool struct {
	fd   int
	size int
	data []byte
}

// Create allocates an anonymous, process-shared memory region of size bytes.
func Create(size int) (*Pool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("shm: invalid pool size %d", size)
	}
	fd, err := createFd(size)
	if err != nil {
		return nil, fmt.Errorf("shm: create backing fd: %w", err)
	}
	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("shm: mmap %d bytes: %w", size, err)
	}
	return &Pool{fd: fd, size: size, data: data}, nil
}

// Data returns the mapped bytes. Valid until Close.
func (p *Pool) Data() []byte {
	return p.data
}

// Fd returns the backing file descriptor, for handing to the protocol layer.
func (p *Pool) Fd() int {
	return p.fd
}

// Size returns the mapping size in bytes.
func (p *Pool) Size() int {
	return p.size
}

// Close unmaps the region and releases the descriptor. Safe to call more
// than once; only the first call does work.
func (p *Pool) Close() error {
	var err error
	if p.data != nil {
		err = unix.Munmap(p.data)
		p.data = nil
	}
	if p.fd >= 0 {
		if cerr := unix.Close(p.fd); err == nil {
			err = cerr
		}
		p.fd = -1
	}
	return err
}
