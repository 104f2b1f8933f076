//go:build linux

package shm

import "golang.org/x/sys/unix"

// createFd returns a sealed-capable anonymous file of the given size.
func createFd(size int) (int, error) {
	fd, err := unix.MemfdCreate("wlshm-pool", unix.MFD_CLOEXEC|unix.MFD_ALLOW_SEALING)
	if err != nil {
		return -1, err
	}
	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		unix.Close(fd)
		return -1, err
	}
	return fd, nil
}
