//go:build unix && !linux

package shm

import (
	"os"

	"golang.org/x/sys/unix"
)

// createFd returns an unlinked temp file of the given size. Platforms
// without memfd_create still share memory through an ordinary descriptor;
// unlinking keeps the file anonymous.
func createFd(size int) (int, error) {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	f, err := os.CreateTemp(dir, "wlshm-pool-*")
	if err != nil {
		return -1, err
	}
	name := f.Name()
	fd, err := unix.Dup(int(f.Fd()))
	f.Close()
	os.Remove(name)
	if err != nil {
		return -1, err
	}
	unix.CloseOnExec(fd)
	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		unix.Close(fd)
		return -1, err
	}
	return fd, nil
}
