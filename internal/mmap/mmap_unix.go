//go:build !windows

package mmap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Map maps size bytes of fd read-only, starting at the beginning of the file.
func Map(fd *os.File, size int64) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	if int64(int(size)) != size {
		return nil, fmt.Errorf("mmap: %s is too large to map", fd.Name())
	}
	data, err := unix.Mmap(int(fd.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, os.NewSyscallError("mmap", err)
	}
	return data, nil
}

// Unmap releases a mapping returned by Map.
func Unmap(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Munmap(b)
}

// Sequential tells the kernel the mapping is scanned front to back.
func Sequential(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Madvise(b, unix.MADV_SEQUENTIAL)
}
