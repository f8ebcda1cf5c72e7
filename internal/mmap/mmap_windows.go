//go:build windows

package mmap

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

func Map(fd *os.File, size int64) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}

	maxsizehi := uint32(size >> 32)
	maxsizelo := uint32(size & 0xffffffff)

	handle, err := windows.CreateFileMapping(windows.Handle(fd.Fd()), nil,
		windows.PAGE_READONLY, maxsizehi, maxsizelo, nil)
	if err != nil {
		return nil, os.NewSyscallError("CreateFileMapping", err)
	}

	addr, err := windows.MapViewOfFile(handle, windows.FILE_MAP_READ, 0, 0, uintptr(size))
	if addr == 0 {
		windows.CloseHandle(handle)
		return nil, os.NewSyscallError("MapViewOfFile", err)
	}

	if err := windows.CloseHandle(handle); err != nil {
		return nil, os.NewSyscallError("CloseHandle", err)
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), int(size)), nil
}

func Unmap(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return windows.UnmapViewOfFile(uintptr(unsafe.Pointer(&b[0])))
}

func Sequential(b []byte) error {
	// Do Nothing. We don't care about this setting on Windows
	return nil
}
