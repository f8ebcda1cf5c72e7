package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"

	"github.com/msnoigrs/dicsort/internal/mmap"
)

// StdStream names stdin or stdout in place of a file path.
const StdStream = "-"

// openInput returns a seekable view of path. Stdin is read into memory
// since the sizing passes rewind the stream. With useMmap a regular file
// is mapped instead of read through the page cache.
func openInput(path string, stdin io.Reader, useMmap bool, logger *slog.Logger) (io.ReadSeeker, func() error, error) {
	if path == StdStream {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, nil, WrapExitError(ExitStreamUnavailable, "failed to read stdin", err)
		}
		return bytes.NewReader(b), func() error { return nil }, nil
	}

	fd, err := os.Open(path)
	if err != nil {
		return nil, nil, WrapExitError(ExitStreamUnavailable, "failed to open input", err)
	}
	if !useMmap {
		return fd, fd.Close, nil
	}

	fi, err := fd.Stat()
	if err != nil {
		_ = fd.Close()
		return nil, nil, WrapExitError(ExitStreamUnavailable, "failed to stat input", err)
	}
	if !fi.Mode().IsRegular() {
		logger.Debug("input is not a regular file, reading it directly", "path", path)
		return fd, fd.Close, nil
	}
	b, err := mmap.Map(fd, fi.Size())
	if err != nil {
		logger.Warn("mmap failed, reading input directly", "path", path, "error", err)
		return fd, fd.Close, nil
	}
	if err := mmap.Sequential(b); err != nil {
		logger.Debug("madvise failed", "error", err)
	}
	closer := func() error {
		uerr := mmap.Unmap(b)
		cerr := fd.Close()
		if uerr != nil {
			return uerr
		}
		return cerr
	}
	return bytes.NewReader(b), closer, nil
}
