package fileutil

import (
	"errors"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Rename moves src to dst, falling back to copy-and-remove when the rename
// crosses filesystem boundaries.
func Rename(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && errors.Is(linkErr.Err, unix.EXDEV) {
		if copyErr := CopyFile(src, dst); copyErr != nil {
			return copyErr
		}
		return os.Remove(src)
	}
	return err
}

// CopyFile streams src to dst with default permissions (0o644).
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
