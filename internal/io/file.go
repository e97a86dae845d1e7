package ioutils

import (
	"context"
	"crypto/sha1"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrChecksumMismatch is returned by PlaceStream when the written bytes do
// not match the expected digest.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// Digest is an expected content hash. The zero value disables verification.
type Digest struct {
	// Algorithm is "sha512" or "sha1".
	Algorithm string

	// Hex is the lower-case hex encoded digest.
	Hex string
}

// IsZero reports whether no digest is set.
func (d Digest) IsZero() bool {
	return d.Algorithm == "" || d.Hex == ""
}

func (d Digest) newHash() (hash.Hash, error) {
	switch strings.ToLower(d.Algorithm) {
	case "sha512":
		return sha512.New(), nil
	case "sha1":
		return sha1.New(), nil
	default:
		return nil, fmt.Errorf("unsupported digest algorithm %q", d.Algorithm)
	}
}

// Exists reports whether something exists at path.
//
// A missing path is not an error. Any other stat failure (permissions,
// I/O errors) is returned so callers do not mistake it for absence.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// PlaceStream copies src into a temporary file next to dst and renames it to
// dst once the copy (and digest check, if any) succeeded.
//
// Missing parent directories are created. On any failure the temporary file
// is removed and dst is left untouched, so a later run never sees a
// truncated file at dst.
//
// Returns the number of bytes written.
//
// Example:
//
//	n, err := PlaceStream(ctx, "mods/sodium.jar", body, Digest{Algorithm: "sha512", Hex: sum})
func PlaceStream(ctx context.Context, dst string, src io.Reader, want Digest) (int64, error) {
	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*.part")
	if err != nil {
		return 0, err
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	var w io.Writer = tmp
	var h hash.Hash
	if !want.IsZero() {
		h, err = want.newHash()
		if err != nil {
			return 0, err
		}
		w = io.MultiWriter(tmp, h)
	}

	n, err := io.Copy(w, contextReader{ctx: ctx, r: src})
	if err != nil {
		return n, err
	}
	if h != nil {
		got := hex.EncodeToString(h.Sum(nil))
		if !strings.EqualFold(got, want.Hex) {
			return n, fmt.Errorf("%w: %s got %s, want %s", ErrChecksumMismatch, want.Algorithm, got, want.Hex)
		}
	}
	if err := tmp.Close(); err != nil {
		return n, err
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		return n, err
	}
	committed = true
	return n, nil
}

// contextReader stops a copy once ctx is cancelled.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing. Parent directories are created.
//
// Example:
//
//	err := WriteFile(ctx, "reports/run.md", []byte("| query | outcome |\n"))
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("plugins/extra")
//	// Creates plugins and plugins/extra if needed
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
