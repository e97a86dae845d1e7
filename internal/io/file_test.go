package ioutils

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.jar")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	ok, err := Exists(path)
	if err != nil || !ok {
		t.Errorf("Exists(present) = (%v, %v), want (true, nil)", ok, err)
	}
	ok, err = Exists(filepath.Join(dir, "missing.jar"))
	if err != nil || ok {
		t.Errorf("Exists(missing) = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestPlaceStream(t *testing.T) {
	content := "plugin bytes"
	sum := sha512.Sum512([]byte(content))
	good := Digest{Algorithm: "sha512", Hex: hex.EncodeToString(sum[:])}
	bad := Digest{Algorithm: "sha512", Hex: strings.Repeat("0", 128)}

	tests := []struct {
		name    string
		digest  Digest
		wantErr error
	}{
		{"no digest", Digest{}, nil},
		{"matching digest", good, nil},
		{"mismatching digest", bad, ErrChecksumMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			dst := filepath.Join(dir, "plugins", "extra", "file.jar")

			n, err := PlaceStream(context.Background(), dst, strings.NewReader(content), tt.digest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				if ok, _ := Exists(dst); ok {
					t.Error("destination must not exist after a failed placement")
				}
				assertNoPartials(t, filepath.Dir(dst))
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n != int64(len(content)) {
				t.Errorf("n = %d, want %d", n, len(content))
			}
			data, err := os.ReadFile(dst)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != content {
				t.Errorf("content = %q, want %q", data, content)
			}
			assertNoPartials(t, filepath.Dir(dst))
		})
	}
}

func TestPlaceStream_Cancelled(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "mods", "file.jar")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := PlaceStream(ctx, dst, strings.NewReader("data"), Digest{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if ok, _ := Exists(dst); ok {
		t.Error("destination must not exist after cancellation")
	}
	assertNoPartials(t, filepath.Dir(dst))
}

func TestAcquireRunLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".modrinth-dl.lock")

	first, err := AcquireRunLock(path)
	if err != nil {
		t.Fatalf("first lock: %v", err)
	}

	if _, err := AcquireRunLock(path); !errors.Is(err, ErrLocked) {
		t.Errorf("second lock err = %v, want ErrLocked", err)
	}

	if err := first.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}

	again, err := AcquireRunLock(path)
	if err != nil {
		t.Fatalf("lock after release: %v", err)
	}
	again.Release()

	var nilLock *RunLock
	if err := nilLock.Release(); err != nil {
		t.Errorf("nil Release() = %v", err)
	}
}

func assertNoPartials(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".part") {
			t.Errorf("leftover partial file %s", e.Name())
		}
	}
}
