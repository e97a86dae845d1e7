// Package ioutils provides file system utilities.
//
// This package contains functions for:
//   - Existence checks that distinguish "missing" from "unreadable"
//   - Atomic placement of downloaded streams with digest verification
//   - File writing and directory creation
//   - A cross-process run lock
//
// # Placing Downloads
//
//	n, err := ioutils.PlaceStream(ctx, "plugins/Chunky.jar", body, ioutils.Digest{})
//	if errors.Is(err, ioutils.ErrChecksumMismatch) {
//	    // nothing was written to plugins/Chunky.jar
//	}
//
// # Run Lock
//
//	lock, err := ioutils.AcquireRunLock(".modrinth-dl.lock")
//	if err != nil {
//	    return err
//	}
//	defer lock.Release()
package ioutils
