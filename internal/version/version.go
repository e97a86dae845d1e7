package version

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Compare orders two dot-separated version strings and returns -1, 0 or 1.
//
// Each string is split on "." and compared component by component as
// integers. A component that is not a non-negative integer counts as 0, one
// too large for uint64 counts as the largest value, and
// missing trailing components are padded with 0, so "1.21" and "1.21.0"
// compare equal. The result is a total order over all strings.
//
// Example:
//
//	Compare("1.20.4", "1.20.10") // -1
//	Compare("1.21", "1.21.0")    // 0
//	Compare("1.21.1", "1.21")    // 1
func Compare(a, b string) int {
	pa := strings.Split(a, ".")
	pb := strings.Split(b, ".")
	n := max(len(pa), len(pb))
	for i := 0; i < n; i++ {
		na := component(pa, i)
		nb := component(pb, i)
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
	}
	return 0
}

// Less reports whether a orders strictly before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Max returns the greatest version in versions. When several entries compare
// equal the first one wins. The boolean is false for an empty slice.
func Max(versions []string) (string, bool) {
	if len(versions) == 0 {
		return "", false
	}
	best := versions[0]
	for _, v := range versions[1:] {
		if Compare(v, best) > 0 {
			best = v
		}
	}
	return best, true
}

// IsRelease reports whether v looks like a regular release version such as
// "1.20.4" rather than a snapshot ("24w14a") or pre-release ("1.21-pre1").
// Ordering does not depend on it; callers use it to warn about targets that
// are unlikely to appear in release listings.
func IsRelease(v string) bool {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return false
	}
	return sv.Prerelease() == ""
}

func component(parts []string, i int) uint64 {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.ParseUint(parts[i], 10, 64)
	switch {
	case err == nil:
		return n
	case errors.Is(err, strconv.ErrRange):
		return math.MaxUint64
	default:
		return 0
	}
}
