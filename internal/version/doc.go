// Package version orders the dot-separated numeric version strings used for
// game (target) versions.
//
//	version.Compare("1.20.4", "1.20.10") // -1
//	version.Less("1.20.1", "1.21")       // true
//	latest, _ := version.Max([]string{"1.20.1", "1.21", "1.20.4"}) // "1.21"
//
// Non-numeric components count as zero and missing components are padded
// with zeros, which keeps the order total and deterministic for any input.
package version
