// SPDX-License-Identifier: MIT

// Package convert: functional configuration for decoding.
// This file defines:
//   - Path, the decode route selector, with its documented default,
//   - Option / Options (functional options with internal state),
//   - WithPath (panics on nonsensical values: programmer error),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Encoding has no options: it is always a single bulk copy.
//   - PathFast never silently degrades; PathAuto is the only mode that chooses.

package convert

import (
	"fmt"
	"strings"
)

// Path selects how Decode reads matrix elements.
type Path int

const (
	// PathAuto uses the contiguous view when the matrix offers one, else walks elements.
	PathAuto Path = iota
	// PathFast requires a contiguous typed view; fails with ErrNotContiguous otherwise.
	PathFast
	// PathFallback always walks elements through the random-access reader.
	PathFallback
)

// DefaultPath is the decode route used when no WithPath option is given.
const DefaultPath = PathAuto

const panicPathInvalid = "convert: WithPath: unknown path"

var pathNames = [...]string{"auto", "fast", "fallback"}

func (p Path) valid() bool { return p >= PathAuto && p <= PathFallback }

func (p Path) String() string {
	if !p.valid() {
		return fmt.Sprintf("Path(%d)", int(p))
	}

	return pathNames[p]
}

// ParsePath maps "auto", "fast" or "fallback" (case-insensitive) to a Path.
func ParsePath(s string) (Path, error) {
	for i, name := range pathNames {
		if strings.EqualFold(s, name) {
			return Path(i), nil
		}
	}

	return DefaultPath, fmt.Errorf("ParsePath(%q): %w", s, ErrBadPath)
}

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	path Path // DefaultPath
}

// WithPath forces a decode route.
// Panics if p is not one of PathAuto, PathFast, PathFallback.
func WithPath(p Path) Option {
	if !p.valid() {
		panic(panicPathInvalid)
	}

	return func(o *Options) { o.path = p }
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{path: DefaultPath}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
