// SPDX-License-Identifier: MIT

package convert

import (
	"github.com/katalvlaran/pixmat/element"
	"github.com/katalvlaran/pixmat/mat"
	"github.com/katalvlaran/pixmat/pixel"
)

// White-box bridge: the two decode routes, callable directly from convert_test so
// their outputs can be compared on the same matrix without going through Path.

// DecodeFastForTest runs the contiguous-view route only.
func DecodeFastForTest[K pixel.Kind, T element.Element](m mat.Matrix) (*pixel.Buffer[K, T], error) {
	if err := validateTarget[K, T](m); err != nil {
		return nil, err
	}

	return decodeFast[K, T](m)
}

// DecodeFallbackForTest runs the element-wise route only.
func DecodeFallbackForTest[K pixel.Kind, T element.Element](m mat.Matrix) (*pixel.Buffer[K, T], error) {
	if err := validateTarget[K, T](m); err != nil {
		return nil, err
	}

	return decodeFallback[K, T](m)
}

// OptionsPathForTest reports the route selected after applying opts.
func OptionsPathForTest(opts ...Option) Path { return gatherOptions(opts...).path }

// BulkCopyForTest exposes bulkCopy for its length precondition.
var BulkCopyForTest = bulkCopy
