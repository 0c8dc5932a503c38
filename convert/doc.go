// Package convert moves images between typed pixel buffers and runtime-tagged matrices.
//
// Directions:
//
//	Encode[K, T](buffer)        *pixel.Buffer[K, T] -> *mat.Dense   (one bulk copy)
//	EncodeDynamic(img)          pixel.DynamicImage  -> *mat.Dense   (dispatch on variant)
//	Decode[K, T](matrix)        mat.Matrix -> *pixel.Buffer[K, T]   (fast path or fallback)
//	DecodeDynamic(matrix)       mat.Matrix -> pixel.DynamicImage    (dispatch on depth, channels)
//
// Decoding probes the matrix for a contiguous typed view (mat.AsSlice). When one exists
// the elements are copied in one operation; otherwise every (row, col) element is read
// through the matrix's random-access reader. Both paths produce bit-identical output.
//
// Preconditions are checked before any element is touched, in a fixed order
// (dimensionality, channels, depth); each failure wraps a distinct sentinel and names the
// observed and expected values. Conversions never mutate their input and always return a
// freshly allocated result, so they are safe to call concurrently.
//
// Coverage is intentionally asymmetric: EncodeDynamic accepts all ten pixel.ColorTypes,
// DecodeDynamic recognises only the five pairs listed by DecodePairs.
package convert
