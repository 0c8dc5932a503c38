// Package pixel offers strongly-typed, channel-interleaved pixel buffers and a closed
// tagged union over the supported colour types.
//
// The pixel package provides:
//
//   - Kind, the compile-time channel semantics of a pixel (Luma, LumaA, Rgb, Rgba).
//   - Buffer[K, T], an owned row-major []T of exactly width*height*channels(K) values.
//   - ColorType, the enumeration of (kind, element) pairs the library supports.
//   - DynamicImage, a value holding exactly one Buffer of an enumerated ColorType.
//
// Channel order is stored as given; no colour-space conversion happens anywhere.
package pixel
