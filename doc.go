// Package pixmat converts typed pixel buffers to runtime-tagged numeric matrices and
// back, with exact, bit-preserving round trips.
//
// 🚀 What is pixmat?
//
//	A small conversion layer between two worlds:
//		• Images: pixel.Buffer[K, T], a packed, row-major buffer whose pixel kind
//		  (Luma, LumaA, Rgb, Rgba) and element type (uint8, uint16, float32) are
//		  known at compile time
//		• Matrices: mat.Matrix, an OpenCV-style container tagged at run time with
//		  a depth (8U, 16U, 32F, ...) and a channel count
//
// ✨ What you get
//
//   - Encode: buffer → matrix, one bulk copy into fresh storage
//   - Decode[K, T]: matrix → buffer, validated (dimensions → channels → depth)
//   - DecodeDynamic: matrix → DynamicImage, chosen from the matrix tags
//   - EncodeDynamic: DynamicImage → matrix for every enumerated colour type
//   - Zero-copy-eligible fast path with an element-wise fallback for strided views
//
// Under the hood:
//
//	element/     depth tags, the Element constraint, OpenCV type numbering
//	mat/         Matrix capability, Dense storage, strided View, typed access
//	pixel/       pixel kinds, Buffer[K, T], ColorType, DynamicImage
//	convert/     Encode/Decode in both typed and dynamic flavours
//	gocvmat/     gocv.Mat adapter (build tag "gocv")
//	cmd/pixmat/  support table and round-trip checks from the shell
//
// Quick example:
//
//	img, _ := pixel.New[pixel.Rgb, uint8](250, 100)
//	m, _ := convert.Encode(img)                       // Dense(100x250 CV_8UC3)
//	back, _ := convert.Decode[pixel.Rgb, uint8](m)    // same pixels, new storage
//	dyn, _ := convert.DecodeDynamic(m)                // DynamicImage(Rgb8 250x100)
//
// The decode table is deliberately narrower than the encode side: Rgba and
// gray-alpha matrices encode but do not decode dynamically. See
// convert.EncodeOnlyColors.
//
//	go get github.com/katalvlaran/pixmat
package pixmat
