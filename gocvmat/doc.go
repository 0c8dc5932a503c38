// SPDX-License-Identifier: MIT

// Package gocvmat adapts OpenCV matrices (gocv.io/x/gocv) to mat.Matrix so the
// convert package decodes and encodes them directly.
//
// The adapter needs cgo and an OpenCV installation, so everything except this file
// is behind the "gocv" build tag:
//
//	go build -tags gocv ./...
//
// Layout notes:
//   - A continuous gocv.Mat exposes its storage through Bytes (fast path).
//   - ROIs and other non-continuous Mats report ok=false and are read element by
//     element with the Mat scalar getters (fallback path).
//   - Matrices with more than two dimensions report Rows() == Cols() == -1, exactly
//     as OpenCV does, and are rejected by every decoder.
package gocvmat
