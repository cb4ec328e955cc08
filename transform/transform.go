// Package transform computes the per-frame model, projection and MVP
// matrices. Matrices are column-major, ready for MVP * vec4(pos, 0, 1).
package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// AspectRatio returns width/height. ok is false when either dimension is not
// positive, e.g. while the window is minimized.
func AspectRatio(width, height int) (ratio float32, ok bool) {
	if width <= 0 || height <= 0 {
		return 0, false
	}
	return float32(width) / float32(height), true
}

// Model rotates about the Z axis by t radians. Elapsed seconds are used as
// the angle directly.
func Model(t float64) mgl32.Mat4 {
	return mgl32.Ident4().Mul4(mgl32.HomogRotate3DZ(float32(t)))
}

// Projection spans [-ratio, ratio] horizontally and [-1, 1] vertically with
// near 1 and far -1.
func Projection(ratio float32) mgl32.Mat4 {
	return mgl32.Ortho(-ratio, ratio, -1, 1, 1, -1)
}

// MVP is Projection(ratio) × Model(t).
func MVP(t float64, ratio float32) mgl32.Mat4 {
	return Projection(ratio).Mul4(Model(t))
}
