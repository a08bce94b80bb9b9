package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// smallNumber is the squared length below which a vector has no usable direction.
const smallNumber = 1e-8

// SafeNormal returns v scaled to unit length, or the zero vector when v is too
// short to carry a direction or is not finite.
func SafeNormal(v mgl64.Vec3) mgl64.Vec3 {
	if !IsFinite(v) {
		return mgl64.Vec3{}
	}
	lenSq := v.LenSqr()
	if lenSq < smallNumber {
		return mgl64.Vec3{}
	}
	if lenSq == 1 {
		return v
	}
	return v.Mul(1 / math.Sqrt(lenSq))
}

// IsFinite reports whether no component of v is NaN or infinite.
func IsFinite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// ProjectOnto projects v onto an arbitrary (not necessarily unit) vector.
func ProjectOnto(v, onto mgl64.Vec3) mgl64.Vec3 {
	lenSq := onto.LenSqr()
	if lenSq < smallNumber {
		return mgl64.Vec3{}
	}
	return onto.Mul(v.Dot(onto) / lenSq)
}

// ProjectOntoNormal projects v onto a unit vector.
func ProjectOntoNormal(v, normal mgl64.Vec3) mgl64.Vec3 {
	return normal.Mul(v.Dot(normal))
}

// Distance returns |a - b|.
func Distance(a, b mgl64.Vec3) float64 {
	return a.Sub(b).Len()
}

// NearlyEqual reports whether a and b differ by at most tolerance.
func NearlyEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return mgl64.Clamp(v, lo, hi)
}

// Vec3From2D lifts a side-view plane position into world space (Z = 0).
func Vec3From2D(x, y float64) mgl64.Vec3 {
	return mgl64.Vec3{x, y, 0}
}
