package flycam

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
)

// Frustum holds six planes (Ax + By + Cz + D = 0) with normals pointing
// inward, in the order PlaneLeft..PlaneFar.
type Frustum [6]mgl32.Vec4

// ExtractFrustum derives the clip planes of a view-projection matrix using
// OpenGL depth (-1..1).
func ExtractFrustum(vp mgl32.Mat4) Frustum {
	row := func(i int) mgl32.Vec4 {
		return mgl32.Vec4{vp.At(i, 0), vp.At(i, 1), vp.At(i, 2), vp.At(i, 3)}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	f := Frustum{
		PlaneLeft:   r3.Add(r0),
		PlaneRight:  r3.Sub(r0),
		PlaneBottom: r3.Add(r1),
		PlaneTop:    r3.Sub(r1),
		PlaneNear:   r3.Add(r2),
		PlaneFar:    r3.Sub(r2),
	}
	for i := range f {
		p := f[i]
		length := math32.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
		if length > 0 {
			f[i] = p.Mul(1 / length)
		}
	}
	return f
}

func (f Frustum) ContainsPoint(p mgl32.Vec3) bool {
	for _, pl := range f {
		if pl[0]*p[0]+pl[1]*p[1]+pl[2]*p[2]+pl[3] < 0 {
			return false
		}
	}
	return true
}

// IntersectsAABB is conservative: it may report true for boxes just outside
// a frustum corner.
func (f Frustum) IntersectsAABB(min, max mgl32.Vec3) bool {
	for _, pl := range f {
		// corner furthest along the plane normal
		var pv mgl32.Vec3
		for i := 0; i < 3; i++ {
			if pl[i] >= 0 {
				pv[i] = max[i]
			} else {
				pv[i] = min[i]
			}
		}
		if pl[0]*pv[0]+pl[1]*pv[1]+pl[2]*pv[2]+pl[3] < 0 {
			return false
		}
	}
	return true
}
