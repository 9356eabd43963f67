package math3d

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/hexakin/hexapod/utils"
)

// Matrix44 is a homogeneous transform (rotation + translation). It acts on
// column vectors, so A.Multiply(B) applies B first, then A.
type Matrix44 struct {
	m mgl64.Mat4
}

var (
	IdentityMatrix = Matrix44{mgl64.Ident4()}
)

func (m Matrix44) String() string {
	e := m.Elements()
	return fmt.Sprintf(
		"&M44{%+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f}",
		e[0][0], e[0][1], e[0][2], e[0][3],
		e[1][0], e[1][1], e[1][2], e[1][3],
		e[2][0], e[2][1], e[2][2], e[2][3],
		e[3][0], e[3][1], e[3][2], e[3][3])
}

// Elements returns the matrix as rows of float64s. This is pretty much only
// useful for dumping its contents.
func (m Matrix44) Elements() [4][4]float64 {
	var e [4][4]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			e[r][c] = m.m.At(r, c)
		}
	}
	return e
}

// Translation returns the translation part of the matrix.
func (m Matrix44) Translation() r3.Vector {
	return r3.Vector{X: m.m.At(0, 3), Y: m.m.At(1, 3), Z: m.m.At(2, 3)}
}

// Multiply returns m·mm.
func (m Matrix44) Multiply(mm Matrix44) Matrix44 {
	return Matrix44{m.m.Mul4(mm.m)}
}

// Inverse returns the inverse of the matrix.
func (m Matrix44) Inverse() Matrix44 {
	return Matrix44{m.m.Inv()}
}

// Apply returns the vector transformed by the matrix (as a point, so the
// translation is included).
func (m Matrix44) Apply(v r3.Vector) r3.Vector {
	o := m.m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 1})
	return r3.Vector{X: o[0], Y: o[1], Z: o[2]}
}

// ApproxEqual returns true if every cell of the matrices is within tol.
func (m Matrix44) ApproxEqual(mm Matrix44, tol float64) bool {
	return m.m.ApproxEqualThreshold(mm.m, tol)
}

func withTranslation(rot mgl64.Mat4, t r3.Vector) Matrix44 {
	return Matrix44{mgl64.Translate3D(t.X, t.Y, t.Z).Mul4(rot)}
}

// RotX returns a matrix which rotates by theta degrees around the X axis,
// then translates by t.
func RotX(theta float64, t r3.Vector) Matrix44 {
	return withTranslation(mgl64.HomogRotate3DX(utils.Rad(theta)), t)
}

// RotY returns a matrix which rotates by theta degrees around the Y axis,
// then translates by t.
func RotY(theta float64, t r3.Vector) Matrix44 {
	return withTranslation(mgl64.HomogRotate3DY(utils.Rad(theta)), t)
}

// RotZ returns a matrix which rotates by theta degrees around the Z axis,
// then translates by t.
func RotZ(theta float64, t r3.Vector) Matrix44 {
	return withTranslation(mgl64.HomogRotate3DZ(utils.Rad(theta)), t)
}

// RotXYZ returns Rx·Ry·Rz for the given angles (in degrees).
func RotXYZ(x, y, z float64) Matrix44 {
	return RotX(x, ZeroVector3).Multiply(RotY(y, ZeroVector3)).Multiply(RotZ(z, ZeroVector3))
}

// Translate returns a pure translation.
func Translate(t r3.Vector) Matrix44 {
	return withTranslation(mgl64.Ident4(), t)
}

// AlignVectors returns the rotation which takes the direction of a onto the
// direction of b (Rodrigues). Both should be unit vectors. When they are
// parallel or antiparallel the cross product vanishes, and the identity is
// returned.
func AlignVectors(a, b r3.Vector) Matrix44 {
	v := a.Cross(b)
	s := v.Norm()
	if s == 0 {
		return IdentityMatrix
	}

	c := a.Dot(b)
	d := (1 - c) / (s * s)

	// mgl64 matrices are column major.
	vx := mgl64.Mat3{
		0, v.Z, -v.Y,
		-v.Z, 0, v.X,
		v.Y, -v.X, 0,
	}
	r := mgl64.Ident3().Add(vx).Add(vx.Mul3(vx).Mul(d))

	m := mgl64.Ident4()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m.Set(row, col, r.At(row, col))
		}
	}

	return Matrix44{m}
}
