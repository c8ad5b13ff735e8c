package raymath

import "math"

// Translation builds a Matrix4 translating by (tx, ty, tz).
func Translation(tx, ty, tz float64) Matrix4 {
	m := Identity4
	m.M03, m.M13, m.M23 = tx, ty, tz
	return m
}

// Scale builds a Matrix4 scaling about the origin.
func Scale(sx, sy, sz float64) Matrix4 {
	m := Identity4
	m.M00, m.M11, m.M22 = sx, sy, sz
	return m
}

// ScaleAboutPoint scales about pivot by conjugating Scale with a
// translation to and from the origin.
func ScaleAboutPoint(sx, sy, sz float64, pivot Vec3) Matrix4 {
	return conjugateAboutPivot(Scale(sx, sy, sz), pivot)
}

func conjugateAboutPivot(m Matrix4, pivot Vec3) Matrix4 {
	toOrigin := Translation(-pivot.X, -pivot.Y, -pivot.Z)
	back := Translation(pivot.X, pivot.Y, pivot.Z)
	return back.Mul(m).Mul(toOrigin)
}

// RotationAroundAxis builds a Rodrigues-formula rotation by angle radians
// around axis (need not be unit; it is normalized here), conjugated with a
// translation so the rotation pivots about pivot rather than the origin.
func RotationAroundAxis(axis Vec3, angle float64, pivot Vec3) Matrix4 {
	a := axis.Normalize()
	s, c := math.Sin(angle), math.Cos(angle)
	t := 1 - c

	r := Matrix3{
		t*a.X*a.X + c, t*a.X*a.Y - s*a.Z, t*a.X*a.Z + s*a.Y,
		t*a.X*a.Y + s*a.Z, t*a.Y*a.Y + c, t*a.Y*a.Z - s*a.X,
		t*a.X*a.Z - s*a.Y, t*a.Y*a.Z + s*a.X, t*a.Z*a.Z + c,
	}
	m := matrix3ToMatrix4(r)
	return conjugateAboutPivot(m, pivot)
}

func matrix3ToMatrix4(r Matrix3) Matrix4 {
	return Matrix4{
		r.M00, r.M01, r.M02, 0,
		r.M10, r.M11, r.M12, 0,
		r.M20, r.M21, r.M22, 0,
		0, 0, 0, 1,
	}
}

// ShearX shears the X coordinate by hy*y + hz*z.
func ShearX(hy, hz float64) Matrix4 {
	m := Identity4
	m.M01, m.M02 = hy, hz
	return m
}

// ShearY shears the Y coordinate by hx*x + hz*z.
func ShearY(hx, hz float64) Matrix4 {
	m := Identity4
	m.M10, m.M12 = hx, hz
	return m
}

// ShearZ shears the Z coordinate by hx*x + hy*y.
func ShearZ(hx, hy float64) Matrix4 {
	m := Identity4
	m.M20, m.M21 = hx, hy
	return m
}

// ShearXAngle is ShearX with coefficients expressed as tan(angle).
func ShearXAngle(angleY, angleZ float64) Matrix4 {
	return ShearX(math.Tan(angleY), math.Tan(angleZ))
}

// ShearYAngle is ShearY with coefficients expressed as tan(angle).
func ShearYAngle(angleX, angleZ float64) Matrix4 {
	return ShearY(math.Tan(angleX), math.Tan(angleZ))
}

// ShearZAngle is ShearZ with coefficients expressed as tan(angle).
func ShearZAngle(angleX, angleY float64) Matrix4 {
	return ShearZ(math.Tan(angleX), math.Tan(angleY))
}

// HouseholderReflection builds I - 2*n_hat*n_hat^T, reflecting across the
// plane through pivot with unit normal normal.
func HouseholderReflection(pivot, normal Vec3) Matrix4 {
	n := normal.Normalize()
	proj := n.Outer(n).MulScalar(2)
	r := Identity3.Sub(proj)
	return conjugateAboutPivot(matrix3ToMatrix4(r), pivot)
}
