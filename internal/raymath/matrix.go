package raymath

// Matrix3 is a row-major 3x3 dense matrix.
type Matrix3 struct {
	M00, M01, M02 float64
	M10, M11, M12 float64
	M20, M21, M22 float64
}

var Identity3 = Matrix3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

func (a Matrix3) Add(b Matrix3) Matrix3 {
	return Matrix3{
		a.M00 + b.M00, a.M01 + b.M01, a.M02 + b.M02,
		a.M10 + b.M10, a.M11 + b.M11, a.M12 + b.M12,
		a.M20 + b.M20, a.M21 + b.M21, a.M22 + b.M22,
	}
}

func (a Matrix3) Sub(b Matrix3) Matrix3 {
	return Matrix3{
		a.M00 - b.M00, a.M01 - b.M01, a.M02 - b.M02,
		a.M10 - b.M10, a.M11 - b.M11, a.M12 - b.M12,
		a.M20 - b.M20, a.M21 - b.M21, a.M22 - b.M22,
	}
}

func (a Matrix3) MulScalar(s float64) Matrix3 {
	return Matrix3{
		a.M00 * s, a.M01 * s, a.M02 * s,
		a.M10 * s, a.M11 * s, a.M12 * s,
		a.M20 * s, a.M21 * s, a.M22 * s,
	}
}

// Mul multiplies two 3x3 matrices, a*b.
func (a Matrix3) Mul(b Matrix3) Matrix3 {
	return Matrix3{
		a.M00*b.M00 + a.M01*b.M10 + a.M02*b.M20,
		a.M00*b.M01 + a.M01*b.M11 + a.M02*b.M21,
		a.M00*b.M02 + a.M01*b.M12 + a.M02*b.M22,

		a.M10*b.M00 + a.M11*b.M10 + a.M12*b.M20,
		a.M10*b.M01 + a.M11*b.M11 + a.M12*b.M21,
		a.M10*b.M02 + a.M11*b.M12 + a.M12*b.M22,

		a.M20*b.M00 + a.M21*b.M10 + a.M22*b.M20,
		a.M20*b.M01 + a.M21*b.M11 + a.M22*b.M21,
		a.M20*b.M02 + a.M21*b.M12 + a.M22*b.M22,
	}
}

// MulVec3 applies the matrix to a vector: a*v.
func (a Matrix3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		a.M00*v.X + a.M01*v.Y + a.M02*v.Z,
		a.M10*v.X + a.M11*v.Y + a.M12*v.Z,
		a.M20*v.X + a.M21*v.Y + a.M22*v.Z,
	}
}

// Matrix4 is a row-major 4x4 dense matrix used for affine transforms of
// points (w=1) and directions (w=0).
type Matrix4 struct {
	M00, M01, M02, M03 float64
	M10, M11, M12, M13 float64
	M20, M21, M22, M23 float64
	M30, M31, M32, M33 float64
}

var Identity4 = Matrix4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Mul multiplies two 4x4 matrices, a*b.
func (a Matrix4) Mul(b Matrix4) Matrix4 {
	var r Matrix4
	ar := [4][4]float64{
		{a.M00, a.M01, a.M02, a.M03},
		{a.M10, a.M11, a.M12, a.M13},
		{a.M20, a.M21, a.M22, a.M23},
		{a.M30, a.M31, a.M32, a.M33},
	}
	br := [4][4]float64{
		{b.M00, b.M01, b.M02, b.M03},
		{b.M10, b.M11, b.M12, b.M13},
		{b.M20, b.M21, b.M22, b.M23},
		{b.M30, b.M31, b.M32, b.M33},
	}
	var out [4][4]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += ar[i][k] * br[k][j]
			}
			out[i][j] = sum
		}
	}
	r = Matrix4{
		out[0][0], out[0][1], out[0][2], out[0][3],
		out[1][0], out[1][1], out[1][2], out[1][3],
		out[2][0], out[2][1], out[2][2], out[2][3],
		out[3][0], out[3][1], out[3][2], out[3][3],
	}
	return r
}

// MulVec4 applies the matrix to a homogeneous vector: a*v.
func (a Matrix4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		a.M00*v.X + a.M01*v.Y + a.M02*v.Z + a.M03*v.W,
		a.M10*v.X + a.M11*v.Y + a.M12*v.Z + a.M13*v.W,
		a.M20*v.X + a.M21*v.Y + a.M22*v.Z + a.M23*v.W,
		a.M30*v.X + a.M31*v.Y + a.M32*v.Z + a.M33*v.W,
	}
}

// TransformPoint applies the matrix to v as a point (w=1).
func (a Matrix4) TransformPoint(v Vec3) Vec3 {
	return a.MulVec4(v.ToHomogeneous(1)).Vec3()
}

// TransformDirection applies the matrix to v as a direction (w=0), so the
// translation column never contributes.
func (a Matrix4) TransformDirection(v Vec3) Vec3 {
	return a.MulVec4(v.ToHomogeneous(0)).Vec3()
}

// Upper3 extracts the rotation/scale upper-left 3x3 block.
func (a Matrix4) Upper3() Matrix3 {
	return Matrix3{
		a.M00, a.M01, a.M02,
		a.M10, a.M11, a.M12,
		a.M20, a.M21, a.M22,
	}
}
