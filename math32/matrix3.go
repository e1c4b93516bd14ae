// Copyright (c) 2025, The Ndvis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially based on G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix3 is a 3x3 matrix stored as a flat array in column-major order:
// m[0], m[1], m[2] is the first column. It is the rotation-matrix utility
// behind the camera's Euler angle conversions, with the axis sequence
// pinned down explicitly rather than delegated to a general rotation
// library whose conventions would have to be verified.
type Matrix3 [9]float32

// Identity3 returns a new identity [Matrix3].
func Identity3() Matrix3 {
	m := Matrix3{}
	m.SetIdentity()
	return m
}

// Set sets all the elements of this matrix row by row starting at row1,
// column1, row1, column2, row1, column3 and so forth.
func (m *Matrix3) Set(n11, n12, n13, n21, n22, n23, n31, n32, n33 float32) {
	m[0] = n11
	m[3] = n12
	m[6] = n13
	m[1] = n21
	m[4] = n22
	m[7] = n23
	m[2] = n31
	m[5] = n32
	m[8] = n33
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix3) SetIdentity() {
	m.Set(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// SetZero sets this matrix as the zero matrix.
func (m *Matrix3) SetZero() {
	m.Set(
		0, 0, 0,
		0, 0, 0,
		0, 0, 0,
	)
}

// SetColumns sets the columns of this matrix to the given vectors.
func (m *Matrix3) SetColumns(c0, c1, c2 Vector3) {
	c0.ToSlice(m[:], 0)
	c1.ToSlice(m[:], 3)
	c2.ToSlice(m[:], 6)
}

// Column returns the given column (0, 1 or 2) of this matrix as a vector.
func (m *Matrix3) Column(col int) Vector3 {
	v := Vector3{}
	v.FromSlice(m[:], col*3)
	return v
}

// Transpose returns the transpose of this matrix.
func (m *Matrix3) Transpose() Matrix3 {
	nm := Matrix3{}
	nm.Set(
		m[0], m[1], m[2],
		m[3], m[4], m[5],
		m[6], m[7], m[8],
	)
	return nm
}

// Determinant returns the determinant of this matrix.
func (m *Matrix3) Determinant() float32 {
	return m[0]*m[4]*m[8] - m[0]*m[5]*m[7] -
		m[1]*m[3]*m[8] + m[1]*m[5]*m[6] +
		m[2]*m[3]*m[7] - m[2]*m[4]*m[6]
}

// MulMatrices sets this matrix as matrix multiplication a by b (i.e., a*b).
func (m *Matrix3) MulMatrices(a, b *Matrix3) {
	a11 := a[0]
	a12 := a[3]
	a13 := a[6]
	a21 := a[1]
	a22 := a[4]
	a23 := a[7]
	a31 := a[2]
	a32 := a[5]
	a33 := a[8]

	b11 := b[0]
	b12 := b[3]
	b13 := b[6]
	b21 := b[1]
	b22 := b[4]
	b23 := b[7]
	b31 := b[2]
	b32 := b[5]
	b33 := b[8]

	m[0] = a11*b11 + a12*b21 + a13*b31
	m[3] = a11*b12 + a12*b22 + a13*b32
	m[6] = a11*b13 + a12*b23 + a13*b33

	m[1] = a21*b11 + a22*b21 + a23*b31
	m[4] = a21*b12 + a22*b22 + a23*b32
	m[7] = a21*b13 + a22*b23 + a23*b33

	m[2] = a31*b11 + a32*b21 + a33*b31
	m[5] = a31*b12 + a32*b22 + a33*b32
	m[8] = a31*b13 + a32*b23 + a33*b33
}

// Mul returns this matrix times the other matrix (this * other).
func (m *Matrix3) Mul(other *Matrix3) Matrix3 {
	nm := Matrix3{}
	nm.MulMatrices(m, other)
	return nm
}

// MulVector3 returns this matrix times the given vector.
func (m *Matrix3) MulVector3(v Vector3) Vector3 {
	return Vec3(
		m[0]*v.X+m[3]*v.Y+m[6]*v.Z,
		m[1]*v.X+m[4]*v.Y+m[7]*v.Z,
		m[2]*v.X+m[5]*v.Y+m[8]*v.Z,
	)
}

// SetRotationX sets this matrix to a rotation matrix of the given angle
// in radians about the x axis.
func (m *Matrix3) SetRotationX(angle float32) {
	c := Cos(angle)
	s := Sin(angle)
	m.Set(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// SetRotationY sets this matrix to a rotation matrix of the given angle
// in radians about the y axis.
func (m *Matrix3) SetRotationY(angle float32) {
	c := Cos(angle)
	s := Sin(angle)
	m.Set(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

// SetRotationZ sets this matrix to a rotation matrix of the given angle
// in radians about the z axis.
func (m *Matrix3) SetRotationZ(angle float32) {
	c := Cos(angle)
	s := Sin(angle)
	m.Set(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// SetFromEulerYZX sets this matrix to the rotation matrix for the given
// Euler angles in radians, composed in the extrinsic y-z-x sequence:
// first a rotation of euler.X about the y axis, then euler.Y about the
// fixed z axis, then euler.Z about the fixed x axis, i.e.,
// M = Rx(euler.Z) * Rz(euler.Y) * Ry(euler.X).
func (m *Matrix3) SetFromEulerYZX(euler Vector3) {
	ca := Cos(euler.X)
	sa := Sin(euler.X)
	cb := Cos(euler.Y)
	sb := Sin(euler.Y)
	cc := Cos(euler.Z)
	sc := Sin(euler.Z)

	m.Set(
		cb*ca, -sb, cb*sa,
		cc*sb*ca+sc*sa, cc*cb, cc*sb*sa-sc*ca,
		sc*sb*ca-cc*sa, sc*cb, sc*sb*sa+cc*ca,
	)
}

// NewEulerYZX returns a new rotation matrix from the given Euler angles
// in radians in the extrinsic y-z-x sequence (see [Matrix3.SetFromEulerYZX]).
func NewEulerYZX(euler Vector3) Matrix3 {
	m := Matrix3{}
	m.SetFromEulerYZX(euler)
	return m
}

// EulerYZX extracts the Euler angles in radians of this rotation matrix,
// in the extrinsic y-z-x sequence (the inverse of [Matrix3.SetFromEulerYZX]).
// Euler angle extraction is not unique: at the gimbal lock singularity
// (second angle at ±90°), the first angle is set to 0 and the third
// carries the remaining rotation.
func (m *Matrix3) EulerYZX() Vector3 {
	m11 := m[0]
	m12 := m[3]
	m13 := m[6]
	m22 := m[4]
	m31 := m[2]
	m32 := m[5]
	m33 := m[8]

	b := Asin(-Clamp(m12, -1, 1))
	if Abs(m12) < 0.9999999 {
		return Vec3(Atan2(m13, m11), b, Atan2(m32, m22))
	}
	// gimbal lock: sin(b) = -m12 = ±1
	sgn := -m12
	return Vec3(0, b, Atan2(sgn*m31, m33))
}
