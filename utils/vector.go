package utils

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Row-wise operations over Nx3 coordinate matrices. Each helper treats
// every row as one 3-vector so whole face or connection collections
// are processed in a single call.

// RowsFromPoints gathers point rows by index into an Nx3 matrix.
func RowsFromPoints(points [][]float64, idx []int) (R *mat.Dense) {
	R = mat.NewDense(len(idx), 3, nil)
	for i, p := range idx {
		R.SetRow(i, points[p])
	}
	return
}

// RowSub returns A - B element-wise.
func RowSub(A, B *mat.Dense) (R *mat.Dense) {
	var (
		nr, nc = A.Dims()
	)
	R = mat.NewDense(nr, nc, nil)
	R.Sub(A, B)
	return
}

// RowCross returns the per-row cross product of two Nx3 matrices.
func RowCross(A, B *mat.Dense) (R *mat.Dense) {
	var (
		nr, _ = A.Dims()
		aD    = A.RawMatrix().Data
		bD    = B.RawMatrix().Data
		rD    = make([]float64, nr*3)
	)
	for i := 0; i < nr; i++ {
		ax, ay, az := aD[3*i], aD[3*i+1], aD[3*i+2]
		bx, by, bz := bD[3*i], bD[3*i+1], bD[3*i+2]
		rD[3*i] = ay*bz - az*by
		rD[3*i+1] = az*bx - ax*bz
		rD[3*i+2] = ax*by - ay*bx
	}
	R = mat.NewDense(nr, 3, rD)
	return
}

// RowDot returns the per-row dot product of two Nx3 matrices.
func RowDot(A, B *mat.Dense) (V *mat.VecDense) {
	var (
		nr, _ = A.Dims()
		aD    = A.RawMatrix().Data
		bD    = B.RawMatrix().Data
		d     = make([]float64, nr)
	)
	for i := 0; i < nr; i++ {
		d[i] = aD[3*i]*bD[3*i] + aD[3*i+1]*bD[3*i+1] + aD[3*i+2]*bD[3*i+2]
	}
	V = mat.NewVecDense(nr, d)
	return
}

// RowNorm returns the per-row Euclidean norm of an Nx3 matrix.
func RowNorm(A *mat.Dense) (V *mat.VecDense) {
	var (
		nr, _ = A.Dims()
		aD    = A.RawMatrix().Data
		d     = make([]float64, nr)
	)
	for i := 0; i < nr; i++ {
		x, y, z := aD[3*i], aD[3*i+1], aD[3*i+2]
		d[i] = math.Sqrt(x*x + y*y + z*z)
	}
	V = mat.NewVecDense(nr, d)
	return
}

// RowAddScaled returns A + diag(t)*B, advancing each row of A along
// its row of B by that row's scale factor.
func RowAddScaled(A, B *mat.Dense, t *mat.VecDense) (R *mat.Dense) {
	var (
		nr, nc = A.Dims()
		aD     = A.RawMatrix().Data
		bD     = B.RawMatrix().Data
		tD     = t.RawVector().Data
		rD     = make([]float64, nr*nc)
	)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			rD[nc*i+j] = aD[nc*i+j] + tD[i]*bD[nc*i+j]
		}
	}
	R = mat.NewDense(nr, nc, rD)
	return
}
