package linalg

import (
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

// Complex lifts a real matrix into a new complex one.
func Complex(m mat.Matrix) *mat.CDense {
	r, c := m.Dims()
	dst := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dst.Set(i, j, complex(m.At(i, j), 0))
		}
	}
	return dst
}

// Mul returns a·b.
func Mul(a, b *mat.CDense) *mat.CDense {
	return gemm(blas.NoTrans, a, b)
}

// MulH returns a†·b without materializing a†.
func MulH(a, b *mat.CDense) *mat.CDense {
	return gemm(blas.ConjTrans, a, b)
}

func gemm(tA blas.Transpose, a, b *mat.CDense) *mat.CDense {
	ar, ac := a.Dims()
	if tA != blas.NoTrans {
		ar, ac = ac, ar
	}
	br, bc := b.Dims()
	if ac != br {
		panic(mat.ErrShape)
	}
	dst := mat.NewCDense(ar, bc, nil)
	cblas128.Gemm(tA, blas.NoTrans, 1, a.RawCMatrix(), b.RawCMatrix(), 0, dst.RawCMatrix())
	return dst
}

// Adjoint returns the conjugate transpose of a as a new matrix.
func Adjoint(a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	dst := mat.NewCDense(c, r, nil)
	dst.Copy(a.H())
	return dst
}

// Sub returns a−b.
func Sub(a, b *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	if br, bc := b.Dims(); br != r || bc != c {
		panic(mat.ErrShape)
	}
	dst := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dst.Set(i, j, a.At(i, j)-b.At(i, j))
		}
	}
	return dst
}

// Diag builds a complex diagonal matrix from real entries.
func Diag(v []float64) *mat.CDense {
	dst := mat.NewCDense(len(v), len(v), nil)
	for k, x := range v {
		dst.Set(k, k, complex(x, 0))
	}
	return dst
}

// PhaseDiag builds diag(exp(i·θk)) in the order of theta.
func PhaseDiag(theta []float64) *mat.CDense {
	dst := mat.NewCDense(len(theta), len(theta), nil)
	for k, t := range theta {
		dst.Set(k, k, cmplx.Exp(complex(0, t)))
	}
	return dst
}

// Diagonal extracts the main diagonal of a.
func Diagonal(a *mat.CDense) []complex128 {
	r, c := a.Dims()
	n := min(r, c)
	d := make([]complex128, n)
	for k := range d {
		d[k] = a.At(k, k)
	}
	return d
}

// IsUnitary reports whether a·a† is the identity within tol, element-wise.
func IsUnitary(a *mat.CDense, tol float64) bool {
	r, c := a.Dims()
	if r != c {
		return false
	}
	p := Mul(a, Adjoint(a))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			want := complex(0, 0)
			if i == j {
				want = 1
			}
			if cmplx.Abs(p.At(i, j)-want) > tol {
				return false
			}
		}
	}
	return true
}
