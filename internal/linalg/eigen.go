// Package linalg provides the dense numerics a basis change is built from:
// symmetric eigendecomposition and small complex matrix algebra on gonum.
package linalg

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNotSquare is returned when a decomposition is asked of a non-square matrix.
	ErrNotSquare = errors.New("linalg: matrix is not square")
	// ErrEmpty is returned for a zero-sized matrix.
	ErrEmpty = errors.New("linalg: matrix is empty")
	// ErrNoConvergence is returned when the symmetric eigensolver fails.
	ErrNoConvergence = errors.New("linalg: eigendecomposition did not converge")
)

// Eigen holds a symmetric eigendecomposition. Values are ascending and
// column k of Vectors is the unit eigenvector for Values[k].
type Eigen struct {
	Values  []float64
	Vectors *mat.Dense
}

// Eigh diagonalizes a real symmetric matrix. Only the lower triangle of a is
// read; the upper triangle is assumed to mirror it.
func Eigh(a mat.Matrix) (Eigen, error) {
	r, c := a.Dims()
	if r != c {
		return Eigen{}, fmt.Errorf("%w: %dx%d", ErrNotSquare, r, c)
	}
	if r == 0 {
		return Eigen{}, ErrEmpty
	}

	sym := mat.NewSymDense(r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j <= i; j++ {
			sym.SetSym(i, j, a.At(i, j))
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return Eigen{}, ErrNoConvergence
	}

	var vecs mat.Dense
	es.VectorsTo(&vecs)
	return Eigen{Values: es.Values(nil), Vectors: &vecs}, nil
}

// Reconstruct returns V·diag(W)·Vᵀ.
func (e Eigen) Reconstruct() *mat.Dense {
	n := len(e.Values)
	var vw, out mat.Dense
	vw.Mul(e.Vectors, mat.NewDiagDense(n, e.Values))
	out.Mul(&vw, e.Vectors.T())
	return &out
}
