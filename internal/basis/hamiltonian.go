// Package basis computes the change of basis between a pre-quench and a
// post-quench Hamiltonian and renders the intermediate values used as
// quench test fixtures.
package basis

import "gonum.org/v1/gonum/mat"

// Reference Hamiltonians of the XXZ chain (L=4, M=2, K=0, Δ=2) before and
// after a random Ising quench. The off-diagonal entries differ by one ulp;
// decompositions read the lower triangle.
var (
	h0Data = []float64{
		0, -2.8284271247461903,
		-2.82842712474619, 4.0,
	}
	h2Data = []float64{
		0, -2.8284271247461903,
		-2.82842712474619, 3.6085624472639157,
	}
)

// H0 returns a fresh copy of the pre-quench Hamiltonian.
func H0() *mat.Dense { return mat.NewDense(2, 2, append([]float64(nil), h0Data...)) }

// H2 returns a fresh copy of the post-quench Hamiltonian.
func H2() *mat.Dense { return mat.NewDense(2, 2, append([]float64(nil), h2Data...)) }

// Quench describes a Hamiltonian H0 + Strength·H1.
type Quench struct {
	H0       mat.Matrix
	H1       mat.Matrix // Ising term, diagonal in the number basis
	Strength float64
}

// Hamiltonian returns the quenched Hamiltonian.
func (q Quench) Hamiltonian() *mat.Dense {
	var h mat.Dense
	h.Scale(q.Strength, q.H1)
	h.Add(q.H0, &h)
	return &h
}
