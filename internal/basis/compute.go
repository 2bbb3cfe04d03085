package basis

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/talgya/basischange/internal/linalg"
)

// Result holds every artifact of one basis-change computation.
// Nothing mutates it after Compute returns.
type Result struct {
	H2 *mat.Dense

	W0 []float64  // h0 eigenvalues, ascending
	V0 *mat.Dense // h0 eigenvectors, by column
	W2 []float64
	V2 *mat.Dense

	X1       *mat.CDense // v0†·v2: h2's eigenbasis expressed in h0's
	X2       *mat.CDense // x1†
	Unitary1 *mat.CDense // diag(exp(i·w2))
	Right    *mat.CDense
	Left     *mat.CDense

	EnergyDiag *mat.CDense
	Change     []complex128 // diagonal of left·energy_diag·right − energy_diag
}

// Compute diagonalizes h0 and h2, composes right = x1·unitary1·x2 and its
// adjoint, and measures how the h0 energy diagonal shifts under the
// similarity transform.
func Compute(h0, h2 mat.Matrix) (*Result, error) {
	e0, err := linalg.Eigh(h0)
	if err != nil {
		return nil, fmt.Errorf("diagonalize h0: %w", err)
	}
	slog.Debug("diagonalized", "matrix", "h0", "eigenvalues", e0.Values)

	e2, err := linalg.Eigh(h2)
	if err != nil {
		return nil, fmt.Errorf("diagonalize h2: %w", err)
	}
	slog.Debug("diagonalized", "matrix", "h2", "eigenvalues", e2.Values)

	x1 := linalg.MulH(linalg.Complex(e0.Vectors), linalg.Complex(e2.Vectors))
	x2 := linalg.Adjoint(x1)
	unitary1 := linalg.PhaseDiag(e2.Values)

	right := linalg.Mul(linalg.Mul(x1, unitary1), x2)
	left := linalg.Adjoint(right)

	energyDiag := linalg.Diag(e0.Values)
	shifted := linalg.Mul(linalg.Mul(left, energyDiag), right)
	change := linalg.Diagonal(linalg.Sub(shifted, energyDiag))
	slog.Debug("similarity transform composed", "change", change)

	return &Result{
		H2:         mat.DenseCopyOf(h2),
		W0:         e0.Values,
		V0:         e0.Vectors,
		W2:         e2.Values,
		V2:         e2.Vectors,
		X1:         x1,
		X2:         x2,
		Unitary1:   unitary1,
		Right:      right,
		Left:       left,
		EnergyDiag: energyDiag,
		Change:     change,
	}, nil
}

// TransitionChange returns, per eigenmode i of h0, Σj |right_ij|²·w0[j] − w0[i]:
// the energy shift weighted by transition probabilities.
func (r *Result) TransitionChange() []float64 {
	n := len(r.W0)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			p := cmplx.Abs(r.Right.At(i, j))
			sum += p * p * r.W0[j]
		}
		out[i] = sum - r.W0[i]
	}
	return out
}

// WriteTo prints h2, w2, v2, unitary1, x1, x2, right, left and change,
// separated by blank lines.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	change := mat.NewCDense(1, len(r.Change), append([]complex128(nil), r.Change...))

	parts := []fmt.Formatter{
		mat.Formatted(r.H2),
		mat.Formatted(mat.NewDense(1, len(r.W2), append([]float64(nil), r.W2...))),
		mat.Formatted(r.V2),
		cformatted{r.Unitary1},
		cformatted{r.X1},
		cformatted{r.X2},
		cformatted{r.Right},
		cformatted{r.Left},
		cformatted{change},
	}

	var buf bytes.Buffer
	for i, p := range parts {
		if i > 0 {
			buf.WriteString("\n\n")
		}
		fmt.Fprintf(&buf, "%v", p)
	}
	buf.WriteByte('\n')

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// cformatted renders a complex matrix one bracketed row per line, each
// element printed with %v.
type cformatted struct{ m *mat.CDense }

func (f cformatted) Format(s fmt.State, _ rune) {
	r, c := f.m.Dims()
	for i := 0; i < r; i++ {
		if i > 0 {
			fmt.Fprint(s, "\n")
		}
		fmt.Fprint(s, "[")
		for j := 0; j < c; j++ {
			if j > 0 {
				fmt.Fprint(s, " ")
			}
			fmt.Fprintf(s, "%v", f.m.At(i, j))
		}
		fmt.Fprint(s, "]")
	}
}
