package spectrum

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/schrodinger/finitediff"
	"github.com/katalvlaran/schrodinger/wavefunction"
)

// ErrEigen is returned when the eigensolver fails to converge.
var ErrEigen = errors.New("spectrum: eigendecomposition failed")

// Config describes the grid and potential.
type Config struct {
	XMin      float64
	XMax      float64
	StepSize  float64
	Potential wavefunction.Potential
}

// State is one eigenpair: the level and its wavefunction over [XMin, XMax]
// including the zero walls, normalized to unit L² norm.
type State struct {
	Energy float64
	Points []wavefunction.Point
}

// Steps returns the number of grid points including the walls.
func (c Config) Steps() int {
	return finitediff.GridSize(c.XMax-c.XMin, c.StepSize)
}

// Levels returns the n lowest eigenvalues in ascending order.
//
// Errors: wavefunction.ErrInvalidConfig for a bad grid or n outside
// [1, interior points]; ErrEigen.
func Levels(c Config, n int) ([]float64, error) {
	values, _, err := decompose(c, n, false)
	if err != nil {
		return nil, err
	}

	return values[:n], nil
}

// States returns the n lowest eigenpairs in ascending energy order. Each
// wavefunction is oriented so that its first non-negligible sample is
// positive.
func States(c Config, n int) ([]State, error) {
	values, vectors, err := decompose(c, n, true)
	if err != nil {
		return nil, err
	}

	var (
		m   = vectors.RawMatrix().Rows
		out = make([]State, n)
	)
	for k := 0; k < n; k++ {
		pts := make([]wavefunction.Point, m+2)
		pts[0] = wavefunction.Point{X: c.XMin}
		for i := 0; i < m; i++ {
			pts[i+1] = wavefunction.Point{X: c.XMin + float64(i+1)*c.StepSize, Psi: vectors.At(i, k)}
		}
		pts[m+1] = wavefunction.Point{X: c.XMin + float64(m+1)*c.StepSize}
		orient(pts)

		norm, err := wavefunction.Normalize(pts)
		if err != nil {
			return nil, err
		}
		out[k] = State{Energy: values[k], Points: norm}
	}

	return out, nil
}

// decompose builds H and runs mat.EigenSym. Eigenvalues come back ascending.
func decompose(c Config, n int, vectors bool) ([]float64, *mat.Dense, error) {
	if err := validate(c); err != nil {
		return nil, nil, err
	}
	var m = c.Steps() - 2
	if n < 1 || n > m {
		return nil, nil, fmt.Errorf("%w: spectrum: %d levels requested, grid has %d interior points",
			wavefunction.ErrInvalidConfig, n, m)
	}

	var (
		h2  = c.StepSize * c.StepSize
		off = -1 / (2 * h2)
		ham = mat.NewSymDense(m, nil)
		i   int
	)
	for i = 0; i < m; i++ {
		ham.SetSym(i, i, 1/h2+c.Potential(c.XMin+float64(i+1)*c.StepSize))
		if i+1 < m {
			ham.SetSym(i, i+1, off)
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(ham, vectors); !ok {
		return nil, nil, ErrEigen
	}
	values := es.Values(nil)
	if !vectors {
		return values, nil, nil
	}

	var ev mat.Dense
	es.VectorsTo(&ev)

	return values, &ev, nil
}

// orient flips pts so the first sample above 1e-9 of the peak is positive.
func orient(pts []wavefunction.Point) {
	var peak float64
	for _, p := range pts {
		peak = math.Max(peak, math.Abs(p.Psi))
	}
	for _, p := range pts {
		if math.Abs(p.Psi) <= 1e-9*peak {
			continue
		}
		if p.Psi < 0 {
			for i := range pts {
				pts[i].Psi = -pts[i].Psi
			}
		}

		return
	}
}

func validate(c Config) error {
	if c.Potential == nil {
		return fmt.Errorf("%w: spectrum: potential is nil", wavefunction.ErrInvalidConfig)
	}
	if math.IsNaN(c.XMin) || math.IsInf(c.XMin, 0) || math.IsNaN(c.XMax) || math.IsInf(c.XMax, 0) || c.XMax <= c.XMin {
		return fmt.Errorf("%w: spectrum: domain [%v, %v] must be finite with XMax > XMin", wavefunction.ErrInvalidConfig, c.XMin, c.XMax)
	}
	if math.IsNaN(c.StepSize) || math.IsInf(c.StepSize, 0) || c.StepSize <= 0 {
		return fmt.Errorf("%w: spectrum: step size %v must be finite and > 0", wavefunction.ErrInvalidConfig, c.StepSize)
	}
	if c.Steps() < 3 {
		return fmt.Errorf("%w: spectrum: grid has no interior point", wavefunction.ErrInvalidConfig)
	}

	return nil
}
