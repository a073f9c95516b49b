// Package spectrum diagonalizes the finite-difference Hamiltonian directly.
//
// On the grid x_i = XMin + i·h with ψ = 0 at both walls, the recurrence the
// solvers integrate is the eigenproblem of the symmetric tridiagonal matrix
//
//	H_ii     = 1/h² + V(x_i)
//	H_i,i±1  = −1/(2h²)
//
// over the interior points. Levels returns its lowest eigenvalues, States
// the matching eigenvectors as normalized wavefunctions. Because the matching
// solver integrates the same recurrence with the same walls, both agree to
// within the matching energy cutoff; this makes the package a reference for
// the iterative solvers.
//
// The dense symmetric eigensolver costs O(m³) time and O(m²) memory for m
// interior points; keep m to a few thousand.
package spectrum
