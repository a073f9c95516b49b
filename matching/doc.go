// Package matching solves the one-dimensional time-independent Schrödinger
// equation with the matching method.
//
// 🚀 How it works
//
//	Two trial wavefunctions are integrated inward with the shared
//	finite-difference recurrence: a left branch from XMin and a right branch
//	from XMax (stepping with −h). Both vanish on their boundary and start
//	with unit slope:
//
//	    left:  ψ(XMin) = 0, ψ(XMin + h) = h
//	    right: ψ(XMax) = 0, ψ(XMax − h) = h
//
//	At the interior grid index MatchIndex the branches are compared through
//	the scale-invariant Wronskian
//
//	    W = (ψL·ψR' − ψR·ψL') / √((ψL² + ψL'²)(ψR² + ψR'²))
//
//	with central-difference derivatives. W vanishes exactly when the two
//	branches are proportional, i.e. at an eigen-energy, and changes sign as
//	the energy crosses one. The outer loop is the same signed-step bisection
//	the shooting method uses, driven by the sign of W instead of the sign of
//	the terminal sample.
//
// ✨ Notes
//   - No symmetry is assumed: any potential on [XMin, XMax] with walls at the
//     domain edges works, so both parities come out of one solver.
//   - A branch whose magnitude passes DivergenceCutoff is rescaled in place;
//     branches are only defined up to a constant, so this never changes W.
//   - Points stitches the branches, rescaling the right one so the values
//     agree at MatchIndex.
//
// ⚙️ Usage:
//
//	cfg := matching.DefaultConfig()
//	cfg.Potential = func(x float64) float64 { return x * x / 2 }
//	s, err := matching.New(cfg)
//	if err != nil { … }
//	if err = s.Solve(); err != nil { … }
//	fmt.Println(s.Energy(), s.Mismatch())
//
// Complexity: O(passes · (XMax−XMin)/h) potential evaluations.
package matching
