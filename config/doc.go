// Package config builds solver configurations from a viper registry, so a
// solve can be described in a YAML/TOML/JSON file or in environment
// variables.
//
// ⚙️ Keys (snake_case, under a caller-chosen prefix):
//
//	shooting:
//	  x_max, step_size, initial_energy, initial_energy_step,
//	  divergence_cutoff, energy_step_cutoff, parity (even|odd),
//	  max_iterations
//	matching:
//	  x_min, x_max, step_size, initial_energy, initial_energy_step,
//	  energy_step_cutoff, divergence_cutoff, match_index | match_x,
//	  max_iterations
//	variational:
//	  x_min, x_max, step_size, family (gaussian|exponential|sech), center,
//	  alpha_min, alpha_max, scan_points, initial_spread, step_cutoff,
//	  patience, iterations, seed, polish
//	potential:
//	  kind (harmonic|box|lennard_jones), omega, width, depth, epsilon, sigma
//
// Missing keys keep the package defaults (DefaultConfig). A value of the
// wrong type, an unknown enum value, or both match_index and match_x fail
// with wavefunction.ErrInvalidConfig. Range checks stay with each solver's
// New.
//
// Load wires environment overrides: SCHRODINGER_MATCHING_STEP_SIZE
// overrides matching.step_size.
package config
