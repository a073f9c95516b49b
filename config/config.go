package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/katalvlaran/schrodinger/matching"
	"github.com/katalvlaran/schrodinger/potential"
	"github.com/katalvlaran/schrodinger/shooting"
	"github.com/katalvlaran/schrodinger/variational"
	"github.com/katalvlaran/schrodinger/wavefunction"
)

// EnvPrefix prefixes environment overrides installed by Load.
const EnvPrefix = "SCHRODINGER"

// Load returns a viper registry with environment overrides enabled and, if
// path is non-empty, the contents of that file (format from its extension).
func Load(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	return v, nil
}

// Shooting reads a shooting.Config under key.
func Shooting(v *viper.Viper, key string, p wavefunction.Potential) (shooting.Config, error) {
	var (
		cfg    = shooting.DefaultConfig()
		r      = reader{v: v, prefix: key}
		parity string
	)
	cfg.Potential = p

	r.floatVar("x_max", &cfg.XMax)
	r.floatVar("step_size", &cfg.StepSize)
	r.floatVar("initial_energy", &cfg.InitialEnergy)
	r.floatVar("initial_energy_step", &cfg.InitialEnergyStep)
	r.floatVar("divergence_cutoff", &cfg.DivergenceCutoff)
	r.floatVar("energy_step_cutoff", &cfg.EnergyStepCutoff)
	r.intVar("max_iterations", &cfg.MaxIterations)
	if r.stringVar("parity", &parity) && r.err == nil {
		cfg.Parity, r.err = wavefunction.ParseParity(parity)
	}

	return cfg, r.err
}

// Matching reads a matching.Config under key. Without match_index or
// match_x the join sits one third into the configured domain.
func Matching(v *viper.Viper, key string, p wavefunction.Potential) (matching.Config, error) {
	var (
		cfg = matching.DefaultConfig()
		r   = reader{v: v, prefix: key}
		mx  float64
	)
	cfg.Potential = p

	r.floatVar("x_min", &cfg.XMin)
	r.floatVar("x_max", &cfg.XMax)
	r.floatVar("step_size", &cfg.StepSize)
	r.floatVar("initial_energy", &cfg.InitialEnergy)
	r.floatVar("initial_energy_step", &cfg.InitialEnergyStep)
	r.floatVar("energy_step_cutoff", &cfg.EnergyStepCutoff)
	r.floatVar("divergence_cutoff", &cfg.DivergenceCutoff)
	r.intVar("max_iterations", &cfg.MaxIterations)

	var (
		hasIndex = r.intVar("match_index", &cfg.MatchIndex)
		hasX     = r.floatVar("match_x", &mx)
	)
	switch {
	case r.err != nil:
	case hasIndex && hasX:
		r.err = fmt.Errorf("%w: config: %s: match_index and match_x are exclusive", wavefunction.ErrInvalidConfig, key)
	case hasX:
		cfg.MatchIndex = cfg.IndexAt(mx)
	case !hasIndex:
		cfg.MatchIndex = cfg.IndexAt(cfg.XMin + (cfg.XMax-cfg.XMin)/3)
	}

	return cfg, r.err
}

// Variational reads a variational.Config under key.
func Variational(v *viper.Viper, key string, p wavefunction.Potential) (variational.Config, error) {
	var (
		cfg    = variational.DefaultConfig()
		r      = reader{v: v, prefix: key}
		family string
		center float64
	)
	cfg.Potential = p

	r.floatVar("x_min", &cfg.XMin)
	r.floatVar("x_max", &cfg.XMax)
	r.floatVar("step_size", &cfg.StepSize)
	r.floatVar("alpha_min", &cfg.AlphaMin)
	r.floatVar("alpha_max", &cfg.AlphaMax)
	r.intVar("scan_points", &cfg.ScanPoints)
	r.floatVar("initial_spread", &cfg.InitialSpread)
	r.floatVar("step_cutoff", &cfg.StepCutoff)
	r.intVar("patience", &cfg.Patience)
	r.intVar("iterations", &cfg.Iterations)
	r.int64Var("seed", &cfg.Seed)
	r.boolVar("polish", &cfg.Polish)

	hasFamily := r.stringVar("family", &family)
	hasCenter := r.floatVar("center", &center)
	if r.err == nil && (hasFamily || hasCenter) {
		cfg.Family, r.err = variational.ParseFamily(family, center)
	}

	return cfg, r.err
}

// Potential builds a model potential under key. kind defaults to harmonic.
//
// Parameters and defaults: harmonic omega = 1; box width = 1,
// depth = 1e5; lennard_jones epsilon = 1, sigma = 1.
func Potential(v *viper.Viper, key string) (wavefunction.Potential, error) {
	var (
		r     = reader{v: v, prefix: key}
		kind  = "harmonic"
		omega = 1.0
		width = 1.0
		depth = 1e5
		eps   = 1.0
		sigma = 1.0
	)
	r.stringVar("kind", &kind)
	r.floatVar("omega", &omega)
	r.floatVar("width", &width)
	r.floatVar("depth", &depth)
	r.floatVar("epsilon", &eps)
	r.floatVar("sigma", &sigma)
	if r.err != nil {
		return nil, r.err
	}

	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "harmonic":
		return potential.Harmonic(omega), nil
	case "box":
		return potential.Box(width, depth), nil
	case "lennard_jones":
		return potential.LennardJones(eps, sigma), nil
	default:
		return nil, fmt.Errorf("%w: config: %s: unknown potential kind %q", wavefunction.ErrInvalidConfig, r.key("kind"), kind)
	}
}

// reader copies set keys into typed destinations and keeps the first
// conversion error. Each method reports whether the key was set.
type reader struct {
	v      *viper.Viper
	prefix string
	err    error
}

func (r *reader) key(name string) string {
	if r.prefix == "" {
		return name
	}

	return r.prefix + "." + name
}

// lookup returns the raw value of name if it is set and no error is pending.
func (r *reader) lookup(name string) (any, bool) {
	k := r.key(name)
	if r.err != nil || !r.v.IsSet(k) {
		return nil, false
	}

	return r.v.Get(k), true
}

func (r *reader) fail(name string, err error) {
	r.err = fmt.Errorf("%w: config: %s: %v", wavefunction.ErrInvalidConfig, r.key(name), err)
}

func (r *reader) floatVar(name string, dst *float64) bool {
	raw, ok := r.lookup(name)
	if !ok {
		return false
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		r.fail(name, err)

		return true
	}
	*dst = f

	return true
}

func (r *reader) intVar(name string, dst *int) bool {
	raw, ok := r.lookup(name)
	if !ok {
		return false
	}
	n, err := cast.ToIntE(raw)
	if err != nil {
		r.fail(name, err)

		return true
	}
	*dst = n

	return true
}

func (r *reader) int64Var(name string, dst *int64) bool {
	raw, ok := r.lookup(name)
	if !ok {
		return false
	}
	n, err := cast.ToInt64E(raw)
	if err != nil {
		r.fail(name, err)

		return true
	}
	*dst = n

	return true
}

func (r *reader) boolVar(name string, dst *bool) bool {
	raw, ok := r.lookup(name)
	if !ok {
		return false
	}
	b, err := cast.ToBoolE(raw)
	if err != nil {
		r.fail(name, err)

		return true
	}
	*dst = b

	return true
}

func (r *reader) stringVar(name string, dst *string) bool {
	raw, ok := r.lookup(name)
	if !ok {
		return false
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		r.fail(name, err)

		return true
	}
	*dst = s

	return true
}
