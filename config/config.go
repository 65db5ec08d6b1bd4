// Package config loads the YAML configuration of the knightsliars CLI:
// which lattice to build, how to run the solver and what to print.
//
//	lattice:
//	  kind: grid          # grid|torus|triangular|lattice|path|cycle|star|wheel|complete|empty|mask
//	  dims: [10, 10]
//	  # kind: mask takes a board instead of dims:
//	  # mask: ["###", "#.#", "###"]
//	  # connectivity: 4   # or 8
//	solver:
//	  formulation: standard
//	  time_limit: 30s
//	  presolve: true
//	  decompose: false
//	output:
//	  plot: true
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knightsliars/builder"
	"github.com/katalvlaran/knightsliars/gridgraph"
	"github.com/katalvlaran/knightsliars/solver"
)

var (
	// ErrInvalidConfig is returned by Validate and Load for unusable settings.
	ErrInvalidConfig = errors.New("config: invalid configuration")
	// ErrDimsArity marks the ErrInvalidConfig case of dims not matching
	// the lattice kind.
	ErrDimsArity = errors.New("config: dims do not fit lattice kind")
)

// Lattice kinds.
const (
	KindGrid       = "grid"
	KindTorus      = "torus"
	KindTriangular = "triangular"
	KindLattice    = "lattice"
	KindPath       = "path"
	KindCycle      = "cycle"
	KindStar       = "star"
	KindWheel      = "wheel"
	KindComplete   = "complete"
	KindEmpty      = "empty"
	KindMask       = "mask"
)

// Config is the root of the YAML file.
type Config struct {
	Lattice LatticeConfig `yaml:"lattice" json:"lattice"`
	Solver  SolverConfig  `yaml:"solver" json:"solver"`
	Output  OutputConfig  `yaml:"output" json:"output"`
}

// LatticeConfig selects the graph.
type LatticeConfig struct {
	Kind string `yaml:"kind" json:"kind"`
	Dims []int  `yaml:"dims" json:"dims"`
	// Mask and Connectivity are read for kind "mask" only.
	Mask         []string `yaml:"mask,omitempty" json:"mask,omitempty"`
	Connectivity int      `yaml:"connectivity,omitempty" json:"connectivity,omitempty"`
}

// SolverConfig maps onto solver options.
type SolverConfig struct {
	Formulation string        `yaml:"formulation" json:"formulation"`
	TimeLimit   time.Duration `yaml:"time_limit" json:"time_limit"`
	Presolve    bool          `yaml:"presolve" json:"presolve"`
	Decompose   bool          `yaml:"decompose" json:"decompose"`
}

// OutputConfig controls CLI printing.
type OutputConfig struct {
	Plot bool `yaml:"plot" json:"plot"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Lattice: LatticeConfig{Kind: KindGrid, Dims: []int{10, 10}},
		Solver: SolverConfig{
			Formulation: solver.Standard.String(),
			TimeLimit:   30 * time.Second,
			Presolve:    true,
		},
		Output: OutputConfig{Plot: true},
	}
}

// Load reads path over Default and validates the result. An empty path
// returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	// Dims replaces rather than merges.
	cfg.Lattice.Dims = nil
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(cfg.Lattice.Dims) == 0 {
		cfg.Lattice.Dims = Default().Lattice.Dims
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks kind/dims arity, formulation and time limit.
func (c Config) Validate() error {
	if _, err := c.Lattice.Constructor(); err != nil {
		return err
	}
	if _, err := solver.ParseFormulation(c.Solver.Formulation); err != nil {
		return fmt.Errorf("%w: solver.formulation: %v", ErrInvalidConfig, err)
	}
	if c.Solver.TimeLimit < 0 {
		return fmt.Errorf("%w: solver.time_limit %s is negative", ErrInvalidConfig, c.Solver.TimeLimit)
	}

	return nil
}

// arity returns the number of dims a kind takes; -1 means one or more.
func arity(kind string) (int, bool) {
	switch kind {
	case KindGrid, KindTorus, KindTriangular:
		return 2, true
	case KindLattice:
		return -1, true
	case KindPath, KindCycle, KindStar, KindWheel, KindComplete, KindEmpty:
		return 1, true
	case KindMask:
		return 0, true
	default:
		return 0, false
	}
}

func dimsWanted(n int) string {
	switch n {
	case -1:
		return "one or more dims"
	case 1:
		return "1 dim"
	default:
		return fmt.Sprintf("%d dims", n)
	}
}

// Constructor maps the lattice section onto a builder constructor.
// Size limits of the individual constructors are enforced at build time.
func (l LatticeConfig) Constructor() (builder.Constructor, error) {
	want, ok := arity(l.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: unknown lattice.kind %q", ErrInvalidConfig, l.Kind)
	}
	if l.Kind == KindMask {
		return l.maskConstructor()
	}
	if (want < 0 && len(l.Dims) == 0) || (want > 0 && len(l.Dims) != want) {
		return nil, fmt.Errorf("%w: %w: %q takes %s, got %v", ErrInvalidConfig, ErrDimsArity, l.Kind, dimsWanted(want), l.Dims)
	}

	d := l.Dims
	switch l.Kind {
	case KindGrid:
		return builder.Grid(d[0], d[1]), nil
	case KindTorus:
		return builder.Torus(d[0], d[1]), nil
	case KindTriangular:
		return builder.Triangular(d[0], d[1]), nil
	case KindLattice:
		return builder.Lattice(d...), nil
	case KindPath:
		return builder.Path(d[0]), nil
	case KindCycle:
		return builder.Cycle(d[0]), nil
	case KindStar:
		return builder.Star(d[0]), nil
	case KindWheel:
		return builder.Wheel(d[0]), nil
	case KindComplete:
		return builder.Complete(d[0]), nil
	default:
		return builder.Empty(d[0]), nil
	}
}

func (l LatticeConfig) board() (*gridgraph.GridGraph, error) {
	conn := gridgraph.Conn4
	switch l.Connectivity {
	case 0, 4:
	case 8:
		conn = gridgraph.Conn8
	default:
		return nil, fmt.Errorf("%w: lattice.connectivity must be 4 or 8, got %d", ErrInvalidConfig, l.Connectivity)
	}
	gg, err := gridgraph.ParseMask(l.Mask, conn)
	if err != nil {
		return nil, fmt.Errorf("%w: lattice.mask: %v", ErrInvalidConfig, err)
	}

	return gg, nil
}

func (l LatticeConfig) maskConstructor() (builder.Constructor, error) {
	gg, err := l.board()
	if err != nil {
		return nil, err
	}
	g, err := gg.ToCoreGraph()
	if err != nil {
		return nil, fmt.Errorf("%w: lattice.mask: %v", ErrInvalidConfig, err)
	}

	return builder.FromGraph(g), nil
}

// IsPlanar reports whether vertex IDs are "r,c" coordinates that
// render.TextPlot can draw, returning the window size.
func (l LatticeConfig) IsPlanar() (rows, cols int, ok bool) {
	switch l.Kind {
	case KindGrid, KindTorus, KindTriangular, KindLattice:
		if len(l.Dims) == 2 {
			return l.Dims[0], l.Dims[1], true
		}
	case KindMask:
		if gg, err := l.board(); err == nil {
			return gg.Height, gg.Width, true
		}
	}

	return 0, 0, false
}

// SolverOptions translates the solver section. Call after Validate.
func (s SolverConfig) SolverOptions() []solver.Option {
	f, _ := solver.ParseFormulation(s.Formulation)
	opts := []solver.Option{solver.WithFormulation(f), solver.WithTimeLimit(s.TimeLimit)}
	if s.Presolve {
		opts = append(opts, solver.WithPresolve())
	}
	if s.Decompose {
		opts = append(opts, solver.WithDecompose())
	}

	return opts
}
