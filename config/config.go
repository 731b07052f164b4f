package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/homeostat/control"
	"github.com/katalvlaran/homeostat/gowers"
	"github.com/katalvlaran/homeostat/pathfind"
)

// ErrInvalid marks a configuration that cannot be used.
var ErrInvalid = errors.New("config: invalid configuration")

// DefaultCycles is the run length used when a file does not set one.
const DefaultCycles = 40

// validate is shared by every File; custom rules are registered in init.
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("encoding", validateEncoding)
}

// validateEncoding accepts the names understood by gowers.ParseEncoding.
func validateEncoding(fl validator.FieldLevel) bool {
	_, err := gowers.ParseEncoding(fl.Field().String())
	return err == nil
}

// File is the root of a configuration document.
type File struct {
	Cycles     int            `yaml:"cycles" validate:"gt=0"`
	Control    control.Config `yaml:"control"`
	Search     Search         `yaml:"search"`
	Grid       *Grid          `yaml:"grid,omitempty" validate:"required_without=Graph,excluded_with=Graph"`
	Graph      *Graph         `yaml:"graph,omitempty"`
	Strategies []Strategy     `yaml:"strategies,omitempty" validate:"dive"`
}

// Search holds the search engine settings.
type Search struct {
	HeuristicEnabled bool   `yaml:"heuristic_enabled"`
	History          int    `yaml:"history" validate:"gte=0,lte=4"` // 0 keeps loop.DefaultHistory
	MaxExpansions    int    `yaml:"max_expansions" validate:"gt=0"`
	Encoding         string `yaml:"encoding" validate:"encoding"`
}

// Grid describes a rectangular grid source. Cells, when present, fix the
// dimensions; otherwise Width×Height open cells are used. Maze replaces
// both with a generated maze whose entrance and exit become start and goal.
type Grid struct {
	Width         int      `yaml:"width,omitempty" validate:"gte=0"`
	Height        int      `yaml:"height,omitempty" validate:"gte=0"`
	Cells         []string `yaml:"cells,omitempty"`
	Connectivity  int      `yaml:"connectivity,omitempty" validate:"oneof=0 4 8"` // 0 means 8
	TerrainWeight float64  `yaml:"terrain_weight,omitempty" validate:"gte=0"`
	CutCorners    bool     `yaml:"cut_corners,omitempty"`
	Maze          bool     `yaml:"maze,omitempty"`
	Seed          int64    `yaml:"seed,omitempty"`
	Start         []int    `yaml:"start,flow,omitempty" validate:"omitempty,len=2"` // default top-left
	Goal          []int    `yaml:"goal,flow,omitempty" validate:"omitempty,len=2"`  // default bottom-right
}

// Graph describes an explicit graph source.
type Graph struct {
	Directed  bool   `yaml:"directed,omitempty"`
	RouteFlow bool   `yaml:"route_flow,omitempty"`
	Nodes     []Node `yaml:"nodes" validate:"min=2,dive"`
	Edges     []Edge `yaml:"edges" validate:"dive"`
	Start     string `yaml:"start" validate:"required"`
	Goal      string `yaml:"goal" validate:"required"`
}

// Node is a labelled graph node at (X, Y).
type Node struct {
	Label string  `yaml:"label" validate:"required"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

// Edge joins two labelled nodes. Capacity 0 means unbounded.
type Edge struct {
	From     string  `yaml:"from" validate:"required"`
	To       string  `yaml:"to" validate:"required"`
	Cost     float64 `yaml:"cost" validate:"gte=0"`
	Capacity int64   `yaml:"capacity,omitempty" validate:"gte=0"`
}

// Strategy is a named variant for comparative runs. Nil fields inherit
// the file-level settings.
type Strategy struct {
	Name             string          `yaml:"name" validate:"required"`
	Control          *control.Config `yaml:"control,omitempty"`
	History          *int            `yaml:"history,omitempty" validate:"omitempty,gte=0,lte=4"`
	HeuristicEnabled *bool           `yaml:"heuristic_enabled,omitempty"`
}

// Default returns the open 10×10 grid scenario: corner to corner,
// 8-connected, A* with a two-node history and the default controller.
func Default() File {
	return File{
		Cycles:  DefaultCycles,
		Control: control.DefaultConfig(),
		Search:  defaultSearch(),
		Grid:    DefaultGrid(),
	}
}

func defaultSearch() Search {
	return Search{
		HeuristicEnabled: true,
		History:          2,
		MaxExpansions:    pathfind.DefaultOptions().MaxExpansions,
		Encoding:         gowers.Heading.String(),
	}
}

// DefaultGrid returns an open 10×10 8-connected grid.
func DefaultGrid() *Grid {
	return &Grid{Width: 10, Height: 10, Connectivity: 8}
}

// DemoNetwork returns a File for the detour network: a direct S→T edge of
// cost 10 against a winding five-edge detour of cost 14, with target 0.85.
func DemoNetwork() File {
	return File{
		Cycles: 30,
		Control: control.Config{
			TargetNorm:       0.85,
			ProportionalGain: 5,
			DecayRate:        0.05,
			Tolerance:        0.1,
		},
		Search: Search{
			History:       2,
			MaxExpansions: pathfind.DefaultOptions().MaxExpansions,
			Encoding:      gowers.Heading.String(),
		},
		Graph: &Graph{
			RouteFlow: true,
			Nodes: []Node{
				{Label: "S"}, {Label: "T", X: 6}, {Label: "A", X: -2},
				{Label: "B", X: 5, Y: 2}, {Label: "C", X: 4, Y: -4}, {Label: "D", X: 1, Y: -2},
			},
			Edges: []Edge{
				{From: "S", To: "T", Cost: 10, Capacity: 5},
				{From: "S", To: "A", Cost: 3, Capacity: 5},
				{From: "A", To: "B", Cost: 3, Capacity: 5},
				{From: "B", To: "C", Cost: 3, Capacity: 5},
				{From: "C", To: "D", Cost: 3, Capacity: 5},
				{From: "D", To: "T", Cost: 2, Capacity: 5},
			},
			Start: "S",
			Goal:  "T",
		},
	}
}

// Load reads and validates the file at path.
func Load(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer fh.Close()

	return Decode(fh)
}

// Decode reads one YAML document from r over the defaults and validates it.
// An empty document yields Default().
func Decode(r io.Reader) (File, error) {
	f := Default()
	f.Grid = nil

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if f.Grid == nil && f.Graph == nil {
		f.Grid = DefaultGrid()
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}

	return f, nil
}

// Encode writes f as YAML.
func Encode(w io.Writer, f File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return enc.Close()
}

// Validate checks struct tags, then controller ranges for the file and for
// every strategy override.
func (f File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := f.Control.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	seen := make(map[string]bool, len(f.Strategies))
	for _, s := range f.Strategies {
		if seen[s.Name] {
			return fmt.Errorf("%w: duplicate strategy %q", ErrInvalid, s.Name)
		}
		seen[s.Name] = true
		if s.Control == nil {
			continue
		}
		if err := s.Control.Validate(); err != nil {
			return fmt.Errorf("%w: strategy %q: %w", ErrInvalid, s.Name, err)
		}
	}

	return nil
}

// Encoding returns the parsed search encoding.
func (f File) Encoding() gowers.Encoding {
	e, _ := gowers.ParseEncoding(f.Search.Encoding)
	return e
}
