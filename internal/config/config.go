// Package config reads the TOML run description used by cmd/primmst: log
// level, MST method and the input graph.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvlath-mst/builder"
	"github.com/katalvlaran/lvlath-mst/core"
)

var (
	// ErrInvalid indicates a value outside its allowed set or range.
	ErrInvalid = errors.New("config: invalid value")

	// ErrUnknownKey indicates the file holds keys that map to no field.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Run is the top-level document.
type Run struct {
	LevelString string    `toml:"log_level"`
	Method      string    `toml:"method"`
	Input       GraphConf `toml:"graph"`
}

// GraphConf describes the input graph. Each edge is [src, dest, weight].
type GraphConf struct {
	Vertices     int       `toml:"vertices"`
	Root         int       `toml:"root"`
	AllowPartial bool      `toml:"allow_partial"`
	AllowLoops   bool      `toml:"allow_loops"`
	Edges        [][]int64 `toml:"edges"`
}

// Default returns a Run with info logging, Prim and an empty graph.
func Default() *Run {
	return &Run{
		LevelString: "info",
		Method:      "prim",
		Input: GraphConf{
			Root:  0,
			Edges: [][]int64{},
		},
	}
}

// StringToLevel maps the log_level values accepted in a run file to zap levels.
var StringToLevel = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
	"fatal": zapcore.FatalLevel,
}

var methods = map[string]bool{
	"prim":    true,
	"kruskal": true,
}

// Load decodes the file at path over Default(). The result is not validated.
func Load(path string) (*Run, error) {
	conf := Default()
	md, err := toml.DecodeFile(path, conf)
	if err != nil {
		return nil, fmt.Errorf("config: couldn't read %s (%w)", path, err)
	}
	if err = checkUndecoded(md); err != nil {
		return nil, err
	}

	return conf, nil
}

// Decode is Load for an in-memory document.
func Decode(doc string) (*Run, error) {
	conf := Default()
	md, err := toml.Decode(doc, conf)
	if err != nil {
		return nil, fmt.Errorf("config: couldn't decode (%w)", err)
	}
	if err = checkUndecoded(md); err != nil {
		return nil, err
	}

	return conf, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}

	return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
}

// Validate checks every field. Edge endpoints are checked here so that a bad
// file is reported with its edge index rather than a bare core error.
func (r *Run) Validate() error {
	if _, ok := StringToLevel[r.LevelString]; !ok {
		return fmt.Errorf("log_level %q: %w", r.LevelString, ErrInvalid)
	}
	if !methods[r.Method] {
		return fmt.Errorf("method %q: %w", r.Method, ErrInvalid)
	}

	g := r.Input
	if g.AllowPartial && r.Method != "prim" {
		return fmt.Errorf("graph.allow_partial is prim-only, method is %q: %w", r.Method, ErrInvalid)
	}
	if g.Vertices < 1 {
		return fmt.Errorf("graph.vertices %d: %w", g.Vertices, ErrInvalid)
	}
	if g.Root < 0 || g.Root >= g.Vertices {
		return fmt.Errorf("graph.root %d not in [0,%d): %w", g.Root, g.Vertices, ErrInvalid)
	}
	for i, e := range g.Edges {
		if len(e) != 3 {
			return fmt.Errorf("graph.edges[%d]: want [src, dest, weight], got %d values: %w", i, len(e), ErrInvalid)
		}
		for _, v := range e[:2] {
			if v < 0 || v >= int64(g.Vertices) {
				return fmt.Errorf("graph.edges[%d]: vertex %d not in [0,%d): %w", i, v, g.Vertices, ErrInvalid)
			}
		}
		if e[0] == e[1] && !g.AllowLoops {
			return fmt.Errorf("graph.edges[%d]: self-loop on %d without allow_loops: %w", i, e[0], ErrInvalid)
		}
	}

	return nil
}

// Level returns the zap level for LevelString, defaulting to info.
func (r *Run) Level() zapcore.Level {
	if lvl, ok := StringToLevel[r.LevelString]; ok {
		return lvl
	}

	return zapcore.InfoLevel
}

// EdgeList converts the [src, dest, weight] triples to core edges.
// Call Validate first.
func (r *Run) EdgeList() []core.Edge {
	out := make([]core.Edge, 0, len(r.Input.Edges))
	for _, e := range r.Input.Edges {
		out = append(out, core.Edge{From: int(e[0]), To: int(e[1]), Weight: e[2]})
	}

	return out
}

// SetGraph replaces the graph section with n vertices and the given edges.
func (r *Run) SetGraph(n int, edges []core.Edge) {
	r.Input.Vertices = n
	r.Input.Edges = make([][]int64, 0, len(edges))
	for _, e := range edges {
		r.Input.Edges = append(r.Input.Edges, []int64{int64(e.From), int64(e.To), e.Weight})
	}
}

// Graph validates r and builds the described graph.
func (r *Run) Graph() (*core.Graph, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	var gopts []core.GraphOption
	if r.Input.AllowLoops {
		gopts = append(gopts, core.WithLoops())
	}

	return builder.BuildGraph(r.Input.Vertices, gopts, nil, builder.Edges(r.EdgeList()))
}
