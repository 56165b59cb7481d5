// primmst computes the minimum spanning tree of a graph described in a TOML
// file (or the built-in reference graph) and prints one "parent - child"
// line per tree edge followed by the total weight.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvlath-mst/builder"
	"github.com/katalvlaran/lvlath-mst/internal/config"
	"github.com/katalvlaran/lvlath-mst/prim_kruskal"
)

var errNoInput = errors.New("no input graph: pass --config or --demo")

type flags struct {
	configPath string
	root       int
	method     string
	level      string
	partial    bool
	demo       bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "primmst:", err)
			os.Exit(1)
		}
	}
}

// run parses args, builds the graph, computes the tree and writes it to out.
// Log output goes to errOut.
func run(args []string, out, errOut io.Writer) error {
	// 1) Flags.
	var f flags
	fs := pflag.NewFlagSet("primmst", pflag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVarP(&f.configPath, "config", "c", "", "TOML file describing the run")
	fs.IntVarP(&f.root, "root", "r", 0, "start vertex for Prim (overrides the file)")
	fs.StringVarP(&f.method, "method", "m", "", "prim or kruskal (overrides the file)")
	fs.StringVarP(&f.level, "log-level", "l", "", "debug, info, warn, error or fatal (overrides the file)")
	fs.BoolVar(&f.partial, "partial", false, "prim only: return the root's component instead of failing on a disconnected graph")
	fs.BoolVar(&f.demo, "demo", false, "use the built-in nine-vertex reference graph")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// 2) Configuration: file or demo, then flag overrides.
	conf, err := resolve(fs, f)
	if err != nil {
		return err
	}
	if err = conf.Validate(); err != nil {
		return err
	}

	// 3) Logger.
	logger := newLogger(conf, errOut)
	defer func() { _ = logger.Sync() }()

	// 4) Graph and tree.
	g, err := conf.Graph()
	if err != nil {
		logger.Error("build graph", zap.Error(err))
		return err
	}
	logger.Info("graph loaded",
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.String("method", conf.Method),
		zap.Int("root", conf.Input.Root))

	extra := []prim_kruskal.Option{prim_kruskal.WithLogger(logger)}
	if conf.Input.AllowPartial {
		extra = append(extra, prim_kruskal.WithAllowPartial())
	}
	edges, total, err := prim_kruskal.Compute(g,
		prim_kruskal.MSTOptions{Method: conf.Method, Root: conf.Input.Root}, extra...)
	if err != nil {
		logger.Error("compute MST", zap.Error(err))
		return err
	}

	// 5) Output.
	for _, e := range edges {
		fmt.Fprintf(out, "%d - %d\n", e.From, e.To)
	}
	fmt.Fprintf(out, "Total: %d\n", total)
	logger.Info("done", zap.Int("tree_edges", len(edges)), zap.Int64("total", total))

	return nil
}

// resolve loads the base configuration and applies explicitly set flags.
func resolve(fs *pflag.FlagSet, f flags) (*config.Run, error) {
	var (
		conf *config.Run
		err  error
	)
	switch {
	case f.configPath != "":
		if conf, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	case f.demo:
		conf = config.Default()
		conf.SetGraph(builder.ReferenceVertices, builder.ReferenceEdges())
	default:
		return nil, errNoInput
	}

	if fs.Changed("root") {
		conf.Input.Root = f.root
	}
	if fs.Changed("method") {
		conf.Method = f.method
	}
	if fs.Changed("log-level") {
		conf.LevelString = f.level
	}
	if f.partial {
		conf.Input.AllowPartial = true
	}

	return conf, nil
}

// newLogger builds a console zap logger at the configured level writing to w.
func newLogger(conf *config.Run, w io.Writer) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""

	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(conf.Level()),
	))
}
