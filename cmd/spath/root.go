// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spath/bfs"
	"github.com/katalvlaran/spath/config"
	"github.com/katalvlaran/spath/core"
	"github.com/katalvlaran/spath/dijkstra"
	"github.com/katalvlaran/spath/matrix"
	"github.com/katalvlaran/spath/report"
)

// flags holds raw command-line values; cobra fills it.
type flags struct {
	example     bool
	matrixPath  string
	source      int
	target      int
	oneBased    bool
	sentinel    int64
	frontier    string
	json        bool
	configPath  string
	color       string
	maxDistance int64
	verbose     bool
}

func newRootCmd(e *env) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "spath",
		Short: "Single-source shortest paths over a weighted cost matrix",
		Long: `spath reads a square cost matrix (one row per line, "inf" or "-" for no edge),
runs Dijkstra's algorithm from a source vertex and prints the distance and
path to every vertex, or to a single --target.`,
		Args: func(cmd *cobra.Command, args []string) error {
			return asInput(cobra.NoArgs(cmd, args))
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, e, f)
		},
	}
	cmd.SetIn(e.stdin)
	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return asInput(err) })

	fl := cmd.Flags()
	fl.BoolVar(&f.example, "example", false, "use the built-in 9-vertex example graph")
	fl.StringVarP(&f.matrixPath, "matrix", "m", "", "cost matrix file (- for stdin)")
	fl.IntVarP(&f.source, "source", "s", 0, "source vertex")
	fl.IntVarP(&f.target, "target", "t", 0, "report only this target vertex")
	fl.BoolVar(&f.oneBased, "one-based", false, "vertex indices in flags and output start at 1")
	fl.Int64Var(&f.sentinel, "sentinel", 0, `numeric cell value meaning "no edge" (e.g. 999 or -1)`)
	fl.StringVar(&f.frontier, "frontier", "", "priority structure: heap or linear")
	fl.BoolVar(&f.json, "json", false, "print JSON instead of text")
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	fl.StringVar(&f.color, "color", "", "styled output: auto, always or never")
	fl.Int64Var(&f.maxDistance, "max-distance", 0, "ignore vertices farther than this (0 = no limit)")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging to stderr")

	return cmd
}

// settings is the merged view of config file and flags.
type settings struct {
	cfg       config.Config
	hasSource bool
	source    int // zero-based
	hasTarget bool
	target    int // zero-based
}

func resolve(cmd *cobra.Command, f flags) (settings, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return settings{}, asInput(err)
	}

	changed := cmd.Flags().Changed
	if changed("frontier") {
		cfg.Frontier = f.frontier
	}
	if changed("sentinel") {
		v := f.sentinel
		cfg.Sentinel = &v
	}
	if changed("one-based") {
		cfg.OneBased = f.oneBased
	}
	if changed("json") {
		cfg.Format = config.FormatText
		if f.json {
			cfg.Format = config.FormatJSON
		}
	}
	if changed("color") {
		cfg.Color = f.color
	}
	if changed("max-distance") {
		cfg.MaxDistance = f.maxDistance
	}
	if err := cfg.Validate(); err != nil {
		return settings{}, asInput(err)
	}

	// unset indices keep the zero-based default whatever the label base
	s := settings{cfg: cfg, hasSource: changed("source"), hasTarget: changed("target")}
	if s.hasSource {
		s.source = toZeroBased(f.source, cfg.OneBased)
	}
	if s.hasTarget {
		s.target = toZeroBased(f.target, cfg.OneBased)
	}

	return s, nil
}

func run(cmd *cobra.Command, e *env, f flags) error {
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(e.stderr, &slog.HandlerOptions{Level: level}))

	if f.example && f.matrixPath != "" {
		return asInput(fmt.Errorf("--example and --matrix are mutually exclusive"))
	}
	s, err := resolve(cmd, f)
	if err != nil {
		return err
	}

	g, err := loadGraph(e, f, &s, log)
	if err != nil {
		return err
	}
	log.Debug("graph loaded", "vertices", g.Order(), "edges", g.EdgeCount(), "source", s.source)

	opts := []dijkstra.Option{dijkstra.WithFrontier(s.cfg.Strategy())}
	if s.cfg.MaxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(s.cfg.MaxDistance))
	}

	start := time.Now()
	res, err := dijkstra.ShortestPaths(g, s.source, opts...)
	if err != nil {
		return asInput(fmt.Errorf("source %s: %w", label(s.source, s.cfg.OneBased), err))
	}
	log.Debug("shortest paths computed", "frontier", s.cfg.Frontier, "elapsed", time.Since(start))
	if log.Enabled(cmd.Context(), slog.LevelDebug) {
		if hops, err := bfs.BFS(g, s.source, bfs.WithContext(cmd.Context())); err == nil {
			log.Debug("reachable from source", "vertices", len(hops.Order))
		}
	}

	var ropts []report.Option
	if s.hasTarget {
		if !core.InRange(s.target, g.Order()) {
			return asInput(fmt.Errorf("target %s: %w", label(s.target, s.cfg.OneBased), dijkstra.ErrVertexOutOfRange))
		}
		ropts = append(ropts, report.WithTarget(s.target))
		if !res.Reachable(s.target) {
			log.Info("target unreachable", "target", label(s.target, s.cfg.OneBased))
		}
	}
	if s.cfg.OneBased {
		ropts = append(ropts, report.WithOneBased())
	}

	if s.cfg.Format == config.FormatJSON {
		err = report.JSON(e.stdout, res, ropts...)
	} else {
		ropts = append(ropts, report.WithStyle(styled(e, s.cfg.Color)))
		err = report.Text(e.stdout, res, ropts...)
	}
	if err != nil {
		log.Error("report failed", "err", err)
		return err
	}

	return nil
}

// weightedGraph is what the loader hands to the engine.
type weightedGraph interface {
	core.Graph
	EdgeCount() int
}

// loadGraph picks the input: --example, --matrix, an interactive prompt when
// stdin is a terminal, or stdin otherwise.
func loadGraph(e *env, f flags, s *settings, log *slog.Logger) (weightedGraph, error) {
	var popts []matrix.Option
	if s.cfg.Sentinel != nil {
		popts = append(popts, matrix.WithSentinel(*s.cfg.Sentinel))
	}

	switch {
	case f.example:
		log.Debug("using built-in example")
		return matrix.Example(), nil

	case f.matrixPath == "-":
		log.Debug("reading matrix from stdin")
		return parse(matrix.Parse(e.stdin, popts...))

	case f.matrixPath != "":
		log.Debug("reading matrix", "path", f.matrixPath)
		file, err := os.Open(f.matrixPath)
		if err != nil {
			return nil, asInput(err)
		}
		defer file.Close()

		return parse(matrix.Parse(file, popts...))

	case e.terminal(e.stdin):
		return prompted(e, s, popts, log)

	default:
		log.Debug("reading matrix from piped stdin")
		return parse(matrix.Parse(e.stdin, popts...))
	}
}

func prompted(e *env, s *settings, popts []matrix.Option, log *slog.Logger) (weightedGraph, error) {
	a, err := e.prompter.Ask(!s.hasSource)
	if err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}
	if a.Source != "" {
		v, err := strconv.Atoi(strings.TrimSpace(a.Source))
		if err != nil {
			return nil, asInput(fmt.Errorf("source %q: %w", a.Source, err))
		}
		s.source = toZeroBased(v, s.cfg.OneBased)
		s.hasSource = true
	}
	if a.UseExample {
		log.Debug("using built-in example")
		return matrix.Example(), nil
	}
	if a.Order > 0 {
		popts = append(popts, matrix.WithOrder(a.Order))
	}

	return parse(matrix.ParseString(a.Matrix, popts...))
}

func parse(m *matrix.Costs, err error) (weightedGraph, error) {
	if err != nil {
		return nil, asInput(err)
	}

	return m, nil
}

func styled(e *env, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return e.terminal(e.stdout)
	}
}

func toZeroBased(v int, oneBased bool) int {
	if oneBased {
		return v - 1
	}

	return v
}

func label(v int, oneBased bool) string {
	if oneBased {
		return strconv.Itoa(v + 1)
	}

	return strconv.Itoa(v)
}
