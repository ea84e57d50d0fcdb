// Command hopcroftkarp reads a bipartite graph and prints the size of its
// maximum matching.
//
// With no flags it behaves like the classic assignment solver: read
// "n m" and an n×m 0/1 matrix from stdin, print one integer.
//
//	$ printf '2 1\n1\n1\n' | hopcroftkarp
//	1
//
//	$ hopcroftkarp --format edges --input jobs.txt --pairs
//	3
//	1 - 2
//	2 - 1
//	3 - 3
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/bimatch/config"
	"github.com/katalvlaran/bimatch/matching"
	"github.com/katalvlaran/bimatch/metrics"
	"github.com/katalvlaran/bimatch/reader"
)

const (
	ConfigFlag   = "config"
	InputFlag    = "input"
	FormatFlag   = "format"
	StrategyFlag = "strategy"
	PairsFlag    = "pairs"
	LogLevelFlag = "log-level"
	MetricsFlag  = "metrics-file"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "hopcroftkarp:", err)
		os.Exit(1)
	}
}

// newApp wires the command to the given streams.
func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "hopcroftkarp",
		Usage:     "maximum-cardinality bipartite matching",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    ConfigFlag,
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
			},
			&cli.StringFlag{
				Name:    InputFlag,
				Aliases: []string{"i"},
				Usage:   "graph file, - for stdin",
			},
			&cli.StringFlag{
				Name:    FormatFlag,
				Aliases: []string{"f"},
				Usage:   "input format: matrix, edges or yaml",
			},
			&cli.StringFlag{
				Name:  StrategyFlag,
				Usage: "augmenting path search: iterative or recursive",
			},
			&cli.BoolFlag{
				Name:    PairsFlag,
				Aliases: []string{"p"},
				Usage:   "print matched pairs after the size",
			},
			&cli.StringFlag{
				Name:  LogLevelFlag,
				Usage: "debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  MetricsFlag,
				Usage: "write Prometheus metrics to this file after the run",
			},
		},
		Action: run,
	}
}

// resolveConfig layers flags over the optional config file over defaults.
func resolveConfig(cCtx *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := cCtx.String(ConfigFlag); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	if cCtx.IsSet(InputFlag) {
		cfg.Input = cCtx.String(InputFlag)
	}
	if cCtx.IsSet(FormatFlag) {
		cfg.Format = cCtx.String(FormatFlag)
	}
	if cCtx.IsSet(StrategyFlag) {
		cfg.Strategy = cCtx.String(StrategyFlag)
	}
	if cCtx.IsSet(PairsFlag) {
		cfg.PrintPairs = cCtx.Bool(PairsFlag)
	}
	if cCtx.IsSet(LogLevelFlag) {
		cfg.LogLevel = cCtx.String(LogLevelFlag)
	}
	if cCtx.IsSet(MetricsFlag) {
		cfg.MetricsFile = cCtx.String(MetricsFlag)
	}

	return cfg, cfg.Validate()
}

func run(cCtx *cli.Context) error {
	cfg, err := resolveConfig(cCtx)
	if err != nil {
		return err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	in := cCtx.App.Reader
	if cfg.Input != config.StdinPath {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	g, err := reader.Read(cfg.InputFormat(), in)
	if err != nil {
		logger.Error("invalid graph", zap.String("input", cfg.Input), zap.Error(err))
		return err
	}
	logger.Info("graph loaded",
		zap.String("input", cfg.Input),
		zap.Int("left", g.Left()),
		zap.Int("right", g.Right()),
		zap.Int("edges", g.Size()))

	opts := []matching.Option{
		matching.WithStrategy(cfg.MatchingStrategy()),
		matching.WithLogger(logger),
	}
	reg, collector, err := newMetrics(cfg.MetricsFile)
	if err != nil {
		return err
	}
	if collector != nil {
		opts = append(opts, matching.WithObserver(collector))
	}

	e, err := matching.New(g, opts...)
	if err != nil {
		return err
	}
	res, err := e.Run(cCtx.Context)
	if err != nil {
		return err
	}
	logger.Info("matching computed", zap.Int("size", res.Size), zap.Int("rounds", res.Rounds))

	out := cCtx.App.Writer
	fmt.Fprintln(out, res.Size)
	if cfg.PrintPairs {
		for _, p := range res.Pairs {
			fmt.Fprintf(out, "%d - %d\n", p.Left, p.Right)
		}
	}

	if reg != nil {
		if err = metrics.WriteTextfile(cfg.MetricsFile, reg); err != nil {
			return err
		}
		logger.Debug("metrics written", zap.String("path", cfg.MetricsFile))
	}

	return nil
}

// newMetrics builds a registry and collector when a metrics file is
// configured; both are nil otherwise.
func newMetrics(path string) (*prometheus.Registry, *metrics.Collector, error) {
	if path == "" {
		return nil, nil, nil
	}
	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return nil, nil, err
	}

	return reg, collector, nil
}
