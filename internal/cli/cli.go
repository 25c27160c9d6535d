// Package cli defines the radixbench command line.
package cli

import (
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
	"golang.org/x/sys/cpu"

	"github.com/exascience/parradix"
	"github.com/exascience/parradix/internal/bench"
	"github.com/exascience/parradix/internal/config"
	"github.com/exascience/parradix/internal/gen"
	"github.com/exascience/parradix/internal/seqio"
	"github.com/exascience/parradix/sort"
)

// Shared flag definitions
var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to a TOML configuration file; flags override its values",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level (trace, debug, info, warn, error)",
		Value: "info",
	}
	logJSONFlag = &cli.BoolFlag{
		Name:  "log-json",
		Usage: "Log in JSON format",
	}

	// Sort flags
	roundsFlag = &cli.IntFlag{
		Name:    "rounds",
		Aliases: []string{"r"},
		Usage:   "Number of timed rounds",
		Value:   3,
	}
	checkFlag = &cli.BoolFlag{
		Name:    "check",
		Aliases: []string{"c"},
		Usage:   "Verify the result of the last round",
	}
	bottomUpFlag = &cli.BoolFlag{
		Name:  "bottom-up",
		Usage: "Sort least significant digit first",
	}
	sequentialFlag = &cli.BoolFlag{
		Name:  "sequential",
		Usage: "Execute all fan-outs sequentially",
	}
	workersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: "Number of worker threads (GOMAXPROCS); 0 keeps the default",
	}

	// Generate flags
	nFlag = &cli.IntFlag{
		Name:    "n",
		Aliases: []string{"size"},
		Usage:   "Number of elements",
		Value:   10000000,
	}
	maxFlag = &cli.UintFlag{
		Name:  "max",
		Usage: "Exclusive upper bound of the keys",
		Value: 100000,
	}
	distFlag = &cli.StringFlag{
		Name:  "dist",
		Usage: "Key distribution (uniform, exponential, almost-sorted)",
		Value: string(gen.Uniform),
	}
	pairsFlag = &cli.BoolFlag{
		Name:  "pairs",
		Usage: "Generate key/value pairs, with the original position as value",
	}
	seedFlag = &cli.Int64Flag{
		Name:  "seed",
		Usage: "Random seed; 0 seeds from the current time",
	}
	outputFlag = &cli.StringFlag{
		Name:     "output",
		Aliases:  []string{"o"},
		Usage:    "Path of the sequence file to write",
		Required: true,
	}
)

// loadConfig builds the configuration from the config file, if any, and the
// flags that were set explicitly.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-json") {
		cfg.Log.JSON = c.Bool("log-json")
	}
	if c.IsSet("rounds") {
		cfg.Sort.Rounds = c.Int("rounds")
	}
	if c.IsSet("check") {
		cfg.Sort.Check = c.Bool("check")
	}
	if c.IsSet("bottom-up") {
		cfg.Sort.BottomUp = c.Bool("bottom-up")
	}
	if c.IsSet("sequential") {
		cfg.Sort.Sequential = c.Bool("sequential")
	}
	if c.IsSet("workers") {
		cfg.Sort.Workers = c.Int("workers")
	}
	if c.IsSet("n") {
		cfg.Generate.N = c.Int("n")
	}
	if c.IsSet("max") {
		cfg.Generate.Max = uint32(c.Uint("max"))
	}
	if c.IsSet("dist") {
		cfg.Generate.Dist = c.String("dist")
	}
	if c.IsSet("pairs") {
		cfg.Generate.Pairs = c.Bool("pairs")
	}
	if c.IsSet("seed") {
		cfg.Generate.Seed = c.Int64("seed")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogging(cfg config.LogConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if cfg.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func logPlatform() {
	logrus.WithFields(logrus.Fields{
		"arch":      runtime.GOARCH,
		"workers":   parradix.NumWorkers(),
		"cacheLine": parradix.CacheLineSize,
		"avx2":      cpu.X86.HasAVX2,
		"avx512":    cpu.X86.HasAVX512F,
		"asimd":     cpu.ARM64.HasASIMD,
	}).Debug("platform")
}

func handleSortCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expected exactly one input file")
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	setupLogging(cfg.Log)
	if cfg.Sort.Workers > 0 {
		runtime.GOMAXPROCS(cfg.Sort.Workers)
	}
	logPlatform()

	path := c.Args().First()
	start := time.Now()
	seq, err := seqio.ReadFile(path)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"file": path,
		"kind": seq.Kind,
		"n":    seq.Len(),
		"read": time.Since(start),
	}).Info("input loaded")

	opts := sort.Options{BottomUp: cfg.Sort.BottomUp, Sequential: cfg.Sort.Sequential}
	stats := make(bench.SortStats)
	switch seq.Kind {
	case seqio.Ints:
		err = sortSequence(seq.Ints, func(x uint32) uint32 { return x }, opts, cfg.Sort, stats, bench.VerifyInts)
	case seqio.IntPairs:
		err = sortSequence(seq.Pairs, seqio.PairKey, opts, cfg.Sort, stats, bench.VerifyPairs)
	default:
		err = errors.Errorf("input file not of right type: %v", seq.Kind)
	}
	if err != nil {
		return err
	}
	return bench.ReportStats(stats, c.App.Writer)
}

func sortSequence[E any](
	control []E,
	key func(E) uint32,
	opts sort.Options,
	cfg config.SortConfig,
	stats bench.SortStats,
	verify func(orig, sorted []E) error,
) error {
	m := int(sort.MaxKey(control, key)) + 1
	scratch := sort.NewScratch[E](len(control))
	logrus.WithFields(logrus.Fields{
		"keyRange": m,
		"scratch":  scratch.Size(),
	}).Debug("scratch allocated")

	result := bench.Run("radix sort", control, cfg.Rounds, stats, func(data []E) {
		sort.IntegerSortWith(data, m, key, nil, scratch, opts)
	})
	if !cfg.Check {
		return nil
	}
	if err := verify(control, result); err != nil {
		return errors.Wrap(err, "FAIL")
	}
	logrus.Info("array is sorted!")
	return nil
}

func handleGenerateCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	setupLogging(cfg.Log)

	g := cfg.Generate
	if g.Seed == 0 {
		g.Seed = time.Now().UnixNano()
	}
	dist, err := gen.ParseDistribution(g.Dist)
	if err != nil {
		return err
	}
	seq, err := gen.Sequence(dist, g.N, g.Max, g.Seed, g.Pairs)
	if err != nil {
		return err
	}
	path := c.String("output")
	if err := seqio.WriteFile(path, seq); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"file": path,
		"kind": seq.Kind,
		"n":    seq.Len(),
		"dist": dist,
		"seed": g.Seed,
	}).Info("input generated")
	return nil
}

var App = &cli.App{
	Name:      "radixbench",
	Usage:     "Benchmark the parallel radix sort on sequence files",
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Flags: []cli.Flag{
		configFlag,
		logLevelFlag,
		logJSONFlag,
	},
	Commands: []*cli.Command{
		{
			Name:      "sort",
			Usage:     "Sort a sequence file repeatedly and report timings",
			ArgsUsage: "<inFile>",
			Flags: []cli.Flag{
				roundsFlag,
				checkFlag,
				bottomUpFlag,
				sequentialFlag,
				workersFlag,
			},
			Action: handleSortCommand,
		},
		{
			Name:  "generate",
			Usage: "Write a random sequence file",
			Flags: []cli.Flag{
				nFlag,
				maxFlag,
				distFlag,
				pairsFlag,
				seedFlag,
				outputFlag,
			},
			Action: handleGenerateCommand,
		},
	},
}
