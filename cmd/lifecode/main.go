package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/integrii/flaggy"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"lifecode/internal/census"
	"lifecode/internal/config"
	"lifecode/internal/term"
	"lifecode/pkg/life"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "lifecode:", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath, patternPath string
	o := config.DefaultOverrides()

	flaggy.SetName("lifecode")
	flaggy.SetDescription("two-state cellular automaton simulator")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&configPath, "c", "config", "TOML configuration file")
	flaggy.Int(&o.Width, "x", "width", "board width in cells")
	flaggy.Int(&o.Height, "y", "height", "board height in cells")
	flaggy.String(&o.Rule, "r", "rule", "preset name or base64 rule code ["+presetNames()+"]")
	flaggy.Int64(&o.Seed, "s", "seed", "seed for the initial random board")
	flaggy.Float64(&o.Density, "d", "density", "live probability per cell when seeding")
	flaggy.Int(&o.TPS, "t", "tps", "generations per second in the terminal player")
	flaggy.Int(&o.Generations, "g", "generations", "generations to run in headless mode")
	flaggy.Int(&o.LogEvery, "", "log-every", "headless progress log cadence, 0 disables")
	flaggy.String(&o.CensusOut, "", "census", "write a population plot here after a headless run")
	flaggy.Bool(&o.Headless, "H", "headless", "run without the terminal player")
	flaggy.String(&o.LogLevel, "l", "log-level", "log level (debug, info, warn, error)")
	flaggy.String(&patternPath, "p", "pattern", "seed pattern file, '#' marks live cells")
	flaggy.Parse()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.Merge(o)

	if patternPath != "" {
		rows, err := readPattern(patternPath)
		if err != nil {
			return err
		}
		cfg.World.Pattern = rows
	}

	world, err := life.NewWithConfig(cfg.Life())
	if err != nil {
		return err
	}
	if len(cfg.World.Pattern) > 0 {
		world.Load(life.ParsePattern(cfg.World.Pattern))
	} else {
		world.Reset(cfg.World.Seed)
	}

	log, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	if cfg.Run.Headless {
		return runHeadless(cfg, world, log)
	}

	ui, err := term.New(world, term.Options{
		RuleName: cfg.World.Rule,
		Seed:     cfg.World.Seed,
		TPS:      cfg.Display.TPS,
	})
	if err != nil {
		return err
	}
	log.Info("terminal player started",
		zap.String("rule", cfg.World.Rule),
		zap.Int64("seed", cfg.World.Seed),
	)
	err = ui.Run()
	log.Info("terminal player closed",
		zap.Int("generation", world.Generation()),
		zap.Int("population", world.Population()),
	)
	return err
}

// buildLogger picks the log destination for the run mode. The terminal
// player owns the screen, so interactive runs stay silent unless a log
// file is configured.
func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	if !cfg.Run.Headless && cfg.Logging.File == "" {
		return zap.NewNop(), nil
	}
	return newLogger(cfg.Logging)
}

func runHeadless(cfg *config.Config, world *life.World, log *zap.Logger) error {
	size := world.Size()
	log.Info("simulation started",
		zap.String("rule", cfg.World.Rule),
		zap.Int("width", size.W),
		zap.Int("height", size.H),
		zap.Int64("seed", cfg.World.Seed),
		zap.Int("population", world.Population()),
		zap.Int("generations", cfg.Run.Generations),
	)

	rec := census.NewRecorder()
	rec.Observe(world)
	for i := 0; i < cfg.Run.Generations; i++ {
		world.Step()
		rec.Observe(world)
		if cfg.Run.LogEvery > 0 && world.Generation()%cfg.Run.LogEvery == 0 {
			log.Info("progress",
				zap.Int("generation", world.Generation()),
				zap.Int("population", world.Population()),
			)
		}
		// An empty board only stays empty when the all-dead neighborhood
		// maps to dead, so check the rule before cutting the run short.
		if world.Population() == 0 && !world.Rule().Alive(0) {
			log.Info("board died out", zap.Int("generation", world.Generation()))
			break
		}
	}

	s := rec.Summarize()
	fields := []zap.Field{
		zap.Int("samples", s.Generations),
		zap.Int("min", s.Min),
		zap.Int("max", s.Max),
		zap.Float64("mean", s.Mean),
		zap.Float64("stddev", s.StdDev),
		zap.Int("final", s.Final),
	}
	if s.ExtinctAt >= 0 {
		fields = append(fields, zap.Int("extinct_at", s.ExtinctAt))
	}
	log.Info("census", fields...)

	if cfg.Run.CensusOut != "" {
		title := fmt.Sprintf("population, rule %s, seed %d", cfg.World.Rule, cfg.World.Seed)
		if err := rec.SavePlot(title, cfg.Run.CensusOut); err != nil {
			return fmt.Errorf("census plot: %w", err)
		}
		log.Info("census plot written", zap.String("path", cfg.Run.CensusOut))
	}
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
	}

	return zapCfg.Build()
}

func readPattern(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern %s: %w", path, err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n"), nil
}

func presetNames() string {
	all := life.Presets()
	names := make([]string, 0, len(all))
	for _, p := range all {
		names = append(names, p.Name)
	}
	return strings.Join(names, "|")
}
