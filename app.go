package main

import (
	"context"
	"net/http"
	"os"
	"reflect"
	"syscall"
	"time"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/memmaker/voxelworld/engine/util"
	"github.com/memmaker/voxelworld/game"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/encoding/json"
)

var _ = reflect.TypeOf(config{})

type config struct {
	Mode         string        `cli:"" env:"VOXELWORLD_MODE"          help:"What to do with the level (inspect|slice|heightmap|export|simulate)."`
	Level        string        `cli:"" env:"VOXELWORLD_LEVEL"         help:"Level file path or URL. The built-in demo level is used when empty."`
	CacheDir     string        `cli:"" env:"VOXELWORLD_CACHE_DIR"     help:"Directory that downloaded levels are stored in."`
	Physics      string        `cli:"" env:"VOXELWORLD_PHYSICS"       help:"JSON file that overrides the physics constants."`
	Out          string        `cli:"" env:"VOXELWORLD_OUT"           help:"Output file of the heightmap and export modes."`
	SaveLevel    string        `cli:"" env:"VOXELWORLD_SAVE_LEVEL"    help:"Also write the loaded level to this file."`
	SliceY       int           `cli:"" env:"VOXELWORLD_SLICE_Y"       help:"The Y layer printed by the slice mode."`
	Scale        int           `cli:"" env:"VOXELWORLD_SCALE"         help:"Upscaling factor of the heightmap."`
	Ticks        int           `cli:"" env:"VOXELWORLD_TICKS"         help:"Number of ticks run by the simulate mode."`
	TickDuration time.Duration `cli:"" env:"VOXELWORLD_TICK_DURATION" help:"Simulated time per tick."`
	ReportEvery  int           `cli:"" env:"VOXELWORLD_REPORT_EVERY"  help:"Log entity positions every n ticks."`
	MetricsAddr  string        `cli:"" env:"VOXELWORLD_METRICS_ADDR"  help:"Serve Prometheus metrics on this address while simulating."`
	LogLevel     string        `cli:"" env:"VOXELWORLD_LOG_LEVEL"     help:"Log level (debug|info|warning|error)."`
	LogIndent    bool          `cli:"" env:"VOXELWORLD_LOG_INDENT"    help:"Indent logs."`
	Help         bool          `cli:"" env:"-"                        help:"Show help."`
}

func main() {
	conf := config{
		Mode:         "inspect",
		CacheDir:     os.TempDir(),
		SliceY:       4,
		Scale:        4,
		Ticks:        300,
		TickDuration: time.Second / 30,
		ReportEvery:  30,
		LogLevel:     logs.InfoLevel.String(),
	}

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Inspects, exports and simulates voxel levels.").
		Options(&conf)
	cli.Load()

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}
	util.GLOBAL_LOG_LEVEL = util.ParseLogLevel(conf.LogLevel)

	if err := run(ctx, conf); err != nil {
		logs.Fatal(err)
	}
}

func run(ctx context.Context, conf config) error {
	physicsConfig := game.DefaultPhysicsConfig()
	if conf.Physics != "" {
		loaded, err := game.LoadPhysicsConfig(conf.Physics)
		if err != nil {
			return err
		}
		physicsConfig = loaded
	}

	level, err := loadLevel(ctx, conf)
	if err != nil {
		return err
	}
	if conf.SaveLevel != "" {
		if err = game.SaveLevelFile(conf.SaveLevel, level); err != nil {
			return err
		}
		logs.WithTag("file", conf.SaveLevel).Info("level saved")
	}

	world, err := level.NewWorld(physicsConfig)
	if err != nil {
		return err
	}

	switch conf.Mode {
	case "inspect":
		return inspect(os.Stdout, level, world)
	case "slice":
		return printSlice(os.Stdout, world, int32(conf.SliceY))
	case "heightmap":
		return writeHeightmap(outputFile(conf, "heightmap.png"), world.Grid(), conf.Scale)
	case "export":
		return exportSurface(outputFile(conf, "surface.glb"), world.Grid())
	case "simulate":
		if conf.MetricsAddr != "" {
			go serveMetrics(conf.MetricsAddr)
		}
		return simulate(ctx, world, conf.Ticks, conf.TickDuration, conf.ReportEvery)
	}
	return errors.Errorf("unknown mode %q", conf.Mode)
}

func loadLevel(ctx context.Context, conf config) (game.LevelFile, error) {
	if conf.Level == "" {
		return game.DemoLevel(), nil
	}
	if _, err := os.Stat(conf.Level); err == nil {
		return game.LoadLevelFile(conf.Level)
	}
	localFile, err := game.FetchLevel(ctx, conf.Level, conf.CacheDir)
	if err != nil {
		return game.LevelFile{}, err
	}
	return game.LoadLevelFile(localFile)
}

func outputFile(conf config, fallback string) string {
	if conf.Out != "" {
		return conf.Out
	}
	return fallback
}

func serveMetrics(addr string) {
	var mux http.ServeMux
	mux.Handle("/metrics", promhttp.Handler())
	logs.WithTag("addr", addr).Info("serving metrics")
	if err := http.ListenAndServe(addr, &mux); err != nil {
		logs.Warn(errors.Wrap(err, "metrics server stopped"))
	}
}
