package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	_ "github.com/silbinarywolf/preferdiscretegpu"

	"github.com/iburimskiy/waves-background/internal/canvas"
	"github.com/iburimskiy/waves-background/internal/config"
	"github.com/iburimskiy/waves-background/internal/game"
	"github.com/iburimskiy/waves-background/internal/wavesbg"
)

const (
	logDir      = "logs"
	logFileName = "waves.log"
)

var (
	flagConfig    = flag.String("config", "", "TOML config file")
	flagColors    = flag.String("colors", "", "comma separated CSS colors, e.g. \"#3e23ff,#3cfff2,#ff2362\"")
	flagWaves     = flag.Int("waves", 0, "number of waves")
	flagSpeed     = flag.Float64("speed", 0, "phase advance per tick")
	flagAmplitude = flag.Float64("amplitude", 0, "amplitude as a fraction of the spread")
	flagFrequency = flag.Float64("frequency", 0, "spatial frequency, radians per pixel")
	flagDebug     = flag.Bool("debug", false, "log to "+filepath.Join(logDir, logFileName)+" and show the debug overlay")
)

// setupLogging sends every logger to stderr, and also to the log file when
// debug is on. The returned file is nil without debug.
func setupLogging(debug bool) *os.File {
	var out io.Writer = os.Stderr
	var file *os.File

	if debug {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			log.Printf("failed to create %s: %v", logDir, err)
		} else if f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err != nil {
			log.Printf("failed to open log file: %v", err)
		} else {
			file = f
			out = io.MultiWriter(os.Stderr, f)
		}
	}

	log.SetOutput(out)
	config.InfoLogger.SetOutput(out)
	wavesbg.ErrorLogger.SetOutput(out)
	canvas.ErrorLogger.SetOutput(out)
	return file
}

// loadConfig layers defaults, the config file and the flags set on the
// command line, in that order.
func loadConfig(fs *flag.FlagSet) (config.Config, error) {
	cfg := config.Default()

	if *flagConfig != "" {
		var err error
		if cfg, err = config.Load(*flagConfig, cfg); err != nil {
			return cfg, err
		}
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "colors":
			colors, perr := config.ParseColors(*flagColors)
			if perr != nil {
				err = errors.Join(err, perr)
				return
			}
			cfg.Options.Colors = colors
		case "waves":
			cfg.Options.Waves = *flagWaves
		case "speed":
			cfg.Options.Speed = *flagSpeed
		case "amplitude":
			cfg.Options.Amplitude = *flagAmplitude
		case "frequency":
			cfg.Options.Frequency = *flagFrequency
		}
	})
	return cfg, err
}

var (
	// logFile is the debug log, closed by exit.
	logFile *os.File
	osExit  = os.Exit
)

// exit closes the log file and ends the process. Deferred calls do not run.
func exit(code int) {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	osExit(code)
}

// reportFatal logs err and shows it in an error dialog.
func reportFatal(err error) {
	log.Print(err)
	if derr := zenity.Error(err.Error(), zenity.Title("Waves"), zenity.ErrorIcon); derr != nil {
		log.Printf("failed to show the error dialog: %v", derr)
	}
}

func fatal(err error) {
	reportFatal(err)
	exit(1)
}

func main() {
	flag.Parse()

	logFile = setupLogging(*flagDebug)

	cfg, err := loadConfig(flag.CommandLine)
	if err != nil {
		fatal(err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(config.WindowWidth, config.WindowHeight, cfg.Background)
	g.SetDebug(*flagDebug)

	opts := cfg.Options
	opts.Container = g
	field, err := wavesbg.New(opts, g)
	if err != nil {
		fatal(err)
	}
	g.Own(field)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
	exit(0)
}
