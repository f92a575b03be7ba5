package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	engineinput "cleanhouse/pkg/engine/input"
	"cleanhouse/pkg/engine/terminal"
	"cleanhouse/pkg/game/config"
	"cleanhouse/pkg/game/devtools"
	"cleanhouse/pkg/game/renderer"
	ebitenrenderer "cleanhouse/pkg/game/renderer/ebiten"
	"cleanhouse/pkg/game/renderer/tui"
	"cleanhouse/pkg/game/session"
)

var (
	configPath   = flag.String("config", "", "path to a YAML config file")
	rendererName = flag.String("renderer", "", "renderer to use: tui or ebiten")
	dbPath       = flag.String("db", "", "sqlite database path (overrides config)")
	layoutPath   = flag.String("layout", "", "house layout YAML (overrides config)")
	username     = flag.String("user", "player", "player name")
	password     = flag.String("password", "", "player password (prompted when empty on a terminal)")
	seed         = flag.Int64("seed", 0, "random seed, 0 for time-based")
	journalDir   = flag.String("journal", "", "directory for per-session journals")
	newGame      = flag.Bool("new", false, "start from a fresh house instead of the saved one")
	dumpDir      = flag.String("dump", "", "developer: write a house dump to this directory when the session ends")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("cleanhouse: %v", err)
	}
}

// run owns every resource, so deferred cleanup happens before main exits on an error.
func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logOut, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logOut.Close()
	log.SetOutput(logOut)
	log.SetPrefix("[cleanhouse] ")
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	engineinput.ApplyBindings(cfg.KeyBindings())

	pw, err := readPassword()
	if err != nil {
		return err
	}

	ctx := context.Background()
	s, err := session.Open(ctx, cfg, session.Options{Username: *username, Password: pw, Fresh: *newGame}, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Printf("close: %v", err)
		}
	}()

	if err := play(ctx, cfg, s); err != nil {
		return err
	}

	if *dumpDir != "" {
		if path, err := devtools.DumpHouseToFile(s.Game, *dumpDir); err != nil {
			log.Printf("dump: %v", err)
		} else {
			log.Printf("House dump written to %s", path)
		}
	}
	if err := s.Summary(ctx, os.Stdout); err != nil {
		log.Printf("summary: %v", err)
	}
	return nil
}

// play picks the renderer and runs the session's loop on it.
func play(ctx context.Context, cfg config.Config, s *session.Session) error {
	if cfg.Renderer == config.RendererEbiten {
		r := ebitenrenderer.New()
		renderer.SetRenderer(r)
		renderer.Init()
		renderer.ShowMessage(s.Notice)

		var loopErr error
		if err := r.Run(func() { loopErr = s.Play(ctx, r) }); err != nil {
			return err
		}
		return loopErr
	}

	r := tui.New()
	renderer.SetRenderer(r)
	renderer.Init()
	renderer.ShowMessage(s.Notice)
	return s.Play(ctx, r)
}

// loadConfig layers the config file, then CLEANHOUSE_* variables (.env included),
// then the flags that were set on the command line.
func loadConfig() (config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "renderer":
			cfg.Renderer = *rendererName
		case "db":
			cfg.Database = *dbPath
		case "layout":
			cfg.Layout = *layoutPath
		case "seed":
			cfg.Seed = *seed
		case "journal":
			cfg.JournalDir = *journalDir
		}
	})
	cfg.Normalize()
	return cfg, cfg.Validate()
}

func openLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stderr}, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func readPassword() (string, error) {
	if *password != "" || !terminal.IsInteractive() {
		return *password, nil
	}
	return terminal.ReadSecret("Password: ")
}

