package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/kickoff/audio"
	"github.com/lixenwraith/kickoff/event"
	"github.com/lixenwraith/kickoff/match"
	"github.com/lixenwraith/kickoff/render"
	"github.com/lixenwraith/kickoff/status"
)

const eventHistorySize = 256

// options are command-line settings, KICKOFF_* environment variables supply the defaults
type options struct {
	configPath  string
	personality string
	seed        uint64
	debug       bool
	metricsAddr string
	mute        bool
}

func parseOptions(args []string, getenv func(string) string) (options, error) {
	envDebug, _ := strconv.ParseBool(getenv("KICKOFF_DEBUG"))

	var opts options
	fs := flag.NewFlagSet("kickoff", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", getenv("KICKOFF_CONFIG"), "TOML match config path")
	fs.StringVar(&opts.personality, "personality", "", "Opponent preset: friendly, easy, medium, hard")
	fs.Uint64Var(&opts.seed, "seed", 0, "Random seed, 0 picks one from the clock")
	fs.BoolVar(&opts.debug, "debug", envDebug, "Write debug logs to logs/kickoff.log and fail fast on invariant breaks")
	fs.StringVar(&opts.metricsAddr, "metrics", getenv("KICKOFF_METRICS_ADDR"), "Debug HTTP address, empty disables")
	fs.BoolVar(&opts.mute, "mute", false, "Start with sound muted")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

// matchConfig loads the config file when given and applies flag overrides
func matchConfig(opts options) (match.Config, error) {
	cfg := match.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := match.LoadConfig(opts.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if opts.personality != "" {
		cfg.Personality = opts.personality
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if opts.debug {
		cfg.Debug = true
	}
	return cfg, nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "kickoff: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is normal
	_ = godotenv.Load()

	opts, err := parseOptions(os.Args[1:], os.Getenv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := matchConfig(opts)
	if err != nil {
		return err
	}

	logger, err := setupLogging(cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	audioCfg := audio.LoadConfig()
	if opts.mute {
		audioCfg.Enabled = false
	}
	sound := audio.NewSoundManager(audioCfg, logger.Named("audio"))
	// Failure is logged by the manager, the game runs silent
	_ = sound.Initialize()
	defer sound.Close()

	registry := status.NewRegistry()
	history := event.NewHistory(eventHistorySize)
	dbg := newDebugServer(registry, history, logger.Named("http"))

	session := match.New(cfg,
		match.WithLogger(logger.Named("match")),
		match.WithAudio(sound),
		match.WithStatus(registry),
		match.WithListener(history),
	)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	group, ctx := errgroup.WithContext(ctx)

	events := make(chan tcell.Event, 256)
	go pollEvents(ctx, screen, events)

	g := &game{
		session:  session,
		screen:   screen,
		renderer: render.NewRenderer(screen),
		keyboard: render.NewKeyboard(),
		sound:    sound,
		publish:  dbg.Publish,
		logger:   logger,
	}
	group.Go(func() error { return g.run(ctx, events) })
	if opts.metricsAddr != "" {
		group.Go(func() error { return dbg.Serve(ctx, opts.metricsAddr) })
	}

	err = group.Wait()
	if errors.Is(err, errQuit) {
		err = nil
	}
	p, o := session.Score()
	logger.Info("session ended", zap.Int("player", p), zap.Int("opponent", o), zap.Error(err))
	return err
}
