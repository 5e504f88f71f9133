package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/bullet-hell/audio"
	"github.com/lixenwraith/bullet-hell/config"
	"github.com/lixenwraith/bullet-hell/engine"
	"github.com/lixenwraith/bullet-hell/parameter"
	"github.com/lixenwraith/bullet-hell/render"
	"github.com/lixenwraith/bullet-hell/status"
)

var (
	configFlag = flag.String("config", "", "Path to YAML config (default $"+config.EnvConfig+")")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	seedFlag   = flag.Uint64("seed", 0, "Run seed; 0 uses the config value or the clock")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "bullet-hell: %v\n", err)
		os.Exit(1)
	}
}

// session holds the per-process collaborators around one engine
type session struct {
	runID   string
	logger  *log.Logger
	eng     *engine.Engine
	tracker *status.Tracker
	sound   *audio.SoundManager
	metrics *http.Server
}

// newSession builds the engine and wires metrics and audio to its events
// Audio failures degrade to silence; they never stop the run
func newSession(cfg *config.Config) *session {
	runID := uuid.NewString()
	logger := log.New(log.Writer(), "["+runID[:8]+"] ", log.Flags())

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	opts := cfg.EngineOptions()
	opts.Seed = seed
	opts.Logger = logger

	s := &session{
		runID:   runID,
		logger:  logger,
		eng:     engine.New(opts),
		tracker: status.NewTracker(runID, status.NewRegistry()),
	}
	s.eng.Register(s.tracker)
	s.tracker.SetLives(opts.Lives)

	if cfg.Metrics.Addr != "" {
		s.metrics = s.tracker.StartHTTP(cfg.Metrics.Addr, logger)
	}

	s.sound = audio.NewSoundManager(cfg.AudioConfig())
	if err := s.sound.Initialize(); err != nil {
		logger.Printf("audio disabled: %v", err)
	} else if s.sound.Initialized() {
		s.eng.Register(s.sound)
	}
	return s
}

func (s *session) close() {
	s.sound.Cleanup()
	if err := status.Shutdown(s.metrics, time.Second); err != nil {
		s.logger.Printf("metrics shutdown: %v", err)
	}

	f := s.tracker.Status().Figures()
	s.logger.Printf("exit: score %d, grazes %d, despawned %d, runs %d, survival %.1fs, last effect %q",
		f.Score, f.Grazes, f.Despawned, f.Runs, f.Survival.Seconds(), f.LastEffect)
}

func run(cfg *config.Config) error {
	s := newSession(cfg)
	defer s.close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	defer func() {
		if r := recover(); r != nil {
			handleCrash(screen, r)
		}
	}()

	screen.HideCursor()
	renderer := render.NewTerminalRenderer(screen)
	controls := NewControls(cfg.Debug)

	events := make(chan tcell.Event, 64)
	goSafe(screen, func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	tickTicker := time.NewTicker(parameter.TickInterval)
	defer tickTicker.Stop()
	frameTicker := time.NewTicker(parameter.FrameInterval)
	defer frameTicker.Stop()

	paused := false
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				renderer.Resize()

			case *tcell.EventKey:
				action, powerUp := controls.HandleKey(ev, time.Now())
				switch action {
				case ActionQuit:
					return nil
				case ActionPause:
					paused = !paused
					s.logger.Printf("paused: %v", paused)
				case ActionRestart:
					// A configured seed replays the same run; otherwise every restart is fresh
					if cfg.Seed != 0 {
						s.eng.Reset()
					} else {
						s.eng.Reseed(uint64(time.Now().UnixNano()))
					}
					s.tracker.SetLives(cfg.Lives)
					controls.Reset()
					paused = false
				case ActionCollect:
					s.eng.Collect(powerUp)
				}
			}

		case <-tickTicker.C:
			if paused {
				continue
			}
			s.eng.SetInput(controls.Input(time.Now()))
			s.eng.Tick(parameter.TickInterval)

		case <-frameTicker.C:
			v := s.eng.View()
			s.tracker.Sample(v.Tick, len(v.Entities), v.Survival)
			renderer.RenderFrame(v, paused)
		}
	}
}
