package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	engineinput "wraithmaze/pkg/engine/input"
	"wraithmaze/pkg/game/camera"
	"wraithmaze/pkg/game/config"
	"wraithmaze/pkg/game/devtools"
	"wraithmaze/pkg/game/gameplay"
	"wraithmaze/pkg/game/generator"
	"wraithmaze/pkg/game/i18n"
	"wraithmaze/pkg/game/maze"
	"wraithmaze/pkg/game/renderer"
	ebitenrenderer "wraithmaze/pkg/game/renderer/ebiten"
	"wraithmaze/pkg/game/renderer/tui"
	"wraithmaze/pkg/game/state"
)

// tuiLogFile receives log output while the terminal backend owns the screen
const tuiLogFile = "wraithmaze.log"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	backend := flag.String("renderer", cfg.Renderer, "display backend: ebiten or tui")
	seed := flag.Int64("seed", cfg.Seed, "session seed (0 picks one from the clock)")
	debug := flag.Bool("debug", cfg.Debug, "start with diagnostics on")
	dump := flag.Bool("dump", false, "print the first maze of the session and exit")
	keys := flag.Bool("keys", false, "print the key bindings and exit")
	devMap := flag.Bool("devmap", false, "play the fixed developer test arena instead of generated mazes")
	gen := flag.String("generator", cfg.Generator, "maze generator: "+strings.Join(generator.Names(), ", "))
	lang := flag.String("lang", cfg.Lang, "message catalogue language")
	onError := flag.String("on-error", cfg.OnError, "what to do when a tick fails: halt or restart")
	flag.Parse()

	cfg.Seed = *seed
	cfg.ApplyBindings()
	if *keys {
		devtools.WriteBindings(os.Stdout)
		return
	}
	i18n.Init(cfg.Locales, *lang)

	policy, err := gameplay.ParsePolicy(*onError)
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	mazeCfg := maze.DefaultConfig()
	mazeCfg.Generator = *gen
	factory := func(s int64) (*maze.Maze, error) {
		return maze.Generate(mazeCfg, s)
	}
	if *devMap {
		factory = func(int64) (*maze.Maze, error) {
			return devtools.DevMaze(mazeCfg)
		}
	}

	session, err := state.NewSession(cfg.ResolveSeed(), factory)
	if err != nil {
		log.Fatalf("[APP] [FATAL] could not start session: %v", err)
	}
	session.Debug = *debug

	if *dump {
		fmt.Printf("seed %d, %s\n", session.Seed, session.World.Maze.GeneratorName())
		devtools.PrintMaze(session.World.Maze)
		fmt.Println(devtools.Legend)
		return
	}

	in := engineinput.NewState()
	frames := renderer.NewRecorder()
	hud := renderer.NewHUD()
	cam := camera.New(float64(cfg.Width), float64(cfg.Height))

	opts := gameplay.DefaultOptions()
	opts.Policy = policy
	loop := gameplay.NewLoop(session, in, frames, hud, cam, opts)

	switch *backend {
	case config.RendererTUI:
		err = runTUI(loop, frames, hud, cam, in)
	case config.RendererEbiten:
		err = runEbiten(loop, frames, hud, cam, in, cfg.Width, cfg.Height)
	default:
		err = fmt.Errorf("unknown renderer %q", *backend)
	}
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
}

func runEbiten(loop *gameplay.Loop, frames *renderer.Recorder, hud *renderer.HUD, cam *camera.Camera, in *engineinput.State, width, height int) error {
	r, err := ebitenrenderer.New(loop, frames, hud, cam, in, width, height)
	if err != nil {
		return err
	}
	return r.Run(i18n.T("TITLE"))
}

func runTUI(loop *gameplay.Loop, frames *renderer.Recorder, hud *renderer.HUD, cam *camera.Camera, in *engineinput.State) error {
	f, err := os.OpenFile(tuiLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	log.SetOutput(f)
	defer log.SetOutput(os.Stderr)

	r, err := tui.New(loop, frames, hud, cam, in)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.Run(ctx)
}
