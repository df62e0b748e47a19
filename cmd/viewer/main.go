package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"model-viewer/internal/camera"
	"model-viewer/internal/commands"
	"model-viewer/internal/logger"
	"model-viewer/internal/overlay/raygui"
	"model-viewer/internal/render"
	"model-viewer/internal/scene"
	"model-viewer/internal/viewer"
	"model-viewer/internal/viewerconfig"
	"model-viewer/internal/watch"
	"model-viewer/internal/window"
)

// GLFW and the GL context must stay on the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	reg := commands.NewRegistry("run")

	run := flag.NewFlagSet("run", flag.ContinueOnError)
	cfgPath := run.String("config", viewerconfig.DefaultPath, "config file (.yaml, .yml or .toml)")
	run.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: viewer run [-config path] [model ...]")
		run.PrintDefaults()
	}
	reg.Register("run", "open the viewer, loading any models given", run, func(args []string) error {
		return runViewer(*cfgPath, args)
	})

	initCfg := flag.NewFlagSet("init-config", flag.ContinueOnError)
	out := initCfg.String("o", viewerconfig.DefaultPath, "where to write the config")
	force := initCfg.Bool("force", false, "overwrite an existing file")
	reg.Register("init-config", "write the default config", initCfg, func([]string) error {
		return writeDefaultConfig(*out, *force)
	})

	if err := reg.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "commands:")
		reg.Usage(os.Stderr)
		os.Exit(1)
	}
}

func writeDefaultConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use -force to overwrite)", path)
	}
	if err := viewerconfig.Save(path, viewerconfig.Default()); err != nil {
		return err
	}
	fmt.Println("wrote", path)
	return nil
}

func runViewer(cfgPath string, models []string) error {
	cfg, cfgErr := viewerconfig.Load(cfgPath)
	log := logger.New(cfg.LogPath)
	if cfgErr != nil {
		log.Logf("config: %v (using defaults)", cfgErr)
	}
	cfg.Models = append(cfg.Models, models...)

	win, err := window.Open(window.Config{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		TargetFPS: cfg.Window.TargetFPS,
	})
	if err != nil {
		log.Log(err.Error())
		return err
	}

	lighting := render.NewLighting()
	if !lighting.Valid() {
		log.Log("lit shader failed to compile; using raylib default shading")
	}
	scn := scene.New(render.NewLoader(lighting))
	cam := camera.New(cfg.Camera.Position, cfg.Camera.Speed, win)

	opts := viewer.Options{
		Config:  cfg,
		Window:  win,
		Overlay: raygui.New("Inspect Model"),
		Scene:   scn,
		Stage:   render.NewStage(scn, cam, lighting),
		Camera:  cam,
		Log:     log,
	}
	if cfg.Watch {
		w, err := watch.New()
		if err != nil {
			log.Logf("watch disabled: %v", err)
		} else {
			opts.Watcher = w
		}
	}

	v, err := viewer.New(opts)
	if err != nil {
		win.Destroy()
		return err
	}
	for _, err := range v.Preload(cfg.Models) {
		log.Log(err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log.Log("viewer started")
	if err := v.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
