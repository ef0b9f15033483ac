package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/tdewolff/argp"

	"github.com/kjkrol/glquad/internal/app"
	"github.com/kjkrol/glquad/internal/config"
	"github.com/kjkrol/glquad/internal/desktop"
	"github.com/kjkrol/glquad/internal/logx"
	"github.com/kjkrol/glquad/pkg/shader"
)

func init() {
	// GLFW and the GL context live on the main thread.
	runtime.LockOSThread()
}

type Run struct {
	Config string `short:"c" desc:"TOML configuration file"`
	Shader string `short:"s" desc:"Combined shader resource"`
	Width  int    `desc:"Window width"`
	Height int    `desc:"Window height"`
	Title  string `desc:"Window title"`
	Watch  bool   `short:"w" desc:"Reload the shader when its file changes"`
	Level  string `desc:"Log level: debug, info, warn or error"`
}

type Split struct {
	Output string `short:"o" desc:"Directory for <name>.vert and <name>.frag, stdout when empty"`
	Input  string `index:"0" desc:"Combined shader file"`
}

func main() {
	root := argp.NewCmd(&Run{}, "Animated OpenGL quad driven by a combined shader file")
	root.AddCmd(&Split{}, "split", "Split a combined shader file into its stages")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Run) Run() error {
	cfg := config.Default()
	if cmd.Config != "" {
		var err error
		if cfg, err = config.Load(cmd.Config); err != nil {
			return err
		}
	}
	cmd.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logx.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := desktop.Run(ctx, cfg, logger); err != nil {
		logger.Error("demo stopped", "err", err)
		return err
	}
	return nil
}

func (cmd *Run) apply(cfg *config.Config) {
	if cmd.Shader != "" {
		cfg.Shader.Path = cmd.Shader
	}
	if cmd.Width != 0 {
		cfg.Window.Width = cmd.Width
	}
	if cmd.Height != 0 {
		cfg.Window.Height = cmd.Height
	}
	if cmd.Title != "" {
		cfg.Window.Title = cmd.Title
	}
	if cmd.Watch {
		cfg.Shader.Watch = true
	}
	if cmd.Level != "" {
		cfg.Log.Level = cmd.Level
	}
}

func (cmd *Split) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	src, err := shader.ParseFile(cmd.Input)
	if err != nil {
		return err
	}
	if cmd.Output == "" {
		return app.PrintStages(os.Stdout, src)
	}
	if err := app.WriteStages(src, cmd.Input, cmd.Output); err != nil {
		return err
	}
	vertex, fragment := app.StageFiles(cmd.Input, cmd.Output)
	fmt.Println(vertex)
	fmt.Println(fragment)
	return nil
}
