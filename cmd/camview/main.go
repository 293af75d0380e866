// Package main provides the CLI entry point for camview.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/camview/pkg/adapters/filesink"
	"github.com/user/camview/pkg/adapters/ggrenderer"
	"github.com/user/camview/pkg/adapters/gocvsource"
	"github.com/user/camview/pkg/adapters/logger"
	"github.com/user/camview/pkg/adapters/osassets"
	"github.com/user/camview/pkg/adapters/osfilesystem"
	"github.com/user/camview/pkg/config"
	"github.com/user/camview/pkg/ports"
	"github.com/user/camview/pkg/session"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	View     ViewCmd     `cmd:"" help:"Stream the camera to PNG files with a live intensity histogram."`
	Snapshot SnapshotCmd `cmd:"" help:"Capture and process a single frame, then exit."`
	Version  VersionCmd  `cmd:"" help:"Show version information."`
}

// ViewCmd defines the view subcommand. Pointer flags override the
// config file only when set.
type ViewCmd struct {
	// Capture options
	Device     *int `short:"d" help:"Capture device index (default: 0)."`
	IntervalMs *int `help:"Acquisition period in milliseconds (default: 33, ~30 fps)."`

	// Processing options
	Grayscale bool   `short:"g" help:"Convert frames to grayscale."`
	Overlay   string `help:"Logo image composited onto the bottom-right corner of each frame."`

	// Presentation options
	Output      *string `short:"o" help:"Directory for frame.png and histogram.png (default: ./out)."`
	FitWidth    *int    `help:"Scale frames wider than this down for display (default: 600, 0 = off)."`
	KeepHistory bool    `help:"Also keep a numbered copy of every frame."`

	// Style options
	BackgroundColor string `help:"Histogram background color (hex, e.g. #000000)."`
	InkColor        string `help:"Histogram ink color (hex, e.g. #ffffff)."`

	// Config file
	Config string `short:"c" help:"YAML configuration file (flags override it)."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// SnapshotCmd defines the snapshot subcommand.
type SnapshotCmd struct {
	Device    int    `short:"d" default:"0" help:"Capture device index."`
	Grayscale bool   `short:"g" help:"Convert the frame to grayscale."`
	Overlay   string `help:"Logo image composited onto the bottom-right corner."`
	Output    string `short:"o" default:"./out" help:"Directory for frame.png and histogram.png."`
	LogLevel  string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level."`
	Quiet     bool   `short:"Q" help:"Suppress all log output."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("camview"),
		kong.Description("Live camera viewer with overlay compositing and intensity histograms."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the view command.
func (cmd *ViewCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	log := newLogger(cmd.Quiet, cfg.LogLevel)

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	sess, err := buildSession(cfg, log)
	if err != nil {
		return err
	}

	if err := sess.Start(ctx); err != nil {
		return err
	}
	defer sess.Stop()

	log.Info(l10n.F("Writing frames to %s, press Ctrl-C to stop", cfg.OutputDir))
	<-ctx.Done()
	return sess.Stop()
}

// buildConfig merges the config file (if any) with CLI flags.
func (cmd *ViewCmd) buildConfig() (config.Config, error) {
	cfg := config.Defaults()
	if cmd.Config != "" {
		loaded, err := config.LoadFromFile(cmd.Config)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", cmd.Config, err)
		}
		cfg = loaded
	}

	if cmd.Device != nil {
		cfg.Device = *cmd.Device
	}
	if cmd.IntervalMs != nil {
		cfg.IntervalMs = *cmd.IntervalMs
	}
	if cmd.Output != nil {
		cfg.OutputDir = *cmd.Output
	}
	if cmd.FitWidth != nil {
		cfg.FitWidth = *cmd.FitWidth
	}
	cfg.LogLevel = cmd.LogLevel
	if cmd.Grayscale {
		cfg.Grayscale = true
	}
	if cmd.Overlay != "" {
		cfg.OverlayPath = cmd.Overlay
	}
	if cmd.KeepHistory {
		cfg.KeepHistory = true
	}
	if cmd.BackgroundColor != "" {
		cfg.Theme.BackgroundColor = cmd.BackgroundColor
	}
	if cmd.InkColor != "" {
		cfg.Theme.InkColor = cmd.InkColor
	}
	return cfg, nil
}

// Run executes the snapshot command.
func (cmd *SnapshotCmd) Run() error {
	cfg := config.Defaults()
	cfg.Device = cmd.Device
	cfg.Grayscale = cmd.Grayscale
	cfg.OverlayPath = cmd.Overlay
	cfg.OutputDir = cmd.Output
	cfg.LogLevel = cmd.LogLevel

	log := newLogger(cmd.Quiet, cfg.LogLevel)

	sess, err := buildSession(cfg, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := sess.RunOnce(ctx); err != nil {
		return err
	}
	log.Info(l10n.F("Snapshot written to %s", cfg.OutputDir))
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Printf("camview %s\n", version)
	return nil
}

// buildSession wires the adapters into a session.
func buildSession(cfg config.Config, log ports.Logger) (*session.Session, error) {
	fs := osfilesystem.New()
	renderer := ggrenderer.New()
	loader := osassets.New(fs, renderer)
	source := gocvsource.New()

	sink := filesink.New(cfg.OutputDir, fs, renderer)
	sink.FitWidth = cfg.FitWidth
	sink.KeepHistory = cfg.KeepHistory

	sess := session.New(cfg.ToSessionConfig(), source, loader, sink, renderer, log)

	if cfg.OverlayPath != "" {
		// A missing or corrupt overlay disables compositing, nothing more.
		sess.EnableOverlay(cfg.OverlayPath)
	}
	return sess, nil
}

func newLogger(quiet bool, level string) ports.Logger {
	if quiet {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(level))
}
