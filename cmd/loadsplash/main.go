package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"regexp"
	"syscall"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/olivierh59500/loadsplash/pkg/config"
	"github.com/olivierh59500/loadsplash/pkg/launch"
	"github.com/olivierh59500/loadsplash/pkg/logging"
	"github.com/olivierh59500/loadsplash/pkg/splash"
)

const appID = "io.github.olivierh59500.loadsplash"

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		ready    string
		demoLoad time.Duration
	)

	cmd := &cobra.Command{
		Use:   "loadsplash [flags] [-- command [args...]]",
		Short: "Show a loading window while a game client starts",
		Long: "loadsplash opens a small loading window, starts the given game command and\n" +
			"closes the window once the game reports that its main window is up.\n" +
			"Without a command it runs a built-in demo host.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := regexp.Compile(ready)
			if err != nil {
				return fmt.Errorf("invalid --ready pattern: %w", err)
			}
			return run(cmd.Context(), args, re, demoLoad)
		},
	}

	cmd.Flags().StringVar(&ready, "ready", launch.DefaultReady, "regexp matching the output line printed once the game window is visible")
	cmd.Flags().DurationVar(&demoLoad, "demo-load", 8*time.Second, "simulated load time of the demo host")

	return cmd
}

func run(ctx context.Context, args []string, ready *regexp.Regexp, demoLoad time.Duration) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.NewWithID(appID)
	a.Settings().SetTheme(splash.NewTheme())

	h := splash.PreLaunch(a, splash.Options{OSName: cfg.OSName, Logger: logger})
	defer func() {
		h.Shutdown()
		logger.Debug("launcher exiting", slog.Bool("game_window_seen", h.Visible()))
	}()

	if len(args) == 0 {
		newDemoHost(a, h, demoLoad, logger).Run(ctx)
		return nil
	}

	return runChild(ctx, a, h, launch.Command{Path: args[0], Args: args[1:], Ready: ready}, logger)
}

// quitOnCancel ends the app loop of a when ctx is cancelled. Calling the
// returned func stops watching ctx.
func quitOnCancel(ctx context.Context, a fyne.App, logger *slog.Logger) func() {
	stopped := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		select {
		case <-ctx.Done():
			logger.Info("interrupted, closing windows")
			fyne.Do(a.Quit)
		case <-stopped:
		}
	}()
	return func() {
		close(stopped)
		<-exited
	}
}

// runChild keeps the splash up until the child prints its ready marker,
// then waits for the child to exit.
func runChild(ctx context.Context, a fyne.App, h *splash.Handle, c launch.Command, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- launch.Run(ctx, c, func() {
			logger.Info("game window is up", slog.String("command", c.Path))
			if h != nil {
				fyne.Do(h.MainWindowShown)
			}
		})
		// a child that dies before its window appears must not leave the splash behind
		if h != nil {
			fyne.Do(a.Quit)
		}
	}()

	if h == nil {
		return <-errCh
	}

	// The splash is the only window, and closing the last window ends the loop.
	a.Run()
	h.Shutdown()

	return <-errCh
}
