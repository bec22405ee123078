package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/olivierh59500/loadsplash/pkg/splash"
)

// demoHost stands in for a game client: it "loads" for a while and then
// opens its main window, which is what lets the splash go away.
type demoHost struct {
	app    fyne.App
	window fyne.Window
	splash *splash.Handle
	logger *slog.Logger
	load   time.Duration

	// UI Elements
	titleLabel  *widget.Label
	statusLabel *widget.Label
	memoryLabel *widget.Label
	quitButton  *widget.Button

	started time.Time
	sampler *splash.Sampler
}

func newDemoHost(a fyne.App, h *splash.Handle, load time.Duration, logger *slog.Logger) *demoHost {
	d := &demoHost{
		app:     a,
		splash:  h,
		logger:  logger,
		load:    load,
		started: time.Now(),
	}
	d.createUI()
	return d
}

func (d *demoHost) createUI() {
	d.window = d.app.NewWindow("Demo Game")
	d.window.Resize(fyne.NewSize(640, 400))

	d.titleLabel = widget.NewLabelWithStyle("Demo Game", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	d.statusLabel = widget.NewLabel("")
	d.statusLabel.Alignment = fyne.TextAlignCenter
	d.memoryLabel = widget.NewLabel("")
	d.memoryLabel.Alignment = fyne.TextAlignCenter
	d.quitButton = widget.NewButtonWithIcon("Quit", theme.CancelIcon(), d.app.Quit)

	content := container.NewVBox(
		d.titleLabel,
		widget.NewSeparator(),
		d.statusLabel,
		d.memoryLabel,
		container.NewCenter(d.quitButton),
	)

	d.window.SetContent(container.NewPadded(content))
	d.window.SetOnClosed(d.cleanup)
}

// Run simulates the load in the background and blocks in the app loop
// until the game window is closed or ctx is cancelled.
func (d *demoHost) Run(ctx context.Context) {
	defer quitOnCancel(ctx, d.app, d.logger)()

	go func() {
		time.Sleep(d.load)
		fyne.Do(d.showMain)
	}()
	d.app.Run()
}

func (d *demoHost) showMain() {
	// The splash was opened first; the game window must own the app lifetime.
	d.window.SetMaster()
	d.window.CenterOnScreen()
	d.window.Show()
	d.splash.MainWindowShown()

	d.statusLabel.SetText(fmt.Sprintf("Loaded in %s", time.Since(d.started).Round(100*time.Millisecond)))
	d.logger.Info("demo game window shown", slog.Duration("load", d.load))

	d.memoryLabel.SetText(splash.FormatMemory(splash.ReadMemory()))
	d.sampler = splash.NewSampler(splash.SampleInterval, nil, d.memoryLabel.SetText, nil)
	d.sampler.Start()
}

func (d *demoHost) cleanup() {
	if d.sampler != nil {
		d.sampler.Shutdown()
		d.sampler = nil
	}
	d.splash.Shutdown()
}
