// Package splash shows a loading window while a game client starts up and
// closes it once the client's own main window has appeared.
package splash

import (
	"io/fs"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"

	"github.com/olivierh59500/loadsplash/pkg/logging"
)

// Options tunes PreLaunch. The zero value uses the real platform, the
// bundled icon, the default logger and the fyne event loop.
type Options struct {
	OSName     string
	Icons      fs.FS
	IconPath   string
	Logger     *slog.Logger
	Dispatcher Dispatcher
	Sleep      Sleeper
	Memory     MemoryReader

	AnimationStep  time.Duration
	VisibilityPoll time.Duration
	SampleInterval time.Duration
}

func (o *Options) setDefaults() {
	if o.OSName == "" {
		o.OSName = HostOSName()
	}
	if o.Icons == nil {
		o.Icons = Bundled()
	}
	if o.IconPath == "" {
		o.IconPath = IconPath
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	o.Logger = o.Logger.With(logging.Component("loading-window"))
	if o.Dispatcher == nil {
		o.Dispatcher = fyneDispatcher{}
	}
	if o.Sleep == nil {
		o.Sleep = sleep
	}
	if o.Memory == nil {
		o.Memory = ReadMemory
	}
	if o.AnimationStep <= 0 {
		o.AnimationStep = AnimationStep
	}
	if o.VisibilityPoll <= 0 {
		o.VisibilityPoll = VisibilityPoll
	}
	if o.SampleInterval <= 0 {
		o.SampleInterval = SampleInterval
	}
}

// Handle owns a running splash. A nil *Handle is valid and means the splash
// was not shown; every method on it is a no-op.
type Handle struct {
	window  *Window
	visible *VisibilityFlag
	sampler *Sampler
	done    chan struct{}
}

// PreLaunch opens the splash window on the calling goroutine, which must be
// allowed to create windows, then starts the lifecycle goroutine and the
// memory sampler. It returns nil when the platform is unsupported or the
// window cannot be built; both cases are logged and never fatal.
//
// A host that shows its own main window through the same app should call
// SetMaster on it, so closing that window rather than the splash ends the app.
func PreLaunch(a fyne.App, opts Options) *Handle {
	opts.setDefaults()

	if !Supported(opts.OSName) {
		opts.Logger.Warn("Cannot open loading window on MacOS due to limitations of the windowing toolkit.",
			slog.String("os", opts.OSName))
		return nil
	}

	icon, err := LoadIcon(opts.Icons, opts.IconPath)
	if err != nil {
		opts.Logger.Error("Unable to show loading screen.", logging.Error(err))
		return nil
	}

	h := &Handle{
		window:  BuildWindow(a, icon),
		visible: &VisibilityFlag{},
		done:    make(chan struct{}),
	}
	h.window.SetOnShown(func() {
		if h.visible.Set() {
			opts.Logger.Debug("main window shown")
		}
	})
	h.window.Show()

	h.sampler = NewSampler(opts.SampleInterval, opts.Memory, h.window.SetMemoryText, opts.Dispatcher)

	lc := &Lifecycle{
		Step:     opts.AnimationStep,
		Poll:     opts.VisibilityPoll,
		Sleep:    opts.Sleep,
		Visible:  h.visible,
		Progress: h.window.SetProgress,
		Dispose:  h.window.Dispose,
		Dispatch: opts.Dispatcher,
		Logger:   opts.Logger,
	}
	go func() {
		defer close(h.done)
		lc.Run()
	}()

	h.sampler.Start()
	return h
}

// MainWindowShown tells the splash that the host's main window is visible.
// Call it on the UI thread; only the first call has an effect.
func (h *Handle) MainWindowShown() {
	if h == nil {
		return
	}
	h.window.NotifyShown()
}

// Shutdown stops the memory sampler. Calling it again, or on a nil handle, does nothing.
func (h *Handle) Shutdown() {
	if h == nil {
		return
	}
	h.sampler.Shutdown()
}

// Done is closed once the lifecycle goroutine has requested disposal.
// For a nil handle it returns an already closed channel.
func (h *Handle) Done() <-chan struct{} {
	if h == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return h.done
}

// Visible reports whether the shown event has been received.
func (h *Handle) Visible() bool {
	if h == nil {
		return false
	}
	return h.visible.IsSet()
}
