package splash

import (
	"log/slog"
	"time"

	"github.com/olivierh59500/loadsplash/pkg/logging"
)

const (
	// AnimationStep is the pause before each progress value is shown.
	AnimationStep = 50 * time.Millisecond
	// VisibilityPoll is the pause between checks of the visibility flag.
	VisibilityPoll = time.Second

	progressMax = 100
)

// Sleeper pauses the calling goroutine. A non-nil error means the wait was
// cut short; the loop logs it and carries on.
type Sleeper func(d time.Duration) error

func sleep(d time.Duration) error {
	time.Sleep(d)
	return nil
}

// Lifecycle animates the progress indicator, waits for the host window and
// then requests disposal of the splash window.
type Lifecycle struct {
	Step     time.Duration
	Poll     time.Duration
	Sleep    Sleeper
	Visible  *VisibilityFlag
	Progress func(percent int)
	Dispose  func()
	Dispatch Dispatcher
	Logger   *slog.Logger
}

// Run executes the three phases in order and returns once disposal has been
// requested. There is no timeout: if the flag is never raised Run never returns.
func (l *Lifecycle) Run() {
	l.animate()
	l.awaitVisible()
	l.Dispatch.Do(l.Dispose)
}

func (l *Lifecycle) animate() {
	for i := 0; i <= progressMax; i++ {
		if err := l.Sleep(l.Step); err != nil {
			l.Logger.Error("Thread sleep interrupted", logging.Error(err))
		}
		percent := i
		l.Dispatch.Do(func() {
			l.Progress(percent)
		})
	}
}

func (l *Lifecycle) awaitVisible() {
	for !l.Visible.IsSet() {
		if err := l.Sleep(l.Poll); err != nil {
			l.Logger.Error("Thread sleep interrupted", logging.Error(err))
		}
	}
}
