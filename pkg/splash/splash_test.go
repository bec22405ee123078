package splash

import (
	"testing"
	"testing/fstest"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivierh59500/loadsplash/pkg/logging"
)

func fastOptions(osName string, logs *lockedBuffer, q Dispatcher) Options {
	return Options{
		OSName:         osName,
		Logger:         logging.New(logs, "debug"),
		Dispatcher:     q,
		AnimationStep:  time.Microsecond,
		VisibilityPoll: time.Millisecond,
		SampleInterval: 5 * time.Millisecond,
	}
}

func TestPreLaunchUnsupportedPlatform(t *testing.T) {
	a := test.NewTempApp(t)
	logs := &lockedBuffer{}

	base := len(a.Driver().AllWindows())
	h := PreLaunch(a, fastOptions("Mac OS X", logs, syncDispatcher))

	assert.Nil(t, h)
	assert.Len(t, a.Driver().AllWindows(), base)
	assert.Equal(t, 1, logs.count("level=WARN"))
	assert.Zero(t, logs.count("level=ERROR"))

	// a nil handle is inert
	assert.NotPanics(t, h.MainWindowShown)
	assert.NotPanics(t, h.Shutdown)
	assert.False(t, h.Visible())
	select {
	case <-h.Done():
	default:
		t.Fatal("Done of a nil handle must be closed")
	}
}

func TestPreLaunchMissingIcon(t *testing.T) {
	a := test.NewTempApp(t)
	logs := &lockedBuffer{}

	opts := fastOptions("Windows 10", logs, syncDispatcher)
	opts.Icons = fstest.MapFS{}
	base := len(a.Driver().AllWindows())
	h := PreLaunch(a, opts)

	assert.Nil(t, h)
	assert.Len(t, a.Driver().AllWindows(), base)
	assert.Equal(t, 1, logs.count("level=ERROR"))
	assert.Contains(t, logs.String(), ErrIconMissing.Error())
}

func TestPreLaunchLifecycle(t *testing.T) {
	a := test.NewTempApp(t)
	logs := &lockedBuffer{}
	q := newUIQueue()

	opts := fastOptions("Windows 10", logs, q)
	opts.Memory = fixedMemory(64*bytesPerMB, 1024*bytesPerMB)
	base := len(a.Driver().AllWindows())
	h := PreLaunch(a, opts)
	require.NotNil(t, h)
	defer h.Shutdown()

	w := h.window
	assert.Len(t, a.Driver().AllWindows(), base+1)
	assert.NotNil(t, w.icon)
	assert.False(t, h.Visible())

	q.runUntil(t, 5*time.Second, func() bool {
		return w.Progress() == 100 && w.MemoryText() != ""
	})
	assert.Equal(t, "Memory: 64MB/1024MB", w.MemoryText())

	// the animation is done but the host window has not appeared yet
	time.Sleep(20 * time.Millisecond)
	q.drain()
	assert.False(t, w.Disposed())

	h.MainWindowShown()
	assert.True(t, h.Visible())

	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not request disposal")
	}
	q.drain()
	assert.True(t, w.Disposed())

	h.MainWindowShown()
	assert.True(t, h.Visible())

	h.Shutdown()
	h.Shutdown()
	assert.Zero(t, logs.count("level=ERROR"))
}
