package splash

import (
	"image/color"
	"sync"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	windowTitle = "Minecraft"
	loadingText = "Loading Mindful Optimized..."
	borderInset = 10
	progressW   = 256
	progressH   = 40
	logPanelW   = 160
)

// memoryColor is the aqua tone used for the memory status text.
var memoryColor = color.NRGBA{R: 0, G: 153, B: 255, A: 255}

// Window is the splash window and the widgets the background parts touch.
// All methods except Disposed must be called on the UI thread.
type Window struct {
	window fyne.Window
	icon   fyne.Resource

	titleLabel  *widget.Label
	progressBar *widget.ProgressBarInfinite
	memoryText  *canvas.Text
	logArea     *widget.Entry

	// percent mirrors the cosmetic animation; the bar itself is indeterminate.
	percent int

	onShown   func()
	shownOnce sync.Once
	closeOnce sync.Once
	disposed  atomic.Bool
}

// BuildWindow creates the splash window. It is not shown yet.
func BuildWindow(a fyne.App, icon fyne.Resource) *Window {
	w := &Window{window: a.NewWindow(windowTitle), icon: icon}

	// Only Dispose may close the splash.
	w.window.SetCloseIntercept(func() {})
	w.window.SetFixedSize(true)
	w.window.SetIcon(icon)
	w.window.SetContent(w.createContent())
	w.window.Resize(w.window.Content().MinSize())
	w.window.CenterOnScreen()

	return w
}

func (w *Window) createContent() fyne.CanvasObject {
	w.titleLabel = widget.NewLabel(loadingText)

	w.progressBar = widget.NewProgressBarInfinite()
	progress := container.NewGridWrap(fyne.NewSize(progressW, progressH), w.progressBar)

	w.memoryText = canvas.NewText("", memoryColor)

	// Reserved for loader output; nothing writes to it yet.
	w.logArea = widget.NewMultiLineEntry()
	w.logArea.Wrapping = fyne.TextWrapOff
	w.logArea.Disable()
	logPanel := container.NewGridWrap(fyne.NewSize(logPanelW, progressH), w.logArea)

	content := container.NewBorder(w.titleLabel, w.memoryText, nil, logPanel, progress)
	return container.New(layout.NewCustomPaddedLayout(borderInset, borderInset, borderInset, borderInset), content)
}

// Show makes the window visible.
func (w *Window) Show() {
	w.window.Show()
}

// SetOnShown registers fn to run the first time NotifyShown is called.
func (w *Window) SetOnShown(fn func()) {
	w.onShown = fn
}

// NotifyShown delivers the shown event. Only the first call reaches the callback.
func (w *Window) NotifyShown() {
	w.shownOnce.Do(func() {
		if w.onShown != nil {
			w.onShown()
		}
	})
}

// SetProgress records the animation position, clamped to 0..100.
func (w *Window) SetProgress(percent int) {
	w.percent = min(max(percent, 0), progressMax)
}

// Progress returns the last animation position.
func (w *Window) Progress() int {
	return w.percent
}

// SetMemoryText overwrites the memory status line.
func (w *Window) SetMemoryText(text string) {
	w.memoryText.Text = text
	w.memoryText.Color = memoryColor
	w.memoryText.Refresh()
}

// MemoryText returns the memory status line.
func (w *Window) MemoryText() string {
	return w.memoryText.Text
}

// Dispose stops the animation and closes the window. Later calls do nothing.
func (w *Window) Dispose() {
	w.closeOnce.Do(func() {
		w.progressBar.Stop()
		w.window.Close()
		w.disposed.Store(true)
	})
}

// Disposed reports whether Dispose has run. Safe from any goroutine.
func (w *Window) Disposed() bool {
	return w.disposed.Load()
}
