package splash

import "fyne.io/fyne/v2"

// Dispatcher posts work to the UI thread. Do must not wait for fn to run.
type Dispatcher interface {
	Do(fn func())
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(fn func())

func (d DispatcherFunc) Do(fn func()) { d(fn) }

// fyneDispatcher queues work on the fyne event loop.
type fyneDispatcher struct{}

func (fyneDispatcher) Do(fn func()) {
	fyne.Do(fn)
}
