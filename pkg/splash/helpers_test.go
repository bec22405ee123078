package splash

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncDispatcher runs work immediately on the calling goroutine.
var syncDispatcher = DispatcherFunc(func(fn func()) { fn() })

// uiQueue stands in for the toolkit event loop: work is queued by any
// goroutine and executed by whoever drains it.
type uiQueue chan func()

func newUIQueue() uiQueue { return make(uiQueue, 4096) }

func (q uiQueue) Do(fn func()) { q <- fn }

// drain runs queued work until the queue is empty.
func (q uiQueue) drain() {
	for {
		select {
		case fn := <-q:
			fn()
		default:
			return
		}
	}
}

// runUntil executes queued work until cond holds or the deadline passes.
func (q uiQueue) runUntil(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for !cond() {
		select {
		case fn := <-q:
			fn()
		case <-deadline:
			t.Fatal("condition not met before deadline")
		case <-time.After(time.Millisecond):
		}
	}
}

// lockedBuffer collects log output written from several goroutines.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *lockedBuffer) count(substr string) int {
	return strings.Count(b.String(), substr)
}
