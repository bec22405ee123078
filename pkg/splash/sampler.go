package splash

import (
	"sync"
	"time"
)

// SampleInterval is how often the memory text is refreshed.
const SampleInterval = time.Second

// Sampler periodically renders memory usage into a label on the UI thread.
type Sampler struct {
	period   time.Duration
	read     MemoryReader
	apply    func(text string)
	dispatch Dispatcher

	mu     sync.Mutex
	ticker *time.Ticker
	done   chan struct{}
}

// NewSampler creates a stopped sampler. apply is always invoked through dispatch.
func NewSampler(period time.Duration, read MemoryReader, apply func(string), dispatch Dispatcher) *Sampler {
	if read == nil {
		read = ReadMemory
	}
	if dispatch == nil {
		dispatch = fyneDispatcher{}
	}
	return &Sampler{
		period:   period,
		read:     read,
		apply:    apply,
		dispatch: dispatch,
	}
}

// Start renders one sample right away and then one per period.
// Starting a running sampler does nothing.
func (s *Sampler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker != nil {
		return
	}

	s.ticker = time.NewTicker(s.period)
	s.done = make(chan struct{})
	s.sample()

	go func(ticker *time.Ticker, done chan struct{}) {
		for {
			select {
			case <-ticker.C:
				s.sample()
			case <-done:
				return
			}
		}
	}(s.ticker, s.done)
}

// Shutdown stops the sampler if it is running.
func (s *Sampler) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	close(s.done)
	s.ticker = nil
	s.done = nil
}

// running reports whether the sampler is ticking.
func (s *Sampler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticker != nil
}

func (s *Sampler) sample() {
	text := FormatMemory(s.read())
	s.dispatch.Do(func() {
		s.apply(text)
	})
}
