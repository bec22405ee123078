package splash

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibilityFlagIsOneWay(t *testing.T) {
	t.Parallel()

	var f VisibilityFlag
	assert.False(t, f.IsSet())

	assert.True(t, f.Set())
	assert.True(t, f.IsSet())

	assert.False(t, f.Set())
	assert.True(t, f.IsSet())
}

func TestVisibilityFlagSingleTransition(t *testing.T) {
	t.Parallel()

	var f VisibilityFlag
	var transitions atomic.Int32
	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if f.Set() {
				transitions.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), transitions.Load())
	assert.True(t, f.IsSet())
}
