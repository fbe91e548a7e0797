package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickHoldsUntilIntervalElapses(t *testing.T) {
	p := NewProfiler(WithInterval(time.Hour))
	for i := 0; i < 10; i++ {
		assert.False(t, p.Tick())
	}
}

func TestTickLogsOnceIntervalElapsed(t *testing.T) {
	p := NewProfiler(WithInterval(0))
	assert.True(t, p.Tick())
	assert.Equal(t, 0, p.frameCount)
}

func TestDefaultIntervalIsOneSecond(t *testing.T) {
	p := NewProfiler()
	assert.Equal(t, time.Second, p.interval)
}
