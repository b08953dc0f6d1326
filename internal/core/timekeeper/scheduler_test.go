package timekeeper

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerSchedulerRepeatsUntilCancelled(t *testing.T) {
	var calls atomic.Int32
	cancel := NewTickerScheduler().ScheduleRepeating(5*time.Millisecond, func() {
		calls.Add(1)
	})

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)

	cancel()
	cancel()
	settled := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.LessOrEqual(t, calls.Load(), settled+1, "at most one in-flight tick after cancel")
}
