package tui

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomotask/internal/platform"
)

func TestBellRingsPerPulse(t *testing.T) {
	var out bytes.Buffer
	var waited []time.Duration
	bell := NewBell(&out)
	bell.sleep = func(d time.Duration) { waited = append(waited, d) }

	require.NoError(t, bell.Vibrate(platform.DefaultVibration))

	assert.Equal(t, "\a\a", out.String())
	assert.Equal(t, []time.Duration{100 * time.Millisecond}, waited)
}
