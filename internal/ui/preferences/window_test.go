package preferences

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchFromForm(t *testing.T) {
	patch := patchFromForm(49.6, 10, 20.2, 3, false, true)

	require.NotNil(t, patch.Timer.WorkMinutes)
	assert.Equal(t, 50, *patch.Timer.WorkMinutes)
	assert.Equal(t, 10, *patch.Timer.ShortBreakMinutes)
	assert.Equal(t, 20, *patch.Timer.LongBreakMinutes)
	assert.Equal(t, 3, *patch.Timer.LongBreakInterval)
	assert.False(t, *patch.SoundEnabled)
	assert.True(t, *patch.Autostart)
}

func TestSliderText(t *testing.T) {
	assert.Equal(t, "25 min", sliderText("work", 25))
	assert.Equal(t, "4", sliderText("interval", 4))
}
