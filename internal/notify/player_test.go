package notify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomotask/internal/core/model"
)

func testSettings() model.TimerSettings {
	return model.TimerSettings{WorkMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1, LongBreakInterval: 4}
}

func newSilentPlayer(initErr error) (*BeepPlayer, *[]beep.Streamer) {
	var played []beep.Streamer
	player := NewBeepPlayer()
	player.initAudio = func() error { return initErr }
	player.play = func(streamer beep.Streamer) { played = append(played, streamer) }
	return player, &played
}

func TestChimeIsCachedAndPlayed(t *testing.T) {
	player, played := newSilentPlayer(nil)

	require.NoError(t, player.Play(""))
	require.NoError(t, player.Play(""))

	assert.Len(t, *played, 2)
	assert.Len(t, player.buffers, 1)
	assert.Positive(t, player.buffers[""].Len())
}

func TestSpeakerFailureIsReported(t *testing.T) {
	player, played := newSilentPlayer(errors.New("no device"))

	err := player.Play("")

	assert.ErrorContains(t, err, "init speaker: no device")
	assert.Empty(t, *played)
}

func TestUnsupportedSource(t *testing.T) {
	player, _ := newSilentPlayer(nil)

	err := player.Play("https://example.com/beep.mp3")

	assert.ErrorIs(t, err, ErrUnsupportedSource)
}

func TestMissingFile(t *testing.T) {
	player, _ := newSilentPlayer(nil)

	err := player.Play(filepath.Join(t.TempDir(), "missing.wav"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wave file"), 0o644))
	player, _ := newSilentPlayer(nil)

	err := player.Play(path)

	assert.ErrorContains(t, err, "decode sound")
}
