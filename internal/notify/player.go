package notify

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// ErrUnsupportedSource is returned for sources the player cannot decode.
var ErrUnsupportedSource = errors.New("unsupported sound source")

const (
	sampleRate = beep.SampleRate(44100)
	chimeTone  = 880.0
)

// BeepPlayer plays alerts through the system speaker.
type BeepPlayer struct {
	mu        sync.Mutex
	initOnce  sync.Once
	initErr   error
	buffers   map[string]*beep.Buffer
	initAudio func() error
	play      func(beep.Streamer)
}

// NewBeepPlayer returns a player that opens the speaker on first use.
func NewBeepPlayer() *BeepPlayer {
	return &BeepPlayer{
		buffers: make(map[string]*beep.Buffer),
		initAudio: func() error {
			return speaker.Init(sampleRate, sampleRate.N(time.Second/10))
		},
		play: func(streamer beep.Streamer) {
			speaker.Play(streamer)
		},
	}
}

// Play queues source on the speaker and returns without waiting for playback.
func (player *BeepPlayer) Play(source string) error {
	player.initOnce.Do(func() {
		player.initErr = player.initAudio()
	})
	if player.initErr != nil {
		return fmt.Errorf("init speaker: %w", player.initErr)
	}

	buffer, err := player.buffer(source)
	if err != nil {
		return err
	}
	player.play(buffer.Streamer(0, buffer.Len()))
	return nil
}

func (player *BeepPlayer) buffer(source string) (*beep.Buffer, error) {
	player.mu.Lock()
	defer player.mu.Unlock()

	if buffer, ok := player.buffers[source]; ok {
		return buffer, nil
	}

	var (
		buffer *beep.Buffer
		err    error
	)
	if source == "" {
		buffer, err = chime()
	} else {
		buffer, err = decodeFile(source)
	}
	if err != nil {
		return nil, err
	}
	player.buffers[source] = buffer
	return buffer, nil
}

// chime synthesizes two short tones separated by a gap.
func chime() (*beep.Buffer, error) {
	tone, err := generators.SineTone(sampleRate, chimeTone)
	if err != nil {
		return nil, fmt.Errorf("generate chime: %w", err)
	}
	beepLength := sampleRate.N(150 * time.Millisecond)
	gapLength := sampleRate.N(100 * time.Millisecond)

	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	buffer := beep.NewBuffer(format)
	buffer.Append(beep.Seq(
		beep.Take(beepLength, tone),
		beep.Silence(gapLength),
		beep.Take(beepLength, tone),
	))
	return buffer, nil
}

func decodeFile(path string) (*beep.Buffer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".ogg" && ext != ".wav" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sound %s: %w", path, err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".ogg":
		streamer, format, err = vorbis.Decode(file)
	case ".wav":
		streamer, format, err = wav.Decode(file)
	}
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("decode sound %s: %w", path, err)
	}
	defer streamer.Close()

	var source beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		source = beep.Resample(4, format.SampleRate, sampleRate, streamer)
		format.SampleRate = sampleRate
	}
	buffer := beep.NewBuffer(format)
	buffer.Append(source)
	return buffer, nil
}
