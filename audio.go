package main

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	clickSamples    = audioSampleRate * 6 / 1000
	clickHalfPeriod = 13
	clickGain       = 0.35
	pcm16MaxValue   = 32767
)

// clickStream synthesizes a short decaying square transient each time
// trigger is called and silence otherwise. It feeds the platform audio
// player as a continuous stereo int16 stream.
type clickStream struct {
	mu        sync.Mutex
	remaining int
	phase     int
}

// trigger restarts the transient. Retriggering mid-click is fine.
func (s *clickStream) trigger() {
	s.mu.Lock()
	s.remaining = clickSamples
	s.phase = 0
	s.mu.Unlock()
}

// Read fills p with little-endian stereo frames. Only whole 4-byte frames
// are written so the player never sees a torn sample.
func (s *clickStream) Read(p []byte) (int, error) {
	frames := len(p) / 4
	if frames == 0 {
		return 0, nil
	}

	s.mu.Lock()
	for i := 0; i < frames; i++ {
		var v float64
		if s.remaining > 0 {
			env := float64(s.remaining) / float64(clickSamples)
			v = clickGain * env * env
			if (s.phase/clickHalfPeriod)%2 == 1 {
				v = -v
			}
			s.remaining--
			s.phase++
		}
		sample := int16(v * pcm16MaxValue)
		lo := byte(sample)
		hi := byte(sample >> 8)
		p[i*4+0] = lo
		p[i*4+1] = hi
		p[i*4+2] = lo
		p[i*4+3] = hi
	}
	s.mu.Unlock()
	return frames * 4, nil
}

func (s *clickStream) Close() error {
	return nil
}

// clickPlayer owns the audio context and a continuously running player fed
// by the click synthesizer.
type clickPlayer struct {
	stream *clickStream
	player *audio.Player
}

func newClickPlayer() (*clickPlayer, error) {
	ctx := audio.NewContext(audioSampleRate)
	stream := &clickStream{}
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("creating click player: %w", err)
	}
	player.SetBufferSize(audioBufferLatency)
	player.Play()
	return &clickPlayer{stream: stream, player: player}, nil
}

func (c *clickPlayer) trigger() {
	c.stream.trigger()
}
