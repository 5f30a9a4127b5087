// Package alarm plays the chime that marks the end of a countdown.
package alarm

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the playback rate used for the speaker and the chime.
const SampleRate = beep.SampleRate(44100)

// Player plays the countdown alarm.
type Player interface {
	Play()
}

// Silent is a Player that does nothing. It stands in when audio is muted or
// the speaker cannot be initialised.
type Silent struct{}

// Play implements Player.
func (Silent) Play() {}

// Note is one tone of the chime. A zero Frequency is a rest.
type Note struct {
	Frequency float64
	Length    time.Duration
}

// DefaultMelody is a short rising three-note chime.
var DefaultMelody = []Note{
	{Frequency: 880, Length: 150 * time.Millisecond},
	{Length: 70 * time.Millisecond},
	{Frequency: 880, Length: 150 * time.Millisecond},
	{Length: 70 * time.Millisecond},
	{Frequency: 1320, Length: 350 * time.Millisecond},
}

// Chime plays a pre-rendered melody through the system speaker.
type Chime struct {
	mu     sync.Mutex
	buffer *beep.Buffer
}

// NewChime initialises the speaker and renders the melody once.
func NewChime(melody []Note, volume float64) (*Chime, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Chime{buffer: Render(melody, volume)}, nil
}

// Play starts the chime without blocking.
func (chime *Chime) Play() {
	chime.mu.Lock()
	defer chime.mu.Unlock()
	speaker.Play(chime.buffer.Streamer(0, chime.buffer.Len()))
}

// Render turns a melody into a stereo sample buffer at SampleRate.
// Volume is clamped to [0, 1].
func Render(melody []Note, volume float64) *beep.Buffer {
	volume = math.Max(0, math.Min(1, volume))
	format := beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}
	buffer := beep.NewBuffer(format)

	streamers := make([]beep.Streamer, 0, len(melody))
	for _, note := range melody {
		samples := SampleRate.N(note.Length)
		if note.Frequency <= 0 {
			streamers = append(streamers, beep.Silence(samples))
			continue
		}
		streamers = append(streamers, beep.Take(samples, tone(note.Frequency, volume, samples)))
	}
	buffer.Append(beep.Seq(streamers...))
	return buffer
}

// tone is a sine wave with a linear fade-out over its length to avoid clicks.
func tone(frequency, volume float64, length int) beep.Streamer {
	step := frequency / float64(SampleRate)
	phase := 0.0
	position := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			envelope := 1.0
			if length > 0 {
				envelope = 1 - float64(position)/float64(length)
			}
			value := math.Sin(2*math.Pi*phase) * volume * envelope
			samples[i][0] = value
			samples[i][1] = value
			phase = math.Mod(phase+step, 1)
			position++
		}
		return len(samples), true
	})
}

// Length returns how long the melody plays.
func Length(melody []Note) time.Duration {
	var total time.Duration
	for _, note := range melody {
		total += note.Length
	}
	return total
}
