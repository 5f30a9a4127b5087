package alarm

import (
	"math"
	"testing"
	"time"
)

func TestRenderLength(t *testing.T) {
	melody := []Note{
		{Frequency: 440, Length: 100 * time.Millisecond},
		{Length: 50 * time.Millisecond},
		{Frequency: 660, Length: 100 * time.Millisecond},
	}

	buffer := Render(melody, 0.5)

	expected := SampleRate.N(100*time.Millisecond)*2 + SampleRate.N(50*time.Millisecond)
	if buffer.Len() != expected {
		t.Errorf("expected %d samples, got %d", expected, buffer.Len())
	}
}

func TestRenderRespectsVolume(t *testing.T) {
	tests := []struct {
		name   string
		volume float64
		limit  float64
	}{
		{"half", 0.5, 0.5},
		{"clamped high", 3, 1},
		{"clamped low", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buffer := Render([]Note{{Frequency: 440, Length: 20 * time.Millisecond}}, tt.volume)
			streamer := buffer.Streamer(0, buffer.Len())
			samples := make([][2]float64, buffer.Len())
			n, _ := streamer.Stream(samples)
			if n != buffer.Len() {
				t.Fatalf("expected %d streamed samples, got %d", buffer.Len(), n)
			}
			for i, sample := range samples[:n] {
				if math.Abs(sample[0]) > tt.limit+0.001 || sample[0] != sample[1] {
					t.Fatalf("sample %d = %v exceeds volume %v", i, sample, tt.limit)
				}
			}
		})
	}
}

func TestRestIsSilent(t *testing.T) {
	buffer := Render([]Note{{Length: 10 * time.Millisecond}}, 1)
	samples := make([][2]float64, buffer.Len())
	n, _ := buffer.Streamer(0, buffer.Len()).Stream(samples)

	for i, sample := range samples[:n] {
		if sample[0] != 0 || sample[1] != 0 {
			t.Fatalf("expected silence at %d, got %v", i, sample)
		}
	}
}

func TestDefaultMelodyRenders(t *testing.T) {
	var total time.Duration
	for _, note := range DefaultMelody {
		total += note.Length
	}
	buffer := Render(DefaultMelody, 0.6)
	if buffer.Len() < SampleRate.N(total)-len(DefaultMelody) {
		t.Errorf("default melody rendered %d samples, expected about %d", buffer.Len(), SampleRate.N(total))
	}
}

func TestLength(t *testing.T) {
	if got := Length(DefaultMelody); got != 790*time.Millisecond {
		t.Errorf("expected 790ms, got %s", got)
	}
	if got := Length(nil); got != 0 {
		t.Errorf("expected 0 for empty melody, got %s", got)
	}
}
