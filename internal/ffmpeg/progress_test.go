package ffmpeg

import (
	"strings"
	"testing"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"00:00:10.00", 10},
		{"00:01:30.50", 90.5},
		{"01:00:00.00", 3600},
		{"N/A", 0},
		{"garbage", 0},
	}

	for _, tt := range tests {
		if got := parseTimestamp(tt.in); got != tt.want {
			t.Errorf("parseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestProgressParserDuration(t *testing.T) {
	stderr := "Input #0, mov,mp4,m4a,3gp,3g2,mj2, from 'clip.mp4':\n" +
		"  Duration: 00:02:00.00, start: 0.000000, bitrate: 8000 kb/s\n"

	p := NewProgressParser("/videos/clip.mp4")
	p.Consume(strings.NewReader(stderr))

	if got := p.Duration(); got != 120 {
		t.Fatalf("Duration() = %v, want 120", got)
	}
}

func TestProgressParserCarriageReturns(t *testing.T) {
	// FFmpeg rewrites its status line with \r rather than \n.
	stderr := "  Duration: 00:00:10.00, start: 0.0, bitrate: 1 kb/s\n" +
		"frame=  100 fps=50 time=00:00:04.00 speed=2.0x\r" +
		"frame=  200 fps=50 time=00:00:08.00 speed=2.1x\r"

	p := NewProgressParser("/videos/clip.mp4")
	p.Consume(strings.NewReader(stderr))

	if p.Duration() != 10 {
		t.Fatalf("Duration() = %v, want 10", p.Duration())
	}
	if !strings.Contains(p.LastOutput(), "speed=2.1x") {
		t.Errorf("last output should retain the final status line, got %q", p.LastOutput())
	}
}

func TestProgressParserLastOutputBounded(t *testing.T) {
	var b strings.Builder
	for range [100]struct{}{} {
		b.WriteString("some ffmpeg chatter line\n")
	}
	b.WriteString("Conversion failed!\n")

	p := NewProgressParser("/videos/clip.mp4")
	p.Consume(strings.NewReader(b.String()))

	out := p.LastOutput()
	if !strings.Contains(out, "Conversion failed!") {
		t.Fatalf("last output must include the final line, got %q", out)
	}
	if got := len(strings.Split(out, "\n")); got > lastLinesKept {
		t.Errorf("retained %d lines, want at most %d", got, lastLinesKept)
	}
}

func TestExtractField(t *testing.T) {
	line := "frame=  100 fps=50 time=00:00:04.00 speed=2.0x"
	if got := extractField(line, "speed="); got != "2.0x" {
		t.Errorf("extractField(speed=) = %q, want 2.0x", got)
	}
	if got := extractField(line, "bitrate="); got != "" {
		t.Errorf("extractField on absent marker = %q, want empty", got)
	}
}
