// Package ffprobe inspects media files with the ffprobe tool.
package ffprobe

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Duration returns the media duration in seconds.
func Duration(ctx context.Context, path string) (float64, error) {
	out, err := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path).Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed for %q: %w", path, err)
	}

	dur, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration for %q: %w", path, err)
	}
	return dur, nil
}

// VideoCodec returns the codec name of the first video stream.
func VideoCodec(ctx context.Context, path string) (string, error) {
	out, err := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=codec_name",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path).Output()
	if err != nil {
		return "", fmt.Errorf("ffprobe failed for %q: %w", path, err)
	}
	return strings.TrimSpace(string(out)), nil
}
