package processing

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOutputBasePath(t *testing.T) {
	tests := []struct {
		input, outputDir, ext, want string
	}{
		{"/videos/clip.mp4", "", ".mp4", "/videos/clip_encoded.mp4"},
		{"/videos/clip.MTS", "", ".mp4", "/videos/clip_encoded.mp4"},
		{"/videos/clip.mp4", "/out", ".mov", "/out/clip_encoded.mov"},
	}

	for _, tt := range tests {
		if got := outputBasePath(tt.input, tt.outputDir, tt.ext); got != tt.want {
			t.Errorf("outputBasePath(%q, %q, %q) = %q, want %q", tt.input, tt.outputDir, tt.ext, got, tt.want)
		}
	}
}

func TestNextFreeOutputPath(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "clip_encoded.mp4")

	if err := os.WriteFile(base, nil, 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	got := nextFreeOutputPath(base)
	if want := filepath.Join(dir, "clip_encoded_1.mp4"); got != want {
		t.Fatalf("first collision = %q, want %q", got, want)
	}

	if err := os.WriteFile(got, nil, 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	got = nextFreeOutputPath(base)
	if want := filepath.Join(dir, "clip_encoded_2.mp4"); got != want {
		t.Fatalf("second collision = %q, want %q", got, want)
	}
}

func TestTempOutputPath(t *testing.T) {
	got := tempOutputPath("/out/clip_encoded.mp4")
	if want := "/out/tmp_clip_encoded.mp4"; got != want {
		t.Errorf("tempOutputPath() = %q, want %q", got, want)
	}
}

func TestWaitForCPUNoSamples(t *testing.T) {
	orig := cpuPercent
	defer func() { cpuPercent = orig }()
	cpuPercent = func(time.Duration, bool) ([]float64, error) {
		return nil, nil
	}

	if err := waitForCPU(context.Background(), 50); err != nil {
		t.Fatalf("waitForCPU() with no samples must proceed, got %v", err)
	}
}

func TestWaitForCPUBelowTarget(t *testing.T) {
	orig := cpuPercent
	defer func() { cpuPercent = orig }()
	cpuPercent = func(time.Duration, bool) ([]float64, error) {
		return []float64{10.0}, nil
	}

	if err := waitForCPU(context.Background(), 50); err != nil {
		t.Fatalf("waitForCPU() below target must not error, got %v", err)
	}
}
