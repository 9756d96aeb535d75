package ffmpeg

import (
	"fastencode/internal/models"
	"strings"
	"testing"
)

func TestBuildVideoFiltersOff(t *testing.T) {
	s := &models.EncodeSettings{}
	if got := BuildVideoFilters(s); got != "" {
		t.Fatalf("expected empty chain, got %q", got)
	}
}

func TestBuildVideoFiltersSingle(t *testing.T) {
	tests := []struct {
		name     string
		settings models.EncodeSettings
		want     string
	}{
		{"denoise light", models.EncodeSettings{DenoiseLevel: 1}, "hqdn3d=2:1.5:3:2.5"},
		{"denoise max", models.EncodeSettings{DenoiseLevel: 6}, "hqdn3d=10:8:3:2"},
		{"deflicker", models.EncodeSettings{DeflickerLevel: 2}, "deflicker=size=7:mode=pm"},
		{"deflicker max", models.EncodeSettings{DeflickerLevel: 5}, "deflicker=size=20:mode=am"},
		{"temporal", models.EncodeSettings{TemporalLevel: 1}, "tmix=frames=3:weights='1 2 1'"},
		{"temporal max", models.EncodeSettings{TemporalLevel: 3}, "tmix=frames=5:weights='1 3 4 3 1'"},
		{"sharpen", models.EncodeSettings{SharpenLevel: 3}, "unsharp=5:5:0.6:3:3:0"},
		{"brighten", models.EncodeSettings{ExposureLevel: 2}, "eq=brightness=0.060:contrast=1.03:gamma=1.12"},
		{"darken", models.EncodeSettings{ExposureLevel: -2}, "eq=brightness=-0.060:contrast=1.00:gamma=0.90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildVideoFilters(&tt.settings); got != tt.want {
				t.Errorf("BuildVideoFilters() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildVideoFiltersOrder(t *testing.T) {
	s := &models.EncodeSettings{
		DenoiseLevel:   1,
		DeflickerLevel: 1,
		TemporalLevel:  1,
		ExposureLevel:  1,
		SharpenLevel:   1,
	}

	got := BuildVideoFilters(s)
	parts := strings.Split(got, ",")
	if len(parts) != 5 {
		t.Fatalf("expected 5 chained filters, got %d: %q", len(parts), got)
	}

	wantPrefixes := []string{"hqdn3d", "deflicker", "tmix", "eq", "unsharp"}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(parts[i], prefix) {
			t.Errorf("filter %d = %q, want prefix %q", i, parts[i], prefix)
		}
	}
}

func TestExposureFilterZero(t *testing.T) {
	if got := exposureFilter(0); got != "" {
		t.Fatalf("expected no filter at level 0, got %q", got)
	}
}
