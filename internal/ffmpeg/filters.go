package ffmpeg

import (
	"fastencode/internal/models"
	"fmt"
	"strings"
)

// Filter strings indexed by strength level. Index 0 means the filter is off.
var (
	denoiseFilters = [...]string{
		"",
		"hqdn3d=2:1.5:3:2.5",
		"hqdn3d=4:3:6:4.5",
		"hqdn3d=6:4.5:9:6.5",
		"hqdn3d=8:6:12:9",
		"hqdn3d=10:8:15:12",
		"hqdn3d=10:8:3:2",
	}
	deflickerFilters = [...]string{
		"",
		"deflicker=size=5:mode=pm",
		"deflicker=size=7:mode=pm",
		"deflicker=size=10:mode=am",
		"deflicker=size=15:mode=am",
		"deflicker=size=20:mode=am",
	}
	temporalFilters = [...]string{
		"",
		"tmix=frames=3:weights='1 2 1'",
		"tmix=frames=5:weights='1 2 3 2 1'",
		"tmix=frames=5:weights='1 3 4 3 1'",
	}
	sharpenFilters = [...]string{
		"",
		"unsharp=3:3:0.3:3:3:0",
		"unsharp=3:3:0.5:3:3:0",
		"unsharp=5:5:0.6:3:3:0",
		"unsharp=5:5:0.8:3:3:0",
		"unsharp=5:5:1.0:3:3:0",
	}
)

// exposureFilter builds an eq filter for the exposure level. Positive
// levels brighten with a contrast lift, negative levels darken with
// contrast untouched.
func exposureFilter(level int) string {
	if level == 0 {
		return ""
	}

	l := float64(level)
	brightness := l * 0.03
	var gamma, contrast float64
	if level > 0 {
		gamma = 1 + l*0.06
		contrast = 1 + l*0.015
	} else {
		gamma = 1 + l*0.05
		contrast = 1.0
	}

	return fmt.Sprintf("eq=brightness=%.3f:contrast=%.2f:gamma=%.2f", brightness, contrast, gamma)
}

// BuildVideoFilters assembles the -vf chain for the settings. Returns ""
// when no filter is enabled. Chain order matters: denoise before
// deflicker and temporal smoothing, exposure before sharpening.
func BuildVideoFilters(s *models.EncodeSettings) string {
	filters := make([]string, 0, 5)

	if s.DenoiseLevel > 0 && s.DenoiseLevel < len(denoiseFilters) {
		filters = append(filters, denoiseFilters[s.DenoiseLevel])
	}
	if s.DeflickerLevel > 0 && s.DeflickerLevel < len(deflickerFilters) {
		filters = append(filters, deflickerFilters[s.DeflickerLevel])
	}
	if s.TemporalLevel > 0 && s.TemporalLevel < len(temporalFilters) {
		filters = append(filters, temporalFilters[s.TemporalLevel])
	}
	if f := exposureFilter(s.ExposureLevel); f != "" {
		filters = append(filters, f)
	}
	if s.SharpenLevel > 0 && s.SharpenLevel < len(sharpenFilters) {
		filters = append(filters, sharpenFilters[s.SharpenLevel])
	}

	return strings.Join(filters, ",")
}
