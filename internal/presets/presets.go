// Package presets maps preset names to bundles of encode settings.
package presets

import (
	"fastencode/internal/abstractions"
	"fastencode/internal/domain/consts"
	"fastencode/internal/domain/keys"
	"fastencode/internal/utils/logging"
	"fmt"
	"sort"
	"strings"
)

// Preset is a named bundle of encode settings. Nil fields leave the
// current setting untouched.
type Preset struct {
	VideoCodec    *string
	AudioCodec    *string
	UseGPU        *bool
	QualityCQ     *int
	TenBit        *bool
	ProResProfile *int

	DenoiseLevel   *int
	DeflickerLevel *int
	TemporalLevel  *int
	ExposureLevel  *int
	SharpenLevel   *int
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }

// Archival and delivery presets, plus GoPro cleanup chains tuned per
// shooting condition.
var table = map[string]Preset{
	"prores_xq": {
		VideoCodec:    strPtr(consts.VCodecProRes),
		AudioCodec:    strPtr(consts.ACodecPCM24),
		ProResProfile: intPtr(5),
	},
	"prores_hq": {
		VideoCodec:    strPtr(consts.VCodecProRes),
		AudioCodec:    strPtr(consts.ACodecPCM24),
		ProResProfile: intPtr(3),
	},
	"hevc_hq": {
		VideoCodec: strPtr(consts.VCodecHEVCNVENC),
		AudioCodec: strPtr(consts.ACodecPCM24),
		UseGPU:     boolPtr(true),
		QualityCQ:  intPtr(14),
		TenBit:     boolPtr(false),
	},
	"hevc_balanced": {
		VideoCodec: strPtr(consts.VCodecHEVCNVENC),
		AudioCodec: strPtr(consts.ACodecAAC),
		UseGPU:     boolPtr(true),
		QualityCQ:  intPtr(20),
		TenBit:     boolPtr(false),
	},
	"hevc_small": {
		VideoCodec: strPtr(consts.VCodecHEVCNVENC),
		AudioCodec: strPtr(consts.ACodecAAC),
		UseGPU:     boolPtr(true),
		QualityCQ:  intPtr(26),
		TenBit:     boolPtr(false),
	},
	"gopro_outdoor": {
		DenoiseLevel:  intPtr(1),
		ExposureLevel: intPtr(0),
		SharpenLevel:  intPtr(1),
	},
	"gopro_indoor": {
		DenoiseLevel:   intPtr(2),
		DeflickerLevel: intPtr(2),
		TemporalLevel:  intPtr(1),
		ExposureLevel:  intPtr(1),
		SharpenLevel:   intPtr(2),
	},
	"gopro_lowlight": {
		DenoiseLevel:   intPtr(4),
		DeflickerLevel: intPtr(2),
		TemporalLevel:  intPtr(1),
		ExposureLevel:  intPtr(2),
		SharpenLevel:   intPtr(2),
	},
	"gopro_nuclear": {
		DenoiseLevel:   intPtr(5),
		DeflickerLevel: intPtr(5),
		TemporalLevel:  intPtr(2),
		ExposureLevel:  intPtr(2),
		SharpenLevel:   intPtr(3),
	},
	"gopro_nuclear_noswim": {
		DenoiseLevel:   intPtr(6),
		DeflickerLevel: intPtr(5),
		TemporalLevel:  intPtr(0),
		ExposureLevel:  intPtr(2),
		SharpenLevel:   intPtr(3),
	},
}

// Names returns the preset names, sorted.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply stores the preset's settings, skipping keys the user set
// explicitly on the command line.
func Apply(name string, userSet func(key string) bool) error {
	preset, ok := table[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return fmt.Errorf("preset %q does not exist (options: %s)", name, strings.Join(Names(), ", "))
	}

	setStr := func(key string, val *string) {
		if val != nil && !userSet(key) {
			abstractions.Set(key, *val)
		}
	}
	setBool := func(key string, val *bool) {
		if val != nil && !userSet(key) {
			abstractions.Set(key, *val)
		}
	}
	setInt := func(key string, val *int) {
		if val != nil && !userSet(key) {
			abstractions.Set(key, *val)
		}
	}

	setStr(keys.VideoCodec, preset.VideoCodec)
	setStr(keys.AudioCodec, preset.AudioCodec)
	setBool(keys.UseGPU, preset.UseGPU)
	setInt(keys.QualityCQ, preset.QualityCQ)
	setBool(keys.TenBit, preset.TenBit)
	setInt(keys.ProResProfile, preset.ProResProfile)
	setInt(keys.DenoiseLevel, preset.DenoiseLevel)
	setInt(keys.DeflickerLevel, preset.DeflickerLevel)
	setInt(keys.TemporalLevel, preset.TemporalLevel)
	setInt(keys.ExposureLevel, preset.ExposureLevel)
	setInt(keys.SharpenLevel, preset.SharpenLevel)

	logging.I("Applied preset %q", name)
	return nil
}
