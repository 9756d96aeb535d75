package models

import (
	"fastencode/internal/abstractions"
	"fastencode/internal/domain/consts"
	"fastencode/internal/domain/keys"
	"strings"
)

// EncodeSettings holds the user's encode configuration for a batch run.
type EncodeSettings struct {
	VideoCodec    string
	AudioCodec    string
	UseGPU        bool
	QualityCQ     int
	TenBit        bool
	ProResProfile int
	Threads       int

	DenoiseLevel   int
	DeflickerLevel int
	TemporalLevel  int
	ExposureLevel  int
	SharpenLevel   int

	ExtraFFmpegArgs string
}

// NewEncodeSettings builds encode settings from the configuration store.
func NewEncodeSettings() *EncodeSettings {
	return &EncodeSettings{
		VideoCodec:    abstractions.GetString(keys.VideoCodec),
		AudioCodec:    abstractions.GetString(keys.AudioCodec),
		UseGPU:        abstractions.GetBool(keys.UseGPU),
		QualityCQ:     abstractions.GetInt(keys.QualityCQ),
		TenBit:        abstractions.GetBool(keys.TenBit),
		ProResProfile: abstractions.GetInt(keys.ProResProfile),
		Threads:       abstractions.GetInt(keys.Threads),

		DenoiseLevel:   abstractions.GetInt(keys.DenoiseLevel),
		DeflickerLevel: abstractions.GetInt(keys.DeflickerLevel),
		TemporalLevel:  abstractions.GetInt(keys.TemporalLevel),
		ExposureLevel:  abstractions.GetInt(keys.ExposureLevel),
		SharpenLevel:   abstractions.GetInt(keys.SharpenLevel),

		ExtraFFmpegArgs: abstractions.GetString(keys.ExtraFFmpegArgs),
	}
}

// OutputExt returns the container extension for the configured codec.
// ProRes requires a QuickTime container.
func (s *EncodeSettings) OutputExt() string {
	if s.VideoCodec == consts.VCodecProRes {
		return consts.ExtMOV
	}
	return consts.ExtMP4
}

// HasFilters reports whether any video filter is enabled.
func (s *EncodeSettings) HasFilters() bool {
	return s.DenoiseLevel != 0 ||
		s.DeflickerLevel != 0 ||
		s.TemporalLevel != 0 ||
		s.ExposureLevel != 0 ||
		s.SharpenLevel != 0
}

// IsNVENC reports whether the configured codec is an NVENC encoder.
func (s *EncodeSettings) IsNVENC() bool {
	return strings.HasSuffix(s.VideoCodec, "_nvenc")
}

// EncodeJob is one input file moving through the encode pipeline.
type EncodeJob struct {
	InputPath      string
	OutputPath     string
	TempOutputPath string
	Settings       *EncodeSettings
}
