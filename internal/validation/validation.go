// Package validation checks and normalizes user-entered settings.
package validation

import (
	"fastencode/internal/abstractions"
	"fastencode/internal/domain/consts"
	"fastencode/internal/domain/enums"
	"fastencode/internal/domain/keys"
	"fastencode/internal/utils/logging"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/mem"
)

var validVideoCodecs = map[string]bool{
	consts.VCodecProRes:    true,
	consts.VCodecH264NVENC: true,
	consts.VCodecHEVCNVENC: true,
	consts.VCodecX264:      true,
	consts.VCodecX265:      true,
}

var validAudioCodecs = map[string]bool{
	consts.ACodecPCM24: true,
	consts.ACodecPCM16: true,
	consts.ACodecAAC:   true,
	consts.ACodecCopy:  true,
}

// ValidateVideoCodec checks the video codec is one the program can drive.
func ValidateVideoCodec(codec string) error {
	if !validVideoCodecs[codec] {
		return fmt.Errorf("video codec %q is not supported (options: prores_ks, h264_nvenc, hevc_nvenc, libx264, libx265)", codec)
	}
	return nil
}

// ValidateAudioCodec checks the audio codec selection.
func ValidateAudioCodec(codec string) error {
	if !validAudioCodecs[codec] {
		return fmt.Errorf("audio codec %q is not supported (options: pcm_s24le, pcm_s16le, aac, copy)", codec)
	}
	return nil
}

// ValidateQualityCQ clamps the constant quality value into FFmpeg's range.
func ValidateQualityCQ(cq int) int {
	switch {
	case cq < 0:
		logging.D(1, "Quality value %d below 0, using 0", cq)
		return 0
	case cq > 51:
		logging.D(1, "Quality value %d above 51, using 51", cq)
		return 51
	}
	return cq
}

// ValidateFilterLevel clamps a named filter level into [min, max].
func ValidateFilterLevel(name string, level, min, max int) int {
	switch {
	case level < min:
		logging.D(1, "%s level %d below %d, using %d", name, level, min, min)
		return min
	case level > max:
		logging.D(1, "%s level %d above %d, using %d", name, level, max, max)
		return max
	}
	return level
}

// ValidateProResProfile clamps the ProRes profile (0 proxy - 5 XQ).
func ValidateProResProfile(profile int) int {
	return ValidateFilterLevel("ProRes profile", profile, 0, 5)
}

// ValidateConcurrencyLimit returns a concurrency of at least 1.
func ValidateConcurrencyLimit(concurrency int) int {
	if concurrency < 1 {
		logging.W("Concurrency limit cannot be less than 1, setting to 1 (sequential)")
		return 1
	}
	logging.I("Concurrency limit: %d", concurrency)
	return concurrency
}

// ValidateMinFreeMem parses the minimum free memory requirement (e.g. "1G",
// "512M") and stores it in bytes.
func ValidateMinFreeMem(input string) error {
	if input == "" {
		abstractions.Set(keys.MinFreeMem, uint64(0))
		return nil
	}

	input = strings.ToUpper(strings.TrimSpace(input))
	multiplier := uint64(1)

	switch {
	case strings.HasSuffix(input, "G"):
		multiplier = consts.GB
		input = strings.TrimSuffix(input, "G")
	case strings.HasSuffix(input, "M"):
		multiplier = consts.MB
		input = strings.TrimSuffix(input, "M")
	case strings.HasSuffix(input, "K"):
		multiplier = consts.KB
		input = strings.TrimSuffix(input, "K")
	}

	val, err := strconv.ParseUint(input, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid minimum free memory value %q: %w", input, err)
	}

	required := val * multiplier

	stats, err := mem.VirtualMemory()
	if err != nil {
		logging.E("Failed to read system memory stats: %v", err)
	} else if required > stats.Total {
		return fmt.Errorf("minimum free memory requirement (%d bytes) exceeds total system memory (%d bytes)", required, stats.Total)
	}

	abstractions.Set(keys.MinFreeMem, required)
	return nil
}

// ValidateMaxCPU clamps the CPU usage target into (0, 100].
func ValidateMaxCPU(maxCPU float64) float64 {
	switch {
	case maxCPU > 100.0:
		logging.W("Max CPU usage cannot exceed 100%%, setting to 100%%")
		return 100.0
	case maxCPU <= 0.0:
		logging.W("Max CPU usage must be positive, setting to 100%%")
		return 100.0
	}
	return maxCPU
}

// ValidateInstallSource resolves the install source name to its enum.
func ValidateInstallSource(source string) (enums.InstallSource, error) {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case "remote", "":
		return enums.InstallSourceRemote, nil
	case "local":
		return enums.InstallSourceLocal, nil
	default:
		return 0, fmt.Errorf("install source %q is not recognized (options: remote, local)", source)
	}
}

// ValidateDirectory checks the path exists and is a directory.
func ValidateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to stat directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}
	return nil
}

// ValidateFile checks the path exists and is a regular file.
func ValidateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file %q: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%q is a directory, expected a file", path)
	}
	return nil
}
