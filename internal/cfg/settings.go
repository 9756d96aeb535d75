package cfg

import (
	"errors"
	"fastencode/internal/abstractions"
	"fastencode/internal/domain/enums"
	"fastencode/internal/domain/keys"
	"fastencode/internal/presets"
	"fastencode/internal/validation"

	"github.com/spf13/cobra"
)

// execute validates encode settings and queues the encode run.
func execute(cmd *cobra.Command) error {
	if !abstractions.IsSet(keys.InputFiles) && !abstractions.IsSet(keys.InputDirs) {
		return errors.New("no input files or directories entered, nothing to encode")
	}

	if name := abstractions.GetString(keys.InputPreset); name != "" {
		if err := presets.Apply(name, cmd.Flags().Changed); err != nil {
			return err
		}
	}

	if err := validation.ValidateVideoCodec(abstractions.GetString(keys.VideoCodec)); err != nil {
		return err
	}
	if err := validation.ValidateAudioCodec(abstractions.GetString(keys.AudioCodec)); err != nil {
		return err
	}

	abstractions.Set(keys.QualityCQ, validation.ValidateQualityCQ(abstractions.GetInt(keys.QualityCQ)))
	abstractions.Set(keys.ProResProfile, validation.ValidateProResProfile(abstractions.GetInt(keys.ProResProfile)))
	abstractions.Set(keys.DenoiseLevel, validation.ValidateFilterLevel("Denoise", abstractions.GetInt(keys.DenoiseLevel), 0, 6))
	abstractions.Set(keys.DeflickerLevel, validation.ValidateFilterLevel("Deflicker", abstractions.GetInt(keys.DeflickerLevel), 0, 5))
	abstractions.Set(keys.TemporalLevel, validation.ValidateFilterLevel("Temporal smoothing", abstractions.GetInt(keys.TemporalLevel), 0, 3))
	abstractions.Set(keys.ExposureLevel, validation.ValidateFilterLevel("Exposure", abstractions.GetInt(keys.ExposureLevel), -5, 5))
	abstractions.Set(keys.SharpenLevel, validation.ValidateFilterLevel("Sharpen", abstractions.GetInt(keys.SharpenLevel), 0, 5))

	abstractions.Set(keys.Concurrency, validation.ValidateConcurrencyLimit(abstractions.GetInt(keys.Concurrency)))
	abstractions.Set(keys.MaxCPU, validation.ValidateMaxCPU(abstractions.GetFloat64(keys.MaxCPU)))

	if err := validation.ValidateMinFreeMem(abstractions.GetString(keys.MinFreeMemInput)); err != nil {
		return err
	}

	for _, dir := range abstractions.GetStringSlice(keys.InputDirs) {
		if err := validation.ValidateDirectory(dir); err != nil {
			return err
		}
	}
	for _, file := range abstractions.GetStringSlice(keys.InputFiles) {
		if err := validation.ValidateFile(file); err != nil {
			return err
		}
	}
	if outDir := abstractions.GetString(keys.OutputDir); outDir != "" {
		if err := validation.ValidateDirectory(outDir); err != nil {
			return err
		}
	}

	abstractions.Set(keys.RunModeEnum, enums.RunModeEncode)
	return nil
}

// executeInstall validates install settings and queues the install run.
func executeInstall() error {
	source, err := validation.ValidateInstallSource(abstractions.GetString(keys.InstallSource))
	if err != nil {
		return err
	}
	abstractions.Set(keys.InstallSourceEnum, source)

	if source == enums.InstallSourceLocal {
		if dir := abstractions.GetString(keys.DownloadsDir); dir != "" {
			if err := validation.ValidateDirectory(dir); err != nil {
				return err
			}
		}
	}

	abstractions.Set(keys.RunModeEnum, enums.RunModeInstall)
	return nil
}

// executeUpdate queues the update run.
func executeUpdate() error {
	if abstractions.GetString(keys.ReleasePage) == "" {
		return errors.New("release page URL cannot be empty")
	}

	abstractions.Set(keys.RunModeEnum, enums.RunModeUpdate)
	return nil
}
