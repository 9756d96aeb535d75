package cfg

import (
	"fastencode/internal/domain/consts"
	"fastencode/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initProgramFlags binds flags that affect the program itself.
func initProgramFlags(cmd *cobra.Command) error {
	cmd.PersistentFlags().IntP(keys.DebugLevel, "d", 0, "Debugging level (0 - 5)")
	if err := viper.BindPFlag(keys.DebugLevel, cmd.PersistentFlags().Lookup(keys.DebugLevel)); err != nil {
		return err
	}

	cmd.PersistentFlags().String(keys.ConfigPath, "", "Path to a config file with preset flag values")
	return viper.BindPFlag(keys.ConfigPath, cmd.PersistentFlags().Lookup(keys.ConfigPath))
}

// initFilesDirs binds flags for input and output locations.
func initFilesDirs(cmd *cobra.Command) error {
	cmd.Flags().StringSliceP(keys.InputFiles, "f", nil, "Video file(s) to encode")
	if err := viper.BindPFlag(keys.InputFiles, cmd.Flags().Lookup(keys.InputFiles)); err != nil {
		return err
	}

	cmd.Flags().StringSliceP(keys.InputDirs, "D", nil, "Directories to scan for video files")
	if err := viper.BindPFlag(keys.InputDirs, cmd.Flags().Lookup(keys.InputDirs)); err != nil {
		return err
	}

	cmd.Flags().StringP(keys.OutputDir, "o", "", "Directory to write encoded files into (default: alongside input)")
	if err := viper.BindPFlag(keys.OutputDir, cmd.Flags().Lookup(keys.OutputDir)); err != nil {
		return err
	}

	cmd.Flags().Bool(keys.Overwrite, false, "Overwrite existing output files without prompting")
	return viper.BindPFlag(keys.Overwrite, cmd.Flags().Lookup(keys.Overwrite))
}

// initEncodeFlags binds flags for codec and quality settings.
func initEncodeFlags(cmd *cobra.Command) error {
	cmd.Flags().StringP(keys.VideoCodec, "c", consts.VCodecHEVCNVENC, "Video codec (prores_ks, h264_nvenc, hevc_nvenc, libx264, libx265)")
	if err := viper.BindPFlag(keys.VideoCodec, cmd.Flags().Lookup(keys.VideoCodec)); err != nil {
		return err
	}

	cmd.Flags().StringP(keys.AudioCodec, "a", consts.ACodecCopy, "Audio codec (pcm_s24le, pcm_s16le, aac, copy)")
	if err := viper.BindPFlag(keys.AudioCodec, cmd.Flags().Lookup(keys.AudioCodec)); err != nil {
		return err
	}

	cmd.Flags().BoolP(keys.UseGPU, "g", false, "Use NVIDIA hardware acceleration for decode and encode")
	if err := viper.BindPFlag(keys.UseGPU, cmd.Flags().Lookup(keys.UseGPU)); err != nil {
		return err
	}

	cmd.Flags().IntP(keys.QualityCQ, "q", 18, "Constant quality value for NVENC / CRF encoders (0 - 51, lower is better)")
	if err := viper.BindPFlag(keys.QualityCQ, cmd.Flags().Lookup(keys.QualityCQ)); err != nil {
		return err
	}

	cmd.Flags().Bool(keys.TenBit, false, "Encode 10-bit output (HEVC only)")
	if err := viper.BindPFlag(keys.TenBit, cmd.Flags().Lookup(keys.TenBit)); err != nil {
		return err
	}

	cmd.Flags().Int(keys.ProResProfile, 3, "ProRes profile (0 proxy - 5 XQ)")
	if err := viper.BindPFlag(keys.ProResProfile, cmd.Flags().Lookup(keys.ProResProfile)); err != nil {
		return err
	}

	cmd.Flags().IntP(keys.Threads, "t", 0, "Encoder thread count (0 lets FFmpeg decide)")
	if err := viper.BindPFlag(keys.Threads, cmd.Flags().Lookup(keys.Threads)); err != nil {
		return err
	}

	cmd.Flags().StringP(keys.InputPreset, "p", "", "Apply a named settings preset")
	return viper.BindPFlag(keys.InputPreset, cmd.Flags().Lookup(keys.InputPreset))
}

// initFilterFlags binds flags for the video filter chain.
func initFilterFlags(cmd *cobra.Command) error {
	cmd.Flags().Int(keys.DenoiseLevel, 0, "Denoise strength (0 off - 6 max)")
	if err := viper.BindPFlag(keys.DenoiseLevel, cmd.Flags().Lookup(keys.DenoiseLevel)); err != nil {
		return err
	}

	cmd.Flags().Int(keys.DeflickerLevel, 0, "Deflicker strength (0 off - 5 max)")
	if err := viper.BindPFlag(keys.DeflickerLevel, cmd.Flags().Lookup(keys.DeflickerLevel)); err != nil {
		return err
	}

	cmd.Flags().Int(keys.TemporalLevel, 0, "Temporal smoothing strength (0 off - 3 max)")
	if err := viper.BindPFlag(keys.TemporalLevel, cmd.Flags().Lookup(keys.TemporalLevel)); err != nil {
		return err
	}

	cmd.Flags().Int(keys.ExposureLevel, 0, "Exposure adjustment (-5 darken to 5 brighten, 0 off)")
	if err := viper.BindPFlag(keys.ExposureLevel, cmd.Flags().Lookup(keys.ExposureLevel)); err != nil {
		return err
	}

	cmd.Flags().Int(keys.SharpenLevel, 0, "Sharpen strength (0 off - 5 max)")
	if err := viper.BindPFlag(keys.SharpenLevel, cmd.Flags().Lookup(keys.SharpenLevel)); err != nil {
		return err
	}

	cmd.Flags().String(keys.ExtraFFmpegArgs, "", "Extra arguments passed through to FFmpeg verbatim")
	return viper.BindPFlag(keys.ExtraFFmpegArgs, cmd.Flags().Lookup(keys.ExtraFFmpegArgs))
}

// initResourceFlags binds flags for system resource limits.
func initResourceFlags(cmd *cobra.Command) error {
	cmd.Flags().IntP(keys.Concurrency, "l", 1, "Number of videos to encode at once")
	if err := viper.BindPFlag(keys.Concurrency, cmd.Flags().Lookup(keys.Concurrency)); err != nil {
		return err
	}

	cmd.Flags().Float64(keys.MaxCPU, 100.0, "Throttle new encodes above this CPU usage percentage")
	if err := viper.BindPFlag(keys.MaxCPU, cmd.Flags().Lookup(keys.MaxCPU)); err != nil {
		return err
	}

	cmd.Flags().StringP(keys.MinFreeMemInput, "m", "", "Minimum free memory before starting an encode (e.g. 1G, 512M)")
	return viper.BindPFlag(keys.MinFreeMemInput, cmd.Flags().Lookup(keys.MinFreeMemInput))
}

// initInstallFlags binds flags for the install command.
func initInstallFlags(cmd *cobra.Command) error {
	cmd.Flags().StringP(keys.InstallSource, "s", "remote", "Install source (remote, local)")
	if err := viper.BindPFlag(keys.InstallSource, cmd.Flags().Lookup(keys.InstallSource)); err != nil {
		return err
	}

	cmd.Flags().String(keys.ScriptURL, consts.DefaultScriptURL, "URL of the program file for remote installs")
	if err := viper.BindPFlag(keys.ScriptURL, cmd.Flags().Lookup(keys.ScriptURL)); err != nil {
		return err
	}

	cmd.Flags().String(keys.IconURL, consts.DefaultIconURL, "URL of the application icon")
	if err := viper.BindPFlag(keys.IconURL, cmd.Flags().Lookup(keys.IconURL)); err != nil {
		return err
	}

	cmd.Flags().String(keys.DownloadsDir, "", "Directory to search for the program file in local installs (default: ~/Downloads)")
	return viper.BindPFlag(keys.DownloadsDir, cmd.Flags().Lookup(keys.DownloadsDir))
}

// initUpdateFlags binds flags for the update command.
func initUpdateFlags(cmd *cobra.Command) error {
	cmd.Flags().String(keys.ReleasePage, consts.DefaultReleasePage, "Release page to scan for new versions")
	if err := viper.BindPFlag(keys.ReleasePage, cmd.Flags().Lookup(keys.ReleasePage)); err != nil {
		return err
	}

	cmd.Flags().Bool(keys.CheckOnly, false, "Only report the latest version, do not install it")
	return viper.BindPFlag(keys.CheckOnly, cmd.Flags().Lookup(keys.CheckOnly))
}
