// Package keys holds the Viper keys used throughout the program.
package keys

// Input and output locations.
const (
	InputFiles string = "input-file"
	InputDirs  string = "input-dir"
	OutputDir  string = "output-dir"
)

// Encode settings.
const (
	VideoCodec    string = "codec"
	AudioCodec    string = "audio-codec"
	UseGPU        string = "gpu"
	QualityCQ     string = "quality"
	TenBit        string = "ten-bit"
	ProResProfile string = "prores-profile"
	Threads       string = "threads"
	InputPreset   string = "preset"
)

// Filter settings.
const (
	DenoiseLevel    string = "denoise"
	DeflickerLevel  string = "deflicker"
	TemporalLevel   string = "temporal"
	ExposureLevel   string = "exposure"
	SharpenLevel    string = "sharpen"
	ExtraFFmpegArgs string = "extra-ffmpeg-args"
)

// System resource settings.
const (
	Concurrency     string = "concurrency"
	MaxCPU          string = "max-cpu"
	MinFreeMemInput string = "min-free-mem"
)

// Install and update settings.
const (
	InstallSource string = "source"
	ScriptURL     string = "script-url"
	IconURL       string = "icon-url"
	DownloadsDir  string = "downloads-dir"
	ReleasePage   string = "release-page"
	CheckOnly     string = "check"
)

// Program functions.
const (
	DebugLevel string = "debug-level"
	ConfigPath string = "config-file"
	Overwrite  string = "overwrite"
)

// Keys set by the program itself rather than by the user.
const (
	Execute           string = "execute"
	RunModeEnum       string = "runModeEnum"
	InstallSourceEnum string = "installSourceEnum"
	MinFreeMem        string = "minFreeMem"
)
