package consts

// FFmpeg flag names.
const (
	FFmpegCV                  = "-c:v"
	FFmpegCA                  = "-c:a"
	FFmpegBA                  = "-b:a"
	FFmpegBV                  = "-b:v"
	FFmpegVF                  = "-vf"
	FFmpegCRF                 = "-crf"
	FFmpegCQ                  = "-cq"
	FFmpegTune                = "-tune"
	FFmpegRC                  = "-rc"
	FFmpegPreset              = "-preset"
	FFmpegPixFmt              = "-pix_fmt"
	FFmpegThreads             = "-threads"
	FFmpegProfileV            = "-profile:v"
	FFmpegHWAccel             = "-hwaccel"
	FFmpegHWAccelOutputFormat = "-hwaccel_output_format"
)

// Video codec names.
const (
	VCodecProRes    = "prores_ks"
	VCodecH264NVENC = "h264_nvenc"
	VCodecHEVCNVENC = "hevc_nvenc"
	VCodecX264      = "libx264"
	VCodecX265      = "libx265"

	DecoderHEVCCUVID = "hevc_cuvid"
	AccelTypeCUDA    = "cuda"
)

// Audio codec names.
const (
	ACodecPCM24 = "pcm_s24le"
	ACodecPCM16 = "pcm_s16le"
	ACodecAAC   = "aac"
	ACodecCopy  = "copy"
)

// Pixel formats.
const (
	PixFmtYUV420P     = "yuv420p"
	PixFmtP010LE      = "p010le"
	PixFmtYUV422P10LE = "yuv422p10le"
	PixFmtYUV444P10LE = "yuv444p10le"
)

// NVENC rate control arguments shared by both NVENC encoders.
var NvencQualityArgs = [...]string{FFmpegPreset, "p7", FFmpegTune, "hq", FFmpegRC, "vbr"}

// ProRes encoder arguments independent of profile.
var ProResVendorArgs = [...]string{"-vendor", "apl0", "-bits_per_mb", "8000"}
