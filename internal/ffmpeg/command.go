package ffmpeg

import (
	"fastencode/internal/domain/consts"
	"fastencode/internal/models"
	"fastencode/internal/utils/logging"
	"strconv"
	"strings"
)

// encodeCommandBuilder builds FFmpeg commands for encode jobs.
type encodeCommandBuilder struct {
	inputFile  string
	outputFile string

	decodeArgs []string
	filterArgs []string
	videoArgs  []string
	audioArgs  []string
	threadArgs []string
	extraArgs  []string
}

// newEncodeCommandBuilder returns a builder for the encode job.
func newEncodeCommandBuilder(job *models.EncodeJob) *encodeCommandBuilder {
	return &encodeCommandBuilder{
		inputFile:  job.InputPath,
		outputFile: job.TempOutputPath,
	}
}

// setDecodeAccel adds hardware decode arguments. With CPU filters in the
// chain the frames must land in system memory, so cuvid decode is used
// instead of a full CUDA pipeline.
func (b *encodeCommandBuilder) setDecodeAccel(s *models.EncodeSettings) {
	if !s.UseGPU || !s.IsNVENC() {
		return
	}

	if s.HasFilters() {
		b.decodeArgs = []string{consts.FFmpegHWAccel, consts.AccelTypeCUDA, consts.FFmpegCV, consts.DecoderHEVCCUVID}
	} else {
		b.decodeArgs = []string{consts.FFmpegHWAccel, consts.AccelTypeCUDA, consts.FFmpegHWAccelOutputFormat, consts.AccelTypeCUDA}
	}
}

// setVideoFilters adds the -vf chain when any filter is enabled.
func (b *encodeCommandBuilder) setVideoFilters(s *models.EncodeSettings) {
	if chain := BuildVideoFilters(s); chain != "" {
		b.filterArgs = []string{consts.FFmpegVF, chain}
	}
}

// setVideoCodec adds the encoder arguments. NVENC encoders requested
// without GPU support fall back to their software equivalents.
func (b *encodeCommandBuilder) setVideoCodec(s *models.EncodeSettings) {
	cq := strconv.Itoa(s.QualityCQ)

	switch s.VideoCodec {
	case consts.VCodecProRes:
		pixFmt := consts.PixFmtYUV422P10LE
		if s.ProResProfile >= 4 {
			pixFmt = consts.PixFmtYUV444P10LE
		}
		b.videoArgs = append(b.videoArgs,
			consts.FFmpegCV, consts.VCodecProRes,
			consts.FFmpegProfileV, strconv.Itoa(s.ProResProfile),
			consts.FFmpegPixFmt, pixFmt,
		)
		b.videoArgs = append(b.videoArgs, consts.ProResVendorArgs[:]...)

	case consts.VCodecH264NVENC, consts.VCodecHEVCNVENC:
		if !s.UseGPU {
			fallback := consts.VCodecX264
			if s.VideoCodec == consts.VCodecHEVCNVENC {
				fallback = consts.VCodecX265
			}
			logging.W("GPU disabled, falling back from %s to %s", s.VideoCodec, fallback)
			b.videoArgs = append(b.videoArgs,
				consts.FFmpegCV, fallback,
				consts.FFmpegPreset, "slow",
				consts.FFmpegCRF, cq,
				consts.FFmpegPixFmt, consts.PixFmtYUV420P,
			)
			return
		}

		pixFmt := consts.PixFmtYUV420P
		if s.TenBit && s.VideoCodec == consts.VCodecHEVCNVENC {
			pixFmt = consts.PixFmtP010LE
		}
		b.videoArgs = append(b.videoArgs, consts.FFmpegCV, s.VideoCodec)
		b.videoArgs = append(b.videoArgs, consts.NvencQualityArgs[:]...)
		b.videoArgs = append(b.videoArgs,
			consts.FFmpegCQ, cq,
			consts.FFmpegBV, "0",
			consts.FFmpegPixFmt, pixFmt,
		)

	default:
		b.videoArgs = append(b.videoArgs,
			consts.FFmpegCV, s.VideoCodec,
			consts.FFmpegPreset, "slow",
			consts.FFmpegCRF, cq,
			consts.FFmpegPixFmt, consts.PixFmtYUV420P,
		)
	}
}

// setAudioCodec adds the audio arguments.
func (b *encodeCommandBuilder) setAudioCodec(s *models.EncodeSettings) {
	b.audioArgs = []string{consts.FFmpegCA, s.AudioCodec}
	if s.AudioCodec == consts.ACodecAAC {
		b.audioArgs = append(b.audioArgs, consts.FFmpegBA, "320k")
	}
}

// setThreads adds a thread limit when one is configured.
func (b *encodeCommandBuilder) setThreads(s *models.EncodeSettings) {
	if s.Threads > 0 {
		b.threadArgs = []string{consts.FFmpegThreads, strconv.Itoa(s.Threads)}
	}
}

// setExtraArgs splits user pass-through arguments.
func (b *encodeCommandBuilder) setExtraArgs(s *models.EncodeSettings) {
	if s.ExtraFFmpegArgs != "" {
		b.extraArgs = strings.Fields(s.ExtraFFmpegArgs)
	}
}

// calculateCommandCapacity computes the final argument count.
func (b *encodeCommandBuilder) calculateCommandCapacity() int {
	return 2 + // -y -hide_banner
		len(b.decodeArgs) +
		2 + // -i <input>
		len(b.filterArgs) +
		len(b.videoArgs) +
		len(b.audioArgs) +
		len(b.threadArgs) +
		len(b.extraArgs) +
		1 // output
}

// buildFinalCommand assembles the complete argument list.
func (b *encodeCommandBuilder) buildFinalCommand() []string {
	args := make([]string, 0, b.calculateCommandCapacity())

	args = append(args, "-y", "-hide_banner")
	args = append(args, b.decodeArgs...)
	args = append(args, "-i", b.inputFile)
	args = append(args, b.filterArgs...)
	args = append(args, b.videoArgs...)
	args = append(args, b.audioArgs...)
	args = append(args, b.threadArgs...)
	args = append(args, b.extraArgs...)
	args = append(args, b.outputFile)

	return args
}

// BuildEncodeCommand returns the FFmpeg argument list for the job.
func BuildEncodeCommand(job *models.EncodeJob) []string {
	b := newEncodeCommandBuilder(job)

	b.setDecodeAccel(job.Settings)
	b.setVideoFilters(job.Settings)
	b.setVideoCodec(job.Settings)
	b.setAudioCodec(job.Settings)
	b.setThreads(job.Settings)
	b.setExtraArgs(job.Settings)

	return b.buildFinalCommand()
}
