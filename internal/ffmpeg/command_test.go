package ffmpeg

import (
	"fastencode/internal/models"
	"strings"
	"testing"
)

func makeJob(settings *models.EncodeSettings) *models.EncodeJob {
	return &models.EncodeJob{
		InputPath:      "/videos/clip.mp4",
		OutputPath:     "/videos/clip_encoded.mp4",
		TempOutputPath: "/videos/tmp_clip_encoded.mp4",
		Settings:       settings,
	}
}

// argValue returns the argument following flag, or "".
func argValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func hasSubsequence(args []string, want ...string) bool {
	joined := " " + strings.Join(args, " ") + " "
	return strings.Contains(joined, " "+strings.Join(want, " ")+" ")
}

func TestBuildEncodeCommandNVENC(t *testing.T) {
	job := makeJob(&models.EncodeSettings{
		VideoCodec: "hevc_nvenc",
		AudioCodec: "copy",
		UseGPU:     true,
		QualityCQ:  14,
	})

	args := BuildEncodeCommand(job)

	if args[0] != "-y" || args[1] != "-hide_banner" {
		t.Fatalf("command must start with -y -hide_banner, got %v", args[:2])
	}
	if !hasSubsequence(args, "-hwaccel", "cuda", "-hwaccel_output_format", "cuda") {
		t.Errorf("expected full CUDA decode pipeline without filters, got %v", args)
	}
	if !hasSubsequence(args, "-c:v", "hevc_nvenc", "-preset", "p7", "-tune", "hq", "-rc", "vbr", "-cq", "14", "-b:v", "0", "-pix_fmt", "yuv420p") {
		t.Errorf("unexpected NVENC encode args: %v", args)
	}
	if args[len(args)-1] != job.TempOutputPath {
		t.Errorf("output must be the temporary path, got %q", args[len(args)-1])
	}
}

func TestBuildEncodeCommandNVENCWithFilters(t *testing.T) {
	job := makeJob(&models.EncodeSettings{
		VideoCodec:   "hevc_nvenc",
		AudioCodec:   "copy",
		UseGPU:       true,
		QualityCQ:    20,
		DenoiseLevel: 2,
	})

	args := BuildEncodeCommand(job)

	if !hasSubsequence(args, "-hwaccel", "cuda", "-c:v", "hevc_cuvid") {
		t.Errorf("filters require cuvid decode to system memory, got %v", args)
	}
	if got := argValue(args, "-vf"); got != "hqdn3d=4:3:6:4.5" {
		t.Errorf("-vf = %q, want %q", got, "hqdn3d=4:3:6:4.5")
	}
}

func TestBuildEncodeCommandTenBit(t *testing.T) {
	job := makeJob(&models.EncodeSettings{
		VideoCodec: "hevc_nvenc",
		AudioCodec: "copy",
		UseGPU:     true,
		QualityCQ:  20,
		TenBit:     true,
	})

	if got := argValue(BuildEncodeCommand(job), "-pix_fmt"); got != "p010le" {
		t.Errorf("-pix_fmt = %q, want p010le", got)
	}
}

func TestBuildEncodeCommandCPUFallback(t *testing.T) {
	job := makeJob(&models.EncodeSettings{
		VideoCodec: "hevc_nvenc",
		AudioCodec: "copy",
		QualityCQ:  20,
	})

	args := BuildEncodeCommand(job)

	if !hasSubsequence(args, "-c:v", "libx265", "-preset", "slow", "-crf", "20", "-pix_fmt", "yuv420p") {
		t.Errorf("expected libx265 fallback without GPU, got %v", args)
	}
	if argValue(args, "-hwaccel") != "" {
		t.Errorf("no hardware decode expected without GPU, got %v", args)
	}
}

func TestBuildEncodeCommandCPUPixelFormat(t *testing.T) {
	// Software encoders always pin 8-bit yuv420p output.
	for _, codec := range []string{"libx264", "libx265"} {
		job := makeJob(&models.EncodeSettings{
			VideoCodec: codec,
			AudioCodec: "copy",
			QualityCQ:  18,
		})

		args := BuildEncodeCommand(job)
		if got := argValue(args, "-pix_fmt"); got != "yuv420p" {
			t.Errorf("%s: -pix_fmt = %q, want yuv420p", codec, got)
		}
	}
}

func TestBuildEncodeCommandProRes(t *testing.T) {
	tests := []struct {
		profile    int
		wantPixFmt string
	}{
		{3, "yuv422p10le"},
		{4, "yuv444p10le"},
		{5, "yuv444p10le"},
	}

	for _, tt := range tests {
		job := makeJob(&models.EncodeSettings{
			VideoCodec:    "prores_ks",
			AudioCodec:    "pcm_s24le",
			ProResProfile: tt.profile,
		})

		args := BuildEncodeCommand(job)

		if !hasSubsequence(args, "-c:v", "prores_ks", "-profile:v") {
			t.Errorf("profile %d: missing ProRes encode args: %v", tt.profile, args)
		}
		if got := argValue(args, "-pix_fmt"); got != tt.wantPixFmt {
			t.Errorf("profile %d: -pix_fmt = %q, want %q", tt.profile, got, tt.wantPixFmt)
		}
		if !hasSubsequence(args, "-vendor", "apl0", "-bits_per_mb", "8000") {
			t.Errorf("profile %d: missing vendor args: %v", tt.profile, args)
		}
	}
}

func TestBuildEncodeCommandAudio(t *testing.T) {
	job := makeJob(&models.EncodeSettings{
		VideoCodec: "libx264",
		AudioCodec: "aac",
		QualityCQ:  20,
	})

	args := BuildEncodeCommand(job)
	if !hasSubsequence(args, "-c:a", "aac", "-b:a", "320k") {
		t.Errorf("AAC must carry a 320k bitrate, got %v", args)
	}
}

func TestBuildEncodeCommandThreadsAndExtras(t *testing.T) {
	job := makeJob(&models.EncodeSettings{
		VideoCodec:      "libx264",
		AudioCodec:      "copy",
		QualityCQ:       20,
		Threads:         8,
		ExtraFFmpegArgs: "-movflags +faststart",
	})

	args := BuildEncodeCommand(job)
	if got := argValue(args, "-threads"); got != "8" {
		t.Errorf("-threads = %q, want 8", got)
	}
	if !hasSubsequence(args, "-movflags", "+faststart") {
		t.Errorf("extra args missing: %v", args)
	}
}
