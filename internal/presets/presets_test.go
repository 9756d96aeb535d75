package presets

import (
	"fastencode/internal/abstractions"
	"fastencode/internal/domain/consts"
	"fastencode/internal/domain/keys"
	"testing"

	"github.com/spf13/viper"
)

func never(string) bool  { return false }
func always(string) bool { return true }

func TestApplyUnknownPreset(t *testing.T) {
	viper.Reset()
	if err := Apply("does_not_exist", never); err == nil {
		t.Fatal("expected an error for an unknown preset")
	}
}

func TestApplyGoProLowlight(t *testing.T) {
	viper.Reset()
	if err := Apply("gopro_lowlight", never); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	checks := []struct {
		key  string
		want int
	}{
		{keys.DenoiseLevel, 4},
		{keys.DeflickerLevel, 2},
		{keys.TemporalLevel, 1},
		{keys.ExposureLevel, 2},
		{keys.SharpenLevel, 2},
	}
	for _, c := range checks {
		if got := abstractions.GetInt(c.key); got != c.want {
			t.Errorf("%s = %d, want %d", c.key, got, c.want)
		}
	}

	if abstractions.IsSet(keys.VideoCodec) {
		t.Error("GoPro presets must not touch the codec selection")
	}
}

func TestApplyHEVCBalanced(t *testing.T) {
	viper.Reset()
	if err := Apply("hevc_balanced", never); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	if got := abstractions.GetString(keys.VideoCodec); got != consts.VCodecHEVCNVENC {
		t.Errorf("codec = %q, want %q", got, consts.VCodecHEVCNVENC)
	}
	if !abstractions.GetBool(keys.UseGPU) {
		t.Error("HEVC presets must enable GPU encoding")
	}
	if got := abstractions.GetInt(keys.QualityCQ); got != 20 {
		t.Errorf("quality = %d, want 20", got)
	}
	if got := abstractions.GetString(keys.AudioCodec); got != consts.ACodecAAC {
		t.Errorf("audio codec = %q, want %q", got, consts.ACodecAAC)
	}
	if !abstractions.IsSet(keys.TenBit) || abstractions.GetBool(keys.TenBit) {
		t.Error("HEVC presets must pin 8-bit output")
	}
}

func TestApplyHEVCHQAudio(t *testing.T) {
	viper.Reset()
	if err := Apply("hevc_hq", never); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	if got := abstractions.GetString(keys.AudioCodec); got != consts.ACodecPCM24 {
		t.Errorf("audio codec = %q, want %q", got, consts.ACodecPCM24)
	}
	if got := abstractions.GetInt(keys.QualityCQ); got != 14 {
		t.Errorf("quality = %d, want 14", got)
	}
	if !abstractions.IsSet(keys.TenBit) || abstractions.GetBool(keys.TenBit) {
		t.Error("hevc_hq must pin 8-bit output")
	}
}

func TestApplyProResXQ(t *testing.T) {
	viper.Reset()
	if err := Apply("prores_xq", never); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	if got := abstractions.GetString(keys.VideoCodec); got != consts.VCodecProRes {
		t.Errorf("codec = %q, want %q", got, consts.VCodecProRes)
	}
	if got := abstractions.GetInt(keys.ProResProfile); got != 5 {
		t.Errorf("ProRes profile = %d, want 5", got)
	}
	if got := abstractions.GetString(keys.AudioCodec); got != consts.ACodecPCM24 {
		t.Errorf("audio codec = %q, want %q", got, consts.ACodecPCM24)
	}
}

func TestApplyRespectsExplicitFlags(t *testing.T) {
	viper.Reset()
	if err := Apply("hevc_hq", always); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	if abstractions.IsSet(keys.QualityCQ) {
		t.Error("preset must not override values the user set explicitly")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("expected preset names")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
