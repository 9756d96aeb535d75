// Package ffmpeg builds and runs FFmpeg commands for encode jobs.
package ffmpeg

import (
	"context"
	"errors"
	"fastencode/internal/models"
	"fastencode/internal/utils/logging"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
)

var (
	encodersOnce sync.Once
	encoderList  string
	encodersErr  error
)

// availableEncoders returns FFmpeg's encoder listing, fetched once.
func availableEncoders() (string, error) {
	encodersOnce.Do(func() {
		out, err := exec.Command("ffmpeg", "-hide_banner", "-encoders").Output()
		if err != nil {
			encodersErr = fmt.Errorf("failed to list FFmpeg encoders: %w", err)
			return
		}
		encoderList = string(out)
	})
	return encoderList, encodersErr
}

// VerifyFFmpeg checks that FFmpeg is installed and on the PATH.
func VerifyFFmpeg() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return errors.New("ffmpeg not found in PATH, please install FFmpeg")
	}
	return nil
}

// VerifyEncoder checks that FFmpeg was built with the named encoder.
func VerifyEncoder(name string) error {
	list, err := availableEncoders()
	if err != nil {
		return err
	}
	if !strings.Contains(list, name) {
		return fmt.Errorf("FFmpeg build does not include the %q encoder", name)
	}
	return nil
}

// VerifyNVENC checks NVENC encode support for the configured codec.
func VerifyNVENC(s *models.EncodeSettings) error {
	if !s.UseGPU || !s.IsNVENC() {
		return nil
	}
	if err := VerifyEncoder(s.VideoCodec); err != nil {
		return fmt.Errorf("GPU encoding unavailable: %w", err)
	}
	return nil
}

// ExecuteEncode runs the encode job. Output is written to the job's
// temporary path and renamed into place only after FFmpeg exits cleanly,
// so interrupted runs never leave a partial file under the final name.
func ExecuteEncode(ctx context.Context, job *models.EncodeJob) error {
	args := BuildEncodeCommand(job)
	logging.D(1, "Constructed FFmpeg command for %q:\n\nffmpeg %v\n", job.InputPath, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to open FFmpeg stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start FFmpeg for %q: %w", job.InputPath, err)
	}

	parser := NewProgressParser(job.InputPath)
	parser.Consume(stderr)

	if err := cmd.Wait(); err != nil {
		if removeErr := os.Remove(job.TempOutputPath); removeErr != nil && !os.IsNotExist(removeErr) {
			logging.W("Failed to remove temporary file %q: %v", job.TempOutputPath, removeErr)
		}
		if ctx.Err() != nil {
			return fmt.Errorf("encode of %q cancelled", job.InputPath)
		}
		return fmt.Errorf("FFmpeg failed for %q: %w\nLast output:\n%s", job.InputPath, err, parser.LastOutput())
	}

	if err := os.Rename(job.TempOutputPath, job.OutputPath); err != nil {
		return fmt.Errorf("failed to move %q into place: %w", job.TempOutputPath, err)
	}

	logging.S("Encoded %q -> %q", job.InputPath, job.OutputPath)
	return nil
}
