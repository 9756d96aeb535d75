// Package processing runs the encode queue.
package processing

import (
	"fastencode/internal/abstractions"
	"fastencode/internal/domain/keys"
	"fastencode/internal/ffmpeg"
	"fastencode/internal/ffprobe"
	"fastencode/internal/models"
	"fastencode/internal/utils/fsread"
	"fastencode/internal/utils/logging"
	"fastencode/internal/utils/prompt"
	"fmt"
	"os"
	"sync/atomic"
)

// ProcessQueue encodes all input files. Jobs run concurrently up to the
// configured limit. A failed file does not stop the batch, failures are
// collected and summarized at the end.
func ProcessQueue(core *models.Core) error {
	if err := ffmpeg.VerifyFFmpeg(); err != nil {
		return err
	}

	settings := models.NewEncodeSettings()
	if err := ffmpeg.VerifyNVENC(settings); err != nil {
		return err
	}

	inputs, err := fsread.CollectVideoFiles(
		abstractions.GetStringSlice(keys.InputDirs),
		abstractions.GetStringSlice(keys.InputFiles),
	)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no video files found to encode")
	}

	logging.I("Encoding %d file(s)...", len(inputs))

	jobs, err := buildJobs(core, inputs, settings)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("none of the %d input file(s) could be read", len(inputs))
	}

	var (
		failures atomic.Int64
		sem      = make(chan struct{}, abstractions.GetInt(keys.Concurrency))
		minFree  = abstractions.GetUint64(keys.MinFreeMem)
		maxCPU   = abstractions.GetFloat64(keys.MaxCPU)
	)

	for _, job := range jobs {
		select {
		case <-core.Ctx.Done():
			logging.W("Cancelled, skipping remaining files")
			core.Wg.Wait()
			return core.Ctx.Err()
		case sem <- struct{}{}:
		}

		if err := waitForFreeMemory(core.Ctx, minFree); err != nil {
			<-sem
			core.Wg.Wait()
			return err
		}
		if err := waitForCPU(core.Ctx, maxCPU); err != nil {
			<-sem
			core.Wg.Wait()
			return err
		}

		core.Wg.Add(1)
		go func(job *models.EncodeJob) {
			defer core.Wg.Done()
			defer func() { <-sem }()

			if err := ffmpeg.ExecuteEncode(core.Ctx, job); err != nil {
				logging.E("%v", err)
				logging.AddToErrorArray(err)
				failures.Add(1)
			}
		}(job)
	}

	core.Wg.Wait()

	if summary := logging.ErrorSummary(); summary != "" {
		logging.P("%s", summary)
	}
	if n := failures.Load(); n > 0 {
		return fmt.Errorf("%d of %d file(s) failed to encode", n, len(jobs))
	}

	logging.S("All %d file(s) encoded", len(jobs))
	return nil
}

// buildJobs resolves output paths sequentially so collision handling and
// overwrite prompts happen in a predictable order before encodes begin.
func buildJobs(core *models.Core, inputs []string, settings *models.EncodeSettings) ([]*models.EncodeJob, error) {
	outputDir := abstractions.GetString(keys.OutputDir)
	overwrite := abstractions.GetBool(keys.Overwrite)
	ext := settings.OutputExt()

	jobs := make([]*models.EncodeJob, 0, len(inputs))
	for _, input := range inputs {
		dur, err := ffprobe.Duration(core.Ctx, input)
		if err != nil {
			logging.W("Skipping unreadable input %q: %v", input, err)
			logging.AddToErrorArray(err)
			continue
		}
		if codec, err := ffprobe.VideoCodec(core.Ctx, input); err == nil {
			logging.D(2, "Input %q: codec %s, duration %.1fs", input, codec, dur)
		}

		outputPath := outputBasePath(input, outputDir, ext)

		if _, err := os.Stat(outputPath); err == nil {
			switch {
			case overwrite:
				logging.D(1, "Overwriting existing output %q", outputPath)
			case prompt.ConfirmOverwrite(core.Ctx, outputPath):
				// User approved the overwrite.
			default:
				outputPath = nextFreeOutputPath(outputPath)
				logging.I("Keeping existing file, writing to %q instead", outputPath)
			}
		}

		jobs = append(jobs, &models.EncodeJob{
			InputPath:      input,
			OutputPath:     outputPath,
			TempOutputPath: tempOutputPath(outputPath),
			Settings:       settings,
		})
	}

	return jobs, nil
}
