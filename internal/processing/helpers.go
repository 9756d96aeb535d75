package processing

import (
	"context"
	"fastencode/internal/domain/consts"
	"fastencode/internal/utils/logging"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// outputBasePath derives the default output path for an input file:
// the input's stem plus the encoded suffix, in outputDir when set or
// alongside the input otherwise.
func outputBasePath(inputPath, outputDir, ext string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, stem+consts.EncodedSuffix+ext)
}

// nextFreeOutputPath appends _1, _2, ... to the encoded suffix until the
// path no longer collides with an existing file.
func nextFreeOutputPath(basePath string) string {
	ext := filepath.Ext(basePath)
	stem := strings.TrimSuffix(basePath, ext)

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// tempOutputPath returns the in-progress path for an output file.
func tempOutputPath(outputPath string) string {
	return filepath.Join(filepath.Dir(outputPath), consts.TempTag+filepath.Base(outputPath))
}

// waitForFreeMemory blocks until available system memory meets the
// requirement. Returns early when the context is cancelled.
func waitForFreeMemory(ctx context.Context, required uint64) error {
	if required == 0 {
		return nil
	}

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	warned := false
	for {
		stats, err := mem.VirtualMemory()
		if err != nil {
			logging.E("Failed to read system memory stats: %v", err)
			return nil
		}
		if stats.Available >= required {
			return nil
		}
		if !warned {
			logging.I("Waiting for %d bytes of free memory (available: %d)", required, stats.Available)
			warned = true
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// cpuPercent samples overall CPU usage. Swappable in tests.
var cpuPercent = cpu.Percent

// waitForCPU blocks until system CPU usage drops below the target
// percentage. Returns early when the context is cancelled, and proceeds
// without throttling when usage cannot be sampled.
func waitForCPU(ctx context.Context, maxCPU float64) error {
	if maxCPU >= 100.0 {
		return nil
	}

	for {
		usage, err := cpuPercent(time.Second, false)
		if err != nil {
			logging.E("Failed to read CPU usage: %v", err)
			return nil
		}
		if len(usage) == 0 {
			logging.W("No CPU usage samples available, skipping throttle check")
			return nil
		}
		if usage[0] < maxCPU {
			return nil
		}
		logging.D(2, "CPU usage %.1f%% above %.1f%% target, waiting", usage[0], maxCPU)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}
}
