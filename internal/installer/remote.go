package installer

import (
	"context"
	"fastencode/internal/domain/consts"
	"fastencode/internal/utils/logging"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

var httpClient = &http.Client{Timeout: 60 * time.Second}

// fetchToFile downloads url into dest. Cache-bypass headers force
// intermediaries to serve the current file rather than a stale copy.
// The download lands in a temporary file and is renamed into place so a
// failed transfer never leaves a truncated destination.
func fetchToFile(ctx context.Context, url, dest string, perms os.FileMode) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %q: %w", url, err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %q: %w", url, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.E("Failed to close response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch of %q returned status %s", url, resp.Status)
	}

	tmpPath := filepath.Join(filepath.Dir(dest), consts.TempTag+filepath.Base(dest))
	tmpFile, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perms)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", tmpPath, err)
	}

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %q: %w", tmpPath, err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close %q: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move %q into place: %w", tmpPath, err)
	}

	logging.D(1, "Fetched %q -> %q", url, dest)
	return nil
}

// installRemoteScript downloads the program file to its destination and
// marks it executable. Any failure here aborts the install.
func installRemoteScript(ctx context.Context, url, dest string) error {
	logging.I("Downloading %s from %q...", consts.AppName, url)

	if err := fetchToFile(ctx, url, dest, consts.PermsExecutable); err != nil {
		return fmt.Errorf("program download failed: %w", err)
	}
	if err := os.Chmod(dest, consts.PermsExecutable); err != nil {
		return fmt.Errorf("failed to mark %q executable: %w", dest, err)
	}
	return nil
}
