package installer

import (
	"fastencode/internal/domain/consts"
	"fastencode/internal/utils/logging"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindLocalScript locates the program file in the downloads directory.
// Candidates are checked in priority order: the exact versioned name with
// extension, the exact versioned name without extension, then any file
// beginning with the program name (sorted, first match wins).
func FindLocalScript(downloadsDir string) (string, error) {
	exact := filepath.Join(downloadsDir, consts.VersionedScriptName)
	if info, err := os.Stat(exact); err == nil && !info.IsDir() {
		return exact, nil
	}

	noExt := filepath.Join(downloadsDir, consts.VersionedScriptNameNoExt)
	if info, err := os.Stat(noExt); err == nil && !info.IsDir() {
		return noExt, nil
	}

	entries, err := os.ReadDir(downloadsDir)
	if err != nil {
		return "", fmt.Errorf("failed to read downloads directory %q: %w", downloadsDir, err)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), consts.WildcardScriptPrefix) {
			candidates = append(candidates, entry.Name())
		}
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("no %s program file found in %q", consts.AppName, downloadsDir)
	}

	sort.Strings(candidates)
	if len(candidates) > 1 {
		logging.D(1, "Multiple wildcard matches in %q, using %q", downloadsDir, candidates[0])
	}
	return filepath.Join(downloadsDir, candidates[0]), nil
}

// installLocalScript copies the located program file to its destination
// and marks it executable.
func installLocalScript(src, dest string) error {
	logging.I("Installing %s from local file %q...", consts.AppName, src)

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", src, err)
	}
	defer in.Close()

	tmpPath := filepath.Join(filepath.Dir(dest), consts.TempTag+filepath.Base(dest))
	out, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, consts.PermsExecutable)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", tmpPath, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to copy %q: %w", src, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close %q: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move %q into place: %w", tmpPath, err)
	}

	return os.Chmod(dest, consts.PermsExecutable)
}
