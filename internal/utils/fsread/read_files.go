// Package fsread gathers input files from the filesystem.
package fsread

import (
	"fastencode/internal/domain/consts"
	"fastencode/internal/utils/logging"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CollectVideoFiles gathers video files from the entered directories and
// explicit file paths. Directory entries are filtered by extension and
// temporary files from earlier runs are skipped. The result is sorted
// and de-duplicated.
func CollectVideoFiles(dirs, files []string) ([]string, error) {
	seen := make(map[string]bool, len(files))
	var collected []string

	add := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if !seen[abs] {
			seen[abs] = true
			collected = append(collected, abs)
		}
	}

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if strings.HasPrefix(name, consts.TempTag) {
				logging.D(2, "Skipping leftover temporary file %q", name)
				continue
			}
			if !consts.AllVidExtensions[strings.ToLower(filepath.Ext(name))] {
				continue
			}
			add(filepath.Join(dir, name))
		}
	}

	for _, file := range files {
		add(file)
	}

	sort.Strings(collected)
	return collected, nil
}
