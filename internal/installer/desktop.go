package installer

import (
	"fastencode/internal/domain/consts"
	"fastencode/internal/utils/logging"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// WriteDesktopEntry writes the freedesktop descriptor registering the
// installed program with the application menu. The Exec and Icon paths
// must be absolute so the entry works regardless of the launcher's
// working directory.
func WriteDesktopEntry(descriptorPath, execPath, iconPath string) error {
	if !filepath.IsAbs(execPath) {
		return fmt.Errorf("descriptor exec path %q must be absolute", execPath)
	}
	if !filepath.IsAbs(iconPath) {
		return fmt.Errorf("descriptor icon path %q must be absolute", iconPath)
	}

	if err := os.MkdirAll(filepath.Dir(descriptorPath), consts.PermsGenericDir); err != nil {
		return fmt.Errorf("failed to create applications directory: %w", err)
	}

	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	fmt.Fprintf(&b, "Name=%s\n", consts.AppName)
	fmt.Fprintf(&b, "Comment=%s\n", consts.AppComment)
	fmt.Fprintf(&b, "Exec=%s %s\n", consts.ScriptInterpreter, execPath)
	fmt.Fprintf(&b, "Icon=%s\n", iconPath)
	b.WriteString("Terminal=false\n")
	b.WriteString("Type=Application\n")
	fmt.Fprintf(&b, "Categories=%s\n", consts.AppCategories)
	fmt.Fprintf(&b, "StartupWMClass=%s\n", consts.AppWMClass)

	if err := os.WriteFile(descriptorPath, []byte(b.String()), consts.PermsDesktopFile); err != nil {
		return fmt.Errorf("failed to write desktop descriptor %q: %w", descriptorPath, err)
	}

	logging.D(1, "Wrote desktop descriptor %q", descriptorPath)
	return nil
}

// RefreshDesktopIndex asks the desktop environment to rescan its
// application registry. Best effort: the tool may be absent and the
// entry still works after the next session refresh.
func RefreshDesktopIndex(applicationsDir string) {
	if _, err := exec.LookPath("update-desktop-database"); err != nil {
		logging.D(2, "update-desktop-database not found, skipping registry refresh")
		return
	}
	if err := exec.Command("update-desktop-database", applicationsDir).Run(); err != nil {
		logging.D(1, "Desktop registry refresh failed: %v", err)
	}
}
