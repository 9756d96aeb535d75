// Package installer provisions the FastEncode Pro program, its icon,
// and its desktop registration.
package installer

import (
	"context"
	"fastencode/internal/abstractions"
	"fastencode/internal/domain/consts"
	"fastencode/internal/domain/enums"
	"fastencode/internal/domain/keys"
	"fastencode/internal/domain/paths"
	"fastencode/internal/utils/logging"
	"fmt"
	"os"
)

// Run performs the full install: acquire the program file, provision the
// icon, and register the desktop entry. Acquisition failures abort the
// install before any desktop state is written.
func Run(ctx context.Context) error {
	if err := os.MkdirAll(paths.AppDir, consts.PermsAppDir); err != nil {
		return fmt.Errorf("failed to create application directory %q: %w", paths.AppDir, err)
	}

	source, _ := abstractions.Get(keys.InstallSourceEnum).(enums.InstallSource)

	switch source {
	case enums.InstallSourceLocal:
		downloadsDir := abstractions.GetString(keys.DownloadsDir)
		if downloadsDir == "" {
			downloadsDir = paths.DefaultDownloadsDir
		}
		src, err := FindLocalScript(downloadsDir)
		if err != nil {
			return err
		}
		if err := installLocalScript(src, paths.AppExecutablePath); err != nil {
			return err
		}

	default:
		url := abstractions.GetString(keys.ScriptURL)
		if url == "" {
			url = consts.DefaultScriptURL
		}
		if err := installRemoteScript(ctx, url, paths.AppExecutablePath); err != nil {
			return err
		}
	}

	iconURL := abstractions.GetString(keys.IconURL)
	if iconURL == "" {
		iconURL = consts.DefaultIconURL
	}
	if err := ProvisionIcon(ctx, iconURL, paths.AppIconPath); err != nil {
		return err
	}

	if err := WriteDesktopEntry(paths.DesktopFilePath, paths.AppExecutablePath, paths.AppIconPath); err != nil {
		return err
	}
	RefreshDesktopIndex(paths.ApplicationsDir)

	logging.S("%s installed to %q and registered with the application menu", consts.AppName, paths.AppExecutablePath)
	return nil
}
