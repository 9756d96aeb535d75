// Package paths initializes FastEncode's filepaths, directories, etc.
package paths

import (
	"errors"
	"fastencode/internal/domain/consts"
	"fmt"
	"os"
	"path/filepath"
)

const (
	feDir        = ".fastencode"
	logFile      = "fastencode.log"
	appDir       = "FastEncodePro"
	downloadsDir = "Downloads"
	appsDir      = ".local/share/applications"
)

// File and directory path strings.
var (
	HomeDir             string
	HomeFastEncodeDir   string
	LogFilePath         string
	AppDir              string
	AppExecutablePath   string
	AppIconPath         string
	ApplicationsDir     string
	DesktopFilePath     string
	DefaultDownloadsDir string
)

// InitProgFilesDirs initializes necessary program directories and filepaths.
func InitProgFilesDirs() error {
	dir, err := os.UserHomeDir()
	if err != nil {
		return errors.New("failed to get home directory")
	}
	HomeDir = dir

	HomeFastEncodeDir = filepath.Join(dir, feDir)
	if _, err := os.Stat(HomeFastEncodeDir); os.IsNotExist(err) {
		if err := os.MkdirAll(HomeFastEncodeDir, consts.PermsHomeFastEncodeDir); err != nil {
			return fmt.Errorf("failed to make directories: %w", err)
		}
	}

	// Main files
	LogFilePath = filepath.Join(HomeFastEncodeDir, logFile)

	// Install destinations
	AppDir = filepath.Join(dir, appDir)
	AppExecutablePath = filepath.Join(AppDir, consts.ScriptFileName)
	AppIconPath = filepath.Join(AppDir, consts.IconFileName)
	ApplicationsDir = filepath.Join(dir, appsDir)
	DesktopFilePath = filepath.Join(ApplicationsDir, consts.DesktopFileName)
	DefaultDownloadsDir = filepath.Join(dir, downloadsDir)

	return nil
}
