// Package consts holds constants used throughout the program.
package consts

// Data sizes.
const (
	KB uint64 = 1024
	MB        = KB * 1024
	GB        = MB * 1024
)

// Temporary file tag.
const (
	TempTag = "tmp_"
)

// Application identity, used by the installer and the desktop descriptor.
const (
	AppName           = "FastEncode Pro"
	AppComment        = "GPU-accelerated video encoder with denoise, deflicker and exposure pipelines"
	AppWMClass        = "FastEncodePro"
	AppCategories     = "AudioVideo;Video;"
	DesktopFileName   = "FastEncodePro.desktop"
	ScriptFileName    = "FastEncodePro.py"
	IconFileName      = "icon.png"
	ScriptInterpreter = "python3"
)

// Local install source name patterns, checked in priority order.
const (
	VersionedScriptName      = "FastEncode Pro - Accessibility Edition v0.06.py"
	VersionedScriptNameNoExt = "FastEncode Pro - Accessibility Edition v0.06"
	WildcardScriptPrefix     = "FastEncode Pro"
)

// Default remote locations.
const (
	DefaultScriptURL   = "https://raw.githubusercontent.com/cpgplays/FastEncodePro/main/FastEncodePro.py"
	DefaultIconURL     = "https://raw.githubusercontent.com/cpgplays/FastEncodePro/main/icon.png"
	DefaultReleasePage = "https://github.com/cpgplays/FastEncodePro/releases"
)

// Encode output naming.
const (
	EncodedSuffix = "_encoded"
)
