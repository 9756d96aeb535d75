package consts

// Recommended permissions for the files and directories FastEncode might create.
const (
	// World readable directories and files.
	PermsGenericDir  = 0o755
	PermsAppDir      = 0o755
	PermsGenericFile = 0o644
	PermsLogFile     = 0o644
	PermsDesktopFile = 0o644

	// Installed program file must be launchable.
	PermsExecutable = 0o755

	// Private program home.
	PermsHomeFastEncodeDir = 0o700
)
