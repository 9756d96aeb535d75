// Package enums holds enumerated types used throughout the program.
package enums

// RunMode is the top-level operation the program performs for this run.
type RunMode int

const (
	RunModeEncode RunMode = iota
	RunModeInstall
	RunModeUpdate
)

// InstallSource is where the installer acquires the program file from.
type InstallSource int

const (
	InstallSourceRemote InstallSource = iota
	InstallSourceLocal
)
