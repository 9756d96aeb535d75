// Package cfg defines the command surface and binds flags to the
// configuration store.
package cfg

import (
	"fastencode/internal/abstractions"
	"fastencode/internal/domain/keys"
	"fastencode/internal/utils/logging"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "fastencode",
	Short: "FastEncode Pro encodes video batches and manages its own installation.",
	Long: `FastEncode Pro drives FFmpeg to encode batches of video files with
optional GPU acceleration and cleanup filter chains, and can install,
register, and update the FastEncode Pro program on this machine.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbosityLevel := abstractions.GetInt(keys.DebugLevel)
		if verbosityLevel < 0 {
			verbosityLevel = 0
		} else if verbosityLevel > 5 {
			verbosityLevel = 5
		}
		logging.Level = verbosityLevel

		if cfgFile := abstractions.GetString(keys.ConfigPath); cfgFile != "" {
			viper.SetConfigFile(cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				logging.E("Failed to read config file %q: %v", cfgFile, err)
			}
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := execute(cmd); err != nil {
			return err
		}
		viper.Set(keys.Execute, true)
		return nil
	},
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install FastEncode Pro and register it with the desktop.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := executeInstall(); err != nil {
			return err
		}
		viper.Set(keys.Execute, true)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check the release page and update the installed program.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := executeUpdate(); err != nil {
			return err
		}
		viper.Set(keys.Execute, true)
		return nil
	},
}

// init sets the initial Viper settings.
func init() {
	initOrExit(initProgramFlags(rootCmd), "program")
	initOrExit(initFilesDirs(rootCmd), "files and directories")
	initOrExit(initEncodeFlags(rootCmd), "encode")
	initOrExit(initFilterFlags(rootCmd), "filter")
	initOrExit(initResourceFlags(rootCmd), "resource")
	initOrExit(initInstallFlags(installCmd), "install")
	initOrExit(initUpdateFlags(updateCmd), "update")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(updateCmd)
}

// initOrExit aborts startup when flag binding fails.
func initOrExit(err error, name string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize %s flags: %v\n", name, err)
		os.Exit(1)
	}
}

// Execute runs the Cobra command tree.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("failed to execute root command: %w", err)
	}
	return nil
}
