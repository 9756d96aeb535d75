// FastEncode Pro encodes video batches with FFmpeg and manages its own
// installation and desktop registration.
package main

import (
	"fastencode/internal/abstractions"
	"fastencode/internal/cfg"
	"fastencode/internal/domain/keys"
	"fastencode/internal/utils/logging"
	"fmt"
	"os"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "fatal error: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := cfg.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Help or a bare flag-parse run, nothing queued.
	if !abstractions.GetBool(keys.Execute) {
		return
	}

	if err := run(); err != nil {
		logging.E("%v", err)
		os.Exit(1)
	}
}
