// Package prompt reads interactive confirmations from the user.
package prompt

import (
	"bufio"
	"context"
	"fastencode/internal/utils/logging"
	"io"
	"os"
	"strings"
)

var reader *bufio.Reader

// InitUserInputReader sets the input source for prompts. Pass nil to
// read from stdin.
func InitUserInputReader(r io.Reader) {
	if r == nil {
		r = os.Stdin
	}
	reader = bufio.NewReader(r)
}

// ConfirmOverwrite asks whether an existing file should be overwritten.
// Returns false on EOF or context cancellation.
func ConfirmOverwrite(ctx context.Context, path string) bool {
	if reader == nil {
		InitUserInputReader(nil)
	}

	for {
		select {
		case <-ctx.Done():
			return false
		default:
		}

		logging.P("Output file %q already exists. Overwrite? (y/n): ", path)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return false
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		default:
			logging.P("Please enter y or n.")
		}
	}
}
