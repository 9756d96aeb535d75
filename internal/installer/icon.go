package installer

import (
	"context"
	"fastencode/internal/domain/consts"
	"fastencode/internal/utils/logging"
	"fmt"
	"os"
)

// ProvisionIcon downloads the application icon. Icon retrieval is best
// effort: on any failure a zero-byte placeholder is written instead so
// the desktop descriptor always points at an existing file.
func ProvisionIcon(ctx context.Context, url, dest string) error {
	if err := fetchToFile(ctx, url, dest, consts.PermsGenericFile); err != nil {
		logging.W("Icon download failed, writing placeholder: %v", err)
		if err := os.WriteFile(dest, nil, consts.PermsGenericFile); err != nil {
			return fmt.Errorf("failed to write icon placeholder %q: %w", dest, err)
		}
	}
	return nil
}
