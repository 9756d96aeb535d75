package main

import (
	"context"
	"fastencode/internal/abstractions"
	"fastencode/internal/domain/enums"
	"fastencode/internal/domain/keys"
	"fastencode/internal/domain/paths"
	"fastencode/internal/installer"
	"fastencode/internal/models"
	"fastencode/internal/processing"
	"fastencode/internal/utils/logging"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
)

// initializeApplication sets up program directories and logging.
func initializeApplication() error {
	if err := paths.InitProgFilesDirs(); err != nil {
		return fmt.Errorf("failed to initialize program directories: %w", err)
	}
	if err := logging.SetupLogging(paths.HomeFastEncodeDir); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	return nil
}

// run dispatches the queued operation.
func run() error {
	if err := initializeApplication(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mode, _ := abstractions.Get(keys.RunModeEnum).(enums.RunMode)

	switch mode {
	case enums.RunModeInstall:
		return installer.Run(ctx)
	case enums.RunModeUpdate:
		return installer.RunUpdate(ctx)
	default:
		var wg sync.WaitGroup
		core := &models.Core{Ctx: ctx, Wg: &wg}
		return processing.ProcessQueue(core)
	}
}
