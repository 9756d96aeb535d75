// Package models holds shared data structures.
package models

import (
	"context"
	"sync"
)

// Core holds fields shared across the processing pipeline.
type Core struct {
	Ctx context.Context
	Wg  *sync.WaitGroup
}
