// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/shrink/internal/core/domain"
)

// Executor runs ProGuard as a child process.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute locates the ProGuard artifact among req.Plugins, launches it with
	// req.Args and blocks until the process exits.
	//
	// It returns an error classified as domain.ErrToolNotFound, domain.ErrLaunchFailed
	// or domain.ErrExecutionFailed.
	Execute(ctx context.Context, req domain.ProcessRequest) error
}
