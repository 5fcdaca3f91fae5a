package ports

import "go.trai.ch/shrink/internal/core/domain"

// RunRecordStore defines the interface for storing and retrieving run records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RunRecordStore interface {
	// Get retrieves the last run record of a project.
	// Returns nil, nil if not found.
	Get(project string) (*domain.RunRecord, error)

	// Put stores the run record.
	Put(record domain.RunRecord) error
}
