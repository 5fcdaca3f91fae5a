package ports

// Hasher defines the interface for computing content hashes.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// ComputePathHash hashes a file, or every file below a directory.
	ComputePathHash(path string) (string, error)
}
