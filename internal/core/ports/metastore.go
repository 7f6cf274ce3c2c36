package ports

import "go.trai.ch/nobs/internal/core/domain"

// MetadataStore persists the per-object CompileRecords that drive the
// incremental-rebuild decision.
//
//go:generate go run go.uber.org/mock/mockgen -source=metastore.go -destination=mocks/mock_metastore.go -package=mocks
type MetadataStore interface {
	// Fingerprint reads the source's current modification timestamp
	// (0 if the file does not exist) and pairs it with the flattened
	// flags string into a fresh record for the given object file.
	Fingerprint(sourceFile, objectFile, compileFlags string) (domain.CompileRecord, error)

	// Load reads the side-car record for the given object file.
	// Returns nil, nil when no record exists ("never built"). A record
	// that exists but cannot be parsed is domain.ErrMetadataCorrupt.
	Load(objectFile string) (*domain.CompileRecord, error)

	// Store writes the record to the object file's side-car, overwriting
	// any prior content. Called only for compile jobs that completed
	// with exit code 0.
	Store(record domain.CompileRecord) error
}
