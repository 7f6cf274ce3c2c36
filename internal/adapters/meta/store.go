// Package meta implements the compile metadata cache as plain-text
// side-car files stored next to each object file.
package meta

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"go.trai.ch/nobs/internal/core/domain"
	"go.trai.ch/nobs/internal/core/ports"
	"go.trai.ch/zerr"
)

// metafileExtension is appended to the object file path to name its
// side-car record.
const metafileExtension = ".meta"

var _ ports.MetadataStore = (*Store)(nil)

// Store implements ports.MetadataStore. A record is four plain-text
// lines: source path, object path, flattened flags (may be empty), and
// the source timestamp.
type Store struct{}

// NewStore creates a new metadata store.
func NewStore() *Store {
	return &Store{}
}

// Fingerprint builds the fresh record for a source/object pair. A source
// that does not exist fingerprints with timestamp 0; that is a normal
// state, not an error.
func (s *Store) Fingerprint(sourceFile, objectFile, compileFlags string) (domain.CompileRecord, error) {
	info, err := os.Stat(sourceFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.CompileRecord{
				SourceFile:   sourceFile,
				ObjectFile:   objectFile,
				CompileFlags: compileFlags,
			}, nil
		}
		return domain.CompileRecord{}, zerr.With(zerr.Wrap(err, "failed to stat source file"), "path", sourceFile)
	}

	return domain.CompileRecord{
		SourceFile:      sourceFile,
		ObjectFile:      objectFile,
		CompileFlags:    compileFlags,
		SourceTimestamp: info.ModTime().UnixNano(),
	}, nil
}

// Load reads the side-car record for an object file. Absence is the
// normal "never built" state and returns nil, nil. A record that exists
// but is short or has a non-numeric timestamp is fatal input corruption.
func (s *Store) Load(objectFile string) (*domain.CompileRecord, error) {
	path := objectFile + metafileExtension

	data, err := os.ReadFile(path) //nolint:gosec // path derives from the build layout
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read metadata record"), "path", path)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) < 4 {
		return nil, zerr.With(domain.ErrMetadataCorrupt, "path", path)
	}

	timestamp, err := strconv.ParseInt(strings.TrimSpace(lines[3]), 10, 64)
	if err != nil || timestamp < 0 {
		return nil, zerr.With(domain.ErrMetadataCorrupt, "path", path)
	}

	return &domain.CompileRecord{
		SourceFile:      lines[0],
		ObjectFile:      lines[1],
		CompileFlags:    lines[2],
		SourceTimestamp: timestamp,
	}, nil
}

// Store writes the record to its side-car, overwriting prior content.
func (s *Store) Store(record domain.CompileRecord) error {
	path := record.ObjectFile + metafileExtension

	content := strings.Join([]string{
		record.SourceFile,
		record.ObjectFile,
		record.CompileFlags,
		strconv.FormatInt(record.SourceTimestamp, 10),
	}, "\n") + "\n"

	//nolint:gosec // path derives from the build layout
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write metadata record"), "path", path)
	}
	return nil
}
