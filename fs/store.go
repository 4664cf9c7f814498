package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/hscrape"
)

// SnapshotStore writes snapshot payloads as JSON files with atomic update
// semantics. Files are saved to a temporary directory, then moved into place
// on Commit.
type SnapshotStore struct {
	baseDir string
	name    string
}

// NewSnapshotStore creates a new SnapshotStore.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewSnapshotStore(baseDir, name string) *SnapshotStore {
	return &SnapshotStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *SnapshotStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *SnapshotStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes the snapshot payload to <kind>/<file for its path>. Kinds get
// their own directories because several of them share a site path. Later
// saves for the same kind and path overwrite earlier ones.
func (s *SnapshotStore) Save(ctx context.Context, snapshot *hscrape.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := snapshot.Validate(); err != nil {
		return err
	}

	relPath, err := PathToFile(snapshot.Path)
	if err != nil {
		return err
	}
	fullPath := filepath.Join(s.tempDir(), sanitize(string(snapshot.Kind)), filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(snapshot.Payload), "", "  "); err != nil {
		return hscrape.Errorf(hscrape.EINVALID, "snapshot %s payload is not JSON", snapshot.ID)
	}
	buf.WriteByte('\n')
	return os.WriteFile(fullPath, buf.Bytes(), 0644)
}

// Commit replaces the final directory with everything saved so far.
func (s *SnapshotStore) Commit() error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards everything saved since the store was created.
func (s *SnapshotStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
