// Package store persists the identity list as a YAML document.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gitswitch/gitswitch/pkg/gitswitch/identity"
	"github.com/gopasspw/gopass/pkg/debug"
	"gopkg.in/yaml.v3"
)

// Version is written into every saved document.
const Version = 1

// Document is the persisted registry state.
type Document struct {
	Version    int                  `yaml:"version"`
	Current    string               `yaml:"current,omitempty"`
	Identities []*identity.Identity `yaml:"identities"`
}

// File stores a Document at Path.
type File struct {
	Path string
}

// New returns a File store for path.
func New(path string) *File {
	return &File{Path: path}
}

// Load reads the document. found is false when nothing has been saved yet.
func (f *File) Load() (doc Document, found bool, err error) { //nolint:nonamedreturns
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			debug.V(1).Log("no identity store at %s", f.Path)

			return Document{}, false, nil
		}

		return Document{}, false, fmt.Errorf("failed to read identity store: %w", err)
	}

	if len(data) == 0 {
		return Document{}, false, nil
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, false, fmt.Errorf("failed to parse identity store %s: %w", f.Path, err)
	}

	if doc.Version > Version {
		return Document{}, false, fmt.Errorf("identity store %s has unsupported version %d", f.Path, doc.Version)
	}

	// drop null entries
	ids := doc.Identities[:0]
	for _, id := range doc.Identities {
		if id != nil {
			ids = append(ids, id)
		}
	}
	doc.Identities = ids

	debug.V(2).Log("loaded %d identities from %s", len(doc.Identities), f.Path)

	return doc, true, nil
}

// Save overwrites the document on disk.
func (f *File) Save(doc Document) error {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	doc.Version = Version
	if doc.Identities == nil {
		doc.Identities = []*identity.Identity{}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal identity store: %w", err)
	}

	if err := os.WriteFile(f.Path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write identity store: %w", err)
	}

	debug.V(1).Log("saved %d identities to %s", len(doc.Identities), f.Path)

	return nil
}
