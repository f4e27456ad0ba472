// Package docstore holds client documents as opaque blobs, one directory
// per client id. The scheduling core keeps references only and never reads
// the bytes.
package docstore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"schedulepro-backend/models"
)

var ErrDocumentNotFound = errors.New("document not found")

// FileStore is the filesystem implementation, rooted at a documents
// directory laid out as client_documents/<client id>/<filename>.
type FileStore struct {
	root string
}

func New(root string) (*FileStore, error) {
	if root == "" {
		root = "./client_documents"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create documents dir: %w", err)
	}
	return &FileStore{root: root}, nil
}

// sanitizeFilename rejects names that could escape the client's directory.
func sanitizeFilename(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("empty filename")
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid filename %q", name)
	}
	return name, nil
}

func (s *FileStore) path(clientID uuid.UUID, filename string) (string, error) {
	name, err := sanitizeFilename(filename)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, clientID.String(), name), nil
}

// Save streams a document into the client's namespace and returns the
// reference the client record should carry. Writes go through a temp file
// and rename, so a partial upload never becomes visible.
func (s *FileStore) Save(clientID uuid.UUID, filename string, r io.Reader) (models.DocumentRef, error) {
	dest, err := s.path(clientID, filename)
	if err != nil {
		return models.DocumentRef{}, err
	}
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return models.DocumentRef{}, err
	}
	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return models.DocumentRef{}, err
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return models.DocumentRef{}, err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return models.DocumentRef{}, err
	}
	if err := tmp.Close(); err != nil {
		return models.DocumentRef{}, err
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return models.DocumentRef{}, err
	}
	return models.DocumentRef{
		Filename:   filepath.Base(dest),
		Path:       dest,
		UploadedAt: time.Now(),
	}, nil
}

// Open returns the document's contents for download.
func (s *FileStore) Open(clientID uuid.UUID, filename string) (io.ReadCloser, error) {
	p, err := s.path(clientID, filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrDocumentNotFound
	}
	return f, err
}

// RemoveClientDocuments deletes the client's entire namespace. Called by the
// directory after a client record is removed.
func (s *FileStore) RemoveClientDocuments(clientID uuid.UUID) error {
	return os.RemoveAll(filepath.Join(s.root, clientID.String()))
}
