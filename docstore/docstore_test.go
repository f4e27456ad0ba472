package docstore

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return store
}

func TestSaveAndOpen(t *testing.T) {
	store := newTestStore(t)
	clientID := uuid.New()

	ref, err := store.Save(clientID, "intake.pdf", strings.NewReader("pdf bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if ref.Filename != "intake.pdf" {
		t.Fatalf("Filename = %q", ref.Filename)
	}
	if ref.UploadedAt.IsZero() {
		t.Fatal("UploadedAt is zero")
	}

	f, err := store.Open(clientID, "intake.pdf")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "pdf bytes" {
		t.Fatalf("contents = %q", data)
	}
}

func TestSave_Overwrite(t *testing.T) {
	store := newTestStore(t)
	clientID := uuid.New()

	if _, err := store.Save(clientID, "notes.txt", strings.NewReader("v1")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := store.Save(clientID, "notes.txt", strings.NewReader("v2")); err != nil {
		t.Fatalf("Save again: %v", err)
	}
	f, err := store.Open(clientID, "notes.txt")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	data, _ := io.ReadAll(f)
	if string(data) != "v2" {
		t.Fatalf("contents = %q, want v2", data)
	}
}

func TestSave_RejectsUnsafeFilenames(t *testing.T) {
	store := newTestStore(t)
	clientID := uuid.New()

	for _, name := range []string{"", "   ", "../escape.txt", "a/b.txt", `a\b.txt`, "notes..txt"} {
		if _, err := store.Save(clientID, name, strings.NewReader("x")); err == nil {
			t.Fatalf("Save accepted filename %q", name)
		}
	}
}

func TestOpen_NotFound(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Open(uuid.New(), "missing.pdf"); !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestRemoveClientDocuments(t *testing.T) {
	root := t.TempDir()
	store, err := New(root)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	clientID := uuid.New()
	other := uuid.New()

	if _, err := store.Save(clientID, "a.txt", strings.NewReader("a")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := store.Save(other, "b.txt", strings.NewReader("b")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := store.RemoveClientDocuments(clientID); err != nil {
		t.Fatalf("RemoveClientDocuments: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, clientID.String())); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("client directory still present: %v", err)
	}
	// Other clients' documents are untouched.
	if _, err := store.Open(other, "b.txt"); err != nil {
		t.Fatalf("Open other client: %v", err)
	}

	// Removal of a client with no documents is not an error.
	if err := store.RemoveClientDocuments(uuid.New()); err != nil {
		t.Fatalf("RemoveClientDocuments empty: %v", err)
	}
}
