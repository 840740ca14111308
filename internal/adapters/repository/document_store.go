package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/marketplace/core/internal/domain/entities"
	"github.com/marketplace/core/internal/infrastructure/logger"
)

// FileDocumentStore persists the whole database as one indented JSON file.
// A missing file reads as an empty database; a present-but-unparsable file
// surfaces as an error instead of being masked as empty. Mutations run under
// a single writer lock and land via temp-file + rename, so concurrent
// read-modify-write sequences cannot drop each other's changes.
type FileDocumentStore struct {
	path   string
	mu     sync.RWMutex
	logger *logger.Logger
}

// NewFileDocumentStore creates a store backed by the file at path.
func NewFileDocumentStore(path string, appLogger *logger.Logger) *FileDocumentStore {
	return &FileDocumentStore{
		path:   path,
		logger: appLogger.WithComponent("document_store"),
	}
}

// Open prepares the store for use: it creates the parent directory and, when
// the file already exists, verifies it parses. Called once at startup;
// failure here is fatal rather than retried per request.
func (s *FileDocumentStore) Open() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	if _, err := s.load(); err != nil {
		return fmt.Errorf("validate store file: %w", err)
	}

	s.logger.Info("Document store opened", "path", s.path)
	return nil
}

// Load reads and parses the full document.
func (s *FileDocumentStore) Load(ctx context.Context) (*entities.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

// Save overwrites the document on disk in full.
func (s *FileDocumentStore) Save(ctx context.Context, doc *entities.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

// Update runs fn over a freshly loaded document and persists the result,
// holding the writer lock across the whole sequence. An error from fn
// aborts the write and propagates unchanged.
func (s *FileDocumentStore) Update(ctx context.Context, fn func(doc *entities.Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

func (s *FileDocumentStore) load() (*entities.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entities.NewDocument(), nil
		}
		s.logger.Error("Failed to read store file", "error", err, "path", s.path)
		return nil, fmt.Errorf("read store file: %w", err)
	}

	doc := entities.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		s.logger.Error("Failed to parse store file", "error", err, "path", s.path)
		return nil, fmt.Errorf("parse store file: %w", err)
	}

	if doc.Products == nil {
		doc.Products = []entities.Product{}
	}
	if doc.Orders == nil {
		doc.Orders = []entities.Order{}
	}
	if doc.Users == nil {
		doc.Users = []entities.User{}
	}
	return doc, nil
}

func (s *FileDocumentStore) save(doc *entities.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	// Write to a temp file in the same directory and rename over the target,
	// so a crash mid-write never leaves a truncated document behind.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".db-*.json")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp store file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
