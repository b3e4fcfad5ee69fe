package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"finalloc/internal/encryption"
	apperrors "finalloc/internal/errors"
	"finalloc/internal/models"
)

// DriverFile is the name reported by FileStore.Driver.
const DriverFile = "file"

// FileStore keeps the whole collection in one JSON document. Every mutation
// reads the document, changes it, and writes it back atomically under mu.
type FileStore struct {
	path   string
	cipher *encryption.Cipher

	mu sync.Mutex
}

// NewFileStore creates a store backed by path. A nil cipher stores plain JSON.
func NewFileStore(path string, cipher *encryption.Cipher) *FileStore {
	return &FileStore{path: path, cipher: cipher}
}

// Driver implements Store.
func (s *FileStore) Driver() string { return DriverFile }

// Path returns the document location.
func (s *FileStore) Path() string { return s.path }

// Encrypted reports whether writes are sealed.
func (s *FileStore) Encrypted() bool { return s.cipher != nil }

// Init writes an empty document when none exists yet.
func (s *FileStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return s.write(ctx, &models.Document{Investments: []models.Investment{}})
}

// List implements Store.
func (s *FileStore) List(ctx context.Context) ([]models.Investment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Investments, nil
}

// Create implements Store. A record whose id is already present is refused.
func (s *FileStore) Create(ctx context.Context, inv models.Investment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read(ctx)
	if err != nil {
		return err
	}
	for i := range doc.Investments {
		if doc.Investments[i].ID == inv.ID {
			return apperrors.ErrDuplicateInvestment
		}
	}
	doc.Investments = append(doc.Investments, inv)
	return s.write(ctx, doc)
}

// Update implements Store. The first record with a matching id is replaced.
func (s *FileStore) Update(ctx context.Context, inv models.Investment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read(ctx)
	if err != nil {
		return err
	}
	for i := range doc.Investments {
		if doc.Investments[i].ID == inv.ID {
			doc.Investments[i] = inv
			return s.write(ctx, doc)
		}
	}
	return apperrors.ErrInvestmentNotFound
}

// Delete implements Store.
func (s *FileStore) Delete(ctx context.Context, id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read(ctx)
	if err != nil {
		return 0, err
	}

	kept := doc.Investments[:0]
	for _, inv := range doc.Investments {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	removed := len(doc.Investments) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	doc.Investments = kept
	if err := s.write(ctx, doc); err != nil {
		return 0, err
	}
	return removed, nil
}

// Replace overwrites the collection. Used by the setup tool to rewrite a
// document between plain and sealed form.
func (s *FileStore) Replace(ctx context.Context, investments []models.Investment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if investments == nil {
		investments = []models.Investment{}
	}
	return s.write(ctx, &models.Document{Investments: investments})
}

// read loads the document. A missing file is an empty collection; anything
// present that cannot be opened or parsed is ErrStoreUnreadable.
func (s *FileStore) read(ctx context.Context) (*models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &models.Document{Investments: []models.Investment{}}, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnreadable, err)
	}

	plain, err := s.unseal(bytes.TrimSpace(data))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnreadable, err)
	}

	var doc models.Document
	if err := json.Unmarshal(plain, &doc); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnreadable, fmt.Errorf("parse %s: %w", s.path, err))
	}
	if doc.Investments == nil {
		doc.Investments = []models.Investment{}
	}
	return &doc, nil
}

// unseal returns the plain JSON document bytes. Plain documents pass through
// even when a cipher is configured, so an existing store can be migrated.
func (s *FileStore) unseal(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte(`{"investments":[]}`), nil
	}
	if data[0] == '{' {
		return data, nil
	}

	envelope := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, fmt.Errorf("parse envelope: %w", err)
		}
	}
	if !encryption.LooksSealed(envelope) {
		return nil, encryption.ErrMalformed
	}
	if s.cipher == nil {
		return nil, fmt.Errorf("document is encrypted but no ENCRYPTION_KEY is configured")
	}
	return s.cipher.Open(envelope)
}

func (s *FileStore) write(ctx context.Context, doc *models.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var out []byte
	if s.cipher == nil {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return apperrors.Wrap(apperrors.ErrStorage, err)
		}
		out = data
	} else {
		data, err := json.Marshal(doc)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrStorage, err)
		}
		sealed, err := s.cipher.Seal(data)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrStorage, err)
		}
		if out, err = json.Marshal(sealed); err != nil {
			return apperrors.Wrap(apperrors.ErrStorage, err)
		}
	}

	if err := writeFileAtomic(s.path, out); err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

// writeFileAtomic writes to a temp file in the target directory and renames
// it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
