package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"finalloc/internal/encryption"
	"finalloc/internal/models"
	"finalloc/internal/store"
)

// TempFileStore returns a file store in a fresh temp directory. A non-empty
// secret enables encryption.
func TempFileStore(t *testing.T, secret string) *store.FileStore {
	t.Helper()

	var c *encryption.Cipher
	if secret != "" {
		var err error
		if c, err = encryption.New(secret); err != nil {
			t.Fatalf("failed to create cipher: %v", err)
		}
	}
	return store.NewFileStore(filepath.Join(t.TempDir(), "investments.json"), c)
}

// Seed creates every investment in st, failing the test on error.
func Seed(t *testing.T, st store.Store, investments ...models.Investment) {
	t.Helper()

	for _, inv := range investments {
		if err := st.Create(context.Background(), inv); err != nil {
			t.Fatalf("failed to seed investment %q: %v", inv.ID, err)
		}
	}
}
