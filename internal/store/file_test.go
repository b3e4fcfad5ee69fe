package store_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"

	"finalloc/internal/encryption"
	"finalloc/internal/models"
	"finalloc/internal/store"
	"finalloc/internal/testutil"
)

var ctx = context.Background()

func sampleInvestments() []models.Investment {
	voo := testutil.NewInvestment("VOO", models.AssetClassETF, "USD", 0)
	voo.Quantity = testutil.Float(10)
	voo.PricePerUnit = testutil.Float(400)
	voo.OriginalPrice = testutil.Float(3500)
	voo.Normalize()

	return []models.Investment{
		voo,
		testutil.NewBond(1000, 5, "EUR", "2030-06-30"),
		testutil.NewInvestment("Savings", models.AssetClassCash, "AMD", 250000),
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	for _, secret := range []string{"", "s3cret"} {
		name := "plain"
		if secret != "" {
			name = "encrypted"
		}
		t.Run(name, func(t *testing.T) {
			st := testutil.TempFileStore(t, secret)
			want := sampleInvestments()
			testutil.Seed(t, st, want...)

			// A fresh store over the same file sees the same data.
			var c *encryption.Cipher
			if secret != "" {
				c, _ = encryption.New(secret)
			}
			got, err := store.NewFileStore(st.Path(), c).List(ctx)
			testutil.AssertNoError(t, err)

			if len(got) != len(want) {
				t.Fatalf("len = %d, want %d", len(got), len(want))
			}
			for i := range want {
				if !got[i].DateAdded.Equal(want[i].DateAdded) {
					t.Errorf("record %d DateAdded = %v, want %v", i, got[i].DateAdded, want[i].DateAdded)
				}
				got[i].DateAdded = want[i].DateAdded
				if !reflect.DeepEqual(got[i], want[i]) {
					t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestFileStore_EncryptedFileHidesContent(t *testing.T) {
	st := testutil.TempFileStore(t, "s3cret")
	testutil.Seed(t, st, testutil.NewInvestment("Secret Fund", models.AssetClassOther, "USD", 10))

	raw, err := os.ReadFile(st.Path())
	testutil.AssertNoError(t, err)
	if strings.Contains(string(raw), "Secret Fund") {
		t.Error("encrypted document contains plaintext")
	}

	var envelope string
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("expected JSON string envelope: %v", err)
	}
	if !encryption.LooksSealed(envelope) {
		t.Errorf("unexpected envelope %q", envelope)
	}
}

func TestFileStore_PlainIsIndented(t *testing.T) {
	st := testutil.TempFileStore(t, "")
	testutil.AssertNoError(t, st.Init(ctx))

	raw, err := os.ReadFile(st.Path())
	testutil.AssertNoError(t, err)
	if string(raw) != "{\n  \"investments\": []\n}" {
		t.Errorf("unexpected initial document %q", raw)
	}
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	st := testutil.TempFileStore(t, "")
	got, err := st.List(ctx)
	testutil.AssertNoError(t, err)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestFileStore_Unreadable(t *testing.T) {
	tests := []struct {
		name    string
		content string
		secret  string
	}{
		{"corrupt_json", "{not json", ""},
		{"encrypted_without_key", "", "writer-key"},
		{"wrong_key", "", "writer-key"},
		{"garbage", "hello", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "investments.json")
			content := tt.content
			if tt.secret != "" {
				c, _ := encryption.New(tt.secret)
				testutil.AssertNoError(t, store.NewFileStore(path, c).Replace(ctx, sampleInvestments()))
			} else {
				testutil.AssertNoError(t, os.WriteFile(path, []byte(content), 0o600))
			}

			var reader *encryption.Cipher
			if tt.name == "wrong_key" {
				reader, _ = encryption.New("other-key")
			}
			st := store.NewFileStore(path, reader)

			_, err := st.List(ctx)
			testutil.AssertAppError(t, err, "STORE_UNREADABLE")

			// Mutations must not overwrite an unreadable document.
			before, _ := os.ReadFile(path)
			err = st.Create(ctx, testutil.NewInvestment("X", models.AssetClassCash, "USD", 1))
			testutil.AssertAppError(t, err, "STORE_UNREADABLE")
			after, _ := os.ReadFile(path)
			if string(before) != string(after) {
				t.Error("unreadable document was modified")
			}
		})
	}
}

func TestFileStore_KeyReadsPlainDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "investments.json")
	testutil.AssertNoError(t, store.NewFileStore(path, nil).Replace(ctx, sampleInvestments()))

	c, _ := encryption.New("new-key")
	st := store.NewFileStore(path, c)
	got, err := st.List(ctx)
	testutil.AssertNoError(t, err)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	// The next write seals the document.
	_, err = st.Delete(ctx, got[0].ID)
	testutil.AssertNoError(t, err)
	raw, _ := os.ReadFile(path)
	if strings.Contains(string(raw), "investments") {
		t.Error("expected document to be encrypted after write")
	}
}

func TestFileStore_Update(t *testing.T) {
	st := testutil.TempFileStore(t, "")
	records := sampleInvestments()
	testutil.Seed(t, st, records...)

	updated := records[1]
	updated.Amount = 2000
	testutil.AssertNoError(t, st.Update(ctx, updated))

	got, _ := st.List(ctx)
	if got[1].Amount != 2000 {
		t.Errorf("Amount = %v, want 2000", got[1].Amount)
	}
	if got[0].ID != records[0].ID || got[2].ID != records[2].ID {
		t.Error("update changed record order")
	}
}

func TestFileStore_UpdateUnknownID(t *testing.T) {
	st := testutil.TempFileStore(t, "")
	records := sampleInvestments()
	testutil.Seed(t, st, records...)
	before, _ := os.ReadFile(st.Path())

	ghost := records[0]
	ghost.ID = "missing"
	err := st.Update(ctx, ghost)
	testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")

	after, _ := os.ReadFile(st.Path())
	if string(before) != string(after) {
		t.Error("collection changed after failed update")
	}
}

func TestFileStore_DeleteRemovesAllDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "investments.json")
	a := testutil.NewInvestment("A", models.AssetClassCash, "USD", 1)
	b := testutil.NewInvestment("B", models.AssetClassCash, "USD", 2)
	dup := a
	dup.Name = "A again"
	// Legacy documents can hold the same id twice.
	testutil.AssertNoError(t, store.NewFileStore(path, nil).Replace(ctx, []models.Investment{a, b, dup}))

	st := store.NewFileStore(path, nil)
	n, err := st.Delete(ctx, a.ID)
	testutil.AssertNoError(t, err)
	if n != 2 {
		t.Errorf("deleted = %d, want 2", n)
	}
	got, _ := st.List(ctx)
	if len(got) != 1 || got[0].ID != b.ID {
		t.Errorf("remaining = %+v", got)
	}

	n, err = st.Delete(ctx, "missing")
	testutil.AssertNoError(t, err)
	if n != 0 {
		t.Errorf("deleted = %d, want 0", n)
	}
}

func TestFileStore_CreateDuplicateID(t *testing.T) {
	st := testutil.TempFileStore(t, "")
	inv := testutil.NewInvestment("A", models.AssetClassCash, "USD", 1)
	testutil.Seed(t, st, inv)

	err := st.Create(ctx, inv)
	testutil.AssertAppError(t, err, "DUPLICATE_INVESTMENT")
}

func TestFileStore_ConcurrentCreates(t *testing.T) {
	st := testutil.TempFileStore(t, "")

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := st.Create(ctx, testutil.NewInvestment("Cash", models.AssetClassCash, "USD", 1)); err != nil {
				t.Errorf("create: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := st.List(ctx)
	testutil.AssertNoError(t, err)
	if len(got) != n {
		t.Errorf("len = %d, want %d (lost writes)", len(got), n)
	}
}

func TestFileStore_NoTempFilesLeft(t *testing.T) {
	st := testutil.TempFileStore(t, "")
	testutil.Seed(t, st, sampleInvestments()...)

	entries, err := os.ReadDir(filepath.Dir(st.Path()))
	testutil.AssertNoError(t, err)
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only the document, found %v", names)
	}
}
