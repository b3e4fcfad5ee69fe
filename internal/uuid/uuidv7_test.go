package uuid

import (
	"testing"

	googleuuid "github.com/google/uuid"
)

func TestNew_IsVersion7(t *testing.T) {
	id := New()
	if !IsValid(id) {
		t.Fatalf("New() returned invalid uuid %q", id)
	}
	parsed := googleuuid.MustParse(id)
	if parsed.Version() != 7 {
		t.Errorf("Version = %d, want 7", parsed.Version())
	}
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestIsValid(t *testing.T) {
	if IsValid("not-a-uuid") {
		t.Error("expected invalid")
	}
}
