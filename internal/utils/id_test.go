package utils

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
)

func TestNewLocalID_Format(t *testing.T) {
	id := NewLocalID()

	if len(id) != localIDLength*2 {
		t.Fatalf("expected %d characters, got %d (%q)", localIDLength*2, len(id), id)
	}
	if !regexp.MustCompile(`^[0-9a-f]+$`).MatchString(id) {
		t.Errorf("expected lowercase hex, got %q", id)
	}
}

func TestNewLocalID_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewLocalID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate identifier generated: %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestUUIDGenerator_ProducesValidUUID(t *testing.T) {
	gen := NewUUIDGenerator()

	id := gen.Generate()
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected valid UUID, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected UUID v7, got v%d", parsed.Version())
	}
}
