package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// #region loader-tests
func TestLoadFixture(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.json")

	data, err := json.Marshal(testFixture())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if f.NInputVars != 2 || len(f.Functions) != 2 {
		t.Errorf("unexpected vocabulary shape: %+v", f)
	}
	if len(f.Steps) != 2 {
		t.Errorf("expected 2 steps, got %d", len(f.Steps))
	}
	if !f.Sharing {
		t.Error("expected sharing flag preserved")
	}
}

func TestLoadFixture_MissingFile(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFixture_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFixture_InvalidShape(t *testing.T) {
	f := testFixture()
	f.Steps[0].Logits = nil

	path := filepath.Join(t.TempDir(), "invalid.json")
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected validation error")
	}
}

// #endregion loader-tests

// #region token-to-id-tests
func TestTokenToID(t *testing.T) {
	f := testFixture()
	m := f.TokenToID()
	if len(m) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(m))
	}
	if m["terminal"] != 0 || m["add"] != 1 || m["sin"] != 2 {
		t.Errorf("unexpected table: %v", m)
	}
}

// #endregion token-to-id-tests
