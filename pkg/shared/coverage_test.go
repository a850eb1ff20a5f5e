package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParsePrivateKeyEdge(t *testing.T) {
	_, err := ParsePrivateKey("")
	if err == nil {
		t.Fatal("expected error for empty key")
	}

	_, err = ParsePrivateKey("0xinvalidhex")
	if err == nil {
		t.Fatal("expected error for invalid hex")
	}
}

func TestLoadDotEnvIfPresent(t *testing.T) {
	// Just call it; it should not panic even without .env
	loadDotEnvIfPresent()
}

func TestFindDotEnvWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}
	envPath := filepath.Join(root, ".env")
	if err := os.WriteFile(envPath, []byte("X=1\n"), 0o644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	found, ok := findDotEnv(nested)
	if !ok {
		t.Fatal("expected .env to be found")
	}
	if found != envPath {
		t.Fatalf("expected %q, got %q", envPath, found)
	}
}

func TestFindDotEnvIgnoresDirectories(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, ".env"), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	found, ok := findDotEnv(root)
	if ok && found == filepath.Join(root, ".env") {
		t.Fatal("expected a .env directory to be skipped")
	}
}
