package avatar

import (
	"errors"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRandom_PicksOnlyImages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.png")
	writeFile(t, dir, "b.JPG")
	writeFile(t, dir, "notes.txt")
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	p := NewPicker(dir, rand.New(rand.NewSource(1)))
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		path, err := p.Random()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen[filepath.Base(path)] = true
	}

	if len(seen) != 2 || !seen["a.png"] || !seen["b.JPG"] {
		t.Errorf("expected only the two images, saw %v", seen)
	}
}

func TestRandom_EmptyDir(t *testing.T) {
	p := NewPicker(t.TempDir(), nil)

	if _, err := p.Random(); !errors.Is(err, ErrNoAvatars) {
		t.Errorf("expected ErrNoAvatars, got %v", err)
	}
}

func TestRandom_MissingDir(t *testing.T) {
	p := NewPicker(filepath.Join(t.TempDir(), "nope"), nil)

	if _, err := p.Random(); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestRandom_Unconfigured(t *testing.T) {
	p := NewPicker("", nil)

	if _, err := p.Random(); !errors.Is(err, ErrNoAvatars) {
		t.Errorf("expected ErrNoAvatars, got %v", err)
	}
}
