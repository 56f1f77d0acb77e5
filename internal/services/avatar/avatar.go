package avatar

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var ErrNoAvatars = errors.New("no avatar images found")

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Picker picks a random image from a directory.
type Picker struct {
	dir string
	mu  sync.Mutex
	rng *rand.Rand
}

func NewPicker(dir string, rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Picker{dir: dir, rng: rng}
}

func (p *Picker) Dir() string {
	return p.dir
}

// Random returns the path of one image file in the directory.
func (p *Picker) Random() (string, error) {
	files, err := p.images()
	if err != nil {
		return "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return files[p.rng.Intn(len(files))], nil
}

func (p *Picker) images() ([]string, error) {
	if p.dir == "" {
		return nil, fmt.Errorf("avatar directory not configured: %w", ErrNoAvatars)
	}
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil, fmt.Errorf("read avatar directory %s: %w", p.dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, filepath.Join(p.dir, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", p.dir, ErrNoAvatars)
	}
	return files, nil
}
