package portrait

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	imagepkg "github.com/youruser/quizcard/internal/image"
)

// DirStore is a flat directory of portraits named <sanitized name><ext>.
type DirStore struct {
	Dir string
}

func NewDirStore(dir string) *DirStore {
	return &DirStore{Dir: dir}
}

// Path returns the file holding name's portrait.
func (s *DirStore) Path(name string) (string, error) {
	key := SanitizeName(name)
	if key == "" {
		return "", ErrNotFound
	}
	for _, ext := range Extensions {
		p := filepath.Join(s.Dir, key+ext)
		if stat, err := os.Stat(p); err == nil && !stat.IsDir() {
			return p, nil
		}
	}
	return "", ErrNotFound
}

func (s *DirStore) Get(ctx context.Context, name string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	img, err := imagepkg.DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p, err)
	}
	return img, nil
}
