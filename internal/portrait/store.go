package portrait

import (
	"context"
	"errors"
	"image"
	"strings"
	"unicode"

	"github.com/allape/gogger"
)

var l = gogger.New("quizcard.portrait")

var ErrNotFound = errors.New("portrait not found")

// Extensions are tried in this order when looking a name up.
var Extensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif", ".bmp"}

// Store looks portraits up by entrant name.
type Store interface {
	Get(ctx context.Context, name string) (image.Image, error)
}

// SanitizeName turns an entrant name into a file-safe key.
func SanitizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || strings.ContainsRune(`\/*?:"<>|`, r) {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if strings.Trim(name, ".") == "" {
		return ""
	}
	return name
}

// Chain asks each store in turn; the first hit wins.
type Chain []Store

func (c Chain) Get(ctx context.Context, name string) (image.Image, error) {
	for _, s := range c {
		img, err := s.Get(ctx, name)
		if err == nil {
			return img, nil
		}
		if !errors.Is(err, ErrNotFound) {
			l.Warn().Println("portrait store lookup:", name, err)
		}
	}
	return nil, ErrNotFound
}
