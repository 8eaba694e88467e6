package portrait

import (
	"context"
	"encoding/base64"
	"errors"
	"image"
	"os"
	"strings"
	"sync"
	"time"

	imagepkg "github.com/youruser/quizcard/internal/image"
	"github.com/youruser/quizcard/internal/quiz"
)

const DefaultFetchTimeout = 5 * time.Second

// Source describes where an entrant's portrait comes from. The first usable
// source wins: uploaded data, then URL, then local path, then the store.
type Source struct {
	Name      string `json:"name" toml:"name"`
	ImageData string `json:"image_data,omitempty" toml:"image_data"` // base64, data URLs accepted
	ImageURL  string `json:"image_url,omitempty" toml:"image_url"`
	ImagePath string `json:"-" toml:"image_path"`
}

// Resolver turns sources into entrants. It never fails: a source that cannot
// be loaded yields an entrant without a portrait.
type Resolver struct {
	Store        Store
	FetchTimeout time.Duration
}

func (r *Resolver) Resolve(ctx context.Context, src Source) quiz.Entrant {
	e := quiz.Entrant{Name: src.Name}
	img, err := r.load(ctx, src)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			l.Warn().Println("portrait for", src.Name, "unavailable:", err)
		}
		return e
	}
	e.Portrait = img
	return e
}

// ResolveAll resolves every source concurrently, keeping their order.
func (r *Resolver) ResolveAll(ctx context.Context, sources []Source) []quiz.Entrant {
	out := make([]quiz.Entrant, len(sources))
	var wait sync.WaitGroup
	for i, src := range sources {
		wait.Add(1)
		go func(i int, src Source) {
			defer wait.Done()
			out[i] = r.Resolve(ctx, src)
		}(i, src)
	}
	wait.Wait()
	return out
}

func (r *Resolver) load(ctx context.Context, src Source) (image.Image, error) {
	if src.ImageData != "" {
		return decodeData(src.ImageData)
	}
	if src.ImageURL != "" {
		timeout := r.FetchTimeout
		if timeout <= 0 {
			timeout = DefaultFetchTimeout
		}
		return imagepkg.DownloadImage(ctx, src.ImageURL, timeout)
	}
	if src.ImagePath != "" {
		data, err := os.ReadFile(src.ImagePath)
		if err != nil {
			return nil, err
		}
		return imagepkg.DecodeImage(data)
	}
	if r.Store == nil || src.Name == "" {
		return nil, ErrNotFound
	}
	return r.Store.Get(ctx, src.Name)
}

func decodeData(data string) (image.Image, error) {
	if i := strings.Index(data, ";base64,"); i >= 0 && strings.HasPrefix(data, "data:") {
		data = data[i+len(";base64,"):]
	}
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(data))
	if err != nil {
		return nil, err
	}
	return imagepkg.DecodeImage(b)
}
