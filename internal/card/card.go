package card

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/google/uuid"
	imagepkg "github.com/youruser/quizcard/internal/image"
	"github.com/youruser/quizcard/internal/portrait"
	"github.com/youruser/quizcard/internal/quiz"
	"github.com/youruser/quizcard/internal/style"
)

// ErrBadRequest marks errors caused by the request rather than the server.
var ErrBadRequest = errors.New("bad card request")

// Request is everything one card is made from. It arrives as JSON over HTTP
// or as a TOML file for the CLI.
type Request struct {
	Question string            `json:"question" toml:"question"`
	Footer   string            `json:"footer" toml:"footer"`
	Preset   string            `json:"preset" toml:"preset"`
	Style    map[string]any    `json:"style,omitempty" toml:"style"` // partial overrides on top of Preset
	Entrants []portrait.Source `json:"entrants" toml:"entrants"`
	QRText   string            `json:"qr_text,omitempty" toml:"qr_text"`
	Format   string            `json:"format,omitempty" toml:"format"`
	Quality  int               `json:"quality,omitempty" toml:"quality"`
}

func (req Request) Quiz() quiz.Quiz {
	q := quiz.Quiz{Question: req.Question, Footer: req.Footer}
	for _, e := range req.Entrants {
		q.Names = append(q.Names, e.Name)
	}
	return q
}

type Renderer struct {
	Presets       style.Presets
	DefaultPreset string
	Resolver      *portrait.Resolver
	Fonts         *imagepkg.Fonts
	Quality       int
}

type Result struct {
	ID      string
	Image   image.Image
	Format  imagepkg.Format
	Quality int
	Caption string
}

func (res *Result) Filename() string {
	return res.ID + res.Format.Ext()
}

func (res *Result) Encode(w io.Writer) error {
	return imagepkg.Encode(w, res.Image, res.Format, res.Quality)
}

// StyleFor resolves the preset named by req (or the default) and applies the
// request's overrides.
func (r *Renderer) StyleFor(req Request) (style.Style, error) {
	name := req.Preset
	if name == "" {
		name = r.DefaultPreset
	}
	base, ok := r.Presets.Get(name)
	if !ok {
		return style.Style{}, fmt.Errorf("%w: unknown preset %q", ErrBadRequest, name)
	}
	if len(req.Style) == 0 {
		return base, nil
	}

	raw, err := json.Marshal(req.Style)
	if err != nil {
		return style.Style{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	s, err := style.Merge(base, raw)
	if err != nil {
		return style.Style{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if err := s.Validate(); err != nil {
		return style.Style{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return s, nil
}

func (r *Renderer) Render(ctx context.Context, req Request) (*Result, error) {
	format, err := imagepkg.ParseFormat(req.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	st, err := r.StyleFor(req)
	if err != nil {
		return nil, err
	}

	sources := req.Entrants
	if len(sources) > quiz.Slots {
		sources = sources[:quiz.Slots]
	}
	resolver := r.Resolver
	if resolver == nil {
		resolver = &portrait.Resolver{}
	}
	entrants := resolver.ResolveAll(ctx, sources)

	img, err := imagepkg.Render(req.Question, req.Footer, entrants, st, imagepkg.Options{
		Fonts:  r.Fonts,
		QRText: req.QRText,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	quality := req.Quality
	if quality == 0 {
		quality = r.Quality
	}
	return &Result{
		ID:      uuid.NewString(),
		Image:   img,
		Format:  format,
		Quality: quality,
		Caption: quiz.ExportCaption(req.Quiz()),
	}, nil
}
