package imagepkg

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/youruser/quizcard/internal/quiz"
	"github.com/youruser/quizcard/internal/style"
)

const (
	borderWidth = 2
	qrMargin    = 16
	qrMinSize   = 48
	qrMaxSize   = 300
)

var borderColor = color.NRGBA{A: 255}

type Options struct {
	// Fonts supplies text faces; nil uses the fixed-size fallback face.
	Fonts *Fonts
	// QRText, when set, stamps a QR code at the right end of the bottom bar.
	QRText string
}

// Render composes a quiz card: question bar, 2x2 portrait grid with name
// labels, footer bar. It fails only when st does not validate; missing
// portraits and text problems degrade the card instead.
func Render(question, footer string, entrants []quiz.Entrant, st style.Style, opts Options) (image.Image, error) {
	if err := st.Validate(); err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, style.CanvasWidth, style.CanvasHeight))
	dc := gg.NewContextForRGBA(canvas)

	bg := style.MustColor(st.BgColor)
	bg.A = 255
	fillRect(dc, canvas.Bounds(), bg)

	topBar := image.Rect(0, 0, style.CanvasWidth, st.TopH)
	fillRect(dc, topBar, style.MustColor(st.TopBg))
	title := textBlock{
		text:    question,
		size:    st.TopFS,
		spacing: st.TopLH,
		yAdj:    st.TopYAdj,
		first:   style.MustColor(st.TopColor),
	}
	if st.TopColor2 != "" {
		title.rest = style.MustColor(st.TopColor2)
	}
	title.draw(dc, opts.Fonts.Face(st.TopFS), topBar)

	cell := CellSize(st)
	labelFace := opts.Fonts.Face(st.LabelFS)
	for i, e := range quiz.Normalize(entrants) {
		origin := CellOrigin(st, i)
		r := image.Rectangle{Min: origin, Max: origin.Add(cell)}

		photo := cellPhoto(e.Portrait, cell, st, opts.Fonts, bg)
		draw.Draw(canvas, r, photo, photo.Bounds().Min, draw.Src)

		label := image.Rect(r.Min.X, r.Max.Y-st.LabelH, r.Max.X, r.Max.Y)
		fillRect(dc, label, style.MustColor(st.LabelBg))
		textBlock{
			text:  quiz.Label(i+1, e.Name, st.LabelNumbered),
			size:  st.LabelFS,
			first: style.MustColor(st.LabelColor),
		}.draw(dc, labelFace, label)

		strokeRect(dc, r, borderWidth, borderColor)
	}

	bottomBar := image.Rect(0, style.CanvasHeight-st.BotH, style.CanvasWidth, style.CanvasHeight)
	fillRect(dc, bottomBar, style.MustColor(st.BotBg))
	textBlock{
		text:    footer,
		size:    st.BotFS,
		spacing: st.BotLH,
		yAdj:    st.BotYAdj,
		first:   style.MustColor(st.BotColor),
	}.draw(dc, opts.Fonts.Face(st.BotFS), bottomBar)

	if opts.QRText != "" {
		stampQR(canvas, bottomBar, opts.QRText)
	}

	return canvas, nil
}

// cellPhoto turns a portrait (or its placeholder) into an opaque cell-sized
// image: centre-crop to the cell's aspect ratio, then zoom and resize, filter,
// and flatten onto bg so transparent portraits never leave holes in the card.
func cellPhoto(portrait image.Image, cell image.Point, st style.Style, fonts *Fonts, bg color.NRGBA) image.Image {
	filter := st.PhotoFilter
	if portrait == nil || portrait.Bounds().Empty() {
		portrait = CreatePlaceholder(cell.X, cell.Y, fonts, st.LabelFS, NoPhotoText)
		filter = style.FilterNone
	}

	cropped := CenterCrop(portrait, cell)
	zoomed := Zoom(cropped, st.ImgZoom)
	resized := imaging.Resize(zoomed, cell.X, cell.Y, imaging.Lanczos)
	filtered := ApplyFilter(resized, filter)
	return imaging.Overlay(imaging.New(cell.X, cell.Y, bg), filtered, image.Pt(0, 0), 1.0)
}

func stampQR(canvas *image.RGBA, bar image.Rectangle, text string) {
	size := min(bar.Dy()-2*qrMargin, qrMaxSize)
	if size < qrMinSize {
		l.Warn().Println("bottom bar too short for a QR code:", bar.Dy())
		return
	}

	qr, err := GenerateQRImage(text, size)
	if err != nil {
		l.Error().Println("generate qr:", err)
		return
	}

	origin := image.Pt(bar.Max.X-qrMargin-size, bar.Min.Y+(bar.Dy()-size)/2)
	draw.Draw(canvas, image.Rectangle{Min: origin, Max: origin.Add(image.Pt(size, size))}, qr, qr.Bounds().Min, draw.Src)
}
