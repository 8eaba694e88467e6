package api

import (
	"bytes"
	"errors"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/allape/gogger"
	"github.com/gin-gonic/gin"
	"github.com/youruser/quizcard/internal/card"
	imagepkg "github.com/youruser/quizcard/internal/image"
	"github.com/youruser/quizcard/internal/pool"
	"github.com/youruser/quizcard/internal/portrait"
	"github.com/youruser/quizcard/internal/quiz"
)

var l = gogger.New("quizcard.api")

const maxPick = 16

// DefaultMaxBodyBytes caps card requests, which may carry base64 uploads.
const DefaultMaxBodyBytes = 32 << 20

type Handler struct {
	Renderer *card.Renderer
	People   []pool.Person
	// Portraits backs GET /api/portraits/:name; nil disables it.
	Portraits portrait.Store
	// MaxBodyBytes bounds POST /api/card bodies; 0 means DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) listPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default": h.Renderer.DefaultPreset,
		"presets": h.Renderer.Presets.Names(),
	})
}

func (h *Handler) getPreset(c *gin.Context) {
	s, ok := h.Renderer.Presets[c.Param("name")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown preset"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) listPools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pools": pool.Kinds(h.People), "count": len(h.People)})
}

// pickHandler draws n people from a pool. seed makes the draw repeatable.
func (h *Handler) pickHandler(c *gin.Context) {
	n := quiz.Slots
	if v, err := strconv.Atoi(c.Query("n")); err == nil && v > 0 {
		n = min(v, maxPick)
	}
	seed := time.Now().UnixNano()
	if s := c.Query("seed"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid seed"})
			return
		}
		seed = v
	}

	kind := c.Param("kind")
	picked := pool.Pick(h.People, kind, n, rand.New(rand.NewSource(seed)))
	if len(picked) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "empty or unknown pool"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pool": kind, "people": picked})
}

func (h *Handler) filterHandler(c *gin.Context) {
	var opt pool.FilterOptions
	if err := c.ShouldBindJSON(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := pool.Filter(h.People, opt)
	c.JSON(http.StatusOK, gin.H{"count": len(out), "people": out})
}

// cardHandler renders a quiz card and returns the encoded image.
func (h *Handler) cardHandler(c *gin.Context) {
	limit := h.MaxBodyBytes
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	var req card.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	res, err := h.Renderer.Render(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, card.ErrBadRequest) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	buf := new(bytes.Buffer)
	if err := res.Encode(buf); err != nil {
		l.Error().Println("encode card:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("X-Card-ID", res.ID)
	c.Header("Content-Disposition", `attachment; filename="`+res.Filename()+`"`)
	c.Data(http.StatusOK, res.Format.ContentType(), buf.Bytes())
}

func captionHandler(c *gin.Context) {
	var q quiz.Quiz
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.String(http.StatusOK, quiz.ExportCaption(q))
}

// qr endpoint returns a PNG of a QR for "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 && v <= 2048 {
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func (h *Handler) portraitHandler(c *gin.Context) {
	if h.Portraits == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no portrait store configured"})
		return
	}
	img, err := h.Portraits.Get(c.Request.Context(), c.Param("name"))
	if errors.Is(err, portrait.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "portrait not found"})
		return
	} else if err != nil {
		l.Warn().Println("load portrait:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	buf := new(bytes.Buffer)
	if err := imagepkg.Encode(buf, img, imagepkg.JPEG, imagepkg.DefaultQuality); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, imagepkg.JPEG.ContentType(), buf.Bytes())
}
