package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/youruser/quizcard/internal/card"
	imagepkg "github.com/youruser/quizcard/internal/image"
	"github.com/youruser/quizcard/internal/pool"
	"github.com/youruser/quizcard/internal/portrait"
	"github.com/youruser/quizcard/internal/style"
)

func setupRouter(t *testing.T, cors bool) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	store := portrait.NewDirStore(dir)
	h := &Handler{
		Renderer: &card.Renderer{
			Presets:       style.BuiltinPresets(),
			DefaultPreset: style.DefaultPreset,
			Resolver:      &portrait.Resolver{Store: store},
			Fonts:         imagepkg.LoadFonts(""),
			Quality:       90,
		},
		People:    pool.Builtin(),
		Portraits: store,
	}
	r := gin.New()
	RegisterRoutes(r, h, cors)
	return r, dir
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _ := setupRouter(t, false)
	w := do(r, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ok") {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestPresets(t *testing.T) {
	r, _ := setupRouter(t, false)

	w := do(r, http.MethodGet, "/api/presets", "")
	var list struct {
		Default string   `json:"default"`
		Presets []string `json:"presets"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if list.Default != "classic" || len(list.Presets) != len(style.BuiltinPresets()) {
		t.Fatalf("unexpected presets %+v", list)
	}

	w = do(r, http.MethodGet, "/api/presets/white", "")
	var s style.Style
	if err := json.Unmarshal(w.Body.Bytes(), &s); err != nil {
		t.Fatal(err)
	}
	if s.LabelBg != "#FFFFFF" {
		t.Fatalf("unexpected preset %+v", s)
	}

	if w = do(r, http.MethodGet, "/api/presets/nope", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPools(t *testing.T) {
	r, _ := setupRouter(t, false)

	a := do(r, http.MethodGet, "/api/pools/ruling/pick?n=4&seed=42", "")
	b := do(r, http.MethodGet, "/api/pools/ruling/pick?n=4&seed=42", "")
	if a.Code != http.StatusOK || a.Body.String() != b.Body.String() {
		t.Fatalf("seeded picks differ: %s / %s", a.Body.String(), b.Body.String())
	}
	var picked struct {
		People []pool.Person `json:"people"`
	}
	if err := json.Unmarshal(a.Body.Bytes(), &picked); err != nil {
		t.Fatal(err)
	}
	if len(picked.People) != 4 {
		t.Fatalf("expected 4 people, got %d", len(picked.People))
	}

	if w := do(r, http.MethodGet, "/api/pools/nope/pick", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/api/pools/vip/pick?seed=x", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	w := do(r, http.MethodPost, "/api/pools/filter", `{"pools":["vip"]}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"count":2`) {
		t.Fatalf("unexpected filter response %d %s", w.Code, w.Body.String())
	}

	if w = do(r, http.MethodGet, "/api/pools", ""); !strings.Contains(w.Body.String(), "opposition") {
		t.Fatalf("unexpected pools %s", w.Body.String())
	}
}

func TestCard(t *testing.T) {
	r, dir := setupRouter(t, false)
	f, err := os.Create(filepath.Join(dir, "Kim.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	if err := jpeg.Encode(f, imaging.New(400, 300, color.NRGBA{R: 255, A: 255}), nil); err != nil {
		t.Fatal(err)
	}
	_ = f.Close()

	body := `{"question":"Who?\nPick one","footer":"comment below","preset":"magenta",
		"style":{"img_zoom":1.2},"entrants":[{"name":"Kim"},{"name":"Lee"}],"qr_text":"https://example.com"}`
	w := do(r, http.MethodPost, "/api/card", body)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d %s", w.Code, w.Body.String())
	}
	if w.Header().Get("Content-Type") != "image/jpeg" || w.Header().Get("X-Card-ID") == "" {
		t.Fatalf("unexpected headers %v", w.Header())
	}
	img, err := jpeg.Decode(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 1080, 1920) {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}

	// the stored portrait for Kim fills the first cell with red
	o := imagepkg.CellOrigin(style.Default(), 0)
	cr, cg, _, _ := img.At(o.X+40, o.Y+40).RGBA()
	if cr>>8 < 200 || cg>>8 > 60 {
		t.Fatalf("expected Kim's portrait in the first cell, got r=%d g=%d", cr>>8, cg>>8)
	}
}

func TestCardBadRequests(t *testing.T) {
	r, _ := setupRouter(t, false)
	for _, body := range []string{
		`{"question":`,
		`{"preset":"nope"}`,
		`{"style":{"top_h":1900}}`,
		`{"format":"gif"}`,
		`{"style":{"top_color":"yellowish"}}`,
	} {
		if w := do(r, http.MethodPost, "/api/card", body); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestCardBodyLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{
		Renderer: &card.Renderer{
			Presets:       style.BuiltinPresets(),
			DefaultPreset: style.DefaultPreset,
			Fonts:         imagepkg.LoadFonts(""),
		},
		MaxBodyBytes: 1024,
	}
	r := gin.New()
	RegisterRoutes(r, h, false)

	upload := strings.Repeat("A", 4096)
	w := do(r, http.MethodPost, "/api/card", `{"entrants":[{"name":"Kim","image_data":"`+upload+`"}]}`)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/api/card", `{"question":"Q?","entrants":[{"name":"Kim"}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("small request should render, got %d %s", w.Code, w.Body.String())
	}
}

func TestCardHugeUploadFallsBackToPlaceholder(t *testing.T) {
	r, _ := setupRouter(t, false)
	huge := []byte{'G', 'I', 'F', '8', '9', 'a', 0x30, 0x75, 0x30, 0x75, 0, 0, 0}
	body, err := json.Marshal(card.Request{
		Entrants: []portrait.Source{{Name: "Kim", ImageData: base64.StdEncoding.EncodeToString(huge)}},
	})
	if err != nil {
		t.Fatal(err)
	}
	w := do(r, http.MethodPost, "/api/card", string(body))
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d %s", w.Code, w.Body.String())
	}
	img, err := jpeg.Decode(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	o := imagepkg.CellOrigin(style.Default(), 0)
	cr, cg, cb, _ := img.At(o.X+30, o.Y+30).RGBA()
	gray := func(v uint32) bool { d := int(v>>8) - 128; return d >= -10 && d <= 10 }
	if !gray(cr) || !gray(cg) || !gray(cb) {
		t.Fatalf("expected the gray placeholder, got (%d,%d,%d)", cr>>8, cg>>8, cb>>8)
	}
}

func TestCaption(t *testing.T) {
	r, _ := setupRouter(t, false)
	w := do(r, http.MethodPost, "/api/caption", `{"question":"Q?","names":["A","B","C","D"]}`)
	if w.Code != http.StatusOK || w.Body.String() != "Q?\n\n1. A\n2. B\n3. C\n4. D" {
		t.Fatalf("unexpected caption %d %q", w.Code, w.Body.String())
	}
}

func TestQR(t *testing.T) {
	r, _ := setupRouter(t, false)
	w := do(r, http.MethodGet, "/api/qr?text=hello&size=128", "")
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("unexpected response %d %v", w.Code, w.Header())
	}
	if w = do(r, http.MethodGet, "/api/qr", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPortrait(t *testing.T) {
	r, dir := setupRouter(t, false)
	var buf bytes.Buffer
	if err := imagepkg.Encode(&buf, imaging.New(8, 8, color.NRGBA{B: 255, A: 255}), imagepkg.PNG, 0); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Park.png"), buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	w := do(r, http.MethodGet, "/api/portraits/Park", "")
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/jpeg" {
		t.Fatalf("unexpected response %d %v", w.Code, w.Header())
	}
	if w = do(r, http.MethodGet, "/api/portraits/Nobody", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCORS(t *testing.T) {
	r, _ := setupRouter(t, true)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("expected CORS header, got %v", w.Header())
	}
}
