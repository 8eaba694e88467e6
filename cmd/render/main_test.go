package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadRequest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.toml")
	data := `
question = """
Who said it?
Pick one"""
footer = "comment below"
preset = "white"
format = "png"

[style]
top_h = 450
img_zoom = 1.3

[[entrants]]
name = "Kim"
image_path = "photos/kim.jpg"

[[entrants]]
name = "Lee"
image_url = "https://example.com/lee.png"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	req, err := readRequest(path)
	if err != nil {
		t.Fatal(err)
	}
	if req.Question != "Who said it?\nPick one" || req.Preset != "white" || req.Format != "png" {
		t.Fatalf("unexpected request %+v", req)
	}
	if len(req.Entrants) != 2 || req.Entrants[0].ImagePath != "photos/kim.jpg" || req.Entrants[1].ImageURL == "" {
		t.Fatalf("unexpected entrants %+v", req.Entrants)
	}
	if req.Style["top_h"] != int64(450) {
		t.Fatalf("unexpected style overrides %#v", req.Style)
	}
}
