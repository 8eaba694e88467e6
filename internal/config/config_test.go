package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	c, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if c != Default() {
		t.Fatalf("expected defaults, got %+v", c)
	}
	if c.Portraits.FetchTimeout() != 5*time.Second {
		t.Fatalf("unexpected fetch timeout %v", c.Portraits.FetchTimeout())
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "quizcard.toml")
	data := `
[server]
addr = ":9000"
cors = true

[render]
jpeg_quality = 80
font_path = "fonts/NanumGothic.ttf"

[portraits]
dir = "/srv/portraits"
fetch_timeout_ms = 1500
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("QUIZCARD_DATA_DIR=/srv/pools\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvPortraitDir, "/mnt/portraits")
	t.Setenv(EnvDataDir, "")
	// godotenv does not override variables that are already set, even to ""
	_ = os.Unsetenv(EnvDataDir)
	t.Setenv(EnvPort, "")

	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if c.Server.Addr != ":9000" || !c.Server.Cors {
		t.Fatalf("server section not applied: %+v", c.Server)
	}
	if c.Render.JPEGQuality != 80 || c.Render.FontPath != "fonts/NanumGothic.ttf" {
		t.Fatalf("render section not applied: %+v", c.Render)
	}
	if c.Render.DefaultPreset != "classic" {
		t.Fatalf("unset fields must keep defaults: %+v", c.Render)
	}
	if c.Portraits.Dir != "/mnt/portraits" {
		t.Fatalf("env must override the file: %q", c.Portraits.Dir)
	}
	if c.Portraits.FetchTimeout() != 1500*time.Millisecond {
		t.Fatalf("unexpected timeout %v", c.Portraits.FetchTimeout())
	}
	if c.Pools.DataDir != "/srv/pools" {
		t.Fatalf(".env value not loaded: %q", c.Pools.DataDir)
	}
}

func TestLoadPortEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvPort, "3318")
	c, err := Load("missing.toml")
	if err != nil {
		t.Fatal(err)
	}
	if c.Server.Addr != ":3318" {
		t.Fatalf("expected :3318, got %q", c.Server.Addr)
	}
}

func TestLoadBadFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[server\naddr="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a decode error")
	}
}
