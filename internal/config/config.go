package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/youruser/quizcard/internal/logger"
)

var (
	log     = logger.New("[config]")
	verbose = logger.NewVerboseLogger("[config]")
)

const DefaultConfigPath = "quizcard.toml"

const (
	EnvAddr        = "QUIZCARD_ADDR"
	EnvPort        = "PORT"
	EnvFont        = "QUIZCARD_FONT"
	EnvPresets     = "QUIZCARD_PRESETS"
	EnvPortraitDir = "QUIZCARD_PORTRAIT_DIR"
	EnvDataDir     = "QUIZCARD_DATA_DIR"
	EnvS3Bucket    = "QUIZCARD_S3_BUCKET"
	EnvS3Region    = "QUIZCARD_S3_REGION"
)

type Server struct {
	Addr    string `toml:"addr"`
	Cors    bool   `toml:"cors"`
	GinMode string `toml:"gin_mode"`
}

type Render struct {
	// FontPath is a TrueType file; empty uses the embedded Go Regular font.
	FontPath      string `toml:"font_path"`
	JPEGQuality   int    `toml:"jpeg_quality"`
	PresetsFile   string `toml:"presets_file"`
	DefaultPreset string `toml:"default_preset"`
}

type Portraits struct {
	Dir            string `toml:"dir"`
	FetchTimeoutMS int    `toml:"fetch_timeout_ms"`
	S3Bucket       string `toml:"s3_bucket"`
	S3Prefix       string `toml:"s3_prefix"`
	S3Region       string `toml:"s3_region"`
}

func (p Portraits) FetchTimeout() time.Duration {
	return time.Duration(p.FetchTimeoutMS) * time.Millisecond
}

type Pools struct {
	// DataDir holds pools.csv / custom_pools.csv; empty uses the built-in pools.
	DataDir string `toml:"data_dir"`
}

type Config struct {
	Server    Server    `toml:"server"`
	Render    Render    `toml:"render"`
	Portraits Portraits `toml:"portraits"`
	Pools     Pools     `toml:"pools"`
}

func Default() Config {
	return Config{
		Server: Server{
			Addr:    ":8080",
			GinMode: "release",
		},
		Render: Render{
			JPEGQuality:   95,
			DefaultPreset: "classic",
		},
		Portraits: Portraits{
			Dir:            "portraits",
			FetchTimeoutMS: 5000,
			S3Region:       "us-east-1",
		},
	}
}

// Load reads defaults, then .env, then the TOML file at path (skipped when it
// does not exist), then environment overrides.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config := Default()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config, err
	}

	configData, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Println("config file not found, using defaults:", path)
	case err != nil:
		return config, err
	default:
		log.Println("reading config file:", path)
		if err := toml.Unmarshal(configData, &config); err != nil {
			return config, err
		}
	}

	applyEnv(&config)

	verbose.Printf("use config: %+v", config)

	return config, nil
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	return val
}

func applyEnv(c *Config) {
	if port := os.Getenv(EnvPort); port != "" {
		c.Server.Addr = ":" + port
	}
	c.Server.Addr = getenv(EnvAddr, c.Server.Addr)
	c.Render.FontPath = getenv(EnvFont, c.Render.FontPath)
	c.Render.PresetsFile = getenv(EnvPresets, c.Render.PresetsFile)
	c.Portraits.Dir = getenv(EnvPortraitDir, c.Portraits.Dir)
	c.Portraits.S3Bucket = getenv(EnvS3Bucket, c.Portraits.S3Bucket)
	c.Portraits.S3Region = getenv(EnvS3Region, c.Portraits.S3Region)
	c.Pools.DataDir = getenv(EnvDataDir, c.Pools.DataDir)
}
