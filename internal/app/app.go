// Package app wires configuration into the components both binaries share.
package app

import (
	"github.com/youruser/quizcard/internal/card"
	"github.com/youruser/quizcard/internal/config"
	imagepkg "github.com/youruser/quizcard/internal/image"
	"github.com/youruser/quizcard/internal/logger"
	"github.com/youruser/quizcard/internal/pool"
	"github.com/youruser/quizcard/internal/portrait"
	"github.com/youruser/quizcard/internal/style"
)

var log = logger.New("[app]")

// PortraitStore builds the local store, chained with S3 when a bucket is set.
func PortraitStore(conf config.Config) (portrait.Store, error) {
	dir := portrait.NewDirStore(conf.Portraits.Dir)
	if conf.Portraits.S3Bucket == "" {
		return dir, nil
	}
	s3, err := portrait.NewS3Store(conf.Portraits.S3Region, conf.Portraits.S3Bucket, conf.Portraits.S3Prefix)
	if err != nil {
		return nil, err
	}
	log.Println("portraits from", conf.Portraits.Dir, "then s3://"+conf.Portraits.S3Bucket+"/"+conf.Portraits.S3Prefix)
	return portrait.Chain{dir, s3}, nil
}

func Renderer(conf config.Config, store portrait.Store) (*card.Renderer, error) {
	presets, err := style.LoadPresets(conf.Render.PresetsFile)
	if err != nil {
		return nil, err
	}
	return &card.Renderer{
		Presets:       presets,
		DefaultPreset: conf.Render.DefaultPreset,
		Resolver: &portrait.Resolver{
			Store:        store,
			FetchTimeout: conf.Portraits.FetchTimeout(),
		},
		Fonts:   imagepkg.LoadFonts(conf.Render.FontPath),
		Quality: conf.Render.JPEGQuality,
	}, nil
}

// People loads pools from the data dir, falling back to the built-in pools.
func People(conf config.Config) []pool.Person {
	if conf.Pools.DataDir == "" {
		return pool.Builtin()
	}
	people, err := pool.LoadPoolsFromDataDir(conf.Pools.DataDir)
	if err != nil {
		log.Println("Warning: failed to load pool CSVs, using built-in pools:", err)
		return pool.Builtin()
	}
	return people
}
