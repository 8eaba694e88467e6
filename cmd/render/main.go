// Command render composes one quiz card from a TOML request file.
//
//	render -c quizcard.toml -r request.toml -o out/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/youruser/quizcard/internal/app"
	"github.com/youruser/quizcard/internal/card"
	"github.com/youruser/quizcard/internal/config"
	"github.com/youruser/quizcard/internal/logger"
	"github.com/youruser/quizcard/internal/util"
)

var log = logger.New("[render]")

func main() {
	configPath := flag.String("c", config.DefaultConfigPath, "config file")
	requestPath := flag.String("r", "request.toml", "card request file")
	outDir := flag.String("o", "out", "output `directory`")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		log.Fatalln("load config:", err)
	}

	req, err := readRequest(*requestPath)
	if err != nil {
		log.Fatalln("read request:", err)
	}

	store, err := app.PortraitStore(conf)
	if err != nil {
		log.Fatalln("portrait store:", err)
	}
	renderer, err := app.Renderer(conf, store)
	if err != nil {
		log.Fatalln("renderer:", err)
	}

	res, err := renderer.Render(context.Background(), req)
	if err != nil {
		log.Fatalln("render:", err)
	}

	if err := util.EnsureDir(*outDir); err != nil {
		log.Fatalln("create output dir:", err)
	}
	out := filepath.Join(*outDir, res.Filename())
	f, err := os.Create(out)
	if err != nil {
		log.Fatalln("create output:", err)
	}
	if err := res.Encode(f); err != nil {
		_ = f.Close()
		log.Fatalln("encode:", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalln("close output:", err)
	}

	fmt.Println(out)
	fmt.Println()
	fmt.Println(res.Caption)
}

func readRequest(path string) (card.Request, error) {
	var req card.Request
	data, err := os.ReadFile(path)
	if err != nil {
		return req, err
	}
	err = toml.Unmarshal(data, &req)
	return req, err
}
