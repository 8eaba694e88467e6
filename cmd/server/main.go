package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/youruser/quizcard/internal/api"
	"github.com/youruser/quizcard/internal/app"
	"github.com/youruser/quizcard/internal/config"
	"github.com/youruser/quizcard/internal/logger"
)

var log = logger.New("[main]")

func main() {
	configPath := flag.String("c", config.DefaultConfigPath, "config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		log.Fatalln("load config:", err)
	}

	store, err := app.PortraitStore(conf)
	if err != nil {
		log.Fatalln("portrait store:", err)
	}
	renderer, err := app.Renderer(conf, store)
	if err != nil {
		log.Fatalln("renderer:", err)
	}

	gin.SetMode(conf.Server.GinMode)
	r := gin.Default()
	api.RegisterRoutes(r, &api.Handler{
		Renderer:  renderer,
		People:    app.People(conf),
		Portraits: store,
	}, conf.Server.Cors)

	server := &http.Server{
		Addr:    conf.Server.Addr,
		Handler: r,
	}

	go func() {
		log.Println("starting server on", conf.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalln(err)
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigs
	log.Println("exiting with", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Println("shutdown:", err)
	}
}
