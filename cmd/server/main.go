package main

import (
	"context"
	"flag"
	"net/http"
	"os"

	"github.com/gorilla/handlers"

	"github.com/WiL-dev/econstruct/internal/api"
	"github.com/WiL-dev/econstruct/internal/config"
	"github.com/WiL-dev/econstruct/internal/geocode"
	"github.com/WiL-dev/econstruct/internal/log"
	"github.com/WiL-dev/econstruct/internal/session"
	"github.com/WiL-dev/econstruct/internal/ws"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to config file")
	addr := flag.String("addr", "", "listen address override")
	flag.Parse()

	logger := log.Ctx(context.Background())

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("loading config", "err", err)
		os.Exit(1)
	}
	log.SetDebug(cfg.IsDebug)

	geocoder := geocode.NewClient(cfg.Geocode.BaseURL, cfg.Geocode.UserAgent, cfg.GeocodeTimeout())

	// Session events flow through the bridge to connected clients.
	hub := ws.NewHub()
	sessions := session.New(ws.NewBridge(hub))
	wsHandler := ws.NewHandler(hub, sessions, geocoder)

	router := api.New(geocoder).Router()
	router.Handler(http.MethodGet, "/ws", wsHandler)

	// Serve frontend static files
	if _, err := os.Stat(cfg.Frontend.Dir); err == nil {
		logger.Info("serving frontend", "dir", cfg.Frontend.Dir)
		router.NotFound = http.FileServer(http.Dir(cfg.Frontend.Dir))
	}

	handler := handlers.RecoveryHandler()(handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(router))

	listenAddr := cfg.Addr()
	if *addr != "" {
		listenAddr = *addr
	}

	logger.Info("starting server", "addr", listenAddr)
	if err := http.ListenAndServe(listenAddr, handler); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}
