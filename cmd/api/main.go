package main

import (
	"log"

	"github.com/Real-Nation-Stephen/RN-PPT-Generator/internal/bootstrap"
	"github.com/Real-Nation-Stephen/RN-PPT-Generator/internal/shared/config"
	"github.com/Real-Nation-Stephen/RN-PPT-Generator/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting RN PPT Generator on %s (theme=%s)", addr, cfg.Theme)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
