// Package bootstrap wires application dependencies for the server and tests.
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Real-Nation-Stephen/RN-PPT-Generator/internal/decks"
	"github.com/Real-Nation-Stephen/RN-PPT-Generator/internal/shared/config"
	"github.com/Real-Nation-Stephen/RN-PPT-Generator/internal/shared/server"
	"github.com/Real-Nation-Stephen/RN-PPT-Generator/internal/web"
)

// App holds shared dependencies, exposed so tests can reach inside.
type App struct {
	Config      config.Config
	Router      *gin.Engine
	DeckRepo    decks.Repo
	DeckService *decks.Service
	DeckHandler *decks.Handler
	UI          *web.UI
}

// Build prepares the dependency graph and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = 100
	}
	cfg.Theme = config.NormalizeTheme(cfg.Theme)

	repo := decks.NewMemoryRepo()
	svc := &decks.Service{Repo: repo}
	handler := decks.NewHandler(svc, cfg.MaxUploadMB<<20)

	ui, err := web.New(cfg.Theme, cfg.AccessKey != "")
	if err != nil {
		return nil, fmt.Errorf("build ui: %w", err)
	}

	app := &App{
		Config:      cfg,
		DeckRepo:    repo,
		DeckService: svc,
		DeckHandler: handler,
		UI:          ui,
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:      cfg,
		DeckHandler: handler,
		UI:          ui,
	})
	return app, nil
}
