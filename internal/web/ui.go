// Package web serves the single-page browser interface.
package web

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed index.html
var indexHTML string

// UI renders the upload page. The theme is fixed at build time from config
// and injected into every render; there is no mutable global selection.
type UI struct {
	theme       string
	requiresKey bool
	tpl         *template.Template
}

// New parses the embedded page template.
func New(theme string, requiresKey bool) (*UI, error) {
	tpl, err := template.New("index").Parse(indexHTML)
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}
	return &UI{theme: theme, requiresKey: requiresKey, tpl: tpl}, nil
}

// RegisterRoutes attaches the page to the engine root.
func (u *UI) RegisterRoutes(r *gin.Engine) {
	r.GET("/", u.index)
}

func (u *UI) index(c *gin.Context) {
	var buf bytes.Buffer
	err := u.tpl.Execute(&buf, map[string]any{
		"Theme":       u.theme,
		"RequiresKey": u.requiresKey,
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "page render failed")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
