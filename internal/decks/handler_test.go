package decks_test

import (
	"bytes"
	"encoding/json"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	"github.com/Real-Nation-Stephen/RN-PPT-Generator/internal/bootstrap"
	"github.com/Real-Nation-Stephen/RN-PPT-Generator/internal/shared/config"
)

func newTestRouter(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func multipartBody(t *testing.T, autoResize string, imageNames ...string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, name := range imageNames {
		fw, err := writer.CreateFormFile("images", name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		img := imaging.New(320, 200, color.NRGBA{R: 200, A: 255})
		if err := png.Encode(fw, img); err != nil {
			t.Fatalf("encode png: %v", err)
		}
	}
	if autoResize != "" {
		if err := writer.WriteField("autoResize", autoResize); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestDeckGenerateAndDownload(t *testing.T) {
	router := newTestRouter(t, config.Config{Port: "0", Env: "dev"})

	body, contentType := multipartBody(t, "true", "one.png", "two.png")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/decks", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		DeckID      string `json:"deckId"`
		FileName    string `json:"fileName"`
		SlideCount  int    `json:"slideCount"`
		DownloadURL string `json:"downloadUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.DeckID == "" {
		t.Fatalf("expected deckId, got empty")
	}
	if created.SlideCount != 2 {
		t.Fatalf("expected 2 slides, got %d", created.SlideCount)
	}
	if !strings.HasPrefix(created.FileName, "presentation_") || !strings.HasSuffix(created.FileName, ".pptx") {
		t.Fatalf("unexpected file name %s", created.FileName)
	}

	reqDL := httptest.NewRequest(http.MethodGet, created.DownloadURL, nil)
	respDL := httptest.NewRecorder()
	router.ServeHTTP(respDL, reqDL)

	if respDL.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respDL.Code)
	}
	if ct := respDL.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.presentationml.presentation" {
		t.Fatalf("unexpected content type: %s", ct)
	}
	if cd := respDL.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment; filename=\"presentation_") {
		t.Fatalf("unexpected content disposition: %s", cd)
	}
	if respDL.Body.Len() == 0 {
		t.Fatalf("expected download body")
	}
}

func TestDeckGenerateNoFiles(t *testing.T) {
	router := newTestRouter(t, config.Config{Port: "0", Env: "dev"})

	body, contentType := multipartBody(t, "true")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/decks", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "empty_input") {
		t.Fatalf("expected empty_input error, got %s", resp.Body.String())
	}
}

func TestDeckGenerateInvalidAutoResize(t *testing.T) {
	router := newTestRouter(t, config.Config{Port: "0", Env: "dev"})

	body, contentType := multipartBody(t, "sideways", "one.png")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/decks", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "autoResize") {
		t.Fatalf("expected autoResize validation message, got %s", resp.Body.String())
	}
}

func TestDeckDownloadNotFound(t *testing.T) {
	router := newTestRouter(t, config.Config{Port: "0", Env: "dev"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/decks/missing-id/download", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
	if cd := resp.Header().Get("Content-Disposition"); cd != "" {
		t.Fatalf("expected empty content disposition, got %s", cd)
	}
}

func TestDeckGenerateRequiresAccessKey(t *testing.T) {
	router := newTestRouter(t, config.Config{Port: "0", Env: "dev", AccessKey: "sekret"})

	body, contentType := multipartBody(t, "true", "one.png")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/decks", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}

	body, contentType = multipartBody(t, "true", "one.png")
	req = httptest.NewRequest(http.MethodPost, "/api/v1/decks", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Access-Key", "sekret")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 with key, got %d: %s", resp.Code, resp.Body.String())
	}
}
