package decks

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Real-Nation-Stephen/RN-PPT-Generator/internal/shared/server/respond"
	"github.com/Real-Nation-Stephen/RN-PPT-Generator/internal/shared/util"
)

const mimePPTX = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler with the given total upload cap.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches deck routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/decks", h.generate)
	rg.GET("/decks/:id", h.get)
	rg.GET("/decks/:id/download", h.download)
}

func (h *Handler) generate(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	form, err := c.MultipartForm()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "multipart form with image files is required", nil)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respond.Error(c, http.StatusBadRequest, "empty_input", "at least one image is required", nil)
		return
	}

	autoResize := true
	if raw := c.PostForm("autoResize"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "autoResize must be a boolean", nil)
			return
		}
		autoResize = parsed
	}

	input := GenerateInput{AutoResize: autoResize}
	for _, fh := range files {
		name, err := util.SanitizeFileName(fh.Filename)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", fmt.Sprintf("invalid file name %q", fh.Filename), nil)
			return
		}
		f, err := fh.Open()
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read "+name, nil)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read "+name, nil)
			return
		}
		input.Files = append(input.Files, SourceFile{Name: name, Data: data})
	}

	deck, err := h.Svc.Generate(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyInput):
			respond.Error(c, http.StatusBadRequest, "empty_input", err.Error(), nil)
		case errors.Is(err, ErrSerialization):
			respond.Error(c, http.StatusInternalServerError, "serialization_error", "failed to export presentation", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate presentation", nil)
		}
		return
	}

	c.Set("deckId", deck.ID)
	respond.JSON(c, http.StatusCreated, toResponse(deck))
}

func (h *Handler) get(c *gin.Context) {
	deck, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "deck not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch deck", nil)
		}
		return
	}

	respond.OK(c, toResponse(deck))
}

func (h *Handler) download(c *gin.Context) {
	deck, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "deck not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch deck", nil)
		}
		return
	}

	c.Set("deckId", deck.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", deck.FileName))
	c.Data(http.StatusOK, mimePPTX, deck.Data)
}
