package decks

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Real-Nation-Stephen/RN-PPT-Generator/internal/images"
	"github.com/Real-Nation-Stephen/RN-PPT-Generator/internal/shared/metrics"
	"github.com/Real-Nation-Stephen/RN-PPT-Generator/internal/shared/telemetry"
)

// softFileCap is guidance, not a contract; larger batches only log a warning.
const softFileCap = 50

// Service runs the generate pipeline: decode, normalize, assemble, export.
type Service struct {
	Repo Repo
}

// Generate builds a presentation from the uploaded images and stores the
// finished deck. Files that fail to decode are skipped and reported in the
// deck's Results; slide order follows upload order. An input with no files,
// or whose files all fail to decode, is rejected with ErrEmptyInput.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (Deck, error) {
	if len(input.Files) == 0 {
		return Deck{}, ErrEmptyInput
	}
	if len(input.Files) > softFileCap {
		telemetry.Info("decks.generate.large_batch", map[string]any{
			"files":    len(input.Files),
			"soft_cap": softFileCap,
		})
	}

	metrics.IncGenerateStarted()
	start := time.Now()

	results := make([]FileResult, 0, len(input.Files))
	var slides []slideImage
	skipped := 0
	for _, f := range input.Files {
		if err := ctx.Err(); err != nil {
			metrics.IncGenerateFailed()
			return Deck{}, err
		}

		si, err := prepareSlideImage(f, input.AutoResize)
		if err != nil {
			skipped++
			results = append(results, FileResult{FileName: f.Name, Error: err.Error()})
			telemetry.Error("decks.generate.skip_file", map[string]any{
				"file":  f.Name,
				"error": err.Error(),
			})
			continue
		}
		slides = append(slides, si)
		results = append(results, FileResult{FileName: f.Name, Slide: len(slides)})
	}
	metrics.AddImagesSkipped(skipped)

	if len(slides) == 0 {
		metrics.IncGenerateFailed()
		return Deck{}, fmt.Errorf("%w: none of the %d files could be decoded", ErrEmptyInput, len(input.Files))
	}

	fileName := fmt.Sprintf("presentation_%s.pptx", time.Now().Format("20060102_150405"))
	data, err := assemble(strings.TrimSuffix(fileName, ".pptx"), slides, input.AutoResize)
	if err != nil {
		metrics.IncGenerateFailed()
		return Deck{}, err
	}

	deck := Deck{
		ID:         uuid.NewString(),
		FileName:   fileName,
		SlideCount: len(slides),
		SizeBytes:  int64(len(data)),
		AutoResize: input.AutoResize,
		Data:       data,
		Results:    results,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, deck); err != nil {
		metrics.IncGenerateFailed()
		return Deck{}, err
	}

	metrics.IncGenerateCompleted()
	metrics.ObserveGenerateDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	metrics.ObserveDeckSlides(float64(deck.SlideCount))
	telemetry.Info("decks.generate.complete", map[string]any{
		"deck_id":     deck.ID,
		"slides":      deck.SlideCount,
		"skipped":     skipped,
		"auto_resize": deck.AutoResize,
		"size_bytes":  deck.SizeBytes,
	})
	return deck, nil
}

// Get returns a stored deck by ID.
func (s *Service) Get(ctx context.Context, id string) (Deck, error) {
	return s.Repo.GetByID(ctx, id)
}

// prepareSlideImage decodes one upload and, when autoResize is set, scales
// and letterboxes it onto the 16:9 canvas. Without autoResize the original
// bytes are embedded untouched at their native dimensions.
func prepareSlideImage(f SourceFile, autoResize bool) (slideImage, error) {
	img, err := images.Decode(f.Data)
	if err != nil {
		return slideImage{}, err
	}

	if !autoResize {
		return slideImage{
			data:     f.Data,
			mimeType: http.DetectContentType(f.Data),
			widthPx:  img.Bounds().Dx(),
			heightPx: img.Bounds().Dy(),
		}, nil
	}

	normalized := images.Normalize(img)
	data, err := images.EncodePNG(normalized)
	if err != nil {
		return slideImage{}, err
	}
	return slideImage{
		data:     data,
		mimeType: "image/png",
		widthPx:  normalized.Bounds().Dx(),
		heightPx: normalized.Bounds().Dy(),
	}, nil
}
