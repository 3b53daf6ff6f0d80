package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	generateStartedTotal   atomic.Uint64
	generateCompletedTotal atomic.Uint64
	generateFailedTotal    atomic.Uint64
	imagesSkippedTotal     atomic.Uint64

	generateDuration = newHistogram([]float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000})
	deckSlides       = newHistogram([]float64{1, 2, 5, 10, 20, 50, 100})
)

// IncGenerateStarted increments the started counter.
func IncGenerateStarted() {
	generateStartedTotal.Add(1)
}

// IncGenerateCompleted increments the completed counter.
func IncGenerateCompleted() {
	generateCompletedTotal.Add(1)
}

// IncGenerateFailed increments the failed counter.
func IncGenerateFailed() {
	generateFailedTotal.Add(1)
}

// AddImagesSkipped counts uploads dropped for decode failures.
func AddImagesSkipped(n int) {
	if n > 0 {
		imagesSkippedTotal.Add(uint64(n))
	}
}

// ObserveGenerateDurationMs records a generate duration in milliseconds.
func ObserveGenerateDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	generateDuration.Observe(value)
}

// ObserveDeckSlides records the slide count of a finished deck.
func ObserveDeckSlides(value float64) {
	if value < 0 {
		value = 0
	}
	deckSlides.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "deck_generate_started_total", "Total deck generations started", generateStartedTotal.Load())
	writeCounter(&buf, "deck_generate_completed_total", "Total deck generations completed", generateCompletedTotal.Load())
	writeCounter(&buf, "deck_generate_failed_total", "Total deck generations failed", generateFailedTotal.Load())
	writeCounter(&buf, "deck_images_skipped_total", "Total uploaded images skipped for decode failures", imagesSkippedTotal.Load())
	writeHistogram(&buf, "deck_generate_duration_ms", "Deck generation duration in milliseconds", generateDuration.Snapshot())
	writeHistogram(&buf, "deck_slides", "Slides per generated deck", deckSlides.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
