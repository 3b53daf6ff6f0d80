package metrics

import (
	"bytes"
	"strings"
	"testing"
)

func TestHistogramBucketsAreCumulativeOnce(t *testing.T) {
	h := newHistogram([]float64{1, 2, 5})
	h.Observe(0.5)
	h.Observe(1.5)
	h.Observe(3)
	h.Observe(100)

	var buf bytes.Buffer
	writeHistogram(&buf, "sample", "sample histogram", h.Snapshot())
	out := buf.String()

	for _, want := range []string{
		`sample_bucket{le="1"} 1`,
		`sample_bucket{le="2"} 2`,
		`sample_bucket{le="5"} 3`,
		`sample_bucket{le="+Inf"} 4`,
		"sample_count 4",
		"sample_sum 105",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestHistogramObserveFillsOneBucket(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)

	snap := h.Snapshot()
	if snap.counts[0] != 1 {
		t.Fatalf("expected first bucket count 1, got %d", snap.counts[0])
	}
	if snap.counts[1] != 0 {
		t.Fatalf("expected second bucket untouched, got %d", snap.counts[1])
	}
}
