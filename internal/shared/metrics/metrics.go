package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	aiRequestTotal    atomic.Uint64
	aiFallbackTotal   atomic.Uint64
	autosaveTotal     atomic.Uint64
	autosaveFailTotal atomic.Uint64

	aiDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncAIRequest increments the gateway request counter.
func IncAIRequest() {
	aiRequestTotal.Add(1)
}

// IncAIFallback increments the counter of calls resolved by a fallback value.
func IncAIFallback() {
	aiFallbackTotal.Add(1)
}

// IncAutosave increments the autosave write counter.
func IncAutosave() {
	autosaveTotal.Add(1)
}

// IncAutosaveFailed increments the failed autosave write counter.
func IncAutosaveFailed() {
	autosaveFailTotal.Add(1)
}

// ObserveAIDurationMs records a gateway round-trip duration in milliseconds.
func ObserveAIDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	aiDuration.Observe(value)
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
	writeCounter(&buf, "ai_request_total", "Total AI gateway requests", aiRequestTotal.Load())
	writeCounter(&buf, "ai_fallback_total", "Total AI gateway calls resolved by fallback", aiFallbackTotal.Load())
	writeCounter(&buf, "autosave_write_total", "Total autosave writes attempted", autosaveTotal.Load())
	writeCounter(&buf, "autosave_write_failed_total", "Total autosave writes failed", autosaveFailTotal.Load())
	writeHistogram(&buf, "ai_request_duration_ms", "AI gateway round-trip duration in milliseconds", aiDuration.Snapshot())
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

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
