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
	importStartedTotal     atomic.Uint64
	importCompletedTotal   atomic.Uint64
	importFailedTotal      atomic.Uint64
	analysisStartedTotal   atomic.Uint64
	analysisCompletedTotal atomic.Uint64
	analysisFailedTotal    atomic.Uint64
	jsonRepairAppliedTotal atomic.Uint64

	pipelineDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncImportStarted increments the resume import started counter.
func IncImportStarted() { importStartedTotal.Add(1) }

// IncImportCompleted increments the resume import completed counter.
func IncImportCompleted() { importCompletedTotal.Add(1) }

// IncImportFailed increments the resume import failed counter.
func IncImportFailed() { importFailedTotal.Add(1) }

// IncAnalysisStarted increments the analysis started counter.
func IncAnalysisStarted() { analysisStartedTotal.Add(1) }

// IncAnalysisCompleted increments the analysis completed counter.
func IncAnalysisCompleted() { analysisCompletedTotal.Add(1) }

// IncAnalysisFailed increments the analysis failed counter.
func IncAnalysisFailed() { analysisFailedTotal.Add(1) }

// IncJSONRepairApplied increments the repair counter when a trailing-comma fix was needed.
func IncJSONRepairApplied() { jsonRepairAppliedTotal.Add(1) }

// ObservePipelineDurationMs records an end-to-end pipeline duration in milliseconds.
func ObservePipelineDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	pipelineDuration.Observe(value)
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
	writeCounter(&buf, "resume_import_started_total", "Total resume imports started", importStartedTotal.Load())
	writeCounter(&buf, "resume_import_completed_total", "Total resume imports completed", importCompletedTotal.Load())
	writeCounter(&buf, "resume_import_failed_total", "Total resume imports failed", importFailedTotal.Load())
	writeCounter(&buf, "resume_analysis_started_total", "Total resume analyses started", analysisStartedTotal.Load())
	writeCounter(&buf, "resume_analysis_completed_total", "Total resume analyses completed", analysisCompletedTotal.Load())
	writeCounter(&buf, "resume_analysis_failed_total", "Total resume analyses failed", analysisFailedTotal.Load())
	writeCounter(&buf, "ai_json_repair_applied_total", "Total AI responses that needed JSON repair", jsonRepairAppliedTotal.Load())
	writeHistogram(&buf, "ai_pipeline_duration_ms", "AI pipeline duration in milliseconds", pipelineDuration.Snapshot())
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
